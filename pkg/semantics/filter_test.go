package semantics

import "testing"

// TestFilter verifies the default inclusion rules.
func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		data NodeData
		want FilterResult
	}{
		{"labelled text", NodeData{Role: RoleLabel, Label: "hello"}, Include},
		{"button", NodeData{Role: RoleButton, Label: "OK"}, Include},
		{"hidden node", NodeData{Role: RoleButton, Label: "OK", Flags: FlagHidden}, ExcludeSubtree},
		{"anonymous group", NodeData{Role: RoleGroup}, ExcludeNode},
		{"named group", NodeData{Role: RoleGroup, Label: "toolbar"}, Include},
		{"focusable group", NodeData{Role: RoleGroup, Flags: FlagFocusable}, Include},
		{"anonymous unknown", NodeData{Role: RoleUnknown}, ExcludeNode},
		{"unnamed text input", NodeData{Role: RoleTextInput}, Include},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := buildTree(t, TreeUpdate{
				Nodes: []NodeUpdate{{ID: 1, Data: tt.data}},
				Root:  1,
			})
			node, _ := tree.NodeByID(1)
			if got := Filter(node); got != tt.want {
				t.Errorf("Filter = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestFilter_SameResultForDetachedView verifies the filter behaves
// identically over live and detached views of the same node.
func TestFilter_SameResultForDetachedView(t *testing.T) {
	datas := []NodeData{
		{Role: RoleLabel, Label: "hello"},
		{Role: RoleButton, Label: "OK", Flags: FlagHidden},
		{Role: RoleGroup},
	}
	for _, data := range datas {
		tree := buildTree(t, TreeUpdate{
			Nodes: []NodeUpdate{{ID: 1, Data: data}},
			Root:  1,
		})
		node, _ := tree.NodeByID(1)
		if live, detached := Filter(node), Filter(node.Detach()); live != detached {
			t.Errorf("filter disagrees for %+v: live=%v detached=%v", data, live, detached)
		}
	}
}
