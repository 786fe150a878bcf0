package semantics

// ChangeHandler receives one callback per change detected while a tree
// update is applied. Callbacks arrive synchronously, in traversal order,
// at most once per change, all within the ApplyUpdate call.
type ChangeHandler interface {
	// NodeAdded is called for each node that entered the tree.
	NodeAdded(node *Node)

	// NodeUpdated is called for each node whose attributes changed.
	// Both views share the same node ID.
	NodeUpdated(oldNode *DetachedNode, newNode *Node)

	// FocusMoved is called when the focused node changed. Either side
	// may be nil when focus was gained or lost entirely.
	FocusMoved(oldNode *DetachedNode, newNode *Node)

	// NodeRemoved is called for each node that left the tree, with the
	// tree state after the update.
	NodeRemoved(node *DetachedNode, state *TreeState)
}

// NodeUpdate pairs a node ID with its new attribute record.
type NodeUpdate struct {
	ID   NodeID
	Data NodeData
}

// TreeUpdate is a batch of node upserts plus the resulting root and
// focus. Nodes that become unreachable from the root are removed.
// Root and Focus are absolute: a zero Root keeps the current root, a
// zero Focus means nothing is focused.
type TreeUpdate struct {
	Nodes []NodeUpdate
	Root  NodeID
	Focus NodeID
}

// Tree holds the current semantics tree. It only ever contains nodes
// reachable from the root. A tree must not be shared across goroutines
// while an update is applied.
type Tree struct {
	nodes map[NodeID]*NodeData
	root  NodeID
	focus NodeID
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: make(map[NodeID]*NodeData)}
}

// Root returns the root node ID, or zero for an empty tree.
func (t *Tree) Root() NodeID { return t.root }

// Focus returns the focused node, or nil if nothing is focused.
func (t *Tree) Focus() *Node {
	n, _ := t.NodeByID(t.focus)
	return n
}

// NodeByID returns the live view of a node, if present.
func (t *Tree) NodeByID(id NodeID) (*Node, bool) {
	data, ok := t.nodes[id]
	if !ok {
		return nil, false
	}
	return &Node{id: id, data: data, tree: t}, true
}

// ApplyUpdate applies an update batch and invokes the handler once per
// detected change: added and updated nodes in depth-first order over the
// new tree, then removals in the old tree's depth-first order, then a
// focus change if any. A nil handler applies the update silently.
func (t *Tree) ApplyUpdate(u TreeUpdate, handler ChangeHandler) {
	oldNodes := t.nodes
	oldRoot := t.root
	oldFocus := t.focus

	next := make(map[NodeID]*NodeData, len(oldNodes)+len(u.Nodes))
	for id, data := range oldNodes {
		next[id] = data
	}
	for _, nu := range u.Nodes {
		next[nu.ID] = nu.Data.clone()
	}

	newRoot := u.Root
	if newRoot == 0 {
		newRoot = oldRoot
	}

	reachable := make(map[NodeID]struct{}, len(next))
	order := walk(newRoot, next, reachable)

	// Prune anything the update left unreachable.
	for nid := range next {
		if _, ok := reachable[nid]; !ok {
			delete(next, nid)
		}
	}

	t.nodes = next
	t.root = newRoot
	t.focus = u.Focus

	if handler == nil {
		return
	}

	for _, nid := range order {
		newNode := &Node{id: nid, data: next[nid], tree: t}
		oldData, existed := oldNodes[nid]
		if !existed {
			handler.NodeAdded(newNode)
		} else if !oldData.equal(next[nid]) {
			handler.NodeUpdated(&DetachedNode{id: nid, data: oldData}, newNode)
		}
	}

	state := &TreeState{tree: t}
	oldOrder := walk(oldRoot, oldNodes, make(map[NodeID]struct{}, len(oldNodes)))
	for _, nid := range oldOrder {
		if _, ok := reachable[nid]; !ok {
			handler.NodeRemoved(&DetachedNode{id: nid, data: oldNodes[nid]}, state)
		}
	}

	if oldFocus != u.Focus {
		var oldView *DetachedNode
		if data, ok := oldNodes[oldFocus]; ok {
			oldView = &DetachedNode{id: oldFocus, data: data}
		}
		newView, _ := t.NodeByID(u.Focus)
		handler.FocusMoved(oldView, newView)
	}
}

// walk returns the depth-first preorder of nodes reachable from root,
// filling visited as it goes. Already-visited nodes are skipped, so a
// malformed update with a cycle cannot hang the walk.
func walk(root NodeID, nodes map[NodeID]*NodeData, visited map[NodeID]struct{}) []NodeID {
	if root == 0 {
		return nil
	}
	if _, ok := nodes[root]; !ok {
		return nil
	}
	if _, seen := visited[root]; seen {
		return nil
	}
	visited[root] = struct{}{}
	order := []NodeID{root}
	for _, child := range nodes[root].Children {
		order = append(order, walk(child, nodes, visited)...)
	}
	return order
}

// TreeState is a read-only view of the tree after an update, handed to
// NodeRemoved callbacks.
type TreeState struct {
	tree *Tree
}

// NodeByID returns the live view of a node in the post-update tree.
func (s *TreeState) NodeByID(id NodeID) (*Node, bool) {
	return s.tree.NodeByID(id)
}

// Root returns the post-update root node ID.
func (s *TreeState) Root() NodeID { return s.tree.root }

// Focus returns the post-update focused node, or nil.
func (s *TreeState) Focus() *Node { return s.tree.Focus() }
