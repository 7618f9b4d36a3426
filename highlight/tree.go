package highlight

// NodeType identifies the grammar-level kind of a node: its name (used to
// look up rules and to satisfy selector context pieces) and whether it is
// a language top node (a scope boundary for highlighter composition).
type NodeType interface {
	Name() string
	IsTop() bool
}

// Range is a half-open byte range, [From, To).
type Range struct {
	From, To int
}

// Mount describes a sub-tree mounted at a cursor position: an inner tree,
// optionally restricted to an ordered list of overlay ranges relative to
// the host node's start. For a mount with no overlay ranges the walker
// descends into the host's children through the cursor as for any other
// node, except that inheritance from ancestors above the mount does not
// cross into them; Tree is not visited in that case.
type Mount struct {
	Tree    Tree
	Overlay []Range
}

// Tree is the syntax tree collaborator the core consumes.
type Tree interface {
	// Length reports the tree's total byte length.
	Length() int
	// Cursor returns a fresh cursor positioned at the tree's root.
	Cursor() Cursor
}

// Cursor is a stateful position within a [Tree]. Implementations are
// expected to support the classic depth-first traversal idiom:
// FirstChild/NextSibling to descend and move across siblings, Parent to
// climb back up after a subtree is fully visited.
type Cursor interface {
	// Type reports the node type at the cursor's current position.
	Type() NodeType
	// From reports the start offset of the current node.
	From() int
	// To reports the end offset of the current node.
	To() int
	// FirstChild moves to the first child of the current node, reporting
	// whether one exists.
	FirstChild() bool
	// NextSibling moves to the next sibling of the current node, reporting
	// whether one exists.
	NextSibling() bool
	// Parent moves to the parent of the current node, reporting whether
	// the cursor was not already at the root.
	Parent() bool
	// MatchContext reports whether the cursor's ancestry satisfies path,
	// an ordered sequence of ancestor name patterns (outermost first,
	// immediate parent last; an empty pattern matches any ancestor). See
	// [selector.MatchContext] for a reusable reference implementation.
	MatchContext(path []string) bool
	// Mount reports the mount attached at the current position, if any.
	Mount() (Mount, bool)
}
