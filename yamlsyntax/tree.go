package yamlsyntax

import (
	"github.com/deltasrc/taglight/highlight"
	"github.com/deltasrc/taglight/selector"
)

// node is the adapter's own tree representation, built once by [Parse] from
// a *ast.File. Keeping our own structure (rather than walking ast.Node
// on the fly) lets an alias site carry a coordinate-shifted copy of its
// anchor's subtree as a mount, without disturbing the original document
// tree.
type node struct {
	name     string
	from, to int
	children []*node
	mount    *mount
}

type mount struct {
	tree    *Tree
	overlay []highlight.Range
}

// Tree implements [highlight.Tree] over a parsed YAML document.
type Tree struct {
	root *node
}

// Length returns the byte length of the document this tree was parsed
// from.
func (t *Tree) Length() int {
	return t.root.to
}

// Cursor returns a fresh [highlight.Cursor] positioned at the document
// root.
func (t *Tree) Cursor() highlight.Cursor {
	return &Cursor{path: []*node{t.root}, idx: []int{0}}
}

// nodeType implements [highlight.NodeType] with a node-type-name string
// that selectors target (e.g. "MappingValue", "StringDouble",
// "MappingKey").
type nodeType struct {
	name string
	top  bool
}

func (t nodeType) Name() string { return t.name }
func (t nodeType) IsTop() bool  { return t.top }

// Cursor implements [highlight.Cursor] as an explicit path/index stack over
// [node]. goccy/go-yaml's ast.Node has no cursor semantics of its own, so
// this bookkeeping is done by hand rather than delegated to the parser.
type Cursor struct {
	path []*node
	idx  []int
}

func (c *Cursor) cur() *node { return c.path[len(c.path)-1] }

func (c *Cursor) Type() highlight.NodeType {
	return nodeType{name: c.cur().name, top: len(c.path) == 1}
}

func (c *Cursor) From() int { return c.cur().from }
func (c *Cursor) To() int   { return c.cur().to }

func (c *Cursor) FirstChild() bool {
	n := c.cur()
	if len(n.children) == 0 {
		return false
	}

	c.path = append(c.path, n.children[0])
	c.idx = append(c.idx, 0)

	return true
}

func (c *Cursor) NextSibling() bool {
	if len(c.path) < 2 {
		return false
	}

	parent := c.path[len(c.path)-2]
	i := c.idx[len(c.idx)-1]

	if i+1 >= len(parent.children) {
		return false
	}

	c.path[len(c.path)-1] = parent.children[i+1]
	c.idx[len(c.idx)-1] = i + 1

	return true
}

func (c *Cursor) Parent() bool {
	if len(c.path) < 2 {
		return false
	}

	c.path = c.path[:len(c.path)-1]
	c.idx = c.idx[:len(c.idx)-1]

	return true
}

// MatchContext implements the ancestor-path contract required of a
// [highlight.Cursor] by delegating to [selector.MatchContext] against the
// cursor's own path stack.
func (c *Cursor) MatchContext(path []string) bool {
	ancestorAt := func(depth int) (string, bool) {
		idx := len(c.path) - 1 - depth
		if idx < 0 {
			return "", false
		}

		return c.path[idx].name, true
	}

	return selector.MatchContext(path, ancestorAt)
}

func (c *Cursor) Mount() (highlight.Mount, bool) {
	m := c.cur().mount
	if m == nil {
		return highlight.Mount{}, false
	}

	return highlight.Mount{Tree: m.tree, Overlay: m.overlay}, true
}
