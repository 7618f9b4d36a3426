package highlight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltasrc/taglight/highlight"
	"github.com/deltasrc/taglight/selector"
	"github.com/deltasrc/taglight/tag"
)

type fakeType struct {
	name string
	top  bool
}

func (t fakeType) Name() string { return t.name }
func (t fakeType) IsTop() bool  { return t.top }

type fakeNode struct {
	Name     string
	Children []*fakeNode
	Mount    *highlight.Mount
	From     int
	To       int
	Top      bool
}

type fakeTree struct {
	root *fakeNode
}

func (t *fakeTree) Length() int { return t.root.To }

func (t *fakeTree) Cursor() highlight.Cursor {
	return &fakeCursor{path: []*fakeNode{t.root}, idx: []int{0}}
}

type fakeCursor struct {
	path []*fakeNode
	idx  []int
}

func (c *fakeCursor) cur() *fakeNode { return c.path[len(c.path)-1] }

func (c *fakeCursor) Type() highlight.NodeType {
	n := c.cur()

	return fakeType{name: n.Name, top: n.Top}
}

func (c *fakeCursor) From() int { return c.cur().From }
func (c *fakeCursor) To() int   { return c.cur().To }

func (c *fakeCursor) FirstChild() bool {
	n := c.cur()
	if len(n.Children) == 0 {
		return false
	}

	c.path = append(c.path, n.Children[0])
	c.idx = append(c.idx, 0)

	return true
}

func (c *fakeCursor) NextSibling() bool {
	if len(c.path) < 2 {
		return false
	}

	parent := c.path[len(c.path)-2]
	i := c.idx[len(c.idx)-1]

	if i+1 >= len(parent.Children) {
		return false
	}

	c.path[len(c.path)-1] = parent.Children[i+1]
	c.idx[len(c.idx)-1] = i + 1

	return true
}

func (c *fakeCursor) Parent() bool {
	if len(c.path) < 2 {
		return false
	}

	c.path = c.path[:len(c.path)-1]
	c.idx = c.idx[:len(c.idx)-1]

	return true
}

func (c *fakeCursor) MatchContext(path []string) bool {
	ancestorAt := func(depth int) (string, bool) {
		idx := len(c.path) - 1 - depth
		if idx < 0 {
			return "", false
		}

		return c.path[idx].Name, true
	}

	return selector.MatchContext(path, ancestorAt)
}

func (c *fakeCursor) Mount() (highlight.Mount, bool) {
	n := c.cur()
	if n.Mount == nil {
		return highlight.Mount{}, false
	}

	return *n.Mount, true
}

type span struct {
	from, to int
	classes  string
}

func TestWalk_SimpleMatch(t *testing.T) {
	t.Parallel()

	comment := tag.MustDefine(tag.Named("comment"))

	rs, err := selector.Compile([]selector.Entry{
		{Selector: "Comment", Tags: []*tag.Tag{comment}},
	})
	require.NoError(t, err)

	rules := highlight.BuildRules(rs, []string{"Comment"})
	hl := highlight.New(map[*tag.Tag]string{comment: "tl-comment"})

	root := &fakeNode{
		Name: "Doc",
		From: 0, To: 10,
		Children: []*fakeNode{
			{Name: "Comment", From: 0, To: 5},
		},
	}

	var got []span

	highlight.Walk(&fakeTree{root: root}, rules, []*highlight.Highlighter{hl}, 0, 10,
		func(from, to int, classes string) {
			got = append(got, span{from, to, classes})
		})

	require.Len(t, got, 1)
	assert.Equal(t, span{0, 5, "tl-comment"}, got[0])
}

func TestWalk_CoalescesAdjacentSiblings(t *testing.T) {
	t.Parallel()

	comment := tag.MustDefine(tag.Named("comment2"))

	rs, err := selector.Compile([]selector.Entry{
		{Selector: "Comment", Tags: []*tag.Tag{comment}},
	})
	require.NoError(t, err)

	rules := highlight.BuildRules(rs, []string{"Comment"})
	hl := highlight.New(map[*tag.Tag]string{comment: "tl-comment"})

	root := &fakeNode{
		Name: "Doc",
		From: 0, To: 10,
		Children: []*fakeNode{
			{Name: "Comment", From: 0, To: 5},
			{Name: "Comment", From: 5, To: 10},
		},
	}

	var got []span

	highlight.Walk(&fakeTree{root: root}, rules, []*highlight.Highlighter{hl}, 0, 10,
		func(from, to int, classes string) {
			got = append(got, span{from, to, classes})
		})

	require.Len(t, got, 1)
	assert.Equal(t, span{0, 10, "tl-comment"}, got[0])
}

func TestWalk_GapBreaksCoalescing(t *testing.T) {
	t.Parallel()

	comment := tag.MustDefine(tag.Named("comment3"))

	rs, err := selector.Compile([]selector.Entry{
		{Selector: "Comment", Tags: []*tag.Tag{comment}},
	})
	require.NoError(t, err)

	rules := highlight.BuildRules(rs, []string{"Comment"})
	hl := highlight.New(map[*tag.Tag]string{comment: "tl-comment"})

	root := &fakeNode{
		Name: "Doc",
		From: 0, To: 10,
		Children: []*fakeNode{
			{Name: "Comment", From: 0, To: 4},
			{Name: "Plain", From: 4, To: 6},
			{Name: "Comment", From: 6, To: 10},
		},
	}

	var got []span

	highlight.Walk(&fakeTree{root: root}, rules, []*highlight.Highlighter{hl}, 0, 10,
		func(from, to int, classes string) {
			got = append(got, span{from, to, classes})
		})

	require.Len(t, got, 2)
	assert.Equal(t, span{0, 4, "tl-comment"}, got[0])
	assert.Equal(t, span{6, 10, "tl-comment"}, got[1])
}

func TestWalk_OpaqueStopsDescent(t *testing.T) {
	t.Parallel()

	str := tag.MustDefine(tag.Named("string2"))
	inner := tag.MustDefine(tag.Named("inner2"))

	rs, err := selector.Compile([]selector.Entry{
		{Selector: "String!", Tags: []*tag.Tag{str}},
		{Selector: "Escape", Tags: []*tag.Tag{inner}},
	})
	require.NoError(t, err)

	rules := highlight.BuildRules(rs, []string{"String", "Escape"})
	hl := highlight.New(map[*tag.Tag]string{
		str:   "tl-string",
		inner: "tl-escape",
	})

	root := &fakeNode{
		Name: "Doc",
		From: 0, To: 10,
		Children: []*fakeNode{
			{
				Name: "String", From: 0, To: 10,
				Children: []*fakeNode{
					{Name: "Escape", From: 2, To: 4},
				},
			},
		},
	}

	var got []span

	highlight.Walk(&fakeTree{root: root}, rules, []*highlight.Highlighter{hl}, 0, 10,
		func(from, to int, classes string) {
			got = append(got, span{from, to, classes})
		})

	require.Len(t, got, 1)
	assert.Equal(t, span{0, 10, "tl-string"}, got[0])
}

func TestWalk_InheritPropagatesToDescendants(t *testing.T) {
	t.Parallel()

	strongTag := tag.MustDefine(tag.Named("strong2"))
	emphTag := tag.MustDefine(tag.Named("emph2"))

	rs, err := selector.Compile([]selector.Entry{
		{Selector: "Strong/...", Tags: []*tag.Tag{strongTag}},
		{Selector: "Emph", Tags: []*tag.Tag{emphTag}},
	})
	require.NoError(t, err)

	rules := highlight.BuildRules(rs, []string{"Strong", "Emph"})
	hl := highlight.New(map[*tag.Tag]string{
		strongTag: "tl-strong",
		emphTag:   "tl-emph",
	})

	root := &fakeNode{
		Name: "Doc",
		From: 0, To: 10,
		Children: []*fakeNode{
			{
				Name: "Strong", From: 0, To: 10,
				Children: []*fakeNode{
					{Name: "Emph", From: 3, To: 6},
				},
			},
		},
	}

	var got []span

	highlight.Walk(&fakeTree{root: root}, rules, []*highlight.Highlighter{hl}, 0, 10,
		func(from, to int, classes string) {
			got = append(got, span{from, to, classes})
		})

	require.Len(t, got, 3)
	assert.Equal(t, span{0, 3, "tl-strong"}, got[0])
	assert.Equal(t, span{3, 6, "tl-strong tl-emph"}, got[1])
	assert.Equal(t, span{6, 10, "tl-strong"}, got[2])
}

func TestWalk_MountOverlay(t *testing.T) {
	t.Parallel()

	hostTag := tag.MustDefine(tag.Named("host2"))
	innerTag := tag.MustDefine(tag.Named("overlayinner2"))

	rs, err := selector.Compile([]selector.Entry{
		{Selector: "Host", Tags: []*tag.Tag{hostTag}},
		{Selector: "Inner", Tags: []*tag.Tag{innerTag}},
	})
	require.NoError(t, err)

	rules := highlight.BuildRules(rs, []string{"Host", "Inner"})
	hl := highlight.New(map[*tag.Tag]string{
		hostTag:  "tl-host",
		innerTag: "tl-inner",
	})

	innerRoot := &fakeNode{Name: "Inner", From: 2, To: 6}
	innerTree := &fakeTree{root: innerRoot}

	root := &fakeNode{
		Name: "Doc",
		From: 0, To: 10,
		Children: []*fakeNode{
			{
				Name: "Host", From: 0, To: 10,
				Mount: &highlight.Mount{
					Tree:    innerTree,
					Overlay: []highlight.Range{{From: 2, To: 6}},
				},
			},
		},
	}

	var got []span

	highlight.Walk(&fakeTree{root: root}, rules, []*highlight.Highlighter{hl}, 0, 10,
		func(from, to int, classes string) {
			got = append(got, span{from, to, classes})
		})

	require.Len(t, got, 3)
	assert.Equal(t, span{0, 2, "tl-host"}, got[0])
	assert.Equal(t, span{2, 6, "tl-inner"}, got[1])
	assert.Equal(t, span{6, 10, "tl-host"}, got[2])
}
