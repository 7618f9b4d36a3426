package selector_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltasrc/taglight/selector"
	"github.com/deltasrc/taglight/tag"
)

// matchContextOf builds a matchContext function from a root-to-node path
// that includes the node itself as the last element; depth 1 is the
// immediate parent (the second-to-last path element).
func matchContextOf(path []string) func([]string) bool {
	ancestorAt := func(depth int) (string, bool) {
		idx := len(path) - 1 - depth
		if idx < 0 {
			return "", false
		}

		return path[idx], true
	}

	return func(ctx []string) bool {
		return selector.MatchContext(ctx, ancestorAt)
	}
}

func TestCompile_SimpleTarget(t *testing.T) {
	t.Parallel()

	comment := tag.MustDefine(tag.Named("comment"))

	rs, err := selector.Compile([]selector.Entry{
		{Selector: "Comment", Tags: []*tag.Tag{comment}},
	})
	require.NoError(t, err)

	head := rs.Lookup("Comment")
	require.NotNil(t, head)
	assert.Equal(t, selector.ModeNormal, head.Mode)
	assert.Empty(t, head.Context)
	assert.Same(t, comment, head.Tags[0])
}

func TestCompile_OpaqueSuffix(t *testing.T) {
	t.Parallel()

	str := tag.MustDefine(tag.Named("string"))

	rs, err := selector.Compile([]selector.Entry{
		{Selector: "String!", Tags: []*tag.Tag{str}},
	})
	require.NoError(t, err)

	head := rs.Lookup("String")
	require.NotNil(t, head)
	assert.Equal(t, selector.ModeOpaque, head.Mode)
}

func TestCompile_InheritSuffix(t *testing.T) {
	t.Parallel()

	str := tag.MustDefine(tag.Named("string"))

	rs, err := selector.Compile([]selector.Entry{
		{Selector: "String/...", Tags: []*tag.Tag{str}},
	})
	require.NoError(t, err)

	head := rs.Lookup("String")
	require.NotNil(t, head)
	assert.Equal(t, selector.ModeInherit, head.Mode)
}

func TestCompile_ContextPath(t *testing.T) {
	t.Parallel()

	key := tag.MustDefine(tag.Named("key"))

	rs, err := selector.Compile([]selector.Entry{
		{Selector: "BlockMapping/BlockMappingPair/Name", Tags: []*tag.Tag{key}},
	})
	require.NoError(t, err)

	head := rs.Lookup("Name")
	require.NotNil(t, head)
	assert.Equal(t, []string{"BlockMapping", "BlockMappingPair"}, head.Context)

	matched := selector.Match(head, matchContextOf([]string{"BlockMapping", "BlockMappingPair", "Name"}))
	assert.Same(t, head, matched)

	noMatch := selector.Match(head, matchContextOf([]string{"FlowMapping", "BlockMappingPair", "Name"}))
	assert.Nil(t, noMatch)
}

func TestCompile_WildcardPiece(t *testing.T) {
	t.Parallel()

	key := tag.MustDefine(tag.Named("key"))

	rs, err := selector.Compile([]selector.Entry{
		{Selector: "*/BlockMappingPair/Name", Tags: []*tag.Tag{key}},
	})
	require.NoError(t, err)

	head := rs.Lookup("Name")
	require.NotNil(t, head)
	assert.Equal(t, []string{"", "BlockMappingPair"}, head.Context)

	matched := selector.Match(head, matchContextOf([]string{"FlowMapping", "BlockMappingPair", "Name"}))
	assert.Same(t, head, matched)
}

func TestCompile_QuotedPiece(t *testing.T) {
	t.Parallel()

	target := tag.MustDefine(tag.Named("target"))

	rs, err := selector.Compile([]selector.Entry{
		{Selector: `"Weird/Name!"`, Tags: []*tag.Tag{target}},
	})
	require.NoError(t, err)

	head := rs.Lookup("Weird/Name!")
	require.NotNil(t, head)
	assert.Equal(t, selector.ModeNormal, head.Mode)
}

func TestCompile_MultiplePartsOneEntry(t *testing.T) {
	t.Parallel()

	x := tag.MustDefine(tag.Named("x"))

	rs, err := selector.Compile([]selector.Entry{
		{Selector: "A B", Tags: []*tag.Tag{x}},
	})
	require.NoError(t, err)

	assert.NotNil(t, rs.Lookup("A"))
	assert.NotNil(t, rs.Lookup("B"))
}

func TestCompile_DepthOrdering(t *testing.T) {
	t.Parallel()

	shallow := tag.MustDefine(tag.Named("shallow"))
	deep := tag.MustDefine(tag.Named("deep"))

	rs, err := selector.Compile([]selector.Entry{
		{Selector: "Name", Tags: []*tag.Tag{shallow}},
		{Selector: "BlockMappingPair/Name", Tags: []*tag.Tag{deep}},
	})
	require.NoError(t, err)

	head := rs.Lookup("Name")
	require.NotNil(t, head)
	require.NotNil(t, head.Next)

	assert.Same(t, deep, head.Tags[0])
	assert.Same(t, shallow, head.Next.Tags[0])
	assert.Nil(t, head.Next.Next)
}

func TestCompile_EqualDepthTieBreak(t *testing.T) {
	t.Parallel()

	first := tag.MustDefine(tag.Named("first"))
	second := tag.MustDefine(tag.Named("second"))

	// S6 in spirit: two equal-depth rules for the same target; the later
	// declared one is tried first.
	rs, err := selector.Compile([]selector.Entry{
		{Selector: "A/Name", Tags: []*tag.Tag{first}},
		{Selector: "B/Name", Tags: []*tag.Tag{second}},
	})
	require.NoError(t, err)

	head := rs.Lookup("Name")
	require.NotNil(t, head)
	assert.Same(t, second, head.Tags[0])
	require.NotNil(t, head.Next)
	assert.Same(t, first, head.Next.Tags[0])
}

func TestCompile_AmbiguousRules(t *testing.T) {
	t.Parallel()

	// S6: selectors "A/B": x and "B": y.
	x := tag.MustDefine(tag.Named("x"))
	y := tag.MustDefine(tag.Named("y"))

	rs, err := selector.Compile([]selector.Entry{
		{Selector: "A/B", Tags: []*tag.Tag{x}},
		{Selector: "B", Tags: []*tag.Tag{y}},
	})
	require.NoError(t, err)

	head := rs.Lookup("B")
	require.NotNil(t, head)

	// A B node under an A parent matches the deeper rule.
	matched := selector.Match(head, matchContextOf([]string{"A", "B"}))
	require.NotNil(t, matched)
	assert.Same(t, x, matched.Tags[0])

	// A B node under any other parent falls back to the shallow rule.
	matched = selector.Match(head, matchContextOf([]string{"Z", "B"}))
	require.NotNil(t, matched)
	assert.Same(t, y, matched.Tags[0])
}

func TestCompile_InvalidSelector(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unterminated quote":   `"unterminated`,
		"stray bang":           "A!B",
		"empty piece":          "A//B",
		"dangling mode suffix": "A/.../",
	}

	for name, sel := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := selector.Compile([]selector.Entry{{Selector: sel}})
			require.Error(t, err)
			assert.True(t, errors.Is(err, selector.ErrInvalidSelector))

			var compileErr *selector.CompileError

			assert.True(t, errors.As(err, &compileErr))
		})
	}
}
