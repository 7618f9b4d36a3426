package tag_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltasrc/taglight/tag"
)

func TestDefine_RootSet(t *testing.T) {
	t.Parallel()

	root := tag.MustDefine(tag.Named("root"))

	require.Len(t, root.Set(), 1)
	assert.Same(t, root, root.Set()[0])
}

func TestDefine_ParentChain(t *testing.T) {
	t.Parallel()

	parent := tag.MustDefine(tag.Named("parent"))
	child := tag.MustDefine(tag.Named("child"), tag.Parent(parent))

	require.Len(t, child.Set(), 2)
	assert.Same(t, child, child.Set()[0])
	assert.Same(t, parent, child.Set()[1])
}

func TestDefine_RejectsModifiedParent(t *testing.T) {
	t.Parallel()

	emphasis := tag.DefineModifier("emphasis")
	base := tag.MustDefine(tag.Named("base"))
	modified := emphasis(base)

	_, err := tag.Define(tag.Named("child"), tag.Parent(modified))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tag.ErrIllegalDerivation))

	var derivErr *tag.DerivationError

	require.True(t, errors.As(err, &derivErr))
	assert.Same(t, modified, derivErr.Parent)
	assert.Equal(t, "child", derivErr.ChildName)
}

func TestModifier_Idempotent(t *testing.T) {
	t.Parallel()

	mutable := tag.DefineModifier("mutable")
	base := tag.MustDefine(tag.Named("base"))

	once := mutable(base)
	twice := mutable(once)

	assert.Same(t, once, twice)
}

func TestModifier_Commutative(t *testing.T) {
	t.Parallel()

	mutable := tag.DefineModifier("mutable")
	invalid := tag.DefineModifier("invalid")
	base := tag.MustDefine(tag.Named("base"))

	mutFirst := invalid(mutable(base))
	invFirst := mutable(invalid(base))

	assert.Same(t, mutFirst, invFirst)
}

func TestModifier_Interning(t *testing.T) {
	t.Parallel()

	mutable := tag.DefineModifier("mutable")
	base := tag.MustDefine(tag.Named("base"))

	a := mutable(base)
	b := mutable(base)

	assert.Same(t, a, b)
}

func TestModifier_DistinctBasesDistinctResults(t *testing.T) {
	t.Parallel()

	mutable := tag.DefineModifier("mutable")
	base1 := tag.MustDefine(tag.Named("base1"))
	base2 := tag.MustDefine(tag.Named("base2"))

	assert.NotSame(t, mutable(base1), mutable(base2))
}

func TestModifier_SelfFirstInSet(t *testing.T) {
	t.Parallel()

	mutable := tag.DefineModifier("mutable")
	base := tag.MustDefine(tag.Named("base"))
	derived := mutable(base)

	require.NotEmpty(t, derived.Set())
	assert.Same(t, derived, derived.Set()[0])
}

func TestModifier_SetIncludesUnmodifiedAncestors(t *testing.T) {
	t.Parallel()

	mutable := tag.DefineModifier("mutable")
	parent := tag.MustDefine(tag.Named("parent"))
	child := tag.MustDefine(tag.Named("child"), tag.Parent(parent))
	derived := mutable(child)

	set := derived.Set()

	assert.Contains(t, set, parent)
	assert.Contains(t, set, child)
	assert.Contains(t, set, derived)
}

func TestModifier_SetOrdersMostSpecificFirst(t *testing.T) {
	t.Parallel()

	bold := tag.DefineModifier("bold")
	italic := tag.DefineModifier("italic")
	base := tag.MustDefine(tag.Named("base"))

	both := italic(bold(base))

	set := both.Set()
	require.NotEmpty(t, set)
	assert.Same(t, both, set[0])

	// The fully-modified combination must appear before any single-modifier
	// or unmodified fallback for the same ancestor.
	boldOnly := bold(base)
	italicOnly := italic(base)

	var idxBoth, idxBoldOnly, idxItalicOnly, idxBase int

	for i, s := range set {
		switch s {
		case both:
			idxBoth = i
		case boldOnly:
			idxBoldOnly = i
		case italicOnly:
			idxItalicOnly = i
		case base:
			idxBase = i
		}
	}

	assert.Less(t, idxBoth, idxBoldOnly)
	assert.Less(t, idxBoth, idxItalicOnly)
	assert.Less(t, idxBoldOnly, idxBase)
	assert.Less(t, idxItalicOnly, idxBase)
}

func TestModifier_SetOrdersSubsetSizeOverAncestorDepth(t *testing.T) {
	t.Parallel()

	mutable := tag.DefineModifier("mutable")
	definition := tag.DefineModifier("definition")

	grandparent := tag.MustDefine(tag.Named("grandparent"))
	parent := tag.MustDefine(tag.Named("parent"), tag.Parent(grandparent))
	child := tag.MustDefine(tag.Named("child"), tag.Parent(parent))

	derived := mutable(definition(child))

	set := derived.Set()

	index := func(want *tag.Tag) int {
		for i, s := range set {
			if s == want {
				return i
			}
		}

		require.Fail(t, "tag not found in set")

		return -1
	}

	// Both modifiers preserved on a more general ancestor must outrank a
	// single modifier on a more specific one: the fully-modified variants on
	// parent and grandparent come before any single-modifier variant on
	// child, per the descending-subset-size-first ordering.
	idxMutableDefinitionParent := index(mutable(definition(parent)))
	idxMutableDefinitionGrandparent := index(mutable(definition(grandparent)))
	idxDefinitionChild := index(definition(child))
	idxMutableChild := index(mutable(child))

	assert.Less(t, idxMutableDefinitionParent, idxDefinitionChild)
	assert.Less(t, idxMutableDefinitionGrandparent, idxDefinitionChild)
	assert.Less(t, idxMutableDefinitionParent, idxMutableChild)
	assert.Less(t, idxMutableDefinitionGrandparent, idxMutableChild)
}

func TestTag_ModifiersReportsAppliedModifier(t *testing.T) {
	t.Parallel()

	m := tag.DefineModifier("m")
	base := tag.MustDefine(tag.Named("base"))

	derived := m(base)

	require.Len(t, derived.Modifiers(), 1)
	assert.Equal(t, "m", derived.Modifiers()[0].Name())
}

func TestTag_String(t *testing.T) {
	t.Parallel()

	named := tag.MustDefine(tag.Named("named"))
	assert.Equal(t, "named", named.String())

	unnamed := tag.MustDefine()
	assert.NotEmpty(t, unnamed.String())
}
