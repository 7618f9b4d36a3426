package render_test

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltasrc/taglight/highlight"
	"github.com/deltasrc/taglight/render"
	"github.com/deltasrc/taglight/style"
	"github.com/deltasrc/taglight/tag"
	"github.com/deltasrc/taglight/yamlsyntax"
)

func allTags() []*tag.Tag {
	return append(append([]*tag.Tag{}, style.Vocabulary...), yamlsyntax.Tags...)
}

func newPrinter(t *testing.T, base lipgloss.Style, opts ...style.StylesOption) *render.Printer {
	t.Helper()

	rs, err := yamlsyntax.Rules()
	require.NoError(t, err)

	rules := highlight.BuildRules(rs, yamlsyntax.NodeTypeNames)

	styles := style.NewStyles(base, opts...)
	hl, classStyle := render.Highlighter(styles, allTags())

	return render.NewPrinter(rules, hl, classStyle, *styles.Style(style.Text))
}

func textFrom(data []byte) func(from, to int) string {
	return func(from, to int) string {
		return string(data[from:to])
	}
}

func TestHighlighter_ClassTable(t *testing.T) {
	t.Parallel()

	styles := style.NewStyles(lipgloss.NewStyle())
	_, classStyle := render.Highlighter(styles, allTags())

	// Every vocabulary tag resolves to its own class, and a modified
	// grammar tag (AnchorReferenced's [style.Mutable]) resolves to a
	// distinct class carrying the modifier suffix.
	assert.Contains(t, classStyle, style.ClassName(style.LiteralStringDouble))
	assert.Contains(t, classStyle, style.ClassName(style.Mutable(style.Definition(style.NameAnchor))))
	assert.NotEqual(t,
		style.ClassName(style.Definition(style.NameAnchor)),
		style.ClassName(style.Mutable(style.Definition(style.NameAnchor))),
	)
}

func TestPrinter_Print_Basic(t *testing.T) {
	t.Parallel()

	data := []byte("a: 1\n")

	tree, err := yamlsyntax.Parse(data)
	require.NoError(t, err)

	p := newPrinter(t, lipgloss.NewStyle())

	var sb strings.Builder

	err = p.Print(&sb, tree, 0, tree.Length(), textFrom(data))
	require.NoError(t, err)

	// Rendering must preserve every source byte, styling aside: ANSI
	// sequences only ever wrap runs of existing text, never replace them.
	assert.Contains(t, sb.String(), "a")
	assert.Contains(t, sb.String(), "1")
}

func TestPrinter_Print_AnchorAlias(t *testing.T) {
	t.Parallel()

	data := []byte("a: &x 1\nb: *x\n")

	tree, err := yamlsyntax.Parse(data)
	require.NoError(t, err)

	p := newPrinter(t, lipgloss.NewStyle())

	var sb strings.Builder

	err = p.Print(&sb, tree, 0, tree.Length(), textFrom(data))
	require.NoError(t, err)

	rendered := sb.String()
	assert.Contains(t, rendered, "x")
	assert.Contains(t, rendered, "1")
}

func TestPrinter_AddStyleToRange_Blends(t *testing.T) {
	t.Parallel()

	data := []byte("a: 1\n")

	tree, err := yamlsyntax.Parse(data)
	require.NoError(t, err)

	p := newPrinter(t, lipgloss.NewStyle())
	p.AddStyleToRange(0, 1, lipgloss.NewStyle().Bold(true))

	var sb strings.Builder

	err = p.Print(&sb, tree, 0, tree.Length(), textFrom(data))
	require.NoError(t, err)
	assert.Contains(t, sb.String(), "a")

	p.ClearRanges()

	var cleared strings.Builder

	err = p.Print(&cleared, tree, 0, tree.Length(), textFrom(data))
	require.NoError(t, err)
	assert.Contains(t, cleared.String(), "a")
}
