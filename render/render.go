package render

import (
	"io"
	"slices"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/deltasrc/taglight/highlight"
	"github.com/deltasrc/taglight/internal/colors"
	"github.com/deltasrc/taglight/internal/rangeindex"
	"github.com/deltasrc/taglight/nodeprop"
	"github.com/deltasrc/taglight/selector"
	"github.com/deltasrc/taglight/style"
	"github.com/deltasrc/taglight/tag"
)

// Highlighter builds a [highlight.Highlighter] together with the exact
// class-string lookup table [Printer] needs to resolve an emitted span
// back into a [lipgloss.Style].
//
// tags must list every tag a grammar's Rules can attach to a node,
// [style.Vocabulary] included, so every class the walker can emit has a
// matching entry. A grammar package typically exports its own Tags slice
// for this purpose; callers append it to [style.Vocabulary].
func Highlighter(styles style.Styles, tags []*tag.Tag) (*highlight.Highlighter, map[string]lipgloss.Style) {
	pairs := make(map[*tag.Tag]string, len(tags))
	classStyle := make(map[string]lipgloss.Style, len(tags))

	for _, t := range tags {
		cls := style.ClassName(t)
		pairs[t] = cls
		classStyle[cls] = *styles.Style(t)
	}

	return highlight.New(pairs), classStyle
}

// Printer renders a [highlight.Tree] to styled text: a base style covers
// unstyled text, the class table resolves tagged spans, and an optional
// overlay index blends caller-added range styles on top (errors,
// search matches, a cursor selection), mirroring how a theme's tag style
// and a highlight overlay compose in the core engine itself.
type Printer struct {
	rules      *nodeprop.Prop[*selector.Rule]
	hls        []*highlight.Highlighter
	classStyle map[string]lipgloss.Style
	base       lipgloss.Style
	overlay    *rangeindex.Index[lipgloss.Style]
}

// NewPrinter creates a [Printer] driven by rules and hl (see [Highlighter]
// and [highlight.BuildRules]), falling back to base for any unstyled byte.
//
//nolint:gocritic // Value semantics preferred for API ergonomics.
func NewPrinter(
	rules *nodeprop.Prop[*selector.Rule],
	hl *highlight.Highlighter,
	classStyle map[string]lipgloss.Style,
	base lipgloss.Style,
) *Printer {
	return &Printer{
		rules:      rules,
		hls:        []*highlight.Highlighter{hl},
		classStyle: classStyle,
		base:       base,
	}
}

// AddStyleToRange layers s over whatever style resolves within the
// half-open byte range [from, to), blended in LAB color space rather than
// replacing it. Overlapping ranges blend in insertion order.
//
//nolint:gocritic // Value semantics preferred for API ergonomics.
func (p *Printer) AddStyleToRange(from, to int, s lipgloss.Style) {
	if p.overlay == nil {
		p.overlay = rangeindex.New[lipgloss.Style]()
	}

	p.overlay.Insert(from, to, s)
}

// ClearRanges drops every style added via [Printer.AddStyleToRange].
func (p *Printer) ClearRanges() {
	p.overlay = nil
}

// Print renders tree's [from, to) byte range to w, reading source text
// through text (the core engine never stores source text itself).
func (p *Printer) Print(w io.Writer, tree highlight.Tree, from, to int, text func(from, to int) string) error {
	var (
		sb  strings.Builder
		pos = from
	)

	putText := func(s, classes string) {
		base := p.base
		if ls, ok := p.classStyle[classes]; ok {
			base = ls
		}

		spanFrom := pos
		spanTo := pos + len(s)

		for _, span := range p.styleSpans(base, spanFrom, spanTo) {
			start := span.from - spanFrom
			end := span.to - spanFrom
			sb.WriteString(span.style.Render(s[start:end]))
		}

		pos = spanTo
	}

	putBreak := func() {
		sb.WriteByte('\n')
		pos++
	}

	highlight.WalkText(tree, p.rules, p.hls, from, to, text, putText, putBreak)

	_, err := io.WriteString(w, sb.String())

	return err
}

type styledRange struct {
	style    lipgloss.Style
	from, to int
}

// styleSpans splits [from, to) at every overlay boundary inside it,
// blending base with every overlay range active over each resulting
// sub-span. Returns a single unsplit span when no overlay applies.
func (p *Printer) styleSpans(base lipgloss.Style, from, to int) []styledRange {
	if p.overlay == nil || p.overlay.Len() == 0 {
		return []styledRange{{from: from, to: to, style: base}}
	}

	entries := p.overlay.Overlapping(from, to)
	if len(entries) == 0 {
		return []styledRange{{from: from, to: to, style: base}}
	}

	bounds := []int{from, to}

	for _, e := range entries {
		if e.Start > from && e.Start < to {
			bounds = append(bounds, e.Start)
		}

		if e.End > from && e.End < to {
			bounds = append(bounds, e.End)
		}
	}

	sort.Ints(bounds)

	bounds = slices.Compact(bounds)

	spans := make([]styledRange, 0, len(bounds)-1)

	for i := range len(bounds) - 1 {
		segFrom, segTo := bounds[i], bounds[i+1]

		s := base
		for _, e := range entries {
			if e.Start < segTo && e.End > segFrom {
				s = *colors.BlendStyles(&s, &e.Payload)
			}
		}

		spans = append(spans, styledRange{from: segFrom, to: segTo, style: s})
	}

	return spans
}
