// Package style provides the tag vocabulary and style tables used to
// render highlighted YAML.
package style

import (
	"strings"
	"unicode"

	"charm.land/lipgloss/v2"

	"github.com/deltasrc/taglight/tag"
)

// Mode represents the color scheme mode of a theme.
type Mode int

// Color scheme modes.
//
//nolint:grouper // Enum.
const (
	Light Mode = iota
	Dark
)

// Tag vocabulary for YAML highlighting. Names follow Pygments token naming
// conventions where applicable; the parent chain (via [tag.Parent])
// encodes the same inheritance a theme can rely on for fallback.
//
//nolint:gochecknoglobals // Registered once at package init, read-only after.
var (
	Text = tag.MustDefine(tag.Named("text"))

	Comment        = tag.MustDefine(tag.Named("comment"), tag.Parent(Text))
	CommentPreproc = tag.MustDefine(tag.Named("commentPreproc"), tag.Parent(Comment))

	Generic         = tag.MustDefine(tag.Named("generic"), tag.Parent(Text))
	GenericDeleted  = tag.MustDefine(tag.Named("genericDeleted"), tag.Parent(Generic))
	GenericError    = tag.MustDefine(tag.Named("genericError"), tag.Parent(Generic))
	GenericInserted = tag.MustDefine(tag.Named("genericInserted"), tag.Parent(Generic))

	GenericErrorInvalid = tag.MustDefine(tag.Named("genericErrorInvalid"), tag.Parent(GenericError))
	GenericErrorUnknown = tag.MustDefine(tag.Named("genericErrorUnknown"), tag.Parent(GenericError))

	Literal        = tag.MustDefine(tag.Named("literal"), tag.Parent(Text))
	LiteralBoolean = tag.MustDefine(tag.Named("literalBoolean"), tag.Parent(Literal))

	LiteralNull         = tag.MustDefine(tag.Named("literalNull"), tag.Parent(Literal))
	LiteralNullImplicit = tag.MustDefine(tag.Named("literalNullImplicit"), tag.Parent(LiteralNull))

	LiteralNumber         = tag.MustDefine(tag.Named("literalNumber"), tag.Parent(Literal))
	LiteralNumberBin      = tag.MustDefine(tag.Named("literalNumberBin"), tag.Parent(LiteralNumber))
	LiteralNumberFloat    = tag.MustDefine(tag.Named("literalNumberFloat"), tag.Parent(LiteralNumber))
	LiteralNumberHex      = tag.MustDefine(tag.Named("literalNumberHex"), tag.Parent(LiteralNumber))
	LiteralNumberInfinity = tag.MustDefine(tag.Named("literalNumberInfinity"), tag.Parent(LiteralNumber))
	LiteralNumberInteger  = tag.MustDefine(tag.Named("literalNumberInteger"), tag.Parent(LiteralNumber))
	LiteralNumberNaN      = tag.MustDefine(tag.Named("literalNumberNaN"), tag.Parent(LiteralNumber))
	LiteralNumberOct      = tag.MustDefine(tag.Named("literalNumberOct"), tag.Parent(LiteralNumber))

	LiteralString       = tag.MustDefine(tag.Named("literalString"), tag.Parent(Literal))
	LiteralStringDouble = tag.MustDefine(tag.Named("literalStringDouble"), tag.Parent(LiteralString))
	LiteralStringSingle = tag.MustDefine(tag.Named("literalStringSingle"), tag.Parent(LiteralString))

	Name           = tag.MustDefine(tag.Named("name"), tag.Parent(Text))
	NameAlias      = tag.MustDefine(tag.Named("nameAlias"), tag.Parent(Name))
	NameAliasMerge = tag.MustDefine(tag.Named("nameAliasMerge"), tag.Parent(NameAlias))
	NameAnchor     = tag.MustDefine(tag.Named("nameAnchor"), tag.Parent(Name))
	NameDecorator  = tag.MustDefine(tag.Named("nameDecorator"), tag.Parent(NameAnchor))
	NameTag        = tag.MustDefine(tag.Named("nameTag"), tag.Parent(Name))

	Punctuation              = tag.MustDefine(tag.Named("punctuation"), tag.Parent(Text))
	PunctuationBlock         = tag.MustDefine(tag.Named("punctuationBlock"), tag.Parent(Punctuation))
	PunctuationBlockFolded   = tag.MustDefine(tag.Named("punctuationBlockFolded"), tag.Parent(PunctuationBlock))
	PunctuationBlockLiteral  = tag.MustDefine(tag.Named("punctuationBlockLiteral"), tag.Parent(PunctuationBlock))
	PunctuationCollectEntry  = tag.MustDefine(tag.Named("punctuationCollectEntry"), tag.Parent(Punctuation))
	PunctuationHeading       = tag.MustDefine(tag.Named("punctuationHeading"), tag.Parent(Punctuation))
	PunctuationMapping       = tag.MustDefine(tag.Named("punctuationMapping"), tag.Parent(Punctuation))
	PunctuationMappingEnd    = tag.MustDefine(tag.Named("punctuationMappingEnd"), tag.Parent(PunctuationMapping))
	PunctuationMappingStart  = tag.MustDefine(tag.Named("punctuationMappingStart"), tag.Parent(PunctuationMapping))
	PunctuationMappingValue  = tag.MustDefine(tag.Named("punctuationMappingValue"), tag.Parent(PunctuationMapping))
	PunctuationSequence      = tag.MustDefine(tag.Named("punctuationSequence"), tag.Parent(Punctuation))
	PunctuationSequenceEnd   = tag.MustDefine(tag.Named("punctuationSequenceEnd"), tag.Parent(PunctuationSequence))
	PunctuationSequenceEntry = tag.MustDefine(tag.Named("punctuationSequenceEntry"), tag.Parent(PunctuationSequence))
	PunctuationSequenceStart = tag.MustDefine(tag.Named("punctuationSequenceStart"), tag.Parent(PunctuationSequence))
)

// UI chrome tags: pager and status-line elements that sit alongside the
// syntax vocabulary above rather than describing a grammar node, but still
// resolve through the same [Styles] table and the same [Tag.Set] fallback
// chain a theme relies on.
//
//nolint:gochecknoglobals // Registered once at package init, read-only after.
var (
	Title        = tag.MustDefine(tag.Named("title"), tag.Parent(Generic))
	TitleAccent  = tag.MustDefine(tag.Named("titleAccent"), tag.Parent(Title))
	TitleSubtle  = tag.MustDefine(tag.Named("titleSubtle"), tag.Parent(Title))
	TitleOK      = tag.MustDefine(tag.Named("titleOK"), tag.Parent(Title))
	TitleWarn    = tag.MustDefine(tag.Named("titleWarn"), tag.Parent(Title))
	TitleError   = tag.MustDefine(tag.Named("titleError"), tag.Parent(Title))

	GenericHeading        = tag.MustDefine(tag.Named("genericHeading"), tag.Parent(Generic))
	GenericHeadingAccent  = tag.MustDefine(tag.Named("genericHeadingAccent"), tag.Parent(GenericHeading))
	GenericHeadingSubtle  = tag.MustDefine(tag.Named("genericHeadingSubtle"), tag.Parent(GenericHeading))
	GenericHeadingOK      = tag.MustDefine(tag.Named("genericHeadingOK"), tag.Parent(GenericHeading))
	GenericHeadingWarn    = tag.MustDefine(tag.Named("genericHeadingWarn"), tag.Parent(GenericHeading))
	GenericHeadingError   = tag.MustDefine(tag.Named("genericHeadingError"), tag.Parent(GenericHeading))

	GenericHighlight    = tag.MustDefine(tag.Named("genericHighlight"), tag.Parent(Generic))
	GenericHighlightDim = tag.MustDefine(tag.Named("genericHighlightDim"), tag.Parent(GenericHighlight))

	TextAccent         = tag.MustDefine(tag.Named("textAccent"), tag.Parent(Text))
	TextAccentSelected = tag.MustDefine(tag.Named("textAccentSelected"), tag.Parent(TextAccent))
	TextAccentDim      = tag.MustDefine(tag.Named("textAccentDim"), tag.Parent(TextAccent))

	TextSubtle         = tag.MustDefine(tag.Named("textSubtle"), tag.Parent(Text))
	TextSubtleSelected = tag.MustDefine(tag.Named("textSubtleSelected"), tag.Parent(TextSubtle))
	TextSubtleDim      = tag.MustDefine(tag.Named("textSubtleDim"), tag.Parent(TextSubtle))

	TextOK    = tag.MustDefine(tag.Named("textOK"), tag.Parent(Text))
	TextWarn  = tag.MustDefine(tag.Named("textWarn"), tag.Parent(Text))
	TextError = tag.MustDefine(tag.Named("textError"), tag.Parent(Text))

	Highlight         = tag.MustDefine(tag.Named("highlight"), tag.Parent(Text))
	HighlightSelected = tag.MustDefine(tag.Named("highlightSelected"), tag.Parent(Highlight))
	HighlightDim      = tag.MustDefine(tag.Named("highlightDim"), tag.Parent(Highlight))

	Search         = tag.MustDefine(tag.Named("search"), tag.Parent(Text))
	SearchSelected = tag.MustDefine(tag.Named("searchSelected"), tag.Parent(Search))
)

// Vocabulary lists every unmodified tag above, grouped by family. Used
// by [NewStyles] to pre-compute a full style table.
//
//nolint:gochecknoglobals // Built once from the vocabulary above.
var Vocabulary = []*tag.Tag{
	Text,
	Comment, CommentPreproc,
	Generic, GenericDeleted, GenericError, GenericErrorInvalid, GenericErrorUnknown, GenericInserted,
	Literal, LiteralBoolean,
	LiteralNull, LiteralNullImplicit,
	LiteralNumber, LiteralNumberBin, LiteralNumberFloat, LiteralNumberHex, LiteralNumberInfinity,
	LiteralNumberInteger, LiteralNumberNaN, LiteralNumberOct,
	LiteralString, LiteralStringDouble, LiteralStringSingle,
	Name, NameAlias, NameAliasMerge, NameAnchor, NameDecorator, NameTag,
	Punctuation, PunctuationBlock, PunctuationBlockFolded, PunctuationBlockLiteral,
	PunctuationCollectEntry, PunctuationHeading,
	PunctuationMapping, PunctuationMappingEnd, PunctuationMappingStart, PunctuationMappingValue,
	PunctuationSequence, PunctuationSequenceEnd, PunctuationSequenceEntry, PunctuationSequenceStart,
	Title, TitleAccent, TitleSubtle, TitleOK, TitleWarn, TitleError,
	GenericHeading, GenericHeadingAccent, GenericHeadingSubtle, GenericHeadingOK, GenericHeadingWarn, GenericHeadingError,
	GenericHighlight, GenericHighlightDim,
	TextAccent, TextAccentSelected, TextAccentDim,
	TextSubtle, TextSubtleSelected, TextSubtleDim,
	TextOK, TextWarn, TextError,
	Highlight, HighlightSelected, HighlightDim,
	Search, SearchSelected,
}

// Modifiers applied to vocabulary tags to mark a node as a definition site,
// a mutable/merge-target occurrence, or structurally invalid.
//
//nolint:gochecknoglobals // Registered once at package init.
var (
	Definition = tag.DefineModifier("definition")
	Mutable    = tag.DefineModifier("mutable")
	Invalid    = tag.DefineModifier("invalid")
)

// Styles maps tags to their resolved [lipgloss.Style].
type Styles map[*tag.Tag]lipgloss.Style

// StylesOption configures a [Styles] map during construction. See [Set]
// for the primary option.
type StylesOption func(map[*tag.Tag]lipgloss.Style)

// Set returns a [StylesOption] that overrides the style for the given tag.
//
//nolint:gocritic // Value semantics preferred for API ergonomics.
func Set(t *tag.Tag, ls lipgloss.Style) StylesOption {
	return func(m map[*tag.Tag]lipgloss.Style) {
		m[t] = ls
	}
}

// NewStyles creates a [Styles] map with pre-computed entries for every tag
// in [Vocabulary]. base is used for [Text] and inherited by any tag with no
// closer override. Use [Set] options to override specific tags.
//
//nolint:gocritic // Value semantics preferred for API ergonomics.
func NewStyles(base lipgloss.Style, opts ...StylesOption) Styles {
	overrides := make(map[*tag.Tag]lipgloss.Style)
	for _, opt := range opts {
		opt(overrides)
	}

	resolved := make(Styles, len(Vocabulary))
	for _, t := range Vocabulary {
		resolved[t] = resolve(t, overrides, base)
	}

	return resolved
}

// resolve walks t's specificity chain looking for the closest override,
// falling back to base.
func resolve(t *tag.Tag, overrides map[*tag.Tag]lipgloss.Style, base lipgloss.Style) lipgloss.Style {
	for _, anc := range t.Set() {
		if ls, ok := overrides[anc]; ok {
			return ls
		}
	}

	return base
}

// With returns a copy of s with opts applied on top of its existing
// entries. s itself is never modified.
func (s Styles) With(opts ...StylesOption) Styles {
	out := make(Styles, len(s))
	for t, ls := range s {
		out[t] = ls
	}

	overrides := make(map[*tag.Tag]lipgloss.Style)
	for _, opt := range opts {
		opt(overrides)
	}

	for t, ls := range overrides {
		out[t] = ls
	}

	return out
}

// Style returns the [lipgloss.Style] for t, falling back through t's
// specificity chain (so a modified tag with no direct entry inherits its
// unmodified base's style, and so on up to [Text]). Returns an empty style
// if nothing in the chain is defined.
func (s Styles) Style(t *tag.Tag) *lipgloss.Style {
	for _, anc := range t.Set() {
		if ls, ok := s[anc]; ok {
			return &ls
		}
	}

	return &lipgloss.Style{}
}

// ClassName renders t as space-separated CSS-style class names: one for
// its unmodified base tag, namespaced "tl-" and kebab-cased, followed by
// one per applied modifier in the same form.
func ClassName(t *tag.Tag) string {
	base := t.Base()
	if base == nil {
		base = t
	}

	classes := make([]string, 0, 1+len(t.Modifiers()))
	classes = append(classes, "tl-"+kebabCase(base.Name()))

	for _, m := range t.Modifiers() {
		classes = append(classes, "tl-"+kebabCase(m.Name()))
	}

	return strings.Join(classes, " ")
}

// kebabCase converts a camelCase identifier (e.g. "literalNumberHex") into
// kebab-case ("literal-number-hex").
func kebabCase(s string) string {
	var b strings.Builder

	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
