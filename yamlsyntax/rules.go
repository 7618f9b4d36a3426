package yamlsyntax

import (
	"github.com/deltasrc/taglight/selector"
	"github.com/deltasrc/taglight/style"
	"github.com/deltasrc/taglight/tag"
)

// NodeTypeNames lists every node-type name [Cursor.Type] can report,
// matching the names [builder] assigns while walking the AST. Pass this
// to [highlight.BuildRules] alongside the RuleSet from [Rules].
//
//nolint:gochecknoglobals // Immutable catalog.
var NodeTypeNames = []string{
	"Stream", "Document",
	"Mapping", "MappingValue", "MappingKey",
	"Sequence",
	"Anchor", "AnchorReferenced", "Alias",
	"Tagged", "Tag",
	"String", "StringDouble", "StringSingle",
	"Integer", "IntegerBin", "IntegerHex", "IntegerOct",
	"Float", "Bool", "Infinity", "NaN",
	"Null", "NullImplicit",
	"Literal", "Comment", "MergeKey", "Scalar",
}

// entries mirrors the token-type-to-style table a Pygments-style lexer
// would build by hand, expressed as selectors instead of a switch over
// token.Type so context (a mapping key vs. a plain scalar) does the work
// that lookahead used to.
//
//nolint:gochecknoglobals // Compiled once by Rules.
var entries = []selector.Entry{
	{Selector: "StringDouble", Tags: []*tag.Tag{style.LiteralStringDouble}},
	{Selector: "StringSingle", Tags: []*tag.Tag{style.LiteralStringSingle}},
	{Selector: "String", Tags: []*tag.Tag{style.LiteralString}},
	{Selector: "IntegerBin", Tags: []*tag.Tag{style.LiteralNumberBin}},
	{Selector: "IntegerHex", Tags: []*tag.Tag{style.LiteralNumberHex}},
	{Selector: "IntegerOct", Tags: []*tag.Tag{style.LiteralNumberOct}},
	{Selector: "Integer", Tags: []*tag.Tag{style.LiteralNumberInteger}},
	{Selector: "Float", Tags: []*tag.Tag{style.LiteralNumberFloat}},
	{Selector: "Bool", Tags: []*tag.Tag{style.LiteralBoolean}},
	{Selector: "Infinity", Tags: []*tag.Tag{style.LiteralNumberInfinity}},
	{Selector: "NaN", Tags: []*tag.Tag{style.LiteralNumberNaN}},
	{Selector: "NullImplicit", Tags: []*tag.Tag{style.LiteralNullImplicit}},
	{Selector: "Null", Tags: []*tag.Tag{style.LiteralNull}},
	{Selector: "Literal", Tags: []*tag.Tag{style.PunctuationBlockLiteral}},
	{Selector: "Comment", Tags: []*tag.Tag{style.Comment}},
	{Selector: "MergeKey", Tags: []*tag.Tag{style.NameAliasMerge}},
	{Selector: "MappingKey", Tags: []*tag.Tag{style.Definition(style.NameTag)}},
	{Selector: "Anchor", Tags: []*tag.Tag{style.Definition(style.NameAnchor)}},
	{Selector: "AnchorReferenced", Tags: []*tag.Tag{style.Mutable(style.Definition(style.NameAnchor))}},
	{Selector: "Alias", Tags: []*tag.Tag{style.NameAlias}},
	{Selector: "Tag", Tags: []*tag.Tag{style.NameDecorator}},
}

// Rules compiles the grammar's selector entries into a [selector.RuleSet].
func Rules() (*selector.RuleSet, error) {
	return selector.Compile(entries)
}

// Tags lists every tag referenced by [entries], including modified tags
// like AnchorReferenced's [style.Mutable]. Pass this (typically appended
// to [style.Vocabulary]) to [render.Highlighter] so every class the
// grammar's rules can emit has a matching style-table entry.
var Tags = collectTags()

func collectTags() []*tag.Tag {
	tags := make([]*tag.Tag, 0, len(entries))
	for _, e := range entries {
		tags = append(tags, e.Tags...)
	}

	return tags
}
