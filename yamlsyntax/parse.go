package yamlsyntax

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"

	"github.com/deltasrc/taglight/highlight"
)

// Parse parses data as a YAML document (or stream of documents) and
// returns a [Tree] ready for [highlight.Walk]. A YAML anchor and every
// alias referencing it are wired into the tree as a mount: see
// [builder.resolveAliases].
func Parse(data []byte) (*Tree, error) {
	f, err := parser.ParseBytes(data, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	b := &builder{anchorDefs: make(map[string]*node)}

	docs := make([]*node, 0, len(f.Docs))
	for _, d := range f.Docs {
		docs = append(docs, b.build(d, false))
	}

	b.resolveAliases()

	// A single-document stream collapses to just that document; an empty
	// or multi-document stream gets a synthetic wrapper.
	var root *node

	switch len(docs) {
	case 1:
		root = docs[0]
	default:
		root = wrap("Stream", docs)
	}

	return &Tree{root: root}, nil
}

type aliasPending struct {
	host *node
	name string
}

// builder turns an *ast.File into our own [node] tree, tracking anchor
// definitions and alias sites as it goes so aliases can be wired into
// mounts once the whole document has been walked.
type builder struct {
	anchorDefs map[string]*node
	aliasSites []*aliasPending
}

func (b *builder) build(n ast.Node, isKey bool) *node {
	if n == nil {
		return &node{name: "Null"}
	}

	switch v := n.(type) {
	case *ast.DocumentNode:
		return wrap("Document", []*node{b.build(v.Body, false)})

	case *ast.MappingNode:
		children := make([]*node, 0, len(v.Values))
		for _, mv := range v.Values {
			children = append(children, b.build(mv, false))
		}

		return wrap("Mapping", children)

	case *ast.MappingValueNode:
		key := b.build(v.Key, true)
		val := b.build(v.Value, false)

		return wrap("MappingValue", []*node{key, val})

	case *ast.SequenceNode:
		children := make([]*node, 0, len(v.Values))
		for _, e := range v.Values {
			children = append(children, b.build(e, false))
		}

		return wrap("Sequence", children)

	case *ast.AnchorNode:
		val := b.build(v.Value, false)
		anc := &node{name: "Anchor", from: val.from, to: val.to, children: val.children}

		if name := scalarText(v.Name); name != "" {
			b.anchorDefs[name] = anc
		}

		return anc

	case *ast.AliasNode:
		tok := v.GetToken()
		from := tokenOffset(tok)
		to := from + tokenLen(tok)
		host := &node{name: "Alias", from: from, to: to}

		if name := scalarText(v.Value); name != "" {
			b.aliasSites = append(b.aliasSites, &aliasPending{host: host, name: name})
		}

		return host

	case *ast.TagNode:
		val := b.build(v.Value, false)
		tok := v.GetToken()
		tagFrom := tokenOffset(tok)
		tagLeaf := &node{name: "Tag", from: tagFrom, to: tagFrom + tokenLen(tok)}

		return wrap("Tagged", []*node{tagLeaf, val})

	default:
		return b.buildScalar(n, isKey)
	}
}

func (b *builder) buildScalar(n ast.Node, isKey bool) *node {
	tok := n.GetToken()
	name := scalarName(n, tok)

	if isKey && isPlainScalar(name) {
		name = "MappingKey"
	}

	from := tokenOffset(tok)

	return &node{name: name, from: from, to: from + tokenLen(tok)}
}

// resolveAliases wires every collected alias site to a coordinate-shifted
// copy of its anchor's subtree, mounted as an overlay covering the alias
// host's entire (possibly widened) span. An anchor referenced by at least
// one alias is renamed "AnchorReferenced" so selectors can flag it mutable.
func (b *builder) resolveAliases() {
	for _, a := range b.aliasSites {
		def, ok := b.anchorDefs[a.name]
		if !ok {
			continue
		}

		def.name = "AnchorReferenced"

		length := def.to - def.from
		shift := a.host.from - def.from

		a.host.to = a.host.from + length
		a.host.mount = &mount{
			tree:    &Tree{root: shiftCopy(def, shift)},
			overlay: []highlight.Range{{From: 0, To: length}},
		}
	}
}

func shiftCopy(n *node, shift int) *node {
	cp := &node{name: n.name, from: n.from + shift, to: n.to + shift}

	if len(n.children) > 0 {
		cp.children = make([]*node, len(n.children))
		for i, c := range n.children {
			cp.children[i] = shiftCopy(c, shift)
		}
	}

	return cp
}

func wrap(name string, children []*node) *node {
	n := &node{name: name, children: children}

	for i, c := range children {
		if i == 0 || c.from < n.from {
			n.from = c.from
		}

		if i == 0 || c.to > n.to {
			n.to = c.to
		}
	}

	return n
}

func scalarName(n ast.Node, tok *token.Token) string {
	switch n.(type) {
	case *ast.StringNode:
		switch tok.Type {
		case token.DoubleQuoteType:
			return "StringDouble"
		case token.SingleQuoteType:
			return "StringSingle"
		default:
			return "String"
		}

	case *ast.IntegerNode:
		switch tok.Type {
		case token.BinaryIntegerType:
			return "IntegerBin"
		case token.HexIntegerType:
			return "IntegerHex"
		case token.OctetIntegerType:
			return "IntegerOct"
		default:
			return "Integer"
		}

	case *ast.FloatNode:
		return "Float"
	case *ast.BoolNode:
		return "Bool"
	case *ast.InfinityNode:
		return "Infinity"
	case *ast.NanNode:
		return "NaN"

	case *ast.NullNode:
		if tok != nil && tok.Type == token.ImplicitNullType {
			return "NullImplicit"
		}

		return "Null"

	case *ast.LiteralNode:
		return "Literal"
	case *ast.CommentNode:
		return "Comment"
	case *ast.MergeKeyNode:
		return "MergeKey"
	default:
		return "Scalar"
	}
}

func isPlainScalar(name string) bool {
	switch name {
	case "Mapping", "MappingValue", "Sequence", "Anchor", "AnchorReferenced", "Alias", "Tagged",
		"StringDouble", "StringSingle":
		return false
	default:
		return true
	}
}

func scalarText(n ast.Node) string {
	if n == nil {
		return ""
	}

	tok := n.GetToken()
	if tok == nil {
		return ""
	}

	return tok.Value
}

func tokenOffset(tok *token.Token) int {
	if tok == nil || tok.Position == nil {
		return 0
	}

	return tok.Position.Offset
}

func tokenLen(tok *token.Token) int {
	if tok == nil {
		return 0
	}

	return len(tok.Origin)
}
