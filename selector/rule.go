package selector

import "github.com/deltasrc/taglight/tag"

// Mode controls how a matched [Rule] affects descendants.
type Mode int

const (
	// ModeNormal applies the rule's tags to the matched node only.
	ModeNormal Mode = iota
	// ModeInherit propagates the matched node's class onto every
	// descendant, in front of any class the descendant produces itself.
	ModeInherit
	// ModeOpaque applies the rule's tags to the matched node and stops
	// descent: no child of the matched node is visited.
	ModeOpaque
)

func (m Mode) String() string {
	switch m {
	case ModeInherit:
		return "Inherit"
	case ModeOpaque:
		return "Opaque"
	default:
		return "Normal"
	}
}

// Rule is the compiled form of one selector fragment: the tags it applies,
// its [Mode], an optional ancestor-name context, and a link to the next
// less-specific rule sharing the same target node-type name.
//
// Context holds ancestor-name patterns in the order they were written in
// the selector (outermost first, target's immediate parent last); an empty
// string matches any single ancestor at that position. A nil Context
// matches every node regardless of ancestry.
type Rule struct {
	Next    *Rule
	Tags    []*tag.Tag
	Context []string
	Mode    Mode
}

// Depth reports how many ancestor levels this rule's context constrains.
// Rule chains are ordered by decreasing Depth.
func (r *Rule) Depth() int {
	return len(r.Context)
}

// Matches reports whether r's context is satisfied, delegating to the
// cursor-provided matchContext (see the external tree/cursor collaborator
// contract): absent context always matches.
func (r *Rule) Matches(matchContext func(path []string) bool) bool {
	if len(r.Context) == 0 {
		return true
	}

	return matchContext(r.Context)
}

// Match walks the chain starting at head and returns the first rule whose
// context is satisfied, or nil if none match. Because chains are ordered
// by decreasing context depth, the first match is also the most specific.
func Match(head *Rule, matchContext func(path []string) bool) *Rule {
	for r := head; r != nil; r = r.Next {
		if r.Matches(matchContext) {
			return r
		}
	}

	return nil
}

// MatchContext implements the reference context-matching semantics for a
// path of pieces [p1, …, pk]: satisfied when ancestorAt(k), …, ancestorAt(1)
// (the cursor's parents, outermost queried first) equal p1, …, pk
// respectively, with an empty piece matching any ancestor. ancestorAt(depth)
// must report ok=false once the root is passed; depth 1 is the immediate
// parent. Cursor implementations can use this directly to satisfy the
// matchContext contract.
func MatchContext(path []string, ancestorAt func(depth int) (name string, ok bool)) bool {
	for i, piece := range path {
		depth := len(path) - i

		name, ok := ancestorAt(depth)
		if !ok {
			return false
		}

		if piece != "" && piece != name {
			return false
		}
	}

	return true
}
