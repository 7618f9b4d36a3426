package highlight

import (
	"strings"

	"github.com/deltasrc/taglight/tag"
)

// Highlighter maps a tag sequence to a class string and optionally
// restricts itself to a scope of the tree.
//
// Build one with [New]; compose several with [Active] and [Compose].
type Highlighter struct {
	classes map[int64]string
	scope   func(NodeType) bool
	all     string
}

// Option configures a [Highlighter] at construction time.
type Option func(*Highlighter)

// All sets a class that [Highlighter.Style] puts in front of every result,
// so a node whose rule matched gets it even when none of the rule's tags
// resolve. Omit to emit nothing for such nodes.
func All(class string) Option {
	return func(h *Highlighter) {
		h.all = class
	}
}

// Scope restricts the highlighter to subtrees whose top node satisfies fn.
// Omit to make the highlighter globally eligible.
func Scope(fn func(NodeType) bool) Option {
	return func(h *Highlighter) {
		h.scope = fn
	}
}

// New builds a [Highlighter] from a tag-to-class table. A later pair for
// the same tag overrides an earlier one.
func New(pairs map[*tag.Tag]string, opts ...Option) *Highlighter {
	h := &Highlighter{classes: make(map[int64]string, len(pairs))}

	for t, class := range pairs {
		h.classes[t.ID()] = class
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// AppliesTo reports whether the highlighter is eligible for a subtree
// rooted at top, per its scope predicate.
func (h *Highlighter) AppliesTo(top NodeType) bool {
	return h.scope == nil || h.scope(top)
}

// classFor resolves one input tag against h's table, falling back through
// the tag's specificity chain and stopping at the first match.
func (h *Highlighter) classFor(t *tag.Tag) (string, bool) {
	for _, sub := range t.Set() {
		if c, ok := h.classes[sub.ID()]; ok {
			return c, true
		}
	}

	return "", false
}

// Style maps tags to a class string: h's All class (if set), followed by
// one class per input tag (falling back through each tag's specificity
// chain), joined with spaces.
func (h *Highlighter) Style(tags []*tag.Tag) string {
	var parts []string

	if h.all != "" {
		parts = append(parts, h.all)
	}

	for _, t := range tags {
		if c, ok := h.classFor(t); ok {
			parts = append(parts, c)
		}
	}

	return strings.Join(parts, " ")
}

// Active filters hls to the subset eligible at a subtree rooted at top.
// Call this once per language-top node; the result stays active for every
// descendant until the next top node is entered.
func Active(hls []*Highlighter, top NodeType) []*Highlighter {
	out := make([]*Highlighter, 0, len(hls))

	for _, h := range hls {
		if h.AppliesTo(top) {
			out = append(out, h)
		}
	}

	return out
}

// Compose maps tags through every highlighter in hls and concatenates the
// non-empty results, space-separated, in highlighter order.
func Compose(hls []*Highlighter, tags []*tag.Tag) string {
	var parts []string

	for _, h := range hls {
		if c := h.Style(tags); c != "" {
			parts = append(parts, c)
		}
	}

	return strings.Join(parts, " ")
}
