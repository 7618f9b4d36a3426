package highlight

import (
	"github.com/deltasrc/taglight/nodeprop"
	"github.com/deltasrc/taglight/selector"
)

// Walk drives a recursive descent over tree between [from, to), emitting
// coalesced, non-overlapping, strictly-increasing (start, end, classes)
// spans through emit. emit is never called for an empty range or with an
// empty class string.
//
// rules is the per-node-type-name rule table built by [BuildRules].
// highlighters is the full registered highlighter set; at each language
// top node the active subset is recomputed via [Active].
func Walk(
	tree Tree,
	rules *nodeprop.Prop[*selector.Rule],
	highlighters []*Highlighter,
	from, to int,
	emit func(from, to int, classes string),
) {
	// Hold back each emission so one that continues it with the same class
	// (e.g. two same-class siblings with no gap) is merged into it.
	var (
		pendFrom, pendTo int
		pendCls          string
	)

	merge := func(a, b int, classes string) {
		if classes == pendCls && a == pendTo {
			pendTo = b

			return
		}

		if pendCls != "" {
			emit(pendFrom, pendTo, pendCls)
		}

		pendFrom, pendTo, pendCls = a, b, classes
	}

	w := &walker{
		rules:        rules,
		highlighters: highlighters,
		emit:         merge,
		at:           from,
	}

	cur := tree.Cursor()
	w.visit(cur, from, to, "", highlighters)
	w.finish(to)

	if pendCls != "" {
		emit(pendFrom, pendTo, pendCls)
	}
}

// BuildRules attaches rs's per-name rule chains to a fresh property table,
// satisfying the "attach compiled rules as a node-type property" step: a
// grammar author builds one of these per language and has its node types'
// Name() resolve against it.
func BuildRules(rs *selector.RuleSet, names []string) *nodeprop.Prop[*selector.Rule] {
	prop := nodeprop.New[*selector.Rule]()

	for _, name := range names {
		if head := rs.Lookup(name); head != nil {
			prop.Set(name, head)
		}
	}

	return prop
}

type walker struct {
	rules        *nodeprop.Prop[*selector.Rule]
	highlighters []*Highlighter
	emit         func(from, to int, classes string)

	at    int
	class string
}

// setClass closes the span accumulating since w.at if class differs from
// the one currently accumulating, emitting it (unless empty), then starts
// a new span at pos with class. Calling setClass with the class already
// accumulating is a no-op, which is what coalesces consecutive
// same-class ranges into a single emission.
func (w *walker) setClass(pos int, class string) {
	if class == w.class {
		return
	}

	if w.class != "" && pos > w.at {
		w.emit(w.at, pos, w.class)
	}

	w.at = pos
	w.class = class
}

// finish flushes any span still accumulating up to pos.
func (w *walker) finish(pos int) {
	if w.class != "" && pos > w.at {
		w.emit(w.at, pos, w.class)
	}
}

func joinClasses(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}

// visit handles the node currently under cur, clipped to [from, to).
func (w *walker) visit(cur Cursor, from, to int, inherited string, highlighters []*Highlighter) {
	start, end := cur.From(), cur.To()

	clipFrom, clipTo := max(from, start), min(to, end)
	if clipFrom >= clipTo {
		return
	}

	nt := cur.Type()
	if nt.IsTop() {
		highlighters = Active(w.highlighters, nt)
	}

	var (
		tagCls string
		mode   = selector.ModeNormal
	)

	if head, ok := w.rules.Get(nt.Name()); ok {
		if r := selector.Match(head, cur.MatchContext); r != nil {
			tagCls = Compose(highlighters, r.Tags)
			mode = r.Mode
		}
	}

	cls := inherited
	if tagCls != "" {
		cls = joinClasses(inherited, tagCls)
	}

	nextInherited := inherited
	if mode == selector.ModeInherit {
		nextInherited = cls
	}

	w.setClass(clipFrom, cls)

	if mode == selector.ModeOpaque {
		return
	}

	if mount, ok := cur.Mount(); ok {
		if len(mount.Overlay) == 0 {
			w.descendChildren(cur, from, to, "", highlighters, cls)
		} else {
			w.visitMount(cur, mount, from, to, start, end, nextInherited, cls, highlighters)
		}

		return
	}

	w.descendChildren(cur, from, to, nextInherited, highlighters, cls)
}

// descendChildren visits every child of cur overlapping [from, to), then
// restores cur to its position before the call.
func (w *walker) descendChildren(
	cur Cursor,
	from, to int,
	inherited string,
	highlighters []*Highlighter,
	cls string,
) {
	if !cur.FirstChild() {
		return
	}

	for {
		childFrom, childTo := cur.From(), cur.To()
		if childFrom < to && childTo > from {
			w.visit(cur, from, to, inherited, highlighters)
			w.setClass(min(to, childTo), cls)
		}

		if !cur.NextSibling() {
			break
		}
	}

	cur.Parent()
}

// visitMount implements the mounted-overlay traversal: the inner sub-tree
// is highlighted over each overlay range (rebased by the host's start,
// with its own scope-filtered highlighters and an empty inheritedClass),
// while the host's own children are highlighted over the gaps between
// overlay ranges.
func (w *walker) visitMount(
	cur Cursor,
	mount Mount,
	from, to, start, end int,
	inherited string,
	cls string,
	highlighters []*Highlighter,
) {
	pos := start

	for i := 0; ; i++ {
		real := i < len(mount.Overlay)

		var next Range
		if real {
			r := mount.Overlay[i]
			next = Range{From: r.From + start, To: r.To + start}
		} else {
			next = Range{From: end, To: end}
		}

		gapFrom, gapTo := max(from, pos), min(to, next.From)
		if gapFrom < gapTo {
			w.descendChildren(cur, gapFrom, gapTo, inherited, highlighters, cls)
		}

		if real && next.From <= to {
			innerFrom, innerTo := max(from, next.From), min(to, next.To)
			if innerFrom < innerTo {
				innerCur := mount.Tree.Cursor()
				innerHL := Active(w.highlighters, innerCur.Type())
				w.visit(innerCur, innerFrom, innerTo, "", innerHL)
				w.setClass(innerTo, cls)
			}
		}

		pos = next.To

		if !real {
			break
		}
	}
}
