package highlight

import (
	"strings"

	"github.com/deltasrc/taglight/nodeprop"
	"github.com/deltasrc/taglight/selector"
)

// WalkText wraps [Walk] to produce a stream of putText/putBreak calls
// covering every byte offset in [from, to) exactly once, in order. text
// fetches the source slice for a byte range; the core never stores or
// parses source text itself, so callers own it.
//
// Unstyled text between spans is reported with class string "". Every '\n'
// is replaced by exactly one putBreak() call and splits the surrounding
// text; newlines are never included in a string passed to putText.
func WalkText(
	tree Tree,
	rules *nodeprop.Prop[*selector.Rule],
	highlighters []*Highlighter,
	from, to int,
	text func(from, to int) string,
	putText func(text, classes string),
	putBreak func(),
) {
	pos := from

	Walk(tree, rules, highlighters, from, to, func(spanFrom, spanTo int, classes string) {
		if spanFrom > pos {
			emitSplit(text(pos, spanFrom), "", putText, putBreak)
		}

		emitSplit(text(spanFrom, spanTo), classes, putText, putBreak)
		pos = spanTo
	})

	if pos < to {
		emitSplit(text(pos, to), "", putText, putBreak)
	}
}

// emitSplit reports s through putText/putBreak, replacing every '\n' with
// a putBreak call and never passing a newline to putText.
func emitSplit(s, classes string, putText func(text, classes string), putBreak func()) {
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			if s != "" {
				putText(s, classes)
			}

			return
		}

		if i > 0 {
			putText(s[:i], classes)
		}

		putBreak()

		s = s[i+1:]
	}
}
