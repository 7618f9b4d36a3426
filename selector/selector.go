package selector

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/deltasrc/taglight/tag"
)

// Entry pairs one selector string with the tags it applies. [Compile]
// takes a slice rather than a map because compile order breaks ties
// between same-depth rules, and Go map iteration order is not stable.
type Entry struct {
	Selector string
	Tags     []*tag.Tag
}

// RuleSet is the attachable output of [Compile]: for each target node-type
// name that appeared in a compiled selector, the head of its [Rule] chain.
type RuleSet struct {
	heads map[string]*Rule
}

// Lookup returns the head of name's rule chain, or nil if no selector
// named it.
func (rs *RuleSet) Lookup(name string) *Rule {
	return rs.heads[name]
}

// Compile parses every entry's selector string and builds one [Rule] chain
// per target node-type name, ordered by context depth descending; within
// equal depth, later entries are tried first. Returns an [*CompileError]
// (matching [ErrInvalidSelector]) on the first malformed selector.
func Compile(entries []Entry) (*RuleSet, error) {
	type built struct {
		name string
		rule *Rule
	}

	var all []built

	for _, e := range entries {
		parts, err := splitParts(e.Selector)
		if err != nil {
			return nil, &CompileError{Part: e.Selector, Reason: err.Error()}
		}

		for _, part := range parts {
			pieces, mode, err := parsePart(part)
			if err != nil {
				return nil, &CompileError{Part: part, Reason: err.Error()}
			}

			name := pieces[len(pieces)-1]
			context := pieces[:len(pieces)-1]

			all = append(all, built{
				name: name,
				rule: &Rule{
					Tags:    e.Tags,
					Mode:    mode,
					Context: context,
				},
			})
		}
	}

	byName := make(map[string][]built)
	for _, b := range all {
		byName[b.name] = append(byName[b.name], b)
	}

	rs := &RuleSet{heads: make(map[string]*Rule, len(byName))}

	for name, bs := range byName {
		// Reverse so that, after a stable sort, ties (equal depth) resolve
		// with the most recently compiled entry first.
		for i, j := 0, len(bs)-1; i < j; i, j = i+1, j-1 {
			bs[i], bs[j] = bs[j], bs[i]
		}

		sort.SliceStable(bs, func(i, j int) bool {
			return bs[i].rule.Depth() > bs[j].rule.Depth()
		})

		for i := 0; i < len(bs)-1; i++ {
			bs[i].rule.Next = bs[i+1].rule
		}

		rs.heads[name] = bs[0].rule
	}

	return rs, nil
}

// splitParts splits a selector string on runs of whitespace, treating a
// JSON-quoted piece as opaque to whitespace splitting.
func splitParts(sel string) ([]string, error) {
	var (
		parts   []string
		sb      strings.Builder
		inQuote bool
	)

	flush := func() {
		if sb.Len() > 0 {
			parts = append(parts, sb.String())
			sb.Reset()
		}
	}

	for i := 0; i < len(sel); i++ {
		c := sel[i]

		switch {
		case c == '"':
			inQuote = !inQuote

			sb.WriteByte(c)
		case inQuote && c == '\\' && i+1 < len(sel):
			sb.WriteByte(c)
			i++
			sb.WriteByte(sel[i])
		case !inQuote && (c == ' ' || c == '\t'):
			flush()
		default:
			sb.WriteByte(c)
		}
	}

	flush()

	if inQuote {
		return nil, errors.New("unterminated quoted piece")
	}

	return parts, nil
}

// parsePart parses one selector part into its target-bearing piece
// sequence and trailing mode, per the grammar:
//
//	part  := piece ("/" piece)* mode?
//	mode  := "!" | "/..."
//	piece := "*" | quoted | [^/!]+
func parsePart(part string) (pieces []string, mode Mode, err error) {
	i := 0
	n := len(part)

	for {
		piece, next, perr := parsePiece(part, i)
		if perr != nil {
			return nil, 0, perr
		}

		pieces = append(pieces, piece)
		i = next

		if i >= n {
			break
		}

		switch {
		case part[i] == '!' && i+1 == n:
			mode = ModeOpaque
			i++

		case strings.HasPrefix(part[i:], "/...") && i+4 == n:
			mode = ModeInherit
			i += 4

		case part[i] == '/':
			i++

			continue

		default:
			return nil, 0, fmt.Errorf("unrecognized character %s", strconv.QuoteRune(rune(part[i])))
		}

		break
	}

	if i != n {
		return nil, 0, errors.New("trailing characters after mode suffix")
	}

	if len(pieces) == 0 {
		return nil, 0, errors.New("empty selector part")
	}

	return pieces, mode, nil
}

// parsePiece parses a single piece starting at s[i] and returns its value
// (the empty string for "*") along with the index following it.
func parsePiece(s string, i int) (piece string, next int, err error) {
	if i >= len(s) {
		return "", i, errors.New("empty piece")
	}

	if s[i] == '"' {
		j := i + 1
		for j < len(s) {
			if s[j] == '\\' && j+1 < len(s) {
				j += 2

				continue
			}

			if s[j] == '"' {
				break
			}

			j++
		}

		if j >= len(s) {
			return "", i, errors.New("unterminated quoted piece")
		}

		raw := s[i : j+1]

		unquoted, uerr := strconv.Unquote(raw)
		if uerr != nil {
			return "", i, fmt.Errorf("invalid quoted piece %s: %w", raw, uerr)
		}

		return unquoted, j + 1, nil
	}

	if s[i] == '*' && (i+1 == len(s) || s[i+1] == '/' || s[i+1] == '!') {
		return "", i + 1, nil
	}

	j := i
	for j < len(s) && s[j] != '/' && s[j] != '!' {
		j++
	}

	if j == i {
		return "", i, errors.New("empty piece")
	}

	return s[i:j], j, nil
}
