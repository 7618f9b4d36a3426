// Package highlight walks an already-parsed syntax tree and produces
// coalesced, non-overlapping class-string spans.
//
// The core consumes a syntax tree through the [Tree] and [Cursor]
// interfaces; it never parses or stores source text itself. A [Highlighter]
// maps a node's resolved tags to a class string; [Walk] drives the
// recursive descent described by the tree-walker algorithm, handling
// inheritance, opaque nodes, and mounted overlay sub-trees; [WalkText]
// additionally splits emitted spans on line breaks for renderers that
// stream text incrementally.
package highlight
