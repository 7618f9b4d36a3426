// Package tag implements the interned tag lattice that underlies syntax
// highlighting: a DAG of tags related by parent chains and modifiers.
//
// A [Tag] is a process-unique value created with [Define]. Each tag carries
// a specificity chain ([Tag.Set]) listing itself followed by progressively
// less specific ancestors, used by consumers as a first-match fallback list.
//
// A [Modifier], created with [DefineModifier], derives new tags from
// existing ones. Modifier application is idempotent and commutative:
// applying the same modifier twice is a no-op, and the order in which two
// modifiers are applied never changes the resulting tag's identity.
// Derived tags are interned, so [Modifier.Apply] called twice with the same
// arguments returns the same pointer both times.
//
// Tags and modifiers are meant to be registered once, at program or
// language-package init time, and shared read-only afterward; see the
// concurrency note on [Modifier.Apply].
package tag
