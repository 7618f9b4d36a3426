package tag

import (
	"strconv"
	"sync/atomic"
)

var nextID atomic.Int64

func newID() int64 {
	return nextID.Add(1)
}

// Tag is a process-unique, interned value identified by a monotonically
// assigned integer id.
//
// Create unmodified tags with [Define]; derive modified tags by calling
// [Modifier.Apply] (via a function returned from [DefineModifier]).
type Tag struct {
	// base is the unmodified root tag for a modified tag; nil for an
	// unmodified tag.
	base *Tag

	name string

	// modified is the ordered sequence of [Modifier]s applied to base,
	// sorted by modifier id ascending. Empty for an unmodified tag.
	modified []*Modifier

	// set is the specificity chain: set[0] == self, followed by
	// progressively less specific ancestors.
	set []*Tag

	id int64
}

// DefineOption configures a [Tag] during [Define].
type DefineOption func(*defineConfig)

type defineConfig struct {
	parent *Tag
	name   string
}

// Named sets the debug name of a tag being defined. Names are optional and
// themes do not rely on them; they exist for diagnostics.
func Named(name string) DefineOption {
	return func(c *defineConfig) {
		c.name = name
	}
}

// Parent sets the parent of a tag being defined. The new tag's [Tag.Set] is
// `[new] ++ parent.Set()`. Omit this option to define a root tag.
func Parent(parent *Tag) DefineOption {
	return func(c *defineConfig) {
		c.parent = parent
	}
}

// Define creates a fresh unmodified [Tag].
//
// Returns an [*DerivationError] (matching [ErrIllegalDerivation]) if
// [Parent] names a modified tag: deriving a new unmodified tag from a
// modified one is never permitted.
func Define(opts ...DefineOption) (*Tag, error) {
	var cfg defineConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.parent != nil && cfg.parent.IsModified() {
		return nil, &DerivationError{Parent: cfg.parent, ChildName: cfg.name}
	}

	t := &Tag{
		id:   newID(),
		name: cfg.name,
	}

	if cfg.parent != nil {
		t.set = make([]*Tag, 0, 1+len(cfg.parent.set))
		t.set = append(t.set, t)
		t.set = append(t.set, cfg.parent.set...)
	} else {
		t.set = []*Tag{t}
	}

	return t, nil
}

// MustDefine is like [Define], but panics on error. Use it for package-level
// tag vocabularies defined at init time, where a derivation error is a
// programming mistake rather than a recoverable condition.
func MustDefine(opts ...DefineOption) *Tag {
	t, err := Define(opts...)
	if err != nil {
		panic(err)
	}

	return t
}

// ID returns the tag's process-unique, monotonically assigned id.
func (t *Tag) ID() int64 {
	return t.id
}

// Name returns the tag's debug label, or "" if none was given.
func (t *Tag) Name() string {
	return t.name
}

// Base returns the unmodified root tag for a modified tag, or nil if the
// receiver is itself unmodified.
func (t *Tag) Base() *Tag {
	return t.base
}

// IsModified reports whether the tag carries any modifiers.
func (t *Tag) IsModified() bool {
	return len(t.modified) > 0
}

// Modifiers returns the tag's applied modifiers, sorted by modifier id
// ascending. The returned slice must not be mutated.
func (t *Tag) Modifiers() []*Modifier {
	return t.modified
}

// Set returns the tag's specificity chain: itself, followed by
// progressively less specific ancestors, ending at the most general
// ancestor reachable. The returned slice must not be mutated.
func (t *Tag) Set() []*Tag {
	return t.set
}

// String returns the tag's debug name, falling back to a synthetic
// "tag#<id>" label if none was given.
func (t *Tag) String() string {
	if t.name != "" {
		return t.name
	}

	return "tag#" + strconv.FormatInt(t.id, 10)
}
