package tag

import "sync"

// Modifier is identified by a monotonically assigned integer id and carries
// an instance cache used to intern derived tags: for each base tag and each
// sorted modifier sequence, at most one tag exists.
//
// Create a [Modifier] with [DefineModifier].
type Modifier struct {
	name string

	mu sync.Mutex
	// instances caches every interned tag whose sorted modifier sequence's
	// lowest-id modifier is this one. Looking a combination up always goes
	// through its lowest-id modifier, so a combination is cached in exactly
	// one place regardless of which modifier function is used to reach it.
	instances []*Tag

	id int64
}

// DefineModifier creates a new [Modifier] and returns a function that
// applies it to any [Tag]. The name is optional and only used for
// diagnostics.
func DefineModifier(name string) func(*Tag) *Tag {
	m := &Modifier{
		id:   newID(),
		name: name,
	}

	return m.Apply
}

// ID returns the modifier's process-unique, monotonically assigned id.
func (m *Modifier) ID() int64 {
	return m.id
}

// Name returns the modifier's debug label, or "" if none was given.
func (m *Modifier) Name() string {
	return m.name
}

// Apply applies the modifier to t, obeying the lattice invariants:
// idempotence (applying a modifier already present is a no-op returning the
// same tag), commutativity (the order two modifiers are applied in never
// affects the resulting tag's identity), and interning (the same base and
// modifier sequence always yields the same tag).
//
// Apply is total: it never fails. It is not safe to call concurrently with
// [Define] or with another [Apply] against an overlapping modifier set; see
// the package doc for the registration-time concurrency model.
func (m *Modifier) Apply(t *Tag) *Tag {
	if hasModifier(t.modified, m) {
		return t
	}

	base := t.base
	if base == nil {
		base = t
	}

	newMods := sortedUnion(t.modified, m)

	return internTag(base, newMods)
}

// internTag returns the unique tag for (base, mods), creating and
// registering it if this is the first time this combination has been
// requested.
func internTag(base *Tag, mods []*Modifier) *Tag {
	if len(mods) == 0 {
		return base
	}

	owner := mods[0]

	owner.mu.Lock()

	for _, cand := range owner.instances {
		if cand.base == base && sameModifiers(cand.modified, mods) {
			owner.mu.Unlock()

			return cand
		}
	}

	r := &Tag{
		id:       newID(),
		base:     base,
		modified: mods,
	}
	owner.instances = append(owner.instances, r)
	owner.mu.Unlock()

	// computeSet interns r's sub-combinations, some of which share r's
	// owner, so owner.mu must not be held while it runs.
	r.set = computeSet(r, base, mods)

	return r
}

// computeSet builds the specificity chain for a freshly created modified
// tag r = mods(base), per the lattice invariant: every non-empty subset of
// mods, ordered by decreasing subset size, paired with every unmodified
// ancestor of base (ancestor specificity only breaking ties within a fixed
// subset size), followed by the unmodified ancestors themselves, with r
// itself first.
func computeSet(r *Tag, base *Tag, mods []*Modifier) []*Tag {
	configs := subsetsByDescendingSize(mods)

	set := make([]*Tag, 0, len(configs)*len(base.set))
	set = append(set, r)

	for _, cfg := range configs {
		for _, anc := range base.set {
			if anc.IsModified() {
				// base.set is built entirely from unmodified tags (Define never
				// derives from a modified parent), so this never triggers; kept
				// as a defensive guard against a future relaxation of that rule.
				continue
			}

			if anc == base && len(cfg) == len(mods) {
				// This is r itself; already the first element.
				continue
			}

			if len(cfg) == 0 {
				set = append(set, anc)

				continue
			}

			set = append(set, applySorted(cfg, anc))
		}
	}

	return set
}

// applySorted applies modifiers in id order (their canonical order) and
// returns the resulting interned tag.
func applySorted(mods []*Modifier, t *Tag) *Tag {
	for _, m := range mods {
		t = m.Apply(t)
	}

	return t
}

func hasModifier(mods []*Modifier, m *Modifier) bool {
	for _, x := range mods {
		if x == m {
			return true
		}
	}

	return false
}

func sameModifiers(a, b []*Modifier) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// sortedUnion returns mods ∪ {m}, sorted by modifier id ascending.
func sortedUnion(mods []*Modifier, m *Modifier) []*Modifier {
	out := make([]*Modifier, 0, len(mods)+1)
	inserted := false

	for _, x := range mods {
		if !inserted && m.id < x.id {
			out = append(out, m)

			inserted = true
		}

		out = append(out, x)
	}

	if !inserted {
		out = append(out, m)
	}

	return out
}

// subsetsByDescendingSize enumerates every non-empty subset of mods plus the
// empty subset, in the same incremental construction order a power-set
// builder would produce, then stably sorts by descending size so that
// same-size subsets keep their construction order.
func subsetsByDescendingSize(mods []*Modifier) [][]*Modifier {
	sets := [][]*Modifier{{}}

	for _, m := range mods {
		existing := len(sets)
		for j := range existing {
			combo := make([]*Modifier, len(sets[j]), len(sets[j])+1)
			copy(combo, sets[j])
			combo = append(combo, m)
			sets = append(sets, combo)
		}
	}

	// Stable sort by descending length.
	sorted := make([][]*Modifier, len(sets))
	copy(sorted, sets)

	for i := 1; i < len(sorted); i++ {
		cur := sorted[i]
		j := i - 1

		for j >= 0 && len(sorted[j]) < len(cur) {
			sorted[j+1] = sorted[j]
			j--
		}

		sorted[j+1] = cur
	}

	return sorted
}
