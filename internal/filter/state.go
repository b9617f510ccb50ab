package filter

import (
	"slices"

	"compete/internal/competition"
)

// The helpers below never modify the receiver. Each returns a new State whose
// slices are fresh copies, so a State handed to a renderer stays valid after
// the owner replaces it.

// WithSearch replaces the free-text search.
func (s State) WithSearch(q string) State {
	out := s.clone()
	out.Search = q
	return out
}

// ToggleType adds the type id when absent and removes it when present.
func (s State) ToggleType(id string) State {
	out := s.clone()
	out.Types = toggle(out.Types, id)
	return out
}

// ToggleStatus adds or removes a status from the selection.
func (s State) ToggleStatus(st competition.Status) State {
	out := s.clone()
	out.Status = toggle(out.Status, st)
	return out
}

// ToggleVerification adds or removes a verification method.
func (s State) ToggleVerification(v competition.VerificationMethod) State {
	out := s.clone()
	out.Verification = toggle(out.Verification, v)
	return out
}

// WithPrizeMax moves the upper prize bound, clamped to [Min, Ceiling()].
func (s State) WithPrizeMax(hi float64) State {
	out := s.clone()
	switch {
	case hi < out.PrizeRange.Min:
		hi = out.PrizeRange.Min
	case hi > out.Ceiling():
		hi = out.Ceiling()
	}
	out.PrizeRange.Max = hi
	return out
}

// WithPrizeCeiling sets the top of the prize control and opens the upper
// bound to it. A non-positive top restores DefaultPrizeMax.
func (s State) WithPrizeCeiling(top float64) State {
	out := s.clone()
	if top <= 0 {
		top = DefaultPrizeMax
	}
	out.PrizeCeiling = top
	out.PrizeRange.Max = top
	if out.PrizeRange.Min > top {
		out.PrizeRange.Min = top
	}
	return out
}

// WithPrizeRange replaces both prize bounds. Bounds are swapped if given in
// the wrong order.
func (s State) WithPrizeRange(lo, hi float64) State {
	out := s.clone()
	if lo > hi {
		lo, hi = hi, lo
	}
	out.PrizeRange = Range{Min: lo, Max: hi}
	return out
}

// WithSortBy replaces the sort key.
func (s State) WithSortBy(k SortKey) State {
	out := s.clone()
	out.SortBy = k
	return out
}

// NextSort cycles to the following sort key in sidebar order.
func (s State) NextSort() State {
	keys := SortKeys()
	i := slices.Index(keys, s.SortBy)
	return s.WithSortBy(keys[(i+1)%len(keys)])
}

// Reset clears every predicate but keeps the current sort key.
func (s State) Reset() State {
	out := DefaultState().WithPrizeCeiling(s.Ceiling())
	out.SortBy = s.SortBy
	return out
}

// HasType reports whether the type id is selected.
func (s State) HasType(id string) bool { return slices.Contains(s.Types, id) }

// HasStatus reports whether the status is selected.
func (s State) HasStatus(st competition.Status) bool { return slices.Contains(s.Status, st) }

// HasVerification reports whether the method is selected.
func (s State) HasVerification(v competition.VerificationMethod) bool {
	return slices.Contains(s.Verification, v)
}

func (s State) clone() State {
	out := s
	out.Types = slices.Clone(s.Types)
	out.Status = slices.Clone(s.Status)
	out.Verification = slices.Clone(s.Verification)
	return out
}

func toggle[T comparable](set []T, v T) []T {
	if i := slices.Index(set, v); i >= 0 {
		return slices.Delete(set, i, i+1)
	}
	return append(set, v)
}
