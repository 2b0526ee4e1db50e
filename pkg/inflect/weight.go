package inflect

// Weight is the scalar relevance score used to order search and
// analyze results (spec.md §4.5.1): larger means a stronger match.
// Both search and analyze present their results highest-weight-first;
// see pkg/query's weight-ordering note for why that's a descending
// sort on this raw value despite spec.md's wording in terms of an
// ascending sort.
type Weight float64

// Boost scales w by factor, used for the 0.5 boost factor applied to
// name and kanji weights during analyze (spec.md §4.5, Analyze step 3:
// "name and kanji: a simpler weight with a 0.5 boost factor applied").
func (w Weight) Boost(factor float64) Weight { return w * Weight(factor) }

// Max returns the greater of w and other, matching the repeated
// "raise multiplier to max(x, current)" steps of the weight formula.
func (w Weight) Max(other Weight) Weight {
	if other > w {
		return other
	}
	return w
}

// Less reports whether w is numerically less than other.
func (w Weight) Less(other Weight) bool { return w < other }
