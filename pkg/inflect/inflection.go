package inflect

// Inflection is a fixed-width bitset over Form (31 markers fit easily
// in one uint64 word). Grounded on mod.rs's `Inflection` wrapper
// around `fixed_map::Set<Form>`; Go has no direct analogue of
// fixed_map, so the set is represented directly as a uint64, which is
// both simpler and matches the "serialize as the underlying unsigned
// word" guidance in spec.md §9.
type Inflection uint64

// NewInflection builds an Inflection from a list of forms.
func NewInflection(forms ...Form) Inflection {
	var v Inflection
	for _, f := range forms {
		v |= 1 << uint(f)
	}
	return v
}

// All returns an Inflection with every atomic form set.
func All() Inflection {
	var v Inflection
	for _, f := range AllForms() {
		v |= 1 << uint(f)
	}
	return v
}

// Toggle flips the given form's membership.
func (in *Inflection) Toggle(f Form) {
	*in ^= 1 << uint(f)
}

// IsEmpty reports whether no form is set.
func (in Inflection) IsEmpty() bool { return in == 0 }

// Contains reports whether f is a member.
func (in Inflection) Contains(f Form) bool {
	return in&(1<<uint(f)) != 0
}

// Iter returns every form present, in declared order.
func (in Inflection) Iter() []Form {
	var out []Form
	for _, f := range AllForms() {
		if in.Contains(f) {
			out = append(out, f)
		}
	}
	return out
}

// Union is set-union (the original's `|` operator).
func (in Inflection) Union(other Inflection) Inflection { return in | other }

// SymmetricDifference is set-symmetric-difference (the original's `^`).
func (in Inflection) SymmetricDifference(other Inflection) Inflection { return in ^ other }

// IntersectAssign is set-intersection-assign (the original's `&=`).
func (in *Inflection) IntersectAssign(other Inflection) { *in &= other }
