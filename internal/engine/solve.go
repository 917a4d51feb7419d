package engine

// Solve computes the support reactions of a simply supported beam under
// the given point loads by static equilibrium. Taking moments about the
// left support:
//
//	RB = Σ(P·a) / L
//	RA = ΣP − RB
//
// The solution is exact for any finite load set, including the empty one.
func Solve(loads []LoadPoint, span float64) (Reactions, error) {
	if span <= 0 {
		return Reactions{}, Errorf(KindDomain, "span length must be positive, got %g", span)
	}

	var total, momentAboutA float64
	for _, p := range loads {
		total += p.Magnitude
		momentAboutA += p.Magnitude * p.Position
	}

	rb := momentAboutA / span
	return Reactions{RA: total - rb, RB: rb}, nil
}
