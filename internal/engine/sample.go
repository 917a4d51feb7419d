package engine

// TieTolerance decides which side of a jump discontinuity a sample point
// reports: a load whose position is within this distance of the sample
// point counts as already applied. Shear and moment have a true jump at
// each load position, so a sampled value can only represent one side.
const TieTolerance = 1e-12

// Sample evaluates the shear force and bending moment at resolution evenly
// spaced points over [0, span], both endpoints included. At each point x:
//
//	V(x) = RA − Σ P        for loads with position ≤ x
//	M(x) = RA·x − Σ P·(x−a) for loads with position a ≤ x
//
// The function is piecewise exact between load positions, so no refinement
// beyond even spacing is needed. Cost is O(resolution × loads).
func Sample(loads []LoadPoint, span, ra float64, resolution int) (Diagram, error) {
	if span <= 0 {
		return Diagram{}, Errorf(KindDomain, "span length must be positive, got %g", span)
	}
	if resolution < 2 {
		return Diagram{}, Errorf(KindDomain, "resolution must be at least 2, got %d", resolution)
	}

	d := Diagram{
		X:      make([]float64, resolution),
		Shear:  make([]float64, resolution),
		Moment: make([]float64, resolution),
	}

	step := span / float64(resolution-1)
	for i := 0; i < resolution; i++ {
		x := float64(i) * step
		if i == resolution-1 {
			x = span
		}

		v := ra
		m := ra * x
		for _, p := range loads {
			if p.Position <= x+TieTolerance {
				v -= p.Magnitude
				m -= p.Magnitude * (x - p.Position)
			}
		}

		d.X[i] = x
		d.Shear[i] = v
		d.Moment[i] = m
	}

	return d, nil
}

// Analyze runs the full pipeline on a load set: validation, reaction
// solving and diagram sampling. Span may be zero to derive it from the
// loads; an explicit non-positive span fails with a domain error from the
// solver.
func Analyze(loads []LoadPoint, span float64, resolution int) (Diagram, error) {
	if err := Validate(loads); err != nil {
		return Diagram{}, err
	}
	if span == 0 {
		span = SpanFromLoads(loads)
	}
	r, err := Solve(loads, span)
	if err != nil {
		return Diagram{}, err
	}
	d, err := Sample(loads, span, r.RA, resolution)
	if err != nil {
		return Diagram{}, err
	}
	d.Reactions = &r
	return d, nil
}
