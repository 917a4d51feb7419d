package engine

// FromSeries wraps an already-computed (x, shear, moment) series as a
// Diagram without touching it: no re-sorting, no re-sampling and no
// reaction synthesis. Reactions stays nil so renderers know the values
// were never derived.
func FromSeries(s Series) Diagram {
	return Diagram{
		X:      s.X,
		Shear:  s.Shear,
		Moment: s.Moment,
	}
}
