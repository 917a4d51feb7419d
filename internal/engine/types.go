package engine

// LoadPoint is a single vertical point load on the beam. Position is the
// distance from the left support in the same length unit as the span.
// Magnitude is signed, positive downward.
type LoadPoint struct {
	Position  float64
	Magnitude float64
}

// Reactions holds the two support reactions of a simply supported beam,
// RA at x=0 and RB at x=L.
type Reactions struct {
	RA float64
	RB float64
}

// Series is a raw (x, shear, moment) table as read from an input resource.
// The three slices always have equal length and x is sorted ascending.
type Series struct {
	X      []float64
	Shear  []float64
	Moment []float64
}

// Diagram is the sampled shear force and bending moment along the beam.
// X is monotonically non-decreasing and covers [0, L] inclusive when
// produced by Sample. Reactions is nil when the diagram came from a
// precomputed series and no reactions are known.
type Diagram struct {
	X      []float64
	Shear  []float64
	Moment []float64

	Reactions *Reactions
}

// Len returns the number of sample points.
func (d Diagram) Len() int { return len(d.X) }

const (
	// DefaultSpan is used when the load set is empty and no span was given.
	DefaultSpan = 10.0

	// DefaultResolution is the number of sample points used by the commands
	// when none is requested.
	DefaultResolution = 401
)

// SpanFromLoads derives a span length that puts every load strictly inside
// the supports: max(1.2*maxpos, maxpos+1.0), or DefaultSpan for an empty
// load set.
func SpanFromLoads(loads []LoadPoint) float64 {
	if len(loads) == 0 {
		return DefaultSpan
	}
	maxPos := loads[0].Position
	for _, p := range loads[1:] {
		if p.Position > maxPos {
			maxPos = p.Position
		}
	}
	if s := 1.2 * maxPos; s > maxPos+1.0 {
		return s
	}
	return maxPos + 1.0
}

// TotalLoad sums the load magnitudes.
func TotalLoad(loads []LoadPoint) float64 {
	var sum float64
	for _, p := range loads {
		sum += p.Magnitude
	}
	return sum
}
