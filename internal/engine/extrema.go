package engine

import "math"

// Extremum is the largest-magnitude value of a diagram component and the
// position where it occurs.
type Extremum struct {
	Value float64
	At    float64
}

// Extrema returns the maximum-absolute shear and moment of a diagram with
// their locations. Both are zero-valued for an empty diagram.
func Extrema(d Diagram) (shear, moment Extremum) {
	for i, x := range d.X {
		if math.Abs(d.Shear[i]) > math.Abs(shear.Value) || i == 0 {
			shear = Extremum{Value: d.Shear[i], At: x}
		}
		if math.Abs(d.Moment[i]) > math.Abs(moment.Value) || i == 0 {
			moment = Extremum{Value: d.Moment[i], At: x}
		}
	}
	return shear, moment
}
