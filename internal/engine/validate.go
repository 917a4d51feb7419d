package engine

import "math"

// Validate checks a load set for analysis: it must be non-empty, every
// position must be non-negative and every magnitude must be a number.
// Validation never mutates the data, it only reports the first violation.
func Validate(loads []LoadPoint) error {
	if len(loads) == 0 {
		return Errorf(KindEmptyInput, "no load data found")
	}
	for i, p := range loads {
		if !(p.Position >= 0) {
			return Errorf(KindRange, "load %d: position must be non-negative, got %g", i, p.Position)
		}
		if math.IsNaN(p.Magnitude) {
			return Errorf(KindMissingValue, "load %d: magnitude is missing", i)
		}
	}
	return nil
}

// ValidateSeries checks a precomputed (x, shear, moment) series under the
// same rules: non-empty, x non-negative, no NaN shear or moment values.
func ValidateSeries(s Series) error {
	if len(s.X) == 0 {
		return Errorf(KindEmptyInput, "no diagram data found")
	}
	for i, x := range s.X {
		if !(x >= 0) {
			return Errorf(KindRange, "row %d: x must be non-negative, got %g", i, x)
		}
		if math.IsNaN(s.Shear[i]) {
			return Errorf(KindMissingValue, "row %d: shear value is missing", i)
		}
		if math.IsNaN(s.Moment[i]) {
			return Errorf(KindMissingValue, "row %d: moment value is missing", i)
		}
	}
	return nil
}
