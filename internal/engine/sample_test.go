package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleTwoLoadScenario(t *testing.T) {
	loads := []LoadPoint{
		{Position: 2.0, Magnitude: 10.0},
		{Position: 6.0, Magnitude: 10.0},
	}
	const span = 10.0

	r, err := Solve(loads, span)
	require.NoError(t, err)

	d, err := Sample(loads, span, r.RA, 401)
	require.NoError(t, err)
	require.Equal(t, 401, d.Len())

	for i, x := range d.X {
		switch {
		case x < 2.0-1e-9:
			assert.InDelta(t, 10.0, d.Shear[i], 1e-9, "x=%g", x)
		case x > 2.0+1e-9 && x < 6.0-1e-9:
			assert.InDelta(t, 0.0, d.Shear[i], 1e-9, "x=%g", x)
		case x > 6.0+1e-9:
			assert.InDelta(t, -10.0, d.Shear[i], 1e-9, "x=%g", x)
		}
	}

	// moment peaks of 20 under each load, zero at the supports
	assert.InDelta(t, 0.0, d.Moment[0], 1e-9)
	assert.InDelta(t, 0.0, d.Moment[d.Len()-1], 1e-9)
	for i, x := range d.X {
		if x > 2.0-1e-9 && x < 2.0+1e-9 {
			assert.InDelta(t, 20.0, d.Moment[i], 1e-9)
		}
		if x > 6.0-1e-9 && x < 6.0+1e-9 {
			assert.InDelta(t, 20.0, d.Moment[i], 1e-9)
		}
	}
}

func TestSampleEmptyLoadSet(t *testing.T) {
	d, err := Sample(nil, 10.0, 0, 51)
	require.NoError(t, err)
	for i := range d.X {
		assert.Zero(t, d.Shear[i])
		assert.Zero(t, d.Moment[i])
	}
}

func TestSampleMonotonicCoverage(t *testing.T) {
	loads := []LoadPoint{{Position: 3.3, Magnitude: 4}}
	for _, resolution := range []int{2, 3, 101, 400} {
		d, err := Sample(loads, 7.5, 2.0, resolution)
		require.NoError(t, err)
		require.Equal(t, resolution, d.Len())

		assert.Equal(t, 0.0, d.X[0])
		assert.Equal(t, 7.5, d.X[d.Len()-1])
		for i := 1; i < d.Len(); i++ {
			assert.GreaterOrEqual(t, d.X[i], d.X[i-1])
		}
	}
}

func TestSampleIdempotent(t *testing.T) {
	loads := []LoadPoint{
		{Position: 1.1, Magnitude: 3},
		{Position: 5.9, Magnitude: -2},
	}
	a, err := Sample(loads, 8, 1.5, 201)
	require.NoError(t, err)
	b, err := Sample(loads, 8, 1.5, 201)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSampleBoundaryMomentsZero(t *testing.T) {
	tests := []struct {
		name  string
		loads []LoadPoint
		span  float64
	}{
		{"single load", []LoadPoint{{Position: 2.5, Magnitude: 9}}, 10},
		{"several loads", []LoadPoint{
			{Position: 0.5, Magnitude: 1.25},
			{Position: 3.7, Magnitude: 6},
			{Position: 7.2, Magnitude: 2.5},
		}, 8},
		{"upward load", []LoadPoint{{Position: 4, Magnitude: -11}}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Solve(tt.loads, tt.span)
			require.NoError(t, err)
			d, err := Sample(tt.loads, tt.span, r.RA, 101)
			require.NoError(t, err)
			assert.InDelta(t, 0.0, d.Moment[0], 1e-9)
			assert.InDelta(t, 0.0, d.Moment[d.Len()-1], 1e-9)
		})
	}
}

func TestSampleTieBreakAtLoadPosition(t *testing.T) {
	// a load exactly at a sample point counts as already applied, so the
	// sampled value lands on the right side of the jump
	loads := []LoadPoint{{Position: 5, Magnitude: 10}}
	d, err := Sample(loads, 10, 5, 3)
	require.NoError(t, err)

	require.Equal(t, []float64{0, 5, 10}, d.X)
	assert.InDelta(t, 5.0, d.Shear[0], 1e-9)
	assert.InDelta(t, -5.0, d.Shear[1], 1e-9)
	assert.InDelta(t, -5.0, d.Shear[2], 1e-9)
}

func TestSampleInvalidArguments(t *testing.T) {
	_, err := Sample(nil, 0, 0, 10)
	assert.True(t, IsKind(err, KindDomain))

	_, err = Sample(nil, 10, 0, 1)
	assert.True(t, IsKind(err, KindDomain))

	_, err = Sample(nil, 10, 0, 0)
	assert.True(t, IsKind(err, KindDomain))
}

func TestAnalyzePipeline(t *testing.T) {
	loads := []LoadPoint{
		{Position: 2.0, Magnitude: 10.0},
		{Position: 6.0, Magnitude: 10.0},
	}

	d, err := Analyze(loads, 0, 101)
	require.NoError(t, err)
	require.NotNil(t, d.Reactions)

	// derived span: max(1.2*6, 6+1) = 7.2
	assert.InDelta(t, 7.2, d.X[d.Len()-1], 1e-12)
	assert.InDelta(t, TotalLoad(loads), d.Reactions.RA+d.Reactions.RB, 1e-9)
}

func TestAnalyzeRejectsEmptyLoads(t *testing.T) {
	_, err := Analyze(nil, 10, 101)
	assert.True(t, IsKind(err, KindEmptyInput))
}
