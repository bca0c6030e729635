package ftracker_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bzimmer/ftracker"
)

func TestReadPackage(t *testing.T) {
	tests := []struct {
		code     string
		data     []float64
		name     string
		calories float64
	}{
		{code: "SWM", data: []float64{720, 1, 80, 25, 40}, name: "Swimming", calories: 336.0},
		{code: "RUN", data: []float64{15000, 1, 75}, name: "Running", calories: 699.75},
		{code: "WLK", data: []float64{9000, 1, 75, 180}, name: "SportsWalking", calories: 157.5},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.code, func(t *testing.T) {
			training, err := ftracker.ReadPackage(tt.code, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.name, training.Name())
			assert.InDelta(t, tt.calories, training.SpentCalories(), delta)
		})
	}
}

func TestReadPackageVariants(t *testing.T) {
	a := assert.New(t)

	training, err := ftracker.ReadPackage("WLK", []float64{9000, 1, 75, 180})
	require.NoError(t, err)
	w, ok := training.(ftracker.SportsWalking)
	a.True(ok)
	a.Equal(9000, w.Action)
	a.InDelta(180.0, w.Height, delta)

	training, err = ftracker.ReadPackage("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)
	s, ok := training.(ftracker.Swimming)
	a.True(ok)
	a.Equal(40, s.CountPool)
	a.InDelta(25.0, s.LengthPool, delta)
}

func TestReadPackageErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		data []float64
	}{
		{name: "unknown code", code: "XYZ", data: []float64{15000, 1, 75}},
		{name: "lowercase code", code: "run", data: []float64{15000, 1, 75}},
		{name: "empty code", code: "", data: []float64{15000, 1, 75}},
		{name: "too few values", code: "RUN", data: []float64{15000, 1}},
		{name: "too many values", code: "RUN", data: []float64{15000, 1, 75, 180}},
		{name: "no values", code: "SWM"},
		{name: "fractional action", code: "RUN", data: []float64{15000.5, 1, 75}},
		{name: "fractional count", code: "SWM", data: []float64{720, 1, 80, 25, 40.5}},
		{name: "zero duration", code: "WLK", data: []float64{9000, 0, 75, 180}},
		{name: "zero height", code: "WLK", data: []float64{9000, 1, 75, 0}},
		{name: "not a number", code: "RUN", data: []float64{15000, math.NaN(), 75}},
		{name: "infinite", code: "RUN", data: []float64{15000, 1, math.Inf(1)}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			training, err := ftracker.ReadPackage(tt.code, tt.data)
			assert.Nil(t, training)
			assert.ErrorIs(t, err, ftracker.ErrInputData)
		})
	}
}
