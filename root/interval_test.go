// SPDX-License-Identifier: MIT

package root_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroot/root"
)

func TestSearchIntervalForRoots_Sinc(t *testing.T) {
	brs, err := root.SearchIntervalForRoots(sinc, 100, 1, 10)
	require.NoError(t, err)
	require.Len(t, brs, 3)

	for k, br := range brs {
		want := float64(k+1) * math.Pi
		assert.Less(t, br.Lo, want, "bracket %d", k)
		assert.Greater(t, br.Hi, want, "bracket %d", k)
		assert.InDelta(t, 0.09, br.Hi-br.Lo, 1e-12, "subinterval width")
	}
	// Left to right.
	assert.Less(t, brs[0].Hi, brs[1].Lo)
	assert.Less(t, brs[1].Hi, brs[2].Lo)
}

func TestSearchIntervalForRoots_LastPointIsX2(t *testing.T) {
	f := func(x float64) float64 { return x - 9.9 }
	brs, err := root.SearchIntervalForRoots(f, 7, 0, 10)
	require.NoError(t, err)
	require.Len(t, brs, 1)
	assert.Equal(t, 10.0, brs[0].Hi, "last partition point must be x2 exactly")
}

func TestSearchIntervalForRoots_NoSignChange(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	brs, err := root.SearchIntervalForRoots(f, 50, -5, 5)
	require.NoError(t, err)
	require.NotNil(t, brs, "empty, not nil")
	assert.Empty(t, brs)

	// A double root only touches zero and stays invisible.
	g := func(x float64) float64 { return (x - 1) * (x - 1) }
	brs, err = root.SearchIntervalForRoots(g, 10, 0, 3)
	require.NoError(t, err)
	assert.Empty(t, brs)

	// A grid point landing exactly on a root is not a strict sign change.
	h := func(x float64) float64 { return x - 5 }
	brs, err = root.SearchIntervalForRoots(h, 2, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, brs)
}

func TestSearchIntervalForRoots_NaNIsNotASignChange(t *testing.T) {
	// sinc(0) is 0/0; the grid hits it exactly.
	brs, err := root.SearchIntervalForRoots(sinc, 10, -5, 5)
	require.NoError(t, err)
	assert.Equal(t, []root.Bracket[float64]{{Lo: -4, Hi: -3}, {Lo: 3, Hi: 4}}, brs)
}

func TestSearchIntervalForRoots_Errors(t *testing.T) {
	_, err := root.SearchIntervalForRoots(nil, 10, 0, 1)
	assert.ErrorIs(t, err, root.ErrNilFunc)

	_, err = root.SearchIntervalForRoots(sinc, 0, 1, 10)
	assert.ErrorIs(t, err, root.ErrBadSubdivisions)
	_, err = root.SearchIntervalForRoots(sinc, -3, 1, 10)
	assert.ErrorIs(t, err, root.ErrBadSubdivisions)

	_, err = root.SearchIntervalForRoots(sinc, 10, 10, 1)
	assert.ErrorIs(t, err, root.ErrBadInterval)
	_, err = root.SearchIntervalForRoots(sinc, 10, 2, 2)
	assert.ErrorIs(t, err, root.ErrBadInterval)

	assert.ErrorIs(t, err, root.ErrInvalidInput, "every argument error is an ErrInvalidInput")
}

func TestBracketRoots_Expands(t *testing.T) {
	f := func(x float64) float64 { return (x - 1000) * (x + 500) * (x + 500) }

	br, err := root.BracketRoots(f, -2, -1)
	require.NoError(t, err)
	assert.InDelta(t, -2089.2706457600007, br.Lo, 1e-6)
	assert.InDelta(t, 3340.2330332160013, br.Hi, 1e-6)
	assert.Less(t, f(br.Lo)*f(br.Hi), 0.0)

	// Endpoint order does not matter.
	swapped, err := root.BracketRoots(f, -1, -2)
	require.NoError(t, err)
	assert.Equal(t, br, swapped)
}

func TestBracketRoots_AlreadyBracketed(t *testing.T) {
	br, err := root.BracketRoots(dottie, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, root.Bracket[float64]{Lo: 0, Hi: 1}, br)
}

func TestBracketRoots_TraceReportsMovedEndpoint(t *testing.T) {
	var steps []root.Step
	f := func(x float64) float64 { return x - 3 }
	br, err := root.BracketRoots(f, 0, 1, root.WithTrace(func(s root.Step) { steps = append(steps, s) }))
	require.NoError(t, err)
	assert.Equal(t, 0.0, br.Lo)
	assert.InDelta(t, 6.76, br.Hi, 1e-12)

	require.Len(t, steps, 2)
	assert.Equal(t, "bracket", steps[0].Method)
	assert.InDelta(t, 2.6, steps[0].X, 1e-12)
	assert.Equal(t, 2, steps[1].Iteration)
}

func TestBracketRoots_Errors(t *testing.T) {
	_, err := root.BracketRoots(nil, 0, 1)
	assert.ErrorIs(t, err, root.ErrNilFunc)

	_, err = root.BracketRoots(dottie, 3, 3)
	assert.ErrorIs(t, err, root.ErrBadInterval)

	f := func(x float64) float64 { return x - 1e6 }
	_, err = root.BracketRoots(f, -2, -1, root.WithMaxIter(10))
	assert.ErrorIs(t, err, root.ErrTooManyIterations)
	assert.NotErrorIs(t, err, root.ErrInvalidInput)

	// Same function, default cap: enough room.
	br, err := root.BracketRoots(f, -2, -1)
	require.NoError(t, err)
	assert.Less(t, br.Lo, 1e6)
	assert.Greater(t, br.Hi, 1e6)
}
