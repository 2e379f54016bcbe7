package seriesclean

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"code.byted.org/microservice/tsclean/series"
	"code.byted.org/microservice/tsclean/testtools"
)

func TestCleanXYZIntersection(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, math.NaN(), 3, 4}
	z := []float64{5, 6, 7, math.NaN()}

	cfg := DefaultConfig()
	cfg.InvalidValues = series.InvalidRemove

	res, err := CleanXYZ(x, y, z, cfg)
	require.NoError(t, err)

	require.Equal(t, []float64{0, 2}, res.X)
	require.Equal(t, []float64{1, 3}, res.Y)
	require.Equal(t, []float64{5, 7}, res.Z)
	require.Equal(t, 2, res.Quality.PointsRemoved)
}

func TestCleanXYZNeverSmoothsX(t *testing.T) {
	n := 60
	x := testtools.GenX(n)
	y := testtools.GenValues(n, &testtools.SinGener{Amp: 1, Freq: 0.5})
	z := testtools.GenValues(n, &testtools.SinGener{Amp: 2, Freq: 0.3})

	cfg := DefaultConfig()
	cfg.Smooth = &series.SmoothOptions{Type: series.SmoothMovingAvg, Window: 9}

	res, err := CleanXYZ(x, y, z, cfg)
	require.NoError(t, err)

	// x passes through untouched, y and z are attenuated
	require.Equal(t, x, res.X)
	require.NotEqual(t, y, res.Y)
	require.NotEqual(t, z, res.Z)
}

func TestCleanXYZBoundsOnPrimaryAxis(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{1, 2, 3}
	z := []float64{10, 99, 30}

	cfg := DefaultConfig()
	cfg.BoundsAxis = "z"
	cfg.Bounds = &series.Bounds{Max: series.Float(50), Mode: series.BoundsFilter}

	res, err := CleanXYZ(x, y, z, cfg)
	require.NoError(t, err)

	// the violating z sample drops the point from all three arrays
	require.Equal(t, []float64{0, 2}, res.X)
	require.Equal(t, []float64{1, 3}, res.Y)
	require.Equal(t, []float64{10, 30}, res.Z)
	require.Equal(t, 1, res.Quality.BoundsViolations)
}

func TestCleanXYZLengthMismatch(t *testing.T) {
	_, err := CleanXYZ([]float64{1}, []float64{1, 2}, []float64{1}, nil)
	require.Error(t, err)
}
