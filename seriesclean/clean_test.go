package seriesclean

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"code.byted.org/microservice/tsclean/series"
	"code.byted.org/microservice/tsclean/testtools"
	"code.byted.org/microservice/tsclean/utils"
)

func TestCleanKeepsParallelArraysAligned(t *testing.T) {
	s := &series.Series{
		X:           []float64{0, 1, 2, 3, 4},
		Y:           []float64{10, math.NaN(), 30, math.Inf(1), 50},
		ColorValues: []float64{0.1, 0.2, 0.3, 0.4, 0.5},
		SizeValues:  []float64{1, 2, 3, 4, 5},
		Metadata:    series.PerPointMeta([]interface{}{"a", "b", "c", "d", "e"}),
	}

	cfg := DefaultConfig()
	cfg.InvalidValues = series.InvalidRemove

	res, err := Clean(s, cfg)
	require.NoError(t, err)

	out := res.Series
	require.Equal(t, []float64{0, 2, 4}, out.X)
	require.Equal(t, []float64{10, 30, 50}, out.Y)
	require.Equal(t, []float64{0.1, 0.3, 0.5}, out.ColorValues)
	require.Equal(t, []float64{1, 3, 5}, out.SizeValues)
	require.Equal(t, 3, out.Metadata.Len())
	require.Equal(t, "c", out.Metadata.At(1))

	require.Equal(t, 2, res.Quality.InvalidValues)
	require.Equal(t, 2, res.Quality.PointsRemoved)
}

func TestCleanInPlaceAndClone(t *testing.T) {
	mk := func() *series.Series {
		return &series.Series{
			X: []float64{0, 1, 2},
			Y: []float64{1, math.NaN(), 3},
		}
	}

	// in-place is the default: the caller's series shrinks
	s := mk()
	cfg := DefaultConfig()
	cfg.InvalidValues = series.InvalidRemove
	res, err := Clean(s, cfg)
	require.NoError(t, err)
	require.Same(t, s, res.Series)
	require.Len(t, s.Y, 2)

	// an explicit copy leaves the input untouched
	s = mk()
	inPlace := false
	cfg.InPlace = &inPlace
	res, err = Clean(s, cfg)
	require.NoError(t, err)
	require.NotSame(t, s, res.Series)
	require.Len(t, s.Y, 3)
	require.Len(t, res.Series.Y, 2)
}

func TestCleanBoundsAndOutliers(t *testing.T) {
	n := 40
	s := &series.Series{
		X: testtools.GenX(n),
		Y: testtools.GenValues(n, &testtools.LineGener{A: 0, B: 5}),
	}
	s.Y[20] = 500 // local spike
	s.Y[0] = -1   // below the physical floor

	cfg := DefaultConfig()
	cfg.Bounds = &series.Bounds{Min: series.Float(0), Mode: series.BoundsClamp}
	cfg.LocalOutliers = &series.OutlierOptions{}

	res, err := Clean(s, cfg)
	require.NoError(t, err)

	require.Equal(t, 1, res.Quality.BoundsViolations)
	// the spike and the clamped head both stand out from the flat
	// neighborhood and are rejected
	require.Equal(t, 2, res.Quality.OutliersRemoved)
	require.Equal(t, 2, res.Quality.PointsRemoved)
	require.Equal(t, n-2, res.Series.N())
	for _, v := range res.Series.Y {
		require.Equal(t, 5.0, v)
	}
}

func TestCleanHardCutTruncation(t *testing.T) {
	n := 300
	flat := n / 2
	y := make([]float64, n)
	cg := &testtools.ChirpGener{Amp: 1, Freq: 0.2, Rate: 0.02}
	for i := flat; i < n; i++ {
		y[i] = cg.Gen(float64(i - flat))
	}
	s := &series.Series{X: testtools.GenX(n), Y: y}

	cfg := DefaultConfig()
	cfg.TruncationMode = TruncationHardCut

	res, err := Clean(s, cfg)
	require.NoError(t, err)

	require.True(t, res.Quality.OscillationDetected)
	require.NotNil(t, res.Quality.TruncatedAtX)
	require.Nil(t, res.Quality.StableMaxX)
	require.Equal(t, res.Instability.OnsetIndex, res.Series.N())
	require.Equal(t, float64(res.Series.N()), *res.Quality.TruncatedAtX)
	require.Equal(t, n-res.Series.N(), res.Quality.PointsRemoved)
}

func TestCleanMarkUnstable(t *testing.T) {
	n := 300
	flat := n / 2
	y := make([]float64, n)
	cg := &testtools.ChirpGener{Amp: 1, Freq: 0.2, Rate: 0.02}
	for i := flat; i < n; i++ {
		y[i] = cg.Gen(float64(i - flat))
	}
	s := &series.Series{X: testtools.GenX(n), Y: y}

	res, err := Clean(s, DefaultConfig())
	require.NoError(t, err)

	require.True(t, res.Quality.OscillationDetected)
	require.Nil(t, res.Quality.TruncatedAtX)
	require.NotNil(t, res.Quality.StableMaxX)
	// mark mode keeps every sample
	require.Equal(t, n, res.Series.N())
	require.Equal(t, 0, res.Quality.PointsRemoved)
}

func TestCleanRejectsMismatchedArrays(t *testing.T) {
	_, err := Clean(&series.Series{X: []float64{1}, Y: []float64{1, 2}}, nil)
	require.Error(t, err)

	_, err = Clean(&series.Series{
		X:           []float64{1, 2},
		Y:           []float64{1, 2},
		ColorValues: []float64{1},
	}, nil)
	require.Error(t, err)

	_, err = Clean(nil, nil)
	require.Error(t, err)
}

func TestSetLogger(t *testing.T) {
	SetLogger(utils.NopLogger())
	defer SetLogger(utils.NewLogger("seriesclean"))

	_, err := Clean(&series.Series{X: []float64{0, 1}, Y: []float64{1, 2}}, nil)
	require.NoError(t, err)
}

func TestCleanQualityMoments(t *testing.T) {
	s := &series.Series{
		X: []float64{0, 1, 2, 3},
		Y: []float64{2, 4, 6, 8},
	}
	res, err := Clean(s, nil)
	require.NoError(t, err)
	require.InDelta(t, 5.0, res.Quality.MeanY, 1e-12)
	require.InDelta(t, 20.0/3.0, res.Quality.VarianceY, 1e-12)
}
