package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	events "github.com/geirtul/event-classification-example/pkg"
)

func TestComputeImageStats_GlobalScalars(t *testing.T) {
	images := [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	}

	stats, err := events.ComputeImageStats(images)
	require.NoError(t, err)

	// One scalar mean, min and max over every pixel of every image,
	// not per-image and not per-pixel.
	assert.Equal(t, 4.5, stats.Mean)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 8.0, stats.Max)
}

func TestNormalizeImages(t *testing.T) {
	images := [][]float64{
		{0, 2},
		{4, 10},
	}

	normalized, stats, err := events.NormalizeImages(images)
	require.NoError(t, err)

	assert.Equal(t, 4.0, stats.Mean)
	assert.Equal(t, 0.0, stats.Min)
	assert.Equal(t, 10.0, stats.Max)

	assert.InDelta(t, -0.4, normalized[0][0], 1e-12)
	assert.InDelta(t, -0.2, normalized[0][1], 1e-12)
	assert.InDelta(t, 0.0, normalized[1][0], 1e-12)
	assert.InDelta(t, 0.6, normalized[1][1], 1e-12)

	// The input is never mutated.
	assert.Equal(t, [][]float64{{0, 2}, {4, 10}}, images)
}

func TestNormalizeImages_Reconstruction(t *testing.T) {
	images := [][]float64{
		{0.1, 2.7, 3.3},
		{4.2, 0.05, 9.6},
	}

	normalized, stats, err := events.NormalizeImages(images)
	require.NoError(t, err)

	restored := events.DenormalizeImages(normalized, stats)
	for i := range images {
		for j := range images[i] {
			assert.InDelta(t, images[i][j], restored[i][j], 1e-12)
		}
	}
}

func TestNormalizeImages_SecondApplicationRecomputes(t *testing.T) {
	images := [][]float64{
		{0, 2},
		{4, 10},
	}

	once, statsOnce, err := events.NormalizeImages(images)
	require.NoError(t, err)
	_, statsTwice, err := events.NormalizeImages(once)
	require.NoError(t, err)

	// A second application computes fresh statistics from the scaled set;
	// one application centers the mean on zero and scales the range to one,
	// so the second pass divides by the already-scaled range.
	assert.NotEqual(t, statsOnce, statsTwice)
	assert.InDelta(t, 0.0, statsTwice.Mean, 1e-12)
	assert.InDelta(t, 1.0, statsTwice.Max-statsTwice.Min, 1e-12)
}

func TestNormalizeImages_DegenerateScale(t *testing.T) {
	images := [][]float64{
		{3, 3, 3},
		{3, 3, 3},
	}

	_, _, err := events.NormalizeImages(images)
	var degenerate *events.ErrDegenerateScale
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, 3.0, degenerate.Value)
}

func TestNormalizeImages_Empty(t *testing.T) {
	_, _, err := events.NormalizeImages(nil)
	var empty *events.ErrEmptyDataset
	require.ErrorAs(t, err, &empty)

	_, err = events.ComputeImageStats([][]float64{{}})
	require.ErrorAs(t, err, &empty)
}
