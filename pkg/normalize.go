package events

import (
	"gonum.org/v1/gonum/floats"
)

// ImageStats are the global scalars a normalization was computed from:
// one mean, one min and one max over every pixel of every image in the set.
type ImageStats struct {
	Mean float64
	Min  float64
	Max  float64
}

// ComputeImageStats scans an image set once and returns its global scalar
// statistics.
func ComputeImageStats(images [][]float64) (ImageStats, error) {
	if len(images) == 0 {
		return ImageStats{}, &ErrEmptyDataset{Operation: "compute image statistics"}
	}

	stats := ImageStats{
		Min: images[0][0],
		Max: images[0][0],
	}
	sum := 0.0
	pixels := 0
	for _, image := range images {
		if len(image) == 0 {
			return ImageStats{}, &ErrEmptyDataset{Operation: "compute image statistics"}
		}
		sum += floats.Sum(image)
		pixels += len(image)
		if min := floats.Min(image); min < stats.Min {
			stats.Min = min
		}
		if max := floats.Max(image); max > stats.Max {
			stats.Max = max
		}
	}
	stats.Mean = sum / float64(pixels)
	return stats, nil
}

// NormalizeImages min-max scales an image set: (x - mean) / (max - min),
// with mean, max and min computed over the whole supplied set. It returns a
// new array and the statistics used; the input is never mutated.
//
// Call it on each partition separately, after splitting. Computing the
// statistics on the full dataset and applying them to a held-out subset
// leaks distributional information across partitions.
func NormalizeImages(images [][]float64) ([][]float64, ImageStats, error) {
	stats, err := ComputeImageStats(images)
	if err != nil {
		return nil, ImageStats{}, err
	}
	scale := stats.Max - stats.Min
	if scale == 0 {
		return nil, ImageStats{}, &ErrDegenerateScale{Value: stats.Max}
	}

	normalized := make([][]float64, len(images))
	for i, image := range images {
		row := make([]float64, len(image))
		for j, value := range image {
			row[j] = (value - stats.Mean) / scale
		}
		normalized[i] = row
	}
	return normalized, stats, nil
}

// DenormalizeImages inverts NormalizeImages given the statistics it
// returned: x*(max - min) + mean.
func DenormalizeImages(images [][]float64, stats ImageStats) [][]float64 {
	scale := stats.Max - stats.Min
	restored := make([][]float64, len(images))
	for i, image := range images {
		row := make([]float64, len(image))
		for j, value := range image {
			row[j] = value*scale + stats.Mean
		}
		restored[i] = row
	}
	return restored
}
