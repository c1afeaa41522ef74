package events

import (
	"fmt"
	"io"
)

// Dataset holds the four positionally aligned containers produced from a
// stream of events. Index i refers to the same event in every container.
type Dataset struct {
	// Images is N x 256, each row in the on-disk flattened order.
	Images [][]float64
	// Energies is N x 2: (Energy1, Energy2).
	Energies [][2]float64
	// Positions is N x 4: (Xpos1, Ypos1, Xpos2, Ypos2).
	Positions [][4]float64
	// Labels is N: 0 for single events, 1 for double events.
	Labels []int32
	// Lines maps each index back to its source line number.
	Lines []int
}

func NewDataset() *Dataset {
	return &Dataset{}
}

func (d *Dataset) Len() int {
	return len(d.Labels)
}

func (d *Dataset) Append(e EventRecord) {
	d.Images = append(d.Images, e.Image)
	d.Energies = append(d.Energies, [2]float64{e.Energy1, e.Energy2})
	d.Positions = append(d.Positions, [4]float64{e.X1, e.Y1, e.X2, e.Y2})
	d.Labels = append(d.Labels, e.Label)
	d.Lines = append(d.Lines, e.Line)
}

// Record rebuilds the event at index i from the aligned containers.
func (d *Dataset) Record(i int) EventRecord {
	return EventRecord{
		Image:   d.Images[i],
		Energy1: d.Energies[i][0],
		Energy2: d.Energies[i][1],
		X1:      d.Positions[i][0],
		Y1:      d.Positions[i][1],
		X2:      d.Positions[i][2],
		Y2:      d.Positions[i][3],
		Label:   d.Labels[i],
		Line:    d.Lines[i],
	}
}

// Select builds a new Dataset holding the given indices in the given order.
// The underlying image rows are shared, not copied; records are immutable
// after ingestion.
func (d *Dataset) Select(indices []int) (*Dataset, error) {
	selected := &Dataset{
		Images:    make([][]float64, len(indices)),
		Energies:  make([][2]float64, len(indices)),
		Positions: make([][4]float64, len(indices)),
		Labels:    make([]int32, len(indices)),
		Lines:     make([]int, len(indices)),
	}
	for out, i := range indices {
		if i < 0 || i >= d.Len() {
			return nil, fmt.Errorf("index %d out of range for dataset of %d records", i, d.Len())
		}
		selected.Images[out] = d.Images[i]
		selected.Energies[out] = d.Energies[i]
		selected.Positions[out] = d.Positions[i]
		selected.Labels[out] = d.Labels[i]
		selected.Lines[out] = d.Lines[i]
	}
	return selected, nil
}

// Counts returns the number of single and double events.
func (d *Dataset) Counts() (singles int, doubles int) {
	for _, label := range d.Labels {
		if label == DoubleEvent {
			doubles++
		} else {
			singles++
		}
	}
	return singles, doubles
}

// DoubleEventFeatures derives the separation distance and relative energy
// of every double event, in dataset order. Single events are excluded by
// the label filter, so the relative-energy denominator is never zero.
func (d *Dataset) DoubleEventFeatures() (separations []float64, relEnergies []float64, err error) {
	for i, label := range d.Labels {
		if label != DoubleEvent {
			continue
		}
		record := d.Record(i)
		rel, err := record.RelativeEnergy()
		if err != nil {
			return nil, nil, err
		}
		separations = append(separations, record.SeparationDistance())
		relEnergies = append(relEnergies, rel)
	}
	return separations, relEnergies, nil
}

// ImageGrid reshapes a flat image into its 16x16 physical grid. The on-disk
// flattening order is transposed with respect to the row-major grid, so the
// two spatial axes are swapped here; without the swap, plotted images do not
// line up with their (x, y) positions.
func ImageGrid(flat []float64) ([][]float64, error) {
	if len(flat) != ImagePixels {
		return nil, fmt.Errorf("image has %d pixels, expected %d", len(flat), ImagePixels)
	}
	grid := make([][]float64, ImageSize)
	for row := 0; row < ImageSize; row++ {
		grid[row] = make([]float64, ImageSize)
		for col := 0; col < ImageSize; col++ {
			grid[row][col] = flat[col*ImageSize+row]
		}
	}
	return grid, nil
}

// AssembleDataset drains an event stream into aligned containers, in source
// order. Malformed-line handling follows the reader's policy.
func AssembleDataset(r *EventReader) (*Dataset, error) {
	dataset := NewDataset()
	for {
		record, err := r.NextEvent()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		dataset.Append(record)
	}
	return dataset, nil
}
