package events

import (
	"errors"
	"fmt"
	"sort"

	hdf5 "github.com/jmbenlloch/go-hdf5"
	"golang.org/x/exp/maps"
)

// Writer persists partitioned datasets into one HDF5 file, one group per
// partition with "images", "energies", "positions" and "labels" members
// plus an "events" bookkeeping table. Images are written as 16x16 physical
// grids (transpose already applied).
type Writer struct {
	File     *hdf5.File
	Filename string
	groups   []*hdf5.Group
	datasets []*hdf5.Dataset
}

func NewWriter(filename string) (*Writer, error) {
	file, err := openFile(filename)
	if err != nil {
		return nil, err
	}
	if configuration.Verbosity > 0 {
		logger.Info(fmt.Sprintf("Creating file %s", filename), "writer")
	}
	return &Writer{File: file, Filename: filename}, nil
}

// WriteAll writes every partition in deterministic (sorted) group order.
func (w *Writer) WriteAll(partitions map[string]*Dataset) error {
	names := maps.Keys(partitions)
	sort.Strings(names)
	for _, name := range names {
		if err := w.WritePartition(name, partitions[name]); err != nil {
			return err
		}
	}
	return nil
}

// WritePartition creates one group and appends the partition's records to
// its datasets, event by event, in partition order.
func (w *Writer) WritePartition(name string, dataset *Dataset) error {
	group, err := createGroup(w.File, name)
	if err != nil {
		return err
	}
	w.groups = append(w.groups, group)

	images, err := createImageArray(group, "images")
	if err != nil {
		return err
	}
	energies, err := create2dArray(group, "energies", 2)
	if err != nil {
		return err
	}
	positions, err := create2dArray(group, "positions", 4)
	if err != nil {
		return err
	}
	labels, err := createLabelArray(group, "labels")
	if err != nil {
		return err
	}
	eventTable, err := createTable(group, "events", EventInfoHDF5{})
	if err != nil {
		return err
	}
	w.datasets = append(w.datasets, images, energies, positions, labels, eventTable)

	for i := 0; i < dataset.Len(); i++ {
		grid, err := ImageGrid(dataset.Images[i])
		if err != nil {
			return err
		}
		flat := make([]float64, 0, ImagePixels)
		for _, row := range grid {
			flat = append(flat, row...)
		}
		if err := write3dArray(images, &flat, i, ImageSize, ImageSize); err != nil {
			return err
		}

		energyRow := dataset.Energies[i][:]
		if err := write2dArray(energies, &energyRow, i, 2); err != nil {
			return err
		}
		positionRow := dataset.Positions[i][:]
		if err := write2dArray(positions, &positionRow, i, 4); err != nil {
			return err
		}
		labelRow := []int32{dataset.Labels[i]}
		if err := write1dArray(labels, &labelRow, i); err != nil {
			return err
		}
		info := EventInfoHDF5{
			evt_number: int32(i),
			src_line:   int32(dataset.Lines[i]),
		}
		if err := writeEntryToTable(eventTable, info, i); err != nil {
			return err
		}
	}

	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Wrote partition %q with %d events", name, dataset.Len())
		logger.Info(message, "writer")
	}
	return nil
}

func (w *Writer) Close() error {
	if configuration.Verbosity > 0 {
		logger.Info(fmt.Sprintf("Closing file %s", w.Filename), "writer")
	}
	var errs []error

	for _, dataset := range w.datasets {
		if err := dataset.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing dataset: %w", err))
		}
	}
	for _, group := range w.groups {
		if err := group.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing group: %w", err))
		}
	}
	if err := w.File.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing file: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
