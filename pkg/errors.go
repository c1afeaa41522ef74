package events

import "fmt"

// ErrMalformedRecord represents a line that does not decode into an event.
type ErrMalformedRecord struct {
	Line    int
	Content string
	Reason  string
}

func (e *ErrMalformedRecord) Error() string {
	content := e.Content
	if len(content) > 64 {
		content = content[:64] + "..."
	}
	return fmt.Sprintf("malformed record at line %d (%s): %q", e.Line, e.Reason, content)
}

// ErrLabelInvariant represents a record whose energy2 and second-position
// sentinel disagree about whether the event is single or double.
type ErrLabelInvariant struct {
	Line    int
	Energy2 float64
	X2      float64
	Y2      float64
	Label   int32
}

func (e *ErrLabelInvariant) Error() string {
	return fmt.Sprintf("label invariant violated at line %d: label=%d, energy2=%g, (x2, y2)=(%g, %g)",
		e.Line, e.Label, e.Energy2, e.X2, e.Y2)
}

// ErrZeroEnergy represents a relative-energy computation with a zero denominator.
type ErrZeroEnergy struct {
	Line int
}

func (e *ErrZeroEnergy) Error() string {
	return fmt.Sprintf("relative energy undefined at line %d: energy2 is zero", e.Line)
}

// ErrEmptyDataset represents an operation that needs at least one record
// but was handed none.
type ErrEmptyDataset struct {
	Operation string
}

func (e *ErrEmptyDataset) Error() string {
	return fmt.Sprintf("%s: empty dataset", e.Operation)
}

// ErrDegenerateScale represents a normalization whose value range is zero.
type ErrDegenerateScale struct {
	Value float64
}

func (e *ErrDegenerateScale) Error() string {
	return fmt.Sprintf("degenerate scale: every value equals %g, max - min is zero", e.Value)
}

// ErrEmptyPartition represents a split that leaves one subset without records.
type ErrEmptyPartition struct {
	Name     string
	N        int
	Fraction float64
}

func (e *ErrEmptyPartition) Error() string {
	return fmt.Sprintf("empty %q partition: fraction %g of %d records", e.Name, e.Fraction, e.N)
}

// ErrOpenFile represents an error when opening a file.
type ErrOpenFile struct {
	Filename string
	Err      error
}

func (e *ErrOpenFile) Error() string {
	return fmt.Sprintf("error opening file %q: %v", e.Filename, e.Err)
}

func (e *ErrOpenFile) Unwrap() error { return e.Err }

// ErrCreateGroup represents an error when creating an HDF5 group.
type ErrCreateGroup struct {
	GroupName string
	Err       error
}

func (e *ErrCreateGroup) Error() string {
	return fmt.Sprintf("error creating group %q: %v", e.GroupName, e.Err)
}

func (e *ErrCreateGroup) Unwrap() error { return e.Err }

// ErrCreateDataset represents an error when creating an HDF5 dataset.
type ErrCreateDataset struct {
	DatasetName string
	Err         error
}

func (e *ErrCreateDataset) Error() string {
	return fmt.Sprintf("error creating dataset %q: %v", e.DatasetName, e.Err)
}

func (e *ErrCreateDataset) Unwrap() error { return e.Err }
