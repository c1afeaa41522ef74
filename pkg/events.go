package events

import "math"

const (
	// ImageSize is the side length of the detector pixel grid.
	ImageSize = 16
	// ImagePixels is the number of pixels in one detector image.
	ImagePixels = ImageSize * ImageSize
	// TokensPerEvent is the number of numeric tokens that make up one event:
	// 256 pixel intensities followed by Energy1, Xpos1, Ypos1, Energy2, Xpos2, Ypos2.
	TokensPerEvent = ImagePixels + 6
	// SentinelPosition marks the missing second interaction in single events.
	// The simulator writes it as exact -100.0, never a valid coordinate since
	// the grid spans [0, 16).
	SentinelPosition = -100.0
)

// Event labels. Single events contain one particle interaction,
// double events contain two.
const (
	SingleEvent int32 = 0
	DoubleEvent int32 = 1
)

// EventRecord is one decoded detector event. The image is kept in the
// on-disk flattened order, which is transposed with respect to the physical
// row-major grid; use ImageGrid before any 2-D use.
type EventRecord struct {
	Image   []float64
	Energy1 float64
	X1      float64
	Y1      float64
	Energy2 float64
	X2      float64
	Y2      float64
	Label   int32
	// Line is the 1-based line number in the source file.
	Line int
}

// CheckLabelInvariant validates label == 0 <=> energy2 == 0 <=> (x2, y2) == (-100, -100).
// The comparisons are exact: the sentinels are written as exact 0.0 and
// -100.0 by the simulator, so an epsilon test would silently change which
// events count as singles.
func (e *EventRecord) CheckLabelInvariant() error {
	singleByEnergy := e.Energy2 == 0
	singleByPosition := e.X2 == SentinelPosition && e.Y2 == SentinelPosition
	singleByLabel := e.Label == SingleEvent
	if singleByEnergy != singleByPosition || singleByEnergy != singleByLabel {
		return &ErrLabelInvariant{
			Line:    e.Line,
			Energy2: e.Energy2,
			X2:      e.X2,
			Y2:      e.Y2,
			Label:   e.Label,
		}
	}
	return nil
}

// SeparationDistance is the Euclidean distance between the two interaction
// positions. Only meaningful for double events.
func (e *EventRecord) SeparationDistance() float64 {
	return math.Hypot(e.X2-e.X1, e.Y2-e.Y1)
}

// RelativeEnergy is the ratio Energy1/Energy2. For a valid double event the
// denominator cannot be zero, but the guard stays: a zero must fail here
// instead of producing Inf.
func (e *EventRecord) RelativeEnergy() (float64, error) {
	if e.Energy2 == 0 {
		return 0, &ErrZeroEnergy{Line: e.Line}
	}
	return e.Energy1 / e.Energy2, nil
}
