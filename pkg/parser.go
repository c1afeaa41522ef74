package events

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseLine decodes one line of the simulation text format into an event.
// The line must hold at least 262 whitespace-separated numeric tokens:
// 256 pixel intensities, then Energy1, Xpos1, Ypos1, Energy2, Xpos2, Ypos2.
// Tokens past 262 are ignored.
func ParseLine(line string, lineNumber int) (EventRecord, error) {
	tokens := strings.Fields(line)
	if len(tokens) < TokensPerEvent {
		return EventRecord{}, &ErrMalformedRecord{
			Line:    lineNumber,
			Content: line,
			Reason:  fmt.Sprintf("expected at least %d tokens, got %d", TokensPerEvent, len(tokens)),
		}
	}

	values := make([]float64, TokensPerEvent)
	for i := 0; i < TokensPerEvent; i++ {
		value, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return EventRecord{}, &ErrMalformedRecord{
				Line:    lineNumber,
				Content: line,
				Reason:  fmt.Sprintf("token %d %q is not numeric", i, tokens[i]),
			}
		}
		values[i] = value
	}

	record := EventRecord{
		Image:   values[:ImagePixels],
		Energy1: values[ImagePixels],
		X1:      values[ImagePixels+1],
		Y1:      values[ImagePixels+2],
		Energy2: values[ImagePixels+3],
		X2:      values[ImagePixels+4],
		Y2:      values[ImagePixels+5],
		Line:    lineNumber,
	}

	// Exact test, no epsilon: the simulator writes the single-event
	// sentinel as exact 0.0.
	if record.Energy2 != 0 {
		record.Label = DoubleEvent
	}

	if err := record.CheckLabelInvariant(); err != nil {
		return EventRecord{}, err
	}
	return record, nil
}

// EventReader streams events from a source one line at a time. At most one
// record is in flight; restarting means reopening the source.
type EventReader struct {
	scanner *bufio.Scanner
	config  Configuration

	LineCount int
	EvtCount  int
	// Malformed counts lines skipped under the skip policy.
	Malformed int
}

func NewEventReader(r io.Reader, config Configuration) *EventReader {
	scanner := bufio.NewScanner(r)
	// Lines hold 262 formatted floats; the default 64k line limit is too
	// tight for high-precision output.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &EventReader{scanner: scanner, config: config, EvtCount: -1}
}

// NextEvent returns the next decoded event, honoring the Skip and MaxEvents
// configuration and the malformed-line policy. It returns io.EOF when the
// source is exhausted.
func (r *EventReader) NextEvent() (EventRecord, error) {
	for {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return EventRecord{}, err
			}
			return EventRecord{}, io.EOF
		}
		r.LineCount++

		record, err := ParseLine(r.scanner.Text(), r.LineCount)
		if err != nil {
			if r.config.OnMalformed == AbortOnMalformed {
				return EventRecord{}, err
			}
			r.Malformed++
			if r.config.Verbosity > 0 {
				message := fmt.Sprintf("Skipping malformed line %d: %v", r.LineCount, err)
				logger.Error(message)
			}
			continue
		}

		r.EvtCount++
		if r.EvtCount >= r.config.MaxEvents {
			if r.config.Verbosity > 0 {
				logger.Info("Max events reached", "eventReader")
			}
			return EventRecord{}, io.EOF
		}
		if r.EvtCount < r.config.Skip {
			if r.config.Verbosity > 1 {
				message := fmt.Sprintf("Skipping event %d at line %d", r.EvtCount, r.LineCount)
				logger.Info(message, "eventReader")
			}
			continue
		}
		if r.config.Verbosity > 1 {
			message := fmt.Sprintf("Reading event %d at line %d", r.EvtCount, r.LineCount)
			logger.Info(message, "eventReader")
		}
		return record, nil
	}
}
