package download

import (
	"errors"
	"fmt"
)

// EventBuffer is the capacity of the channel returned by Start.
const EventBuffer = 100

// ErrIncomplete is returned by Drain when the stream closes without a
// Done or Failed event.
var ErrIncomplete = errors.New("download ended before completion")

// EventKind discriminates Event.
type EventKind int

const (
	// EventLength carries the content length in Total. It is always the
	// first event of a successful response and is sent exactly once.
	EventLength EventKind = iota

	// EventProgress carries the cumulative byte count in Written, one per
	// chunk received, strictly increasing.
	EventProgress

	// EventDone marks a complete, closed file. Written is the final size.
	EventDone

	// EventFailed carries the reason in Err. Nothing follows it.
	EventFailed
)

func (k EventKind) String() string {
	switch k {
	case EventLength:
		return "length"
	case EventProgress:
		return "progress"
	case EventDone:
		return "done"
	case EventFailed:
		return "failed"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one notification on the progress stream.
//
// A stream is either
//
//	Length, Progress*, Done
//
// or it ends with Failed, possibly after Length and some Progress events.
// The channel is closed after the last event.
type Event struct {
	Kind EventKind

	// Total is the content length, -1 when the origin did not send one.
	// Set on Length events.
	Total int64

	// Written is the cumulative byte count. Set on Progress and Done.
	Written int64

	// Err is set on Failed.
	Err error
}

// LengthKnown reports whether Total holds a real content length.
func (e Event) LengthKnown() bool {
	return e.Total >= 0
}

// Percent returns Written as a fraction of total in [0, 1], or -1 when
// total is unknown or zero.
func Percent(written, total int64) float64 {
	if total <= 0 {
		return -1
	}
	p := float64(written) / float64(total)
	if p > 1 {
		p = 1
	}
	return p
}

// Drain consumes events until the channel closes and returns the final
// byte count. A Failed event's error is returned as is; a stream that
// closes without Done yields ErrIncomplete.
func Drain(events <-chan Event) (int64, error) {
	var written int64
	for ev := range events {
		switch ev.Kind {
		case EventProgress:
			written = ev.Written
		case EventDone:
			return ev.Written, nil
		case EventFailed:
			return written, ev.Err
		}
	}
	return written, ErrIncomplete
}
