// Package progress renders a download event stream as plain text lines,
// for pipes, CI logs and terminals where the interactive UI is disabled.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/handiism/mcinit/internal/download"
)

// IsTerminalFunc is the function used to check if a file descriptor is a terminal.
// It can be overridden for testing.
var IsTerminalFunc = term.IsTerminal

// DefaultInterval is the minimum time between two progress lines.
const DefaultInterval = time.Second

// LineSink prints one line per progress update, rate limited to Interval.
// It implements download.Sink.
type LineSink struct {
	out      io.Writer
	interval time.Duration
	now      func() time.Time
}

// NewLineSink creates a LineSink writing to out. An interval of 0 prints
// every update.
func NewLineSink(out io.Writer, interval time.Duration) *LineSink {
	return &LineSink{out: out, interval: interval, now: time.Now}
}

// Consume drains events, printing progress and a final summary. It returns
// the download's error, or download.ErrIncomplete when the stream closes
// without completing.
func (s *LineSink) Consume(events <-chan download.Event) error {
	start := s.now()
	var (
		total     int64 = -1
		written   int64
		lastPrint time.Time
		printed   int64 = -1
	)

	for ev := range events {
		switch ev.Kind {
		case download.EventLength:
			total = ev.Total
			if ev.LengthKnown() {
				fmt.Fprintf(s.out, "   Size: %s\n", humanize.Bytes(uint64(total)))
			} else {
				fmt.Fprintln(s.out, "   Size: unknown")
			}

		case download.EventProgress:
			written = ev.Written
			now := s.now()
			if s.interval > 0 && now.Sub(lastPrint) < s.interval {
				continue
			}
			lastPrint = now
			printed = written
			fmt.Fprintf(s.out, "   %s\n", formatProgress(written, total))

		case download.EventDone:
			if printed != ev.Written && ev.Written > 0 {
				fmt.Fprintf(s.out, "   %s\n", formatProgress(ev.Written, total))
			}
			elapsed := s.now().Sub(start)
			fmt.Fprintf(s.out, "   Downloaded %s in %s\n", humanize.Bytes(uint64(ev.Written)), elapsed.Round(time.Millisecond))
			return drainRest(events, nil)

		case download.EventFailed:
			return drainRest(events, ev.Err)
		}
	}
	return download.ErrIncomplete
}

// drainRest empties the channel so the producer never blocks.
func drainRest(events <-chan download.Event, err error) error {
	for range events {
	}
	return err
}

func formatProgress(written, total int64) string {
	if total < 0 {
		return humanize.Bytes(uint64(written))
	}
	p := download.Percent(written, total)
	if p < 0 {
		p = 1
	}
	return fmt.Sprintf("%s / %s (%.0f%%)", humanize.Bytes(uint64(written)), humanize.Bytes(uint64(total)), p*100)
}

// ShouldShowProgress returns true if the interactive UI should be used.
// It is shown when stdout is a terminal.
func ShouldShowProgress() bool {
	return IsTerminalFunc(int(os.Stdout.Fd()))
}
