package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	mchttp "github.com/handiism/mcinit/internal/http"
	"github.com/handiism/mcinit/internal/log"
)

const copyBufferSize = 32 * 1024

// Opener starts a streaming GET. *http.Client from internal/http
// satisfies it.
type Opener interface {
	Open(ctx context.Context, url string) (*http.Response, error)
}

// StatusError is a non-2xx response to the artifact request.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("download failed: %s returned HTTP %s", log.SanitizeURL(e.URL), e.Status)
}

// TransferError is a transport or I/O failure after the request was sent.
// Written bytes are left on disk.
type TransferError struct {
	URL     string
	Written int64
	Err     error
}

func (e *TransferError) Error() string {
	if e.Written > 0 {
		return fmt.Sprintf("transfer of %s failed after %d bytes: %v", log.SanitizeURL(e.URL), e.Written, e.Err)
	}
	return fmt.Sprintf("transfer of %s failed: %v", log.SanitizeURL(e.URL), e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// Downloader streams one artifact to disk while reporting progress.
//
// The destination file is created only after a 2xx status, so a rejected
// request leaves the file system untouched. There is no retry, resume or
// checksum verification; a mid-stream failure leaves the partial file in
// place.
type Downloader struct {
	client Opener
	logger log.Logger
}

// NewDownloader creates a Downloader. A nil logger uses log.Default().
func NewDownloader(client Opener, logger log.Logger) *Downloader {
	if logger == nil {
		logger = log.Default()
	}
	return &Downloader{client: client, logger: logger}
}

// Start runs the download in a new goroutine and returns its event stream.
// The channel is closed after the final Done or Failed event.
func (d *Downloader) Start(ctx context.Context, url, dest string) <-chan Event {
	events := make(chan Event, EventBuffer)
	go func() {
		defer close(events)
		_ = d.Run(ctx, url, dest, events)
	}()
	return events
}

// Run downloads url into dest, sending events on the given channel. It
// does not close the channel. The returned error equals the Failed event's
// Err.
//
// Cancelling ctx aborts the transfer; events that cannot be delivered
// because ctx is done are dropped.
func (d *Downloader) Run(ctx context.Context, url, dest string, events chan<- Event) error {
	err := d.run(ctx, url, dest, events)
	if err != nil {
		d.logger.Debug("download failed", "url", log.SanitizeURL(url), "error", err)
		send(ctx, events, Event{Kind: EventFailed, Err: err})
	}
	return err
}

func (d *Downloader) run(ctx context.Context, url, dest string, events chan<- Event) error {
	resp, err := d.client.Open(ctx, url)
	if err != nil {
		var statusErr *mchttp.StatusError
		if errors.As(err, &statusErr) {
			return &StatusError{URL: url, StatusCode: statusErr.StatusCode, Status: statusErr.Status}
		}
		return &TransferError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	total := resp.ContentLength
	if total < 0 {
		total = -1
	}
	d.logger.Debug("response", "url", log.SanitizeURL(url), "status", resp.StatusCode, "length", total)

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}

	if !send(ctx, events, Event{Kind: EventLength, Total: total}) {
		f.Close()
		return &TransferError{URL: url, Err: ctx.Err()}
	}

	pw := &mchttp.ProgressWriter{
		Writer: f,
		Total:  total,
		OnUpdate: func(written, _ int64) {
			send(ctx, events, Event{Kind: EventProgress, Written: written})
		},
	}

	// Hide any WriterTo on the body so every chunk passes through pw.
	body := struct{ io.Reader }{resp.Body}
	_, copyErr := io.CopyBuffer(pw, body, make([]byte, copyBufferSize))
	closeErr := f.Close()

	if copyErr == nil {
		copyErr = ctx.Err()
	}
	if copyErr != nil {
		return &TransferError{URL: url, Written: pw.Written, Err: copyErr}
	}
	if closeErr != nil {
		return &TransferError{URL: url, Written: pw.Written, Err: closeErr}
	}

	d.logger.Info("download complete", "dest", dest, "bytes", pw.Written)
	send(ctx, events, Event{Kind: EventDone, Written: pw.Written})
	return nil
}

// send delivers ev unless ctx is done first.
func send(ctx context.Context, events chan<- Event, ev Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
