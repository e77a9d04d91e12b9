package download

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mchttp "github.com/handiism/mcinit/internal/http"
	"github.com/handiism/mcinit/internal/log"
)

// chunkReader returns the chunks one Read at a time, then err (or io.EOF).
type chunkReader struct {
	chunks [][]byte
	err    error
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	r.chunks[0] = r.chunks[0][n:]
	if len(r.chunks[0]) == 0 {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

func (r *chunkReader) Close() error { return nil }

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func newTestClient(status int, length int64, body io.ReadCloser) *mchttp.Client {
	opts := mchttp.DefaultOptions()
	opts.Transport = roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode:    status,
			Status:        http.StatusText(status),
			ContentLength: length,
			Body:          body,
			Header:        make(http.Header),
			Request:       req,
		}, nil
	})
	return mchttp.NewClient(opts)
}

func collect(events <-chan Event) []Event {
	var out []Event
	for ev := range events {
		out = append(out, ev)
	}
	return out
}

func TestDownloader_TwoChunks(t *testing.T) {
	payload := []byte("0123456789")
	body := &chunkReader{chunks: [][]byte{append([]byte{}, payload[:5]...), append([]byte{}, payload[5:]...)}}
	client := newTestClient(http.StatusOK, 10, body)
	dest := filepath.Join(t.TempDir(), "server.jar")

	events := collect(NewDownloader(client, log.NewNoop()).Start(context.Background(), "https://cdn.test/server.jar", dest))

	require.Equal(t, []Event{
		{Kind: EventLength, Total: 10},
		{Kind: EventProgress, Written: 5},
		{Kind: EventProgress, Written: 10},
		{Kind: EventDone, Written: 10},
	}, events)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDownloader_UnknownLength(t *testing.T) {
	body := &chunkReader{chunks: [][]byte{[]byte("abc"), []byte("defg")}}
	client := newTestClient(http.StatusOK, -1, body)
	dest := filepath.Join(t.TempDir(), "server.jar")

	events := collect(NewDownloader(client, nil).Start(context.Background(), "https://cdn.test/server.jar", dest))

	require.Len(t, events, 4)
	assert.Equal(t, EventLength, events[0].Kind)
	assert.False(t, events[0].LengthKnown())
	assert.Equal(t, int64(-1), events[0].Total)
	assert.Equal(t, int64(3), events[1].Written)
	assert.Equal(t, int64(7), events[2].Written)
	assert.Equal(t, Event{Kind: EventDone, Written: 7}, events[3])
}

func TestDownloader_NonSuccessStatus(t *testing.T) {
	client := newTestClient(http.StatusNotFound, 9, io.NopCloser(bytes.NewReader([]byte("not found"))))
	dest := filepath.Join(t.TempDir(), "server.jar")

	events := collect(NewDownloader(client, nil).Start(context.Background(), "https://cdn.test/missing.jar", dest))

	require.Len(t, events, 1)
	assert.Equal(t, EventFailed, events[0].Kind)

	var statusErr *StatusError
	require.ErrorAs(t, events[0].Err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)

	_, err := os.Stat(dest)
	assert.True(t, os.IsNotExist(err), "destination must not be created")
}

func TestDownloader_MidStreamError(t *testing.T) {
	boom := errors.New("connection reset")
	body := &chunkReader{chunks: [][]byte{[]byte("12345")}, err: boom}
	client := newTestClient(http.StatusOK, 10, body)
	dest := filepath.Join(t.TempDir(), "server.jar")

	d := NewDownloader(client, nil)
	events := make(chan Event, EventBuffer)
	err := d.Run(context.Background(), "https://cdn.test/server.jar", dest, events)
	close(events)

	var transferErr *TransferError
	require.ErrorAs(t, err, &transferErr)
	assert.Equal(t, int64(5), transferErr.Written)
	assert.ErrorIs(t, err, boom)

	got := collect(events)
	require.Len(t, got, 3)
	assert.Equal(t, EventLength, got[0].Kind)
	assert.Equal(t, Event{Kind: EventProgress, Written: 5}, got[1])
	assert.Equal(t, EventFailed, got[2].Kind)

	partial, readErr := os.ReadFile(dest)
	require.NoError(t, readErr)
	assert.Equal(t, []byte("12345"), partial, "partial file stays on disk")
}

func TestDownloader_TransportError(t *testing.T) {
	opts := mchttp.DefaultOptions()
	opts.Transport = roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: connection refused")
	})
	dest := filepath.Join(t.TempDir(), "server.jar")

	_, err := Drain(NewDownloader(mchttp.NewClient(opts), nil).Start(context.Background(), "https://cdn.test/x.jar", dest))

	var transferErr *TransferError
	require.ErrorAs(t, err, &transferErr)
	assert.Zero(t, transferErr.Written)
}

func TestDownloader_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	body := &chunkReader{chunks: [][]byte{[]byte("12345")}}
	client := newTestClient(http.StatusOK, 5, body)
	dest := filepath.Join(t.TempDir(), "server.jar")

	_, err := Drain(NewDownloader(client, nil).Start(ctx, "https://cdn.test/server.jar", dest))
	assert.Error(t, err)
}

func TestDrain(t *testing.T) {
	events := make(chan Event, 3)
	events <- Event{Kind: EventLength, Total: 4}
	events <- Event{Kind: EventProgress, Written: 4}
	close(events)

	n, err := Drain(events)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Equal(t, int64(4), n)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, -1.0, Percent(5, -1))
	assert.Equal(t, -1.0, Percent(5, 0))
	assert.Equal(t, 0.5, Percent(5, 10))
	assert.Equal(t, 1.0, Percent(12, 10))
}
