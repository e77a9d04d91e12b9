package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultUserAgent is sent with every request unless Options overrides it.
const DefaultUserAgent = "mcinit"

// Options configures a Client.
type Options struct {
	// Timeout bounds a whole manifest request, body included.
	// Streaming downloads are not bounded by it.
	// Default: 30s
	Timeout time.Duration

	// ResponseHeaderTimeout bounds the wait for response headers on every
	// request, streaming downloads included.
	// Default: 30s
	ResponseHeaderTimeout time.Duration

	// UserAgent is the User-Agent header value.
	// Default: DefaultUserAgent
	UserAgent string

	// Transport overrides the round tripper. Nil uses a fresh http.Transport.
	Transport http.RoundTripper
}

// DefaultOptions returns options with the default timeouts and User-Agent.
func DefaultOptions() Options {
	return Options{
		Timeout:               30 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		UserAgent:             DefaultUserAgent,
	}
}

// Client wraps HTTP operations for manifest lookups and artifact downloads.
//
// Client provides:
//   - JSON manifest fetches bounded by Options.Timeout
//   - Streaming GETs for artifacts, bounded only by the header timeout
//   - A configured User-Agent header
//
// Example usage:
//
//	client := NewClient(DefaultOptions())
//
//	// Fetch a manifest
//	var manifest struct{ Versions []string `json:"versions"` }
//	err := client.GetJSON(ctx, "https://api.papermc.io/v2/projects/paper", &manifest)
//
//	// Open an artifact stream
//	resp, err := client.Open(ctx, jarURL)
//	defer resp.Body.Close()
type Client struct {
	api       *http.Client
	stream    *http.Client
	userAgent string
}

// NewClient creates a Client. Zero fields in opts take their defaults.
func NewClient(opts Options) *Client {
	def := DefaultOptions()
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.ResponseHeaderTimeout <= 0 {
		opts.ResponseHeaderTimeout = def.ResponseHeaderTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}

	transport := opts.Transport
	if transport == nil {
		transport = &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			ResponseHeaderTimeout: opts.ResponseHeaderTimeout,
			TLSHandshakeTimeout:   10 * time.Second,
			IdleConnTimeout:       90 * time.Second,
			MaxIdleConns:          10,
		}
	}

	return &Client{
		api: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		stream: &http.Client{
			Transport: transport,
		},
		userAgent: opts.UserAgent,
	}
}

// StatusError reports a response whose status code is not 2xx.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %s", e.URL, e.Status)
}

// ProgressWriter wraps a writer to track download progress.
//
// OnUpdate is invoked once per Write, i.e. once per chunk handed over by the
// reader, with the running total and the expected total (-1 when unknown).
//
// Example:
//
//	pw := &ProgressWriter{
//	    Writer: file,
//	    Total:  resp.ContentLength,
//	    OnUpdate: func(written, total int64) {
//	        fmt.Printf("%d / %d bytes\n", written, total)
//	    },
//	}
//	io.Copy(pw, resp.Body)
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes (from Content-Length), -1 if unknown.
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called after each Write that stored at least one byte.
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if n > 0 && pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns a *StatusError if the response status is not 2xx.
//
// Example:
//
//	data, err := client.Get(ctx, "https://meta.fabricmc.net/v2/versions")
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.do(ctx, c.api, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

// GetJSON performs a GET request and decodes the JSON body into v.
//
// Example:
//
//	var manifest dto.PaperProject
//	if err := client.GetJSON(ctx, projectURL, &manifest); err != nil {
//	    return err
//	}
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	resp, err := c.do(ctx, c.api, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// Open performs a streaming GET request.
//
// On success the caller owns resp.Body and must close it. The response
// body is not bounded by Options.Timeout, so large artifacts can stream
// for as long as the server keeps sending.
//
// Returns a *StatusError (with the body already closed) if the status is
// not 2xx.
func (c *Client) Open(ctx context.Context, url string) (*http.Response, error) {
	return c.do(ctx, c.stream, url)
}

func (c *Client) do(ctx context.Context, hc *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return resp, nil
}
