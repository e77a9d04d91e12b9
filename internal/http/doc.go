// Package http provides the HTTP client used for provider manifests and
// artifact downloads.
//
// The Client in this package handles:
//   - User-Agent headers
//   - JSON manifest fetches with an overall timeout
//   - Streaming artifact responses without an overall timeout
//   - Non-2xx statuses reported as *StatusError
//
// # Basic Usage
//
//	client := http.NewClient(http.DefaultOptions())
//
//	// Fetch a manifest
//	var manifest dto.FabricVersions
//	err := client.GetJSON(ctx, "https://meta.fabricmc.net/v2/versions", &manifest)
//
//	// Stream an artifact
//	resp, err := client.Open(ctx, jarURL)
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    resp.ContentLength,
//	    OnUpdate: func(written, total int64) { /* emit event */ },
//	}
package http
