package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	mchttp "github.com/handiism/mcinit/internal/http"
)

const fabricVersionsJSON = `{
	"game": [
		{"version": "24w14a", "stable": false},
		{"version": "1.21", "stable": true},
		{"version": "1.20.6", "stable": true}
	],
	"loader": [
		{"version": "2.0", "stable": false},
		{"version": "1.9", "stable": true},
		{"version": "1.8", "stable": true}
	],
	"installer": [
		{"version": "1.1.0", "stable": false},
		{"version": "1.0.1", "stable": true}
	]
}`

func newFabricServer(t *testing.T, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/versions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFabric_Resolve(t *testing.T) {
	server := newFabricServer(t, fabricVersionsJSON)
	client := mchttp.NewClient(mchttp.DefaultOptions())
	resolver := NewFabric(client, WithBaseURL(server.URL+"/v2/versions"))

	tests := []struct {
		name          string
		req           Request
		wantVersion   string
		wantLoader    string
		wantInstaller string
	}{
		{"first stable on every axis", Request{}, "1.21", "1.9", "1.0.1"},
		{"unstable loader allowed", Request{UnstableLoader: true}, "1.21", "2.0", "1.0.1"},
		{"unstable installer allowed", Request{UnstableInstaller: true}, "1.21", "1.9", "1.1.0"},
		{"explicit values", Request{Version: "1.20.6", LoaderVersion: "1.8", InstallerVersion: "1.0.1"}, "1.20.6", "1.8", "1.0.1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rel, err := resolver.Resolve(context.Background(), tc.req)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if rel.Version != tc.wantVersion || rel.Loader != tc.wantLoader || rel.Installer != tc.wantInstaller {
				t.Errorf("got (%s, %s, %s), want (%s, %s, %s)",
					rel.Version, rel.Loader, rel.Installer, tc.wantVersion, tc.wantLoader, tc.wantInstaller)
			}
			wantURL := server.URL + "/v2/versions/loader/" + tc.wantVersion + "/" + tc.wantLoader + "/" + tc.wantInstaller + "/server/jar"
			if rel.URL != wantURL {
				t.Errorf("URL = %q, want %q", rel.URL, wantURL)
			}
			wantDesc := "(Version: " + tc.wantVersion + ", Loader: " + tc.wantLoader + ", Installer: " + tc.wantInstaller + ")"
			if rel.Descriptor() != wantDesc {
				t.Errorf("Descriptor() = %q, want %q", rel.Descriptor(), wantDesc)
			}
		})
	}
}

func TestFabric_Resolve_NotFound(t *testing.T) {
	server := newFabricServer(t, fabricVersionsJSON)
	client := mchttp.NewClient(mchttp.DefaultOptions())
	resolver := NewFabric(client, WithBaseURL(server.URL+"/v2/versions"))

	tests := []struct {
		name       string
		req        Request
		wantAxis   Axis
		wantLatest string
		wantMsg    string
	}{
		{"game past latest", Request{Version: "1.22"}, AxisVersion, "1.21", "Minecraft version 1.22 not found. Latest is 1.21"},
		{"loader past stable latest", Request{LoaderVersion: "2.0"}, AxisLoader, "1.9", "Loader version 2.0 not found. Latest is 1.9"},
		{"loader not listed", Request{LoaderVersion: "1.5"}, AxisLoader, "1.9", "Loader version 1.5 not found. Latest is 1.9"},
		{"installer past latest", Request{InstallerVersion: "1.2.0", UnstableInstaller: true}, AxisInstaller, "1.1.0", "Installer version 1.2.0 not found. Latest is 1.1.0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolver.Resolve(context.Background(), tc.req)
			var nf *NotFoundError
			if !errors.As(err, &nf) {
				t.Fatalf("Resolve() error = %v, want *NotFoundError", err)
			}
			if nf.Axis != tc.wantAxis || nf.Latest != tc.wantLatest {
				t.Errorf("NotFoundError = %+v", nf)
			}
			if err.Error() != tc.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestFabric_Resolve_NoStableEntry(t *testing.T) {
	server := newFabricServer(t, `{
		"game": [{"version": "1.21", "stable": true}],
		"loader": [{"version": "0.1", "stable": false}],
		"installer": [{"version": "1.0", "stable": true}]
	}`)
	client := mchttp.NewClient(mchttp.DefaultOptions())
	resolver := NewFabric(client, WithBaseURL(server.URL+"/v2/versions"))

	_, err := resolver.Resolve(context.Background(), Request{})
	var re *ResolutionError
	if !errors.As(err, &re) || re.Type != ErrTypeManifest {
		t.Fatalf("Resolve() error = %v, want manifest ResolutionError", err)
	}

	rel, err := resolver.Resolve(context.Background(), Request{UnstableLoader: true})
	if err != nil {
		t.Fatalf("Resolve() with unstable loader error = %v", err)
	}
	if rel.Loader != "0.1" {
		t.Errorf("Loader = %q, want 0.1", rel.Loader)
	}
}
