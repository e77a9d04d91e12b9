package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/mcinit/internal/config"
	"github.com/handiism/mcinit/internal/download"
	"github.com/handiism/mcinit/internal/provider"
	"github.com/handiism/mcinit/internal/tui"
)

func resetFlags() {
	configPath, quietFlag, verbose, debugFlag = "", false, false, false
	outputFlag, eulaFlag, iconFlag, plainFlag = "", false, "", false
	snapshotFlag, buildFlag = false, 0
	loaderVersionFlag, installerVersionFlag = "", ""
	unstableLoaderFlag, unstableInstallerFlag = false, false
	searchLimit = 10
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"not found", &provider.NotFoundError{Axis: provider.AxisVersion, Requested: "1.22", Latest: "1.21"}, ExitNotFound},
		{"resolution", &provider.ResolutionError{Provider: "paper", Type: provider.ErrTypeStatus}, ExitNetwork},
		{"status", &download.StatusError{StatusCode: 404, Status: "404 Not Found"}, ExitDownloadFailed},
		{"transfer", &download.TransferError{Err: errors.New("reset")}, ExitDownloadFailed},
		{"incomplete", download.ErrIncomplete, ExitDownloadFailed},
		{"usage", usageError{errors.New("bad key")}, ExitUsage},
		{"interrupted", reportedError{tui.ErrInterrupted}, ExitInterrupted},
		{"reported not found", reportedError{fmt.Errorf("x: %w", provider.ErrNotFound)}, ExitNotFound},
		{"other", errors.New("boom"), ExitGeneral},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, exitCodeFor(tc.err))
		})
	}
}

func TestPrintError_Suggestion(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, &provider.ResolutionError{Provider: "vanilla", Type: provider.ErrTypeTimeout, Message: "fetch version manifest"})
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Error: vanilla resolver: fetch version manifest"))
	assert.Contains(t, out, "Suggestion:")

	buf.Reset()
	printError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	_, _, err := execute(t, "--config", path, "config", "set", "timeout", "45s")
	require.NoError(t, err)

	out, _, err := execute(t, "--config", path, "config", "get", "timeout")
	require.NoError(t, err)
	assert.Equal(t, "45s\n", out)

	out, _, err = execute(t, "--config", path, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "version_ordering")
	assert.Contains(t, out, "45s")

	out, _, err = execute(t, "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	_, _, err = execute(t, "--config", path, "config", "get", "nope")
	assert.Equal(t, ExitUsage, exitCodeFor(err))

	_, _, err = execute(t, "--config", path, "config", "set", "eula", "sure")
	assert.Equal(t, ExitUsage, exitCodeFor(err))
}

func TestInitVanilla_Plain(t *testing.T) {
	jar := []byte("vanilla server jar")
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/manifest.json":
			fmt.Fprintf(w, `{"latest":{"release":"1.21","snapshot":"24w14a"},"versions":[{"id":"1.21","url":"%s/1.21.json"}]}`, server.URL)
		case "/1.21.json":
			fmt.Fprintf(w, `{"downloads":{"server":{"url":"%s/server.jar"}}}`, server.URL)
		case "/server.jar":
			_, _ = w.Write(jar)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	s := config.DefaultSettings()
	s.VanillaManifest = server.URL + "/manifest.json"
	require.NoError(t, s.Save(cfgPath))

	output := filepath.Join(dir, "srv", "server.jar")
	out, stderr, err := execute(t, "--config", cfgPath, "init", "vanilla", "latest", "--plain", "--eula", "-o", output)
	require.NoError(t, err, stderr)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, jar, got)
	assert.Contains(t, out, "Downloaded 18 B")
	assert.Contains(t, stderr, "vanilla (1.21)")

	_, err = os.Stat(filepath.Join(dir, "srv", "eula.txt"))
	assert.NoError(t, err)

	_, _, err = execute(t, "--config", cfgPath, "init", "vanilla", "1.22", "--plain", "-o", output)
	require.Error(t, err)
	assert.EqualError(t, err, "Minecraft version 1.22 not found. Latest is 1.21")
	assert.Equal(t, ExitNotFound, exitCodeFor(err))
}

func TestInitPaper_NegativeBuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	_, _, err := execute(t, "--config", path, "init", "paper", "--build", "-3", "--plain")
	assert.Equal(t, ExitUsage, exitCodeFor(err))
}

func TestVersionArg(t *testing.T) {
	assert.Equal(t, "", versionArg(nil))
	assert.Equal(t, "", versionArg([]string{"LATEST"}))
	assert.Equal(t, "1.21", versionArg([]string{" 1.21 "}))
}
