package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	mchttp "github.com/handiism/mcinit/internal/http"
	"github.com/handiism/mcinit/internal/log"
	"github.com/handiism/mcinit/internal/provider"
)

const (
	// EnvTimeout overrides the timeout setting, e.g. "60s".
	EnvTimeout = "MCINIT_TIMEOUT"

	// EnvOutput overrides the output setting.
	EnvOutput = "MCINIT_OUTPUT"

	// DefaultTimeout bounds each manifest request.
	DefaultTimeout = 30 * time.Second

	// DefaultOutput is the jar path written when none is given.
	DefaultOutput = "server.jar"

	// DefaultModrinthAPI is the plugin catalog base URL.
	DefaultModrinthAPI = "https://api.modrinth.com/v2"

	minTimeout = 1 * time.Second
	maxTimeout = 10 * time.Minute
)

// Settings holds all configuration options.
type Settings struct {
	// Output settings
	Output string `toml:"output"`
	EULA   bool   `toml:"eula"`

	// HTTP settings
	UserAgent string `toml:"user_agent"`
	Timeout   string `toml:"timeout"`

	// Resolution settings
	VersionOrdering string `toml:"version_ordering"` // numeric, lexical

	// Endpoints
	VanillaManifest string `toml:"vanilla_manifest"`
	PaperProject    string `toml:"paper_project"`
	FabricMeta      string `toml:"fabric_meta"`
	ModrinthAPI     string `toml:"modrinth_api"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Output:          DefaultOutput,
		EULA:            false,
		UserAgent:       mchttp.DefaultUserAgent,
		Timeout:         DefaultTimeout.String(),
		VersionOrdering: provider.NumericOrdering.String(),
		VanillaManifest: provider.DefaultVanillaManifestURL,
		PaperProject:    provider.DefaultPaperProjectURL,
		FabricMeta:      provider.DefaultFabricMetaURL,
		ModrinthAPI:     DefaultModrinthAPI,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/mcinit/config.toml (or the
// platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, "mcinit", "config.toml"), nil
}

// Load reads settings from a TOML file. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return settings, nil
}

// Save writes settings to a TOML file, creating parent directories.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ApplyEnv applies MCINIT_* environment overrides. Invalid values are
// logged and ignored.
func (s *Settings) ApplyEnv(logger log.Logger) {
	if v := os.Getenv(EnvTimeout); v != "" {
		if _, err := time.ParseDuration(v); err != nil {
			logger.Warn("ignoring invalid environment value", "var", EnvTimeout, "value", v)
		} else {
			s.Timeout = v
		}
	}
	if v := os.Getenv(EnvOutput); v != "" {
		s.Output = v
	}
}

// TimeoutDuration returns the timeout clamped to [1s, 10m]. An unparsable
// value yields DefaultTimeout.
func (s *Settings) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil || s.Timeout == "" {
		return DefaultTimeout
	}
	if d < minTimeout {
		return minTimeout
	}
	if d > maxTimeout {
		return maxTimeout
	}
	return d
}

// Ordering parses VersionOrdering.
func (s *Settings) Ordering() (provider.Ordering, error) {
	return provider.ParseOrdering(s.VersionOrdering)
}

// HTTPOptions converts settings to client options.
func (s *Settings) HTTPOptions() mchttp.Options {
	opts := mchttp.DefaultOptions()
	opts.Timeout = s.TimeoutDuration()
	if s.UserAgent != "" {
		opts.UserAgent = s.UserAgent
	}
	return opts
}

// ResolverOptions returns the endpoint and ordering options for the named
// resolver.
func (s *Settings) ResolverOptions(name string, logger log.Logger) ([]provider.Option, error) {
	ordering, err := s.Ordering()
	if err != nil {
		return nil, err
	}

	opts := []provider.Option{provider.WithOrdering(ordering), provider.WithLogger(logger)}
	switch strings.ToLower(name) {
	case provider.NameVanilla:
		opts = append(opts, provider.WithBaseURL(s.VanillaManifest))
	case provider.NamePaper:
		opts = append(opts, provider.WithBaseURL(s.PaperProject))
	case provider.NameFabric:
		opts = append(opts, provider.WithBaseURL(s.FabricMeta))
	}
	return opts, nil
}

// Get returns the value of a config key as a string.
// Returns empty string and false if the key doesn't exist.
func (s *Settings) Get(key string) (string, bool) {
	switch strings.ToLower(key) {
	case "output":
		return s.Output, true
	case "eula":
		return strconv.FormatBool(s.EULA), true
	case "user_agent":
		return s.UserAgent, true
	case "timeout":
		return s.Timeout, true
	case "version_ordering":
		return s.VersionOrdering, true
	case "vanilla_manifest":
		return s.VanillaManifest, true
	case "paper_project":
		return s.PaperProject, true
	case "fabric_meta":
		return s.FabricMeta, true
	case "modrinth_api":
		return s.ModrinthAPI, true
	default:
		return "", false
	}
}

// Set updates a config value from a string.
// Returns an error if the key doesn't exist or the value is invalid.
func (s *Settings) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "output":
		if value == "" {
			return fmt.Errorf("invalid value for output: must not be empty")
		}
		s.Output = value
	case "eula":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for eula: must be true or false")
		}
		s.EULA = b
	case "user_agent":
		s.UserAgent = value
	case "timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid value for timeout: must be a duration like 30s or 2m")
		}
		s.Timeout = value
	case "version_ordering":
		ord, err := provider.ParseOrdering(value)
		if err != nil {
			return fmt.Errorf("invalid value for version_ordering: %w", err)
		}
		s.VersionOrdering = ord.String()
	case "vanilla_manifest":
		s.VanillaManifest = value
	case "paper_project":
		s.PaperProject = value
	case "fabric_meta":
		s.FabricMeta = value
	case "modrinth_api":
		s.ModrinthAPI = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// AvailableKeys returns a list of all configurable keys with descriptions.
func AvailableKeys() map[string]string {
	return map[string]string{
		"output":           "Path of the downloaded server jar",
		"eula":             "Write an accepted eula.txt before downloading (true/false)",
		"user_agent":       "User-Agent header sent to provider APIs",
		"timeout":          "Manifest request timeout (1s to 10m)",
		"version_ordering": "How requested versions are compared with the latest (numeric/lexical)",
		"vanilla_manifest": "Mojang version manifest URL",
		"paper_project":    "PaperMC project API URL",
		"fabric_meta":      "Fabric meta versions URL",
		"modrinth_api":     "Modrinth API base URL for plugin lookups",
	}
}

// SortedKeys returns AvailableKeys' keys in alphabetical order.
func SortedKeys() []string {
	keys := make([]string, 0, len(AvailableKeys()))
	for k := range AvailableKeys() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
