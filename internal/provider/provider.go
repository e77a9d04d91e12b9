package provider

import (
	"context"

	"github.com/handiism/mcinit/internal/log"
	"github.com/handiism/mcinit/internal/model"
)

// Resolver names accepted by New.
const (
	NameVanilla = "vanilla"
	NamePaper   = "paper"
	NameFabric  = "fabric"
)

// Default manifest endpoints.
const (
	DefaultVanillaManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"
	DefaultPaperProjectURL    = "https://api.papermc.io/v2/projects/paper"
	DefaultFabricMetaURL      = "https://meta.fabricmc.net/v2/versions"
)

// Resolver turns a possibly partial Request into a downloadable Release.
type Resolver interface {
	// Resolve fetches the provider's manifests and returns the release.
	// Failures are *NotFoundError or *ResolutionError.
	Resolve(ctx context.Context, req Request) (*model.Release, error)

	// Name returns the resolver name ("vanilla", "paper", "fabric").
	Name() string
}

// Request describes what the user asked for. Empty fields mean latest.
// Each variant reads only the fields that apply to it.
type Request struct {
	// Version is the Minecraft version (all providers).
	Version string

	// Snapshot selects the snapshot channel's latest pointer (vanilla).
	Snapshot bool

	// Build is the build number; 0 means latest (paper).
	Build int

	// LoaderVersion and InstallerVersion pin the fabric axes.
	LoaderVersion    string
	InstallerVersion string

	// UnstableLoader and UnstableInstaller let the fabric "latest" pick
	// entries not flagged stable.
	UnstableLoader    bool
	UnstableInstaller bool
}

// JSONGetter fetches a URL and decodes its JSON body into v.
// *http.Client from internal/http satisfies it.
type JSONGetter interface {
	GetJSON(ctx context.Context, url string, v any) error
}

type options struct {
	baseURL  string
	ordering Ordering
	logger   log.Logger
}

// Option configures a resolver.
type Option func(*options)

// WithBaseURL overrides the manifest endpoint. Empty keeps the default.
func WithBaseURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.baseURL = url
		}
	}
}

// WithOrdering sets how requested identifiers are compared with the latest.
func WithOrdering(ord Ordering) Option {
	return func(o *options) {
		o.ordering = ord
	}
}

// WithLogger sets the resolver's logger.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(name, defaultURL string, opts []Option) options {
	o := options{
		baseURL:  defaultURL,
		ordering: NumericOrdering,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.With("provider", name)
	return o
}
