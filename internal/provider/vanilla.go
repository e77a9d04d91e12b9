package provider

import (
	"context"

	"github.com/handiism/mcinit/internal/model"
	"github.com/handiism/mcinit/internal/provider/dto"
)

// Vanilla resolves official server jars from the Mojang version manifest.
type Vanilla struct {
	client JSONGetter
	opts   options
}

// NewVanilla creates a vanilla resolver.
func NewVanilla(client JSONGetter, opts ...Option) *Vanilla {
	return &Vanilla{
		client: client,
		opts:   newOptions(NameVanilla, DefaultVanillaManifestURL, opts),
	}
}

// Name returns "vanilla".
func (v *Vanilla) Name() string {
	return NameVanilla
}

// Resolve looks the version up in the manifest and follows its detail
// document to the server jar. An empty req.Version selects the latest
// release, or the latest snapshot when req.Snapshot is set.
func (v *Vanilla) Resolve(ctx context.Context, req Request) (*model.Release, error) {
	v.opts.logger.Debug("fetching manifest", "url", v.opts.baseURL)

	var manifest dto.VanillaManifest
	if err := v.client.GetJSON(ctx, v.opts.baseURL, &manifest); err != nil {
		return nil, fetchError(NameVanilla, "fetch version manifest", err)
	}

	latest := manifest.Latest.For(req.Snapshot)
	requested := req.Version
	if requested == "" {
		if latest == "" {
			return nil, manifestError(NameVanilla, "manifest has no latest %s", channel(req.Snapshot))
		}
		requested = latest
	}

	entry, ok := manifest.Find(requested)
	if !ok {
		return nil, &NotFoundError{
			Provider:  NameVanilla,
			Axis:      AxisVersion,
			Requested: requested,
			Latest:    latest,
		}
	}
	if entry.URL == "" {
		return nil, manifestError(NameVanilla, "version %s has no detail URL", requested)
	}

	v.opts.logger.Debug("fetching version detail", "version", requested, "url", entry.URL)

	var detail dto.VanillaVersionDetail
	if err := v.client.GetJSON(ctx, entry.URL, &detail); err != nil {
		return nil, fetchError(NameVanilla, "fetch details for "+requested, err)
	}
	if detail.Downloads.Server == nil || detail.Downloads.Server.URL == "" {
		return nil, manifestError(NameVanilla, "version %s has no server download", requested)
	}

	v.opts.logger.Debug("resolved", "version", requested, "url", detail.Downloads.Server.URL)

	return &model.Release{
		Provider: NameVanilla,
		URL:      detail.Downloads.Server.URL,
		Version:  requested,
	}, nil
}

func channel(snapshot bool) string {
	if snapshot {
		return "snapshot"
	}
	return "release"
}
