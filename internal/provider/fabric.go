package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/handiism/mcinit/internal/model"
	"github.com/handiism/mcinit/internal/provider/dto"
)

// Fabric resolves server launcher jars from the Fabric meta API.
//
// One document carries three independent axes (game, loader, installer),
// each ordered newest first with a stability flag per entry.
type Fabric struct {
	client JSONGetter
	opts   options
}

// NewFabric creates a fabric resolver.
func NewFabric(client JSONGetter, opts ...Option) *Fabric {
	return &Fabric{
		client: client,
		opts:   newOptions(NameFabric, DefaultFabricMetaURL, opts),
	}
}

// Name returns "fabric".
func (f *Fabric) Name() string {
	return NameFabric
}

// Resolve picks each axis (requested value or that axis's latest),
// validates it and composes the server launcher URL.
//
// The game axis always uses the first stable entry as latest. The loader
// and installer axes accept unstable entries when the matching Request flag
// is set.
func (f *Fabric) Resolve(ctx context.Context, req Request) (*model.Release, error) {
	base := strings.TrimRight(f.opts.baseURL, "/")
	f.opts.logger.Debug("fetching versions", "url", base)

	var versions dto.FabricVersions
	if err := f.client.GetJSON(ctx, base, &versions); err != nil {
		return nil, fetchError(NameFabric, "fetch versions", err)
	}

	game, err := f.axis(AxisVersion, versions.Game, req.Version, false)
	if err != nil {
		return nil, err
	}
	loader, err := f.axis(AxisLoader, versions.Loader, req.LoaderVersion, req.UnstableLoader)
	if err != nil {
		return nil, err
	}
	installer, err := f.axis(AxisInstaller, versions.Installer, req.InstallerVersion, req.UnstableInstaller)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/loader/%s/%s/%s/server/jar", base, game, loader, installer)
	f.opts.logger.Debug("resolved", "version", game, "loader", loader, "installer", installer, "url", url)

	return &model.Release{
		Provider:  NameFabric,
		URL:       url,
		Version:   game,
		Loader:    loader,
		Installer: installer,
	}, nil
}

// axis returns the effective value for one axis or the error to report.
func (f *Fabric) axis(axis Axis, entries dto.FabricEntries, requested string, allowUnstable bool) (string, error) {
	latest, ok := entries.Latest(allowUnstable)
	if !ok {
		if len(entries) == 0 {
			return "", manifestError(NameFabric, "manifest lists no %s entries", axis)
		}
		return "", manifestError(NameFabric, "manifest has no stable %s entry", axis)
	}

	if requested == "" {
		return latest, nil
	}
	if f.opts.ordering.Exceeds(requested, latest) || !entries.Contains(requested) {
		return "", &NotFoundError{
			Provider:  NameFabric,
			Axis:      axis,
			Requested: requested,
			Latest:    latest,
		}
	}
	return requested, nil
}
