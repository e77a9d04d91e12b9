package provider

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/handiism/mcinit/internal/model"
	"github.com/handiism/mcinit/internal/provider/dto"
)

// Paper resolves builds from the PaperMC downloads API.
//
// The project document lists versions oldest first and each version lists
// its builds oldest first, so "latest" is always the last element. The
// order is the API's, not a numeric sort.
type Paper struct {
	client JSONGetter
	opts   options
}

// NewPaper creates a paper resolver.
func NewPaper(client JSONGetter, opts ...Option) *Paper {
	return &Paper{
		client: client,
		opts:   newOptions(NamePaper, DefaultPaperProjectURL, opts),
	}
}

// Name returns "paper".
func (p *Paper) Name() string {
	return NamePaper
}

// Resolve picks the version and build, validates both against the
// manifest and composes the download URL from the build's file name.
func (p *Paper) Resolve(ctx context.Context, req Request) (*model.Release, error) {
	base := strings.TrimRight(p.opts.baseURL, "/")

	p.opts.logger.Debug("fetching project", "url", base)

	var project dto.PaperProject
	if err := p.client.GetJSON(ctx, base, &project); err != nil {
		return nil, fetchError(NamePaper, "fetch project", err)
	}
	if len(project.Versions) == 0 {
		return nil, manifestError(NamePaper, "project lists no versions")
	}

	latestVersion := project.Versions[len(project.Versions)-1]
	version := req.Version
	if version == "" {
		version = latestVersion
	}
	if p.opts.ordering.Exceeds(version, latestVersion) || !slices.Contains(project.Versions, version) {
		return nil, &NotFoundError{
			Provider:  NamePaper,
			Axis:      AxisVersion,
			Requested: version,
			Latest:    latestVersion,
		}
	}

	versionURL := fmt.Sprintf("%s/versions/%s", base, version)
	p.opts.logger.Debug("fetching builds", "version", version, "url", versionURL)

	var builds dto.PaperVersion
	if err := p.client.GetJSON(ctx, versionURL, &builds); err != nil {
		return nil, fetchError(NamePaper, "fetch builds for "+version, err)
	}
	if len(builds.Builds) == 0 {
		return nil, manifestError(NamePaper, "version %s has no builds", version)
	}

	latestBuild := builds.Builds[len(builds.Builds)-1]
	build := req.Build
	if build == 0 {
		build = latestBuild
	}
	if build > latestBuild || !slices.Contains(builds.Builds, build) {
		return nil, &NotFoundError{
			Provider:  NamePaper,
			Axis:      AxisBuild,
			Requested: strconv.Itoa(build),
			Latest:    strconv.Itoa(latestBuild),
		}
	}

	buildURL := fmt.Sprintf("%s/builds/%d", versionURL, build)
	p.opts.logger.Debug("fetching build", "version", version, "build", build, "url", buildURL)

	var doc dto.PaperBuild
	if err := p.client.GetJSON(ctx, buildURL, &doc); err != nil {
		return nil, fetchError(NamePaper, fmt.Sprintf("fetch build %d of %s", build, version), err)
	}
	name := doc.Downloads.Application.Name
	if name == "" {
		return nil, manifestError(NamePaper, "build %d of %s has no application download", build, version)
	}

	url := fmt.Sprintf("%s/downloads/%s", buildURL, name)
	p.opts.logger.Debug("resolved", "version", version, "build", build, "url", url)

	return &model.Release{
		Provider: NamePaper,
		URL:      url,
		Version:  version,
		Build:    strconv.Itoa(build),
	}, nil
}
