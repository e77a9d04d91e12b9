package model

import (
	"fmt"
	"strings"
)

// Release is a resolved, downloadable server artifact.
//
// Only the identifiers relevant to the provider are set: vanilla fills
// Version, paper fills Version and Build, fabric fills Version, Loader and
// Installer.
type Release struct {
	// Provider is the resolver name ("vanilla", "paper", "fabric").
	Provider string

	// URL is the artifact download URL.
	URL string

	// Version is the Minecraft game version.
	Version string

	// Build is the provider build number (paper).
	Build string

	// Loader is the mod loader version (fabric).
	Loader string

	// Installer is the installer version (fabric).
	Installer string
}

// Descriptor returns the human-readable summary of the resolved identifiers.
//
//	(1.21)                                          vanilla
//	(Version: 1.21, Build: 101)                     paper
//	(Version: 1.21, Loader: 0.16.0, Installer: 1.0) fabric
func (r *Release) Descriptor() string {
	if r.Build == "" && r.Loader == "" && r.Installer == "" {
		return fmt.Sprintf("(%s)", r.Version)
	}

	parts := []string{"Version: " + r.Version}
	if r.Build != "" {
		parts = append(parts, "Build: "+r.Build)
	}
	if r.Loader != "" {
		parts = append(parts, "Loader: "+r.Loader)
	}
	if r.Installer != "" {
		parts = append(parts, "Installer: "+r.Installer)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// String returns "<provider> <descriptor>".
func (r *Release) String() string {
	return r.Provider + " " + r.Descriptor()
}
