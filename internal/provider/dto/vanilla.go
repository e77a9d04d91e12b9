// Package dto holds the JSON wire shapes of the provider manifests.
package dto

// VanillaManifest is the top-level Mojang version manifest.
//
//	https://piston-meta.mojang.com/mc/game/version_manifest_v2.json
type VanillaManifest struct {
	Latest   VanillaLatest    `json:"latest"`
	Versions []VanillaVersion `json:"versions"`
}

// VanillaLatest holds the two channel pointers.
type VanillaLatest struct {
	Release  string `json:"release"`
	Snapshot string `json:"snapshot"`
}

// For returns the snapshot pointer when snapshot is true, else the release pointer.
func (l VanillaLatest) For(snapshot bool) string {
	if snapshot {
		return l.Snapshot
	}
	return l.Release
}

// VanillaVersion is one manifest entry.
type VanillaVersion struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Find returns the entry whose id equals id exactly.
func (m *VanillaManifest) Find(id string) (VanillaVersion, bool) {
	for _, v := range m.Versions {
		if v.ID == id {
			return v, true
		}
	}
	return VanillaVersion{}, false
}

// VanillaVersionDetail is the per-version document linked from the manifest.
type VanillaVersionDetail struct {
	Downloads VanillaDownloads `json:"downloads"`
}

// VanillaDownloads lists the version's artifacts. Server is nil for
// versions that never shipped a server jar.
type VanillaDownloads struct {
	Server *VanillaDownload `json:"server"`
}

// VanillaDownload is a single artifact reference.
type VanillaDownload struct {
	URL  string `json:"url"`
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
}
