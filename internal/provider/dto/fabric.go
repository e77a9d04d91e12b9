package dto

// FabricVersions is the combined Fabric meta document.
//
//	https://meta.fabricmc.net/v2/versions
type FabricVersions struct {
	Game      FabricEntries `json:"game"`
	Loader    FabricEntries `json:"loader"`
	Installer FabricEntries `json:"installer"`
}

// FabricEntry is one entry of any of the three lists.
type FabricEntry struct {
	Version string `json:"version"`
	Stable  bool   `json:"stable"`
}

// FabricEntries is an ordered list, newest first.
type FabricEntries []FabricEntry

// Latest returns the first entry, in list order, that is stable or, when
// allowUnstable is set, the first entry at all.
func (e FabricEntries) Latest(allowUnstable bool) (string, bool) {
	for _, entry := range e {
		if allowUnstable || entry.Stable {
			return entry.Version, true
		}
	}
	return "", false
}

// Contains reports whether any entry has the given version.
func (e FabricEntries) Contains(version string) bool {
	for _, entry := range e {
		if entry.Version == version {
			return true
		}
	}
	return false
}
