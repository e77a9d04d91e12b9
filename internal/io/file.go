package ioutils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata" // Europe/Berlin on systems without a zoneinfo database
)

// EULAFileName is the file the server reads its EULA acceptance from.
const EULAFileName = "eula.txt"

const (
	eulaNotice     = "#By changing the setting below to TRUE you are indicating your agreement to our EULA (https://aka.ms/MinecraftEULA)."
	eulaTimeLayout = "Mon Jan 02 15:04:05 MST 2006"
	eulaZone       = "Europe/Berlin"
)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// EnsureParentDir creates the directory that will contain path.
//
// Example:
//
//	err := EnsureParentDir("servers/paper/server.jar")
//	// Creates servers/paper if needed
func EnsureParentDir(path string) error {
	return EnsureDir(filepath.Dir(path))
}

// EULAContent renders the accepted eula.txt for the given instant.
//
// The timestamp is shown in Central European time, the zone the server
// itself stamps the file with.
func EULAContent(now time.Time) string {
	loc, err := time.LoadLocation(eulaZone)
	if err != nil {
		loc = time.UTC
	}
	return fmt.Sprintf("%s\n#%s\neula=true\n", eulaNotice, now.In(loc).Format(eulaTimeLayout))
}

// WriteEULA writes an accepted eula.txt into dir and returns its path.
//
// Example:
//
//	path, err := WriteEULA(".", time.Now())
//	// ./eula.txt:
//	// #By changing the setting below to TRUE ...
//	// #Fri Jun 14 10:03:11 CEST 2024
//	// eula=true
func WriteEULA(dir string, now time.Time) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, EULAFileName)
	if err := WriteFile(path, []byte(EULAContent(now))); err != nil {
		return "", err
	}
	return path, nil
}
