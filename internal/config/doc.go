// Package config provides configuration management for mcinit.
//
// This package handles:
//   - Loading and saving settings from a TOML file
//   - Default configuration values
//   - MCINIT_* environment overrides
//   - Conversion to HTTP client and resolver options for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Writes server.jar in the working directory
//	// 30s manifest timeout
//	// Numeric version ordering
//
// # Loading from File
//
//	path, _ := config.DefaultPath() // ~/.config/mcinit/config.toml
//	settings, err := config.Load(path)
//	if err != nil {
//	    // Parse error; a missing file yields defaults
//	}
//	settings.ApplyEnv(logger)
//
// # Keys
//
// Get, Set and AvailableKeys back the "mcinit config" command:
//
//	settings.Set("timeout", "60s")
//	v, ok := settings.Get("timeout")
//	err := settings.Save(path)
package config
