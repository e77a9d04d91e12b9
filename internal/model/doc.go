// Package model defines the value types passed between the resolvers, the
// downloader and the user-facing sinks.
//
// # Release
//
// Release is the outcome of resolving a request against a provider manifest:
//
//	rel := &model.Release{
//	    Provider:   "paper",
//	    URL:        "https://api.papermc.io/v2/projects/paper/versions/1.21/builds/101/downloads/paper-1.21-101.jar",
//	    Version:    "1.21",
//	    Build:      "101",
//	}
//	fmt.Println(rel.Descriptor()) // "(Version: 1.21, Build: 101)"
//
// A Release is produced once per resolution, never mutated, and handed
// straight to the downloader.
//
// # Plugin
//
// Plugin is the summary returned by the plugin catalog lookup.
package model
