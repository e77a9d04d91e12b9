// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - File writing and directory creation
//   - The accepted eula.txt a server needs before first start
//   - Server icon conversion
//
// # File Operations
//
//	// Ensure the jar's directory exists
//	err := ioutils.EnsureParentDir("servers/paper/server.jar")
//
//	// Accept the EULA
//	path, err := ioutils.WriteEULA("servers/paper", time.Now())
//
// # Image Processing
//
// The ImageService turns any PNG, JPEG or GIF into the 64x64 PNG the
// server shows in the multiplayer list:
//
//	svc := ioutils.NewImageService()
//	path, err := svc.WriteServerIcon(ctx, "logo.jpg", "servers/paper")
package ioutils
