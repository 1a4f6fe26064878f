// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Writing a file only when nothing exists at the destination
//   - Directory creation
//   - Optional image downscaling
//
// # File Operations
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("downloads/images_<id>")
//
//	// Write unless the file is already there
//	written, err := ioutils.WriteFileIfAbsent(ctx, path, body)
//
// # Image Processing
//
//	svc := ioutils.NewImageService()
//	out, resized, _ := svc.ResizeImage(ctx, body, 2000, 2000)
package ioutils
