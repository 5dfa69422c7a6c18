// Package ioutils provides the file system side of bings-everyday-wallpaper.
//
// This package contains functions for:
//   - Resolving a user supplied path into a concrete destination
//   - Directory creation
//   - Atomic file writing (temp file, fsync, rename)
//   - Probing downloaded image payloads
//
// # Destination Resolution
//
//	dest, err := ioutils.ResolveDestination("~/Pictures", "bings-everyday-wallpaper.jpg")
//	// existing directory: dest.Path = "~/Pictures/bings-everyday-wallpaper.jpg"
//	// existing file:      dest.Path = input
//	// missing, no ext:    directory chain created, dest.Path = input
//	// missing, with ext:  nothing touched, dest.Path = input
//
// # Writing
//
//	err := ioutils.WriteFile(ctx, dest.Path, data)
//
// WriteFile never leaves a half written destination behind: the data lands in
// a temporary sibling first and is renamed over the destination once flushed.
//
// # Image Inspection
//
//	svc := ioutils.NewImageService()
//	info, err := svc.Inspect(data)
//	fmt.Println(info) // jpeg 1920x1080
package ioutils
