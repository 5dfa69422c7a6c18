package ioutils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/bings-everyday-wallpaper/internal/model"
)

// ResolveDestination turns a raw user supplied path into the location the
// image is written to.
//
//   - Existing directory: defaultName is appended.
//   - Existing file: used as is and overwritten later.
//   - Missing path without an extension: created as a directory chain and
//     used as is. Writing to it later fails with KindFilesystem.
//   - Missing path with an extension: used as is, nothing is touched.
//
// Directory creation failures are returned as *model.Error of kind KindFilesystem.
func ResolveDestination(raw, defaultName string) (*model.Destination, error) {
	dest := &model.Destination{Raw: raw, Path: raw}

	info, err := os.Stat(raw)
	switch {
	case err == nil:
		if info.IsDir() {
			dest.State = model.StateDirectory
			dest.Path = filepath.Join(raw, defaultName)
		} else {
			dest.State = model.StateFile
		}
		return dest, nil

	case os.IsNotExist(err):
		dest.State = model.StateMissing
		if HasExtension(raw) {
			return dest, nil
		}
		// TODO: append defaultName here too, as in the existing directory case.
		if err := EnsureDir(raw); err != nil {
			return nil, model.NewFilesystemError("create directory", raw, err)
		}
		dest.Created = true
		return dest, nil

	default:
		return nil, model.NewFilesystemError("inspect destination", raw, err)
	}
}

// HasExtension reports whether the final element of path has a file extension.
//
// Dot files such as ".wallpaper" have no extension, and neither do "." and "..".
func HasExtension(path string) bool {
	base := filepath.Base(path)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return false
	}
	return strings.LastIndex(base, ".") > 0
}
