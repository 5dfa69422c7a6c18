package ioutils

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/handiism/bings-everyday-wallpaper/internal/model"
)

// ErrIsDirectory is returned when a file write targets an existing directory.
var ErrIsDirectory = errors.New("destination is a directory")

// WriteFile writes data to path, replacing any existing content in full.
//
// The data is written to a temporary file in the same directory, flushed to
// disk and renamed over path. If anything fails the temporary file is removed
// and path is left untouched.
//
// A symlink at path is followed and its target is replaced, so the link
// itself survives. An existing file keeps its permission bits; a new file
// gets mode 0644.
//
// All failures are returned as *model.Error of kind KindFilesystem.
//
// Example:
//
//	err := WriteFile(ctx, "/home/me/Pictures/bings-everyday-wallpaper.jpg", imageData)
func WriteFile(ctx context.Context, path string, data []byte) error {
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(target); err == nil {
		if info.IsDir() {
			return model.NewFilesystemError("write image", path, ErrIsDirectory)
		}
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return model.NewFilesystemError("create temporary file", path, err)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if committed {
			return
		}
		tmp.Close()
		os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return model.NewFilesystemError("write image", tmpName, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return model.NewFilesystemError("chmod image", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		return model.NewFilesystemError("flush image", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return model.NewFilesystemError("close image", tmpName, err)
	}

	if err := ctx.Err(); err != nil {
		return model.NewFilesystemError("write image", path, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return model.NewFilesystemError("replace image", path, err)
	}
	committed = true
	return nil
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/home/me/Pictures/bing")
//	// Creates /home/me/Pictures and /home/me/Pictures/bing if needed
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
