package bing

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/handiism/bings-everyday-wallpaper/internal/bing/dto"
	"github.com/handiism/bings-everyday-wallpaper/internal/model"
)

var (
	// ErrNoImages is returned when the document has no image entries.
	ErrNoImages = errors.New("images[0] is missing")

	// ErrNoURL is returned when the first image entry has no url.
	ErrNoURL = errors.New("images[0].url is missing or empty")

	// ErrNotRelative is returned when images[0].url is not a host-relative URL.
	ErrNotRelative = errors.New("images[0].url is not a relative URL")
)

// ParseArchive decodes the metadata document and returns its first image entry.
//
// Only images[0] is decoded, and of it only url is required. Other fields and
// other entries are ignored whatever their type. The entry's URL is guaranteed
// to be a non-empty string. Every failure is a *model.Error of kind KindParse.
func ParseArchive(body []byte) (*dto.JSONImage, error) {
	var archive dto.JSONArchive
	if err := json.Unmarshal(body, &archive); err != nil {
		return nil, model.NewParseError("decode metadata", err)
	}

	if len(archive.Images) == 0 {
		return nil, model.NewParseError("read metadata", ErrNoImages)
	}

	var entry dto.JSONImage
	if err := json.Unmarshal(archive.Images[0], &entry); err != nil {
		return nil, model.NewParseError("decode images[0]", err)
	}
	if entry.URL == "" {
		return nil, model.NewParseError("read metadata", ErrNoURL)
	}
	return &entry, nil
}

// ImageURL joins the relative image URL onto host.
//
// relative must be a path plus optional query, as found in images[0].url.
func ImageURL(host, relative string) (string, error) {
	if !strings.HasPrefix(relative, "/") || strings.HasPrefix(relative, "//") {
		return "", model.NewParseError("build image URL", ErrNotRelative)
	}
	if _, err := url.Parse(relative); err != nil {
		return "", model.NewParseError("build image URL", err)
	}
	return strings.TrimRight(host, "/") + relative, nil
}
