package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

const (
	// DefaultMetadataURL is the endpoint describing today's image.
	DefaultMetadataURL = "https://cn.bing.com/HPImageArchive.aspx?format=js&n=1"

	// DefaultImageHost is prefixed to the relative image URL from the metadata document.
	DefaultImageHost = "https://www.bing.com"

	// DefaultFileName is appended when the destination is an existing directory.
	DefaultFileName = "bings-everyday-wallpaper.jpg"

	// DefaultRequestTimeout bounds each of the two requests.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "bings-everyday-wallpaper"
)

// Settings holds all runtime options.
type Settings struct {
	// Endpoints
	MetadataURL string
	ImageHost   string

	// Destination
	DefaultFileName string

	// HTTP
	RequestTimeout time.Duration
	UserAgent      string

	// Dialog enables interactive error presentation.
	Dialog bool
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		MetadataURL:     DefaultMetadataURL,
		ImageHost:       DefaultImageHost,
		DefaultFileName: DefaultFileName,
		RequestTimeout:  DefaultRequestTimeout,
		UserAgent:       DefaultUserAgent,
	}
}

// Validate checks that the settings can drive a run.
func (s *Settings) Validate() error {
	if err := validateAbsoluteURL("metadata URL", s.MetadataURL); err != nil {
		return err
	}
	if err := validateAbsoluteURL("image host", s.ImageHost); err != nil {
		return err
	}
	if s.DefaultFileName == "" {
		return errors.New("default file name is empty")
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", s.RequestTimeout)
	}
	return nil
}

func validateAbsoluteURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is empty", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s %q is not absolute", name, raw)
	}
	return nil
}
