// Package config provides the runtime settings for bings-everyday-wallpaper.
//
// There is no configuration file. Settings are compiled-in defaults that the
// command adjusts from its flags:
//
//	settings := config.DefaultSettings()
//	settings.Dialog = true
//	if err := settings.Validate(); err != nil {
//	    // programming error, the defaults are always valid
//	}
//
// # Endpoints
//
// MetadataURL returns a JSON document describing today's image. The relative
// URL found there is joined onto ImageHost to fetch the image bytes. Tests
// point both at httptest servers.
package config
