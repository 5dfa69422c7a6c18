package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	require.NoError(t, s.Validate())
	assert.Equal(t, "https://cn.bing.com/HPImageArchive.aspx?format=js&n=1", s.MetadataURL)
	assert.Equal(t, "https://www.bing.com", s.ImageHost)
	assert.Equal(t, "bings-everyday-wallpaper.jpg", s.DefaultFileName)
	assert.Equal(t, 30*time.Second, s.RequestTimeout)
	assert.False(t, s.Dialog)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"empty metadata URL", func(s *Settings) { s.MetadataURL = "" }},
		{"relative metadata URL", func(s *Settings) { s.MetadataURL = "/HPImageArchive.aspx" }},
		{"image host without scheme", func(s *Settings) { s.ImageHost = "www.bing.com" }},
		{"empty default file name", func(s *Settings) { s.DefaultFileName = "" }},
		{"zero timeout", func(s *Settings) { s.RequestTimeout = 0 }},
		{"negative timeout", func(s *Settings) { s.RequestTimeout = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(s)
			assert.Error(t, s.Validate())
		})
	}
}
