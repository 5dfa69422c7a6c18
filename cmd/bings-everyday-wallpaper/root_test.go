package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/bings-everyday-wallpaper/internal/app"
	"github.com/handiism/bings-everyday-wallpaper/internal/config"
	"github.com/handiism/bings-everyday-wallpaper/internal/output"
)

type recordingPresenter struct {
	messages []string
}

func (p *recordingPresenter) Present(message string) error {
	p.messages = append(p.messages, message)
	return nil
}

func testDeps(t *testing.T, metadata string, image []byte) (deps, *recordingPresenter) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	mux := http.NewServeMux()
	mux.HandleFunc("/HPImageArchive.aspx", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(metadata))
	})
	mux.HandleFunc("/th", func(w http.ResponseWriter, r *http.Request) {
		w.Write(image)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	presenter := &recordingPresenter{}
	var out, errOut bytes.Buffer
	return deps{
		settings: func() *config.Settings {
			s := config.DefaultSettings()
			s.MetadataURL = srv.URL + "/HPImageArchive.aspx?format=js&n=1"
			s.ImageHost = srv.URL
			s.RequestTimeout = 5 * time.Second
			return s
		},
		presenter: func() app.Presenter { return presenter },
		logger:    output.NewLoggerTo(&out, &errOut, output.LevelInfo),
	}, presenter
}

func execute(t *testing.T, d deps, args ...string) error {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(d)
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.ExecuteContext(context.Background())
}

func TestRootCmd_Success(t *testing.T) {
	payload := []byte("jpeg bytes")
	d, presenter := testDeps(t, `{"images":[{"url":"/th?id=ABC"}]}`, payload)
	dir := t.TempDir()

	err := execute(t, d, dir)

	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(dir, config.DefaultFileName))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Empty(t, presenter.messages)
	assert.Equal(t, 0, exitCode(err))
}

func TestRootCmd_RequiresPath(t *testing.T) {
	d, _ := testDeps(t, `{}`, nil)

	assert.Error(t, execute(t, d))
	assert.Error(t, execute(t, d, "a", "b"))
}

func TestRootCmd_DialogFlag(t *testing.T) {
	tests := []struct {
		name      string
		flag      []string
		presented bool
	}{
		{"no flag", nil, false},
		{"short", []string{"-d"}, true},
		{"long", []string{"--dialog"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, presenter := testDeps(t, `{"images":[]}`, nil)
			args := append(tt.flag, filepath.Join(t.TempDir(), "today.jpg"))

			err := execute(t, d, args...)

			require.Error(t, err)
			assert.Equal(t, 1, exitCode(err))
			if tt.presented {
				assert.Len(t, presenter.messages, 1)
			} else {
				assert.Empty(t, presenter.messages)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(&app.Failure{Err: errors.New("boom")}))
	assert.Equal(t, 130, exitCode(&app.Failure{Err: context.Canceled}))
}
