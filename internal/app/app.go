// Package app wires the destination resolver, the fetcher and error
// presentation into a single run.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/handiism/bings-everyday-wallpaper/internal/config"
	"github.com/handiism/bings-everyday-wallpaper/internal/download"
	ioutils "github.com/handiism/bings-everyday-wallpaper/internal/io"
	"github.com/handiism/bings-everyday-wallpaper/internal/model"
	"github.com/handiism/bings-everyday-wallpaper/internal/output"
)

// Presenter shows a failure to the user interactively.
type Presenter interface {
	Present(message string) error
}

// Failure is returned by Run for every unsuccessful run. It has already been
// logged and, when a Presenter is configured, presented.
type Failure struct {
	// Err is the underlying cause, usually a *model.Error.
	Err error

	// Recovered holds the panic value when the run panicked.
	Recovered any
}

func (f *Failure) Error() string {
	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Canceled reports whether the run was stopped by context cancellation.
func (f *Failure) Canceled() bool {
	return errors.Is(f.Err, context.Canceled)
}

// App runs one download of the image of the day.
type App struct {
	settings  *config.Settings
	presenter Presenter
	logger    *output.Logger
}

// New creates an App. presenter may be nil to disable interactive reporting.
func New(settings *config.Settings, presenter Presenter, logger *output.Logger) *App {
	return &App{
		settings:  settings,
		presenter: presenter,
		logger:    logger,
	}
}

// Run resolves rawPath and downloads today's image there.
//
// On success the resolved destination is returned. On failure the error is a
// *Failure and has already been reported.
func (a *App) Run(ctx context.Context, rawPath string) (dest *model.Destination, err error) {
	defer func() {
		if r := recover(); r != nil {
			dest = nil
			err = a.fail(&Failure{Err: fmt.Errorf("panic: %v", r), Recovered: r})
		}
	}()

	if err := a.settings.Validate(); err != nil {
		return nil, a.fail(&Failure{Err: fmt.Errorf("invalid settings: %w", err)})
	}

	dest, err = ioutils.ResolveDestination(rawPath, a.settings.DefaultFileName)
	if err != nil {
		return nil, a.fail(&Failure{Err: err})
	}
	a.logger.Debug("Resolved %q (%s) to %q", dest.Raw, dest.State, dest.Path)

	a.logger.Info("Downloading ...")

	fetcher := download.NewFetcher(a.settings, a.logProgress)
	if _, err := fetcher.Fetch(ctx, dest); err != nil {
		return nil, a.fail(&Failure{Err: err})
	}

	a.logger.Info("Download completed, the image will save to '%s'", dest.Path)
	return dest, nil
}

func (a *App) fail(f *Failure) *Failure {
	a.logger.Error("%v", f.Err)

	if a.presenter == nil || f.Canceled() {
		return f
	}
	a.logger.Debug("Presenting failure in dialog")
	if err := a.presenter.Present(f.Err.Error()); err != nil {
		a.logger.Warn("Dialog error: %v", err)
	}
	return f
}

func (a *App) logProgress(event download.ProgressEvent) {
	switch event.Level {
	case download.LevelVerbose:
		a.logger.Debug("%s", event.Message)
	case download.LevelWarning:
		a.logger.Warn("%s", event.Message)
	case download.LevelError:
		a.logger.Error("%s", event.Message)
	case download.LevelSuccess:
		a.logger.Success("%s", event.Message)
	default:
		a.logger.Info("%s", event.Message)
	}
}
