package main

import (
	"github.com/spf13/cobra"

	"github.com/handiism/bings-everyday-wallpaper/internal/app"
	"github.com/handiism/bings-everyday-wallpaper/internal/config"
	"github.com/handiism/bings-everyday-wallpaper/internal/output"
	"github.com/handiism/bings-everyday-wallpaper/internal/tui"
)

// deps are the collaborators the root command is built from.
type deps struct {
	settings  func() *config.Settings
	presenter func() app.Presenter
	logger    *output.Logger
}

func defaultDeps() deps {
	return deps{
		settings: config.DefaultSettings,
		presenter: func() app.Presenter {
			return tui.NewDialog(tui.DefaultTitle)
		},
		logger: output.DefaultLogger,
	}
}

func newRootCmd(d deps) *cobra.Command {
	var dialog bool

	cmd := &cobra.Command{
		Use:   "bings-everyday-wallpaper <path>",
		Short: "Download Bing's image of the day",
		Long: `Download Bing's image of the day to <path>.

If <path> is an existing directory the image is saved there as
bings-everyday-wallpaper.jpg. An existing file is overwritten. A missing
path without an extension is created as a directory.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := d.settings()
			settings.Dialog = dialog

			var presenter app.Presenter
			if settings.Dialog {
				presenter = d.presenter()
			}

			_, err := app.New(settings, presenter, d.logger).Run(cmd.Context(), args[0])
			return err
		},
	}

	cmd.Flags().BoolVarP(&dialog, "dialog", "d", false, "also show failures in an interactive dialog")

	return cmd
}
