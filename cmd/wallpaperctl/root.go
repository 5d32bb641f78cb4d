package main

import (
	"github.com/dixieflatline76/wallpaperd/config"
	"github.com/dixieflatline76/wallpaperd/pkg/registry"
	"github.com/dixieflatline76/wallpaperd/pkg/wallpaper"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// newOS is replaced in tests.
var newOS = wallpaper.GetOS

type options struct {
	dbPath string
	fs     afero.Fs // checks that added images exist
}

// newRootCmd builds the command tree. Each call returns fresh commands and flags.
func newRootCmd() *cobra.Command {
	return newRootCmdWithFs(afero.NewOsFs())
}

func newRootCmdWithFs(fs afero.Fs) *cobra.Command {
	opts := &options{fs: fs}

	rootCmd := &cobra.Command{
		Use:           "wallpaperctl",
		Short:         "Manage the " + config.AppName + " image registry.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", config.DBFileName, "path of the image registry database")

	rootCmd.AddCommand(
		newListCmd(opts),
		newAddCmd(opts),
		newRemoveCmd(opts),
		newRunCmd(opts),
	)
	return rootCmd
}

func (o *options) openRegistry() (*registry.Registry, error) {
	return registry.Open(o.dbPath, nil)
}
