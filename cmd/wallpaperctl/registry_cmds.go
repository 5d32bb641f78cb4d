package main

import (
	"fmt"
	"path/filepath"

	"github.com/dixieflatline76/wallpaperd/pkg/registry"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newListCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered images in rotation order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := opts.openRegistry()
			if err != nil {
				return err
			}
			defer reg.Close()

			entries, err := reg.Entries(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%d\t%s\t%s\n", e.ID, e.AddedTime.Format("2006-01-02 15:04:05"), e.Path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON")
	return cmd
}

func newAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add PATH...",
		Short: "Append images to the rotation.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := opts.openRegistry()
			if err != nil {
				return err
			}
			defer reg.Close()

			for _, arg := range args {
				path, err := filepath.Abs(arg)
				if err != nil {
					return fmt.Errorf("failed to resolve %s: %w", arg, err)
				}
				// The GUI only offers existing files; here a missing one is allowed but flagged.
				if ok, err := afero.Exists(opts.fs, path); err != nil || !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s does not exist\n", path)
				}
				id, err := reg.Add(cmd.Context(), path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added #%d %s\n", id, path)
			}
			return nil
		},
	}
}

func newRemoveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PATH",
		Short: "Remove one registry entry for PATH.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := opts.openRegistry()
			if err != nil {
				return err
			}
			defer reg.Close()

			path, removed, err := removeEither(cmd, reg, args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no registry entry for %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", path)
			return nil
		},
	}
}

// removeEither tries the path as stored first, then its absolute form, matching what add stores.
func removeEither(cmd *cobra.Command, reg *registry.Registry, arg string) (string, bool, error) {
	removed, err := reg.Remove(cmd.Context(), arg)
	if err != nil || removed {
		return arg, removed, err
	}
	abs, err := filepath.Abs(arg)
	if err != nil || abs == arg {
		return arg, false, nil
	}
	removed, err = reg.Remove(cmd.Context(), abs)
	return abs, removed, err
}
