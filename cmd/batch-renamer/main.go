// Package main implements the batch-renamer command.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/taigrr/batch-renamer/internal/config"
	"github.com/taigrr/batch-renamer/internal/filesystem"
	"github.com/taigrr/batch-renamer/internal/notice"
	"github.com/taigrr/batch-renamer/internal/renamer"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	configFile string
	directory  string
	extensions []string
	separator  []string
	padding    string
	recursive  bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "batch-renamer",
		Short: "Swap the two halves of file names in a folder",
		Long: `batch-renamer renames every matching file in a folder by splitting its
name at the last separator, swapping the two parts and joining them back
together, so "artist - title.mp3" becomes "title - artist.mp3".

Renames are applied immediately and are not rolled back if the run fails.`,
		Example: `batch-renamer -d ~/music -e mp3,flac -p " "
batch-renamer -d ~/music -s '\-',_ -r
batch-renamer -c batch-renamer.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRename(cmd, f)
		},
	}

	defaults := config.Default()
	flags := cmd.Flags()
	flags.StringVarP(&f.configFile, "config", "c", "", "YAML file with default options; flags override it")
	flags.StringVarP(&f.directory, "directory", "d", defaults.Directory, "The directory to rename files in")
	flags.StringSliceVarP(&f.extensions, "extensions", "e", defaults.Extensions, "Only files ending with the given extensions are renamed")
	flags.StringSliceVarP(&f.separator, "separator", "s", defaults.Separator,
		"Separator used to split the name, optionally followed by the separator used to join it back. A comma is not allowed")
	flags.StringVarP(&f.padding, "padding", "p", defaults.Padding, "Padding placed on both sides of the join separator")
	flags.BoolVarP(&f.recursive, "recursive", "r", defaults.Recursive, "Rename files in subdirectories too")

	cmd.AddCommand(newServeCmd())

	return cmd
}

func runRename(cmd *cobra.Command, f rootFlags) error {
	opts := config.Default()
	if f.configFile != "" {
		if err := config.LoadFile(f.configFile, &opts); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("directory") {
		opts.Directory = f.directory
	}
	if flags.Changed("extensions") {
		opts.Extensions = f.extensions
	}
	if flags.Changed("separator") {
		opts.Separator = f.separator
	}
	if flags.Changed("padding") {
		opts.Padding = f.padding
	}
	if flags.Changed("recursive") {
		opts.Recursive = f.recursive
	}

	cfg, err := config.Resolve(opts)
	if err != nil {
		return err
	}

	printer := notice.NewPrinter(cmd.OutOrStdout())
	printer.Header(cfg.Directory, cfg.Extensions)

	svc := renamer.New(filesystem.New(afero.NewOsFs()))
	renamed, err := svc.RenameTree(cfg, printer)
	if err != nil {
		return fmt.Errorf("could not rename files: %w", err)
	}

	printer.Summary(renamed)
	return nil
}
