// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/pdiddy/img2pdf/internal/convert"
	"github.com/pdiddy/img2pdf/internal/imaging"
	"github.com/pdiddy/img2pdf/internal/resolve"
	"github.com/pdiddy/img2pdf/pkg/types"
)

func runConvert(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}

	// No inputs: fall back to interactive prompts on a terminal, usage
	// error otherwise (e.g. piped invocations).
	if len(args) == 0 {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("no inputs given (see --help)")
		}
		opts, args, err = promptOptions(os.Stdin, os.Stdout, opts)
		if err != nil {
			return err
		}
	}

	return runBatch(opts, args)
}

// runBatch is the single conversion entry point shared by the CLI and
// interactive paths.
func runBatch(opts types.Options, args []string) error {
	in, err := resolve.Expand(args, opts.DirectoryMode)
	if err != nil {
		return err
	}

	result, runErr := convert.Run(imaging.Renderer{}, in, opts, os.Stdout)

	if opts.ReportPath != "" {
		if err := convert.WriteReport(opts.ReportPath, opts, result); err != nil {
			return err
		}
	}

	if runErr != nil {
		return runErr
	}
	if result.Converted == 0 {
		return fmt.Errorf("no images were converted (%d skipped, %d failed)",
			result.Skipped, result.Failed)
	}
	return nil
}

// optionsFromFlags builds the run options from flags, falling back to viper
// configuration for quality and A4 resizing when the flags are not given.
func optionsFromFlags(cmd *cobra.Command) (types.Options, error) {
	resizeA4, _ := cmd.Flags().GetBool("resize-a4")
	if !cmd.Flags().Changed("resize-a4") && viper.IsSet("resize_a4") {
		resizeA4 = viper.GetBool("resize_a4")
	}

	quality, _ := cmd.Flags().GetInt("quality")
	if quality == 0 {
		quality = viper.GetInt("quality")
	}
	if quality == 0 {
		quality = types.DefaultQuality
	}
	if quality < 1 || quality > 100 {
		return types.Options{}, fmt.Errorf("quality must be between 1 and 100, got %d", quality)
	}

	merge, _ := cmd.Flags().GetString("merge")
	dirMode, _ := cmd.Flags().GetBool("directory")
	output, _ := cmd.Flags().GetString("output")
	report, _ := cmd.Flags().GetString("report")

	return types.Options{
		ResizeA4:      resizeA4,
		Quality:       quality,
		MergePath:     merge,
		DirectoryMode: dirMode,
		OutputPath:    output,
		ReportPath:    report,
	}, nil
}
