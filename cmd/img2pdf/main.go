// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the img2pdf CLI: a batch converter
// that turns raster images into single- or multi-page PDF documents.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command. With input arguments it runs a conversion
// batch directly; with none, on a terminal, it falls back to interactive
// prompts that build the same options.
var rootCmd = &cobra.Command{
	Use:   "img2pdf [inputs...]",
	Short: "Convert raster images to PDF documents",
	Long: `img2pdf converts raster images (JPG, PNG, BMP, GIF, TIFF, WebP) into PDF
documents. Inputs may be explicit file paths, quoted glob patterns, or a
directory (with --directory). Each image becomes its own PDF next to the
source, or all images merge into one multi-page PDF with --merge.

Transparency is flattened onto a white background; --resize-a4 fits each
page to A4 paper dimensions. Run with no arguments for interactive mode.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./img2pdf.yaml or ~/.config/img2pdf/config.yaml)")

	rootCmd.Flags().Bool("resize-a4", false, "fit each page to A4 paper dimensions, preserving aspect ratio")
	rootCmd.Flags().IntP("quality", "q", 0, "JPEG re-encoding quality, 1-100 (default 95)")
	rootCmd.Flags().StringP("merge", "m", "", "combine all inputs into one multi-page PDF at this path")
	rootCmd.Flags().BoolP("directory", "d", false, "treat the input argument as a directory and batch-process its images")
	rootCmd.Flags().StringP("output", "o", "", "output PDF path for a single input (per-file mode)")
	rootCmd.Flags().String("report", "", "write a YAML run report to this path")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("img2pdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "img2pdf"))
		}
	}

	viper.SetEnvPrefix("IMG2PDF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
