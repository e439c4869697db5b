package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/img2pdf/internal/resolve"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported input image formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Supported image formats:")
		for _, ext := range resolve.Extensions() {
			fmt.Printf("  %s\n", ext)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
