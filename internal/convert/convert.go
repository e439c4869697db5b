// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the image-to-PDF conversion pipeline: per-file
// output, combined multi-page output, and the run summary.
package convert

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/img2pdf/internal/pdf"
	"github.com/pdiddy/img2pdf/internal/resolve"
	"github.com/pdiddy/img2pdf/pkg/types"
)

// Renderer normalizes one source image into an encoded page ready for PDF
// embedding. The imaging package provides the real implementation; tests
// substitute fakes.
type Renderer interface {
	RenderPage(path string, opts types.Options) ([]byte, error)
}

// writePDF is the document writer. Declared as a var so tests can substitute.
var writePDF = pdf.WriteFile

// BatchResult holds the outcome of a conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
	Items     []ReportItem
}

// Total returns the total number of inputs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any inputs failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Run converts the resolved inputs according to opts, printing per-item
// status lines and a final summary to w. Render failures are demoted to
// status lines and the run continues; a returned error means a fatal
// condition (an output file could not be written) and aborts remaining work.
func Run(r Renderer, in resolve.Result, opts types.Options, w io.Writer) (BatchResult, error) {
	var result BatchResult

	for _, p := range in.Unsupported {
		fmt.Fprintf(w, "skipped: %s (unsupported format)\n", p)
		result.Skipped++
		result.Items = append(result.Items, ReportItem{
			Source: p,
			Status: types.ConversionSkipped,
			Error:  "unsupported format",
		})
	}
	for _, p := range in.Missing {
		fmt.Fprintf(w, "skipped: %s (no matching files)\n", p)
		result.Skipped++
		result.Items = append(result.Items, ReportItem{
			Source: p,
			Status: types.ConversionSkipped,
			Error:  "no matching files",
		})
	}

	var err error
	if opts.MergePath != "" {
		err = runMerged(r, in.Sources, opts, w, &result)
	} else {
		err = runPerFile(r, in.Sources, opts, w, &result)
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result, err
}

// runPerFile writes one single-page PDF next to each source.
func runPerFile(r Renderer, sources []types.ImageSource, opts types.Options, w io.Writer, result *BatchResult) error {
	for _, src := range sources {
		page, err := r.RenderPage(src.Path, opts)
		if err != nil {
			recordFailure(w, result, src.Path, err)
			continue
		}

		out := outputPath(src, sources, opts)
		if err := writePDF(out, [][]byte{page}); err != nil {
			// Write failures are environment-level (permissions, bad
			// destination) and abort the remaining work.
			recordFailure(w, result, src.Path, err)
			return err
		}

		fmt.Fprintf(w, "converted: %s -> %s\n", filepath.Base(src.Path), filepath.Base(out))
		result.Converted++
		result.Items = append(result.Items, ReportItem{
			Source: src.Path,
			Output: out,
			Status: types.ConversionDone,
		})
	}
	return nil
}

// runMerged accumulates every page in resolution order and writes one
// multi-page document. With zero decodable sources no output file is created.
func runMerged(r Renderer, sources []types.ImageSource, opts types.Options, w io.Writer, result *BatchResult) error {
	var pages [][]byte
	var done []int // indexes into result.Items for the accumulated pages

	for _, src := range sources {
		page, err := r.RenderPage(src.Path, opts)
		if err != nil {
			recordFailure(w, result, src.Path, err)
			continue
		}
		pages = append(pages, page)
		result.Items = append(result.Items, ReportItem{
			Source: src.Path,
			Output: opts.MergePath,
			Status: types.ConversionDone,
		})
		done = append(done, len(result.Items)-1)
	}

	if len(pages) == 0 {
		return nil
	}

	if err := writePDF(opts.MergePath, pages); err != nil {
		for _, i := range done {
			result.Items[i].Status = types.ConversionFailed
			result.Items[i].Error = err.Error()
			result.Failed++
		}
		fmt.Fprintf(w, "failed: %s (%v)\n", opts.MergePath, err)
		return err
	}

	result.Converted += len(pages)
	fmt.Fprintf(w, "merged: %d page(s) -> %s\n", len(pages), opts.MergePath)
	return nil
}

func recordFailure(w io.Writer, result *BatchResult, source string, err error) {
	fmt.Fprintf(w, "failed: %s (%v)\n", source, err)
	result.Failed++
	result.Items = append(result.Items, ReportItem{
		Source: source,
		Status: types.ConversionFailed,
		Error:  err.Error(),
	})
}

// outputPath picks the destination for a source in per-file mode: the
// explicit --output path when a single source resolved, otherwise the source
// path with its extension replaced by .pdf.
func outputPath(src types.ImageSource, sources []types.ImageSource, opts types.Options) string {
	if opts.OutputPath != "" && len(sources) == 1 {
		return opts.OutputPath
	}
	return strings.TrimSuffix(src.Path, filepath.Ext(src.Path)) + ".pdf"
}
