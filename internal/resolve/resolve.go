// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve turns CLI input arguments (explicit paths, glob patterns,
// directories) into an ordered list of image sources with format tags.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/img2pdf/pkg/types"
)

// extFormats maps lowercase file extensions to format tags. The extension is
// classified once here; downstream code dispatches on the tag, never on the
// filename.
var extFormats = map[string]types.Format{
	".jpg":  types.FormatJPEG,
	".jpeg": types.FormatJPEG,
	".png":  types.FormatPNG,
	".bmp":  types.FormatBMP,
	".gif":  types.FormatGIF,
	".tif":  types.FormatTIFF,
	".tiff": types.FormatTIFF,
	".webp": types.FormatWebP,
}

// Classify returns the format tag for path based on its extension, and
// whether the extension belongs to the supported set.
func Classify(path string) (types.Format, bool) {
	f, ok := extFormats[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// Extensions returns the supported extensions in sorted display order.
func Extensions() []string {
	return []string{".bmp", ".gif", ".jpeg", ".jpg", ".png", ".tif", ".tiff", ".webp"}
}

// Result holds the outcome of input resolution: the sources to convert, in
// the order they will be processed, plus the paths skipped for an
// unsupported extension and the arguments that matched nothing.
type Result struct {
	Sources     []types.ImageSource
	Unsupported []string
	Missing     []string
}

// Expand resolves a mixture of explicit paths, glob patterns, and (when
// dirMode is set) directory paths into image sources. Explicit arguments keep
// their given order; glob and directory entries keep filesystem-listing
// order. Unsupported extensions and zero-match arguments are collected, not
// fatal, as long as at least one source resolves; resolving zero sources
// overall is an error.
func Expand(args []string, dirMode bool) (Result, error) {
	var res Result
	for _, arg := range args {
		if err := expandArg(arg, dirMode, &res); err != nil {
			return Result{}, err
		}
	}
	if len(res.Sources) == 0 {
		return res, fmt.Errorf("no supported images found in %v", args)
	}
	return res, nil
}

func expandArg(arg string, dirMode bool, res *Result) error {
	info, statErr := os.Stat(arg)

	if statErr == nil && info.IsDir() {
		if !dirMode {
			return fmt.Errorf("%s is a directory (use --directory to batch-process it)", arg)
		}
		return expandDir(arg, res)
	}

	if statErr == nil {
		addPath(arg, res)
		return nil
	}

	// Not an existing file: treat as a glob pattern.
	matches, err := filepath.Glob(arg)
	if err != nil {
		return fmt.Errorf("bad pattern %q: %w", arg, err)
	}
	if len(matches) == 0 {
		res.Missing = append(res.Missing, arg)
		return nil
	}
	for _, m := range matches {
		if fi, err := os.Stat(m); err == nil && fi.IsDir() {
			continue
		}
		addPath(m, res)
	}
	return nil
}

// expandDir adds every supported file in dir, in listing order.
func expandDir(dir string, res *Result) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		addPath(filepath.Join(dir, e.Name()), res)
	}
	return nil
}

func addPath(path string, res *Result) {
	format, ok := Classify(path)
	if !ok {
		res.Unsupported = append(res.Unsupported, path)
		return
	}
	res.Sources = append(res.Sources, types.ImageSource{Path: path, Format: format})
}
