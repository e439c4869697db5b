// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the records shared between input resolution, the
// conversion pipeline, and the CLI surface.
package types

// Format identifies a supported raster image format. It is resolved once,
// from the file extension, at input-resolution time.
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatGIF  Format = "gif"
	FormatTIFF Format = "tiff"
	FormatWebP Format = "webp"
)

// Formats lists the supported input formats in display order.
func Formats() []Format {
	return []Format{FormatJPEG, FormatPNG, FormatBMP, FormatGIF, FormatTIFF, FormatWebP}
}

// ConversionStatus indicates the outcome of converting a single source image.
type ConversionStatus string

const (
	ConversionDone    ConversionStatus = "converted"
	ConversionSkipped ConversionStatus = "skipped"
	ConversionFailed  ConversionStatus = "failed"
)

// ImageSource is a resolved input image: a filesystem path plus its format
// tag. Sources are read-only once resolved.
type ImageSource struct {
	// Path is the filesystem path to the image file.
	Path string `json:"path" yaml:"path"`

	// Format is the image format derived from the file extension.
	Format Format `json:"format" yaml:"format"`
}

// Options holds the configuration for one conversion run. It is built once,
// from CLI flags or interactive prompts, and never mutated afterwards.
type Options struct {
	// ResizeA4 scales each image to fit A4 paper dimensions, preserving
	// aspect ratio.
	ResizeA4 bool `json:"resize_a4" yaml:"resize_a4"`

	// Quality is the JPEG re-encoding quality (1-100).
	Quality int `json:"quality" yaml:"quality"`

	// MergePath, when non-empty, combines all inputs into one multi-page
	// PDF at this path instead of producing one PDF per input.
	MergePath string `json:"merge_path,omitempty" yaml:"merge_path,omitempty"`

	// DirectoryMode treats the positional argument as a directory and
	// batch-processes its supported contents.
	DirectoryMode bool `json:"directory_mode" yaml:"directory_mode"`

	// OutputPath overrides the output file for a single input in per-file
	// mode. Ignored when more than one source resolves or MergePath is set.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`

	// ReportPath, when non-empty, writes a YAML run report after the run.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 95
