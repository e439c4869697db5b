// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/img2pdf/pkg/types"
)

// ReportItem records the outcome for one input.
type ReportItem struct {
	// Source is the input path or pattern as resolved.
	Source string `json:"source" yaml:"source"`

	// Output is the PDF this input contributed to. Empty for skips and
	// render failures.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Status is the conversion outcome: converted, skipped, or failed.
	Status types.ConversionStatus `json:"status" yaml:"status"`

	// Error holds the failure or skip reason. Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunReport is the machine-readable record of one conversion run.
type RunReport struct {
	// FinishedAt is the report timestamp in RFC 3339 form.
	FinishedAt string `json:"finished_at" yaml:"finished_at"`

	// Options echoes the configuration the run used.
	Options types.Options `json:"options" yaml:"options"`

	// Converted, Skipped, and Failed are the summary counts.
	Converted int `json:"converted" yaml:"converted"`
	Skipped   int `json:"skipped" yaml:"skipped"`
	Failed    int `json:"failed" yaml:"failed"`

	// Items lists the per-input outcomes in processing order.
	Items []ReportItem `json:"items" yaml:"items"`
}

// WriteReport writes a YAML run report for result to path.
func WriteReport(path string, opts types.Options, result BatchResult) error {
	report := RunReport{
		FinishedAt: time.Now().UTC().Format(time.RFC3339),
		Options:    opts,
		Converted:  result.Converted,
		Skipped:    result.Skipped,
		Failed:     result.Failed,
		Items:      result.Items,
	}
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
