// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf writes PDF documents from encoded page images. All PDF
// structure generation is delegated to pdfcpu.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// WriteFile creates (or overwrites) a PDF at path with one page per encoded
// image, in slice order. pdfcpu sizes each page to its image. An empty page
// list is an error; a failure to create or write the file is fatal to the
// run and surfaces to the caller.
func WriteFile(path string, pages [][]byte) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages to write to %s", path)
	}

	readers := make([]io.Reader, len(pages))
	for i, p := range pages {
		readers[i] = bytes.NewReader(p)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := api.ImportImages(nil, f, readers, nil, nil); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing PDF %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
