// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/img2pdf/pkg/types"
)

// promptOptions gathers inputs and options interactively. It produces the
// same Options structure as the flag path, so the conversion logic itself is
// shared; base carries the flag/config defaults for anything left blank.
func promptOptions(in io.Reader, out io.Writer, base types.Options) (types.Options, []string, error) {
	r := bufio.NewReader(in)
	opts := base

	fmt.Fprintln(out, "img2pdf interactive mode")
	fmt.Fprintln(out)

	input, err := prompt(r, out, "Image path, glob pattern, or directory: ")
	if err != nil {
		return types.Options{}, nil, err
	}
	if input == "" {
		return types.Options{}, nil, fmt.Errorf("no input given")
	}

	dir, err := prompt(r, out, "Treat input as a directory? [y/N]: ")
	if err != nil {
		return types.Options{}, nil, err
	}
	opts.DirectoryMode = isYes(dir)

	merge, err := prompt(r, out, "Merge into one PDF (output path, empty for one PDF per image): ")
	if err != nil {
		return types.Options{}, nil, err
	}
	opts.MergePath = merge

	a4, err := prompt(r, out, "Resize pages to A4? [y/N]: ")
	if err != nil {
		return types.Options{}, nil, err
	}
	if a4 != "" {
		opts.ResizeA4 = isYes(a4)
	}

	q, err := prompt(r, out, fmt.Sprintf("JPEG quality 1-100 [%d]: ", opts.Quality))
	if err != nil {
		return types.Options{}, nil, err
	}
	if q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 || n > 100 {
			return types.Options{}, nil, fmt.Errorf("quality must be a number between 1 and 100, got %q", q)
		}
		opts.Quality = n
	}

	return opts, []string{input}, nil
}

func prompt(r *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func isYes(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "y" || s == "yes"
}
