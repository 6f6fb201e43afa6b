// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdutil holds small helpers shared by command-line programs.
package cmdutil

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ProgramName derives a display name from a program path, typically
// os.Args[0]. It keeps only the last path segment.
func ProgramName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

// Confirm prompts on w and reads a y/N answer from r. Anything other than
// "y" or "Y" counts as no.
func Confirm(r io.Reader, w io.Writer, msg string) (bool, error) {
	fmt.Fprintf(w, "%s [y/N]: ", msg)

	var confirm string
	_, err := fmt.Fscanln(r, &confirm)
	if err != nil && err.Error() != "unexpected newline" {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	if strings.ToLower(confirm) != "y" {
		return false, nil
	}
	return true, nil
}
