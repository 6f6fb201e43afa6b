// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ansi

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Enabled reports whether escape output makes sense for f. It honors the
// NO_COLOR convention, dumb or unset TERM, and whether f is a terminal.
func Enabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	t := os.Getenv("TERM")
	if t == "" || t == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// UnderlineStyleSupported reports whether the terminal understands styled
// underline codes ("4:N"). Only a handful of terminals do; everything else
// would print garbage, so TextStyle drops the codes when this is false.
func UnderlineStyleSupported() bool {
	t := os.Getenv("TERM")
	if strings.Contains(t, "kitty") || strings.Contains(t, "wezterm") {
		return true
	}
	switch os.Getenv("TERM_PROGRAM") {
	case "WezTerm", "iTerm.app", "kitty":
		return true
	}
	return os.Getenv("VTE_VERSION") != ""
}
