// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdutil

import (
	"strings"
	"testing"
)

func TestProgramName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"toilet/bin/program", "program"},
		{"/usr/local/bin/ccat", "ccat"},
		{"program", "program"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ProgramName(tt.path); got != tt.want {
			t.Errorf("ProgramName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes uppercase", "Y\n", true},
		{"no", "n\n", false},
		{"empty", "\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			got, err := Confirm(strings.NewReader(tt.input), &out, "continue?")
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "continue?") {
				t.Errorf("prompt = %q, want it to contain the message", out.String())
			}
		})
	}
}
