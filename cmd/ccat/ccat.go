// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ccat writes files to stdout, optionally colored. A demo for the
// clikit flag parser and ansi package.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/yeetrun/clikit/pkg/ansi"
	"github.com/yeetrun/clikit/pkg/cmdutil"
	"github.com/yeetrun/clikit/pkg/flags"
)

func usage(prog string) {
	fmt.Printf("USAGE: %s [-options] <file> [file2, file3, ...]\n", prog)
	fmt.Println("Write files to standard output, '-' meaning stdin.")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("    -c, --colored <color>  Color output.")
	fmt.Println("        --help             Display this message.")
}

func cat(w io.Writer, path string) error {
	if path == "-" {
		_, err := io.Copy(w, os.Stdin)
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}

func run() int {
	prog := cmdutil.ProgramName(os.Args[0])

	var showHelp bool
	var colorName string

	args, err := flags.Parse(os.Args[1:],
		flags.StringVar(&colorName, "--colored", "-c"),
		flags.BoolVar(&showHelp, "--help"),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", prog, err)
		return 1
	}

	if showHelp {
		usage(prog)
		return 0
	}

	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "%s: no path specified. Try '--help' for more information.\n", prog)
		return 1
	}

	out := ansi.None
	if colorName != "" {
		c, err := ansi.ParseColor(colorName)
		if err != nil {
			fmt.Fprint(os.Stderr, color.RedString("%s: %v\n", prog, err))
			return 1
		}
		if ansi.Enabled(os.Stdout) {
			out = c
		}
	}

	if out != ansi.None {
		fmt.Print(out.Fg())
	}

	code := 0
	for _, path := range args {
		if err := cat(os.Stdout, path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", prog, err)
			code = 1
		}
	}

	if out != ansi.None {
		fmt.Print(ansi.ResetColor.Fg())
	}
	return code
}

func main() {
	os.Exit(run())
}
