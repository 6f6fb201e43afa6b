// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flags provides a small command-line argument parser built around
// caller-owned output slots.
//
// Long flags are made of two dashes and a word (--help). Short flags are made
// of a dash and a single letter (-n). Short flags of Bool or Count kind can be
// combined: -vAsn sets all of -v, -A, -s, -n. Flags which take a value can't
// be followed by another flag inside a combination.
//
// Flags which take a value consume the next token (-k value) or an inline
// value (-k=value, --key=value). When parsing the whole input, a special "--"
// token causes the rest of the input to be treated as arguments, dropping the
// "--" itself. When parsing only until a subcommand, "--" halts the scan and
// is returned with the remainder. A lone "-" is always an argument.
//
// # Basic usage
//
//	var verbose bool
//	var output string
//
//	args, err := flags.Parse(os.Args[1:],
//	    flags.BoolVar(&verbose, "-v", "--verbose"),
//	    flags.StringVar(&output, "-o", "--output"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Subcommands
//
// For a multi-level CLI, parse global flags up to the first non-flag token and
// hand the rest to a nested parse:
//
//	rest, err := flags.ParseUntilSubcommand(os.Args[1:],
//	    flags.BoolVar(&verbose, "-v"),
//	)
//	// rest[0], if present, is the subcommand; parse rest[1:] with the
//	// subcommand's own flag list.
//
// Parsing is a single left-to-right pass with at most one token of lookahead.
// The first malformed token stops the scan; slot writes made before that point
// are kept. A parse call never shares state, so independent parses with
// distinct flag lists are safe from separate goroutines.
package flags
