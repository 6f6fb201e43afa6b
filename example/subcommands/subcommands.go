// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// A two-level CLI: global flags are parsed up to the first subcommand, then
// the tail is parsed again with the subcommand's own flags.
//
//	go run ./example/subcommands -v build --release ./pkg
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/yeetrun/clikit/pkg/flags"
)

func main() {
	var verbose bool

	rest, err := flags.ParseUntilSubcommand(os.Args[1:],
		flags.BoolVar(&verbose, "-v", "--verbose"),
	)
	if err != nil {
		log.Fatal(err)
	}
	if len(rest) == 0 {
		log.Fatal("usage: subcommands [-v] build|clean [args]")
	}

	sub, tail := rest[0], rest[1:]
	switch sub {
	case "build":
		var release bool
		var tags []string
		args, err := flags.Parse(tail,
			flags.BoolVar(&release, "--release"),
			flags.StringsVar(&tags, "--tag", "-t"),
		)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("build: verbose=%v release=%v tags=%v args=%v\n", verbose, release, tags, args)
	case "clean":
		args, err := flags.Parse(tail)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("clean: verbose=%v args=%v\n", verbose, args)
	default:
		log.Fatalf("unknown subcommand %q", sub)
	}
}
