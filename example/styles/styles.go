// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// A tour of the ansi package: colors, composed styles, cursor escapes, and
// the spinner.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/yeetrun/clikit/pkg/ansi"
	"github.com/yeetrun/clikit/pkg/tui"
)

func main() {
	fmt.Printf("Byte of (255, 0, 0) is %d (should be 196)\n", ansi.RGB(255, 0, 0).ByteValue())

	fmt.Printf("%sRed text!%s\n", ansi.Red, ansi.Reset)
	fmt.Printf("%s%sBlue on bright red!%s\n", ansi.Blue, ansi.BrightRed.Bg(), ansi.Reset)
	fmt.Printf("%s%s%sItalic bold cyan!%s\n", ansi.Italic, ansi.Bold, ansi.Cyan, ansi.Reset)

	weird := ansi.NewTextStyle(
		ansi.WithForeground(ansi.Byte(93)),
		ansi.WithStyles(ansi.Underlined),
		ansi.WithUnderline(ansi.RGB(0, 255, 0), ansi.UnderlineCurly),
	)
	fmt.Printf("%sPurple with a curly green underline!%s\n", weird, ansi.Reset)

	fmt.Printf("This is a 'word' that gets replaced!%sbird\n", ansi.CursorColumn(12))

	enabled := ansi.Enabled(os.Stdout)
	s := tui.NewSpinner(os.Stdout,
		tui.WithHideCursor(enabled),
		tui.WithFrameColor(ansi.Green, enabled),
	)
	s.Start("spinning for a second")
	time.Sleep(time.Second)
	s.Stop(false)
}
