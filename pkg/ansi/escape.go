// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ansi

import "strconv"

const (
	esc = "\x1b"
	csi = "\x1b["
)

// Cursor escapes.
const (
	// CursorSave and CursorRestore are the SCO save/restore pair.
	CursorSave    = csi + "s"
	CursorRestore = csi + "u"
	// CursorReset moves to position 0, 0.
	CursorReset = csi + "H"
	CursorHide  = csi + "?25l"
	CursorShow  = csi + "?25h"
)

func CursorUp(n int) string {
	return csi + strconv.Itoa(n) + "A"
}

func CursorDown(n int) string {
	return csi + strconv.Itoa(n) + "B"
}

func CursorRight(n int) string {
	return csi + strconv.Itoa(n) + "C"
}

func CursorLeft(n int) string {
	return csi + strconv.Itoa(n) + "D"
}

// CursorColumn moves to column n of the current line.
func CursorColumn(n int) string {
	return csi + strconv.Itoa(n) + "G"
}

// CursorGoto sets the absolute cursor position.
func CursorGoto(x, y int) string {
	return csi + strconv.Itoa(x) + ";" + strconv.Itoa(y) + "H"
}

// Line escapes jump to the beginning of lines.
const (
	// LineHome is the first character of the current line.
	LineHome = csi + "0G"
)

func LineUp(n int) string {
	return csi + strconv.Itoa(n) + "E"
}

func LineDown(n int) string {
	return csi + strconv.Itoa(n) + "F"
}

// Erase escapes.
const (
	EraseScreen = csi + "2J"
	// EraseWholeScreen also clears the scroll buffer.
	EraseWholeScreen = csi + "3J"
	EraseAllAfter    = csi + "0J"
	EraseAllBefore   = csi + "1J"
	EraseLine        = csi + "2K"
	EraseLineAfter   = csi + "0K"
	EraseLineBefore  = csi + "1K"
)

// EraseAfter inserts n blank characters at the cursor.
func EraseAfter(n int) string {
	return csi + strconv.Itoa(n) + "@"
}

// System escapes.
const (
	ResetState   = esc + "c"
	SaveState    = esc + "7"
	RestoreState = esc + "8"
)

// SetTitle sets the terminal window title.
func SetTitle(title string) string {
	return esc + "]0;" + title + "\a"
}
