// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ansi provides terminal color and style values and escape-sequence
// builders. Color, Style, and TextStyle all implement fmt.Stringer, so they
// can be interpolated straight into output:
//
//	fmt.Printf("%s%serror:%s something broke\n", ansi.Bold, ansi.Red, ansi.Reset)
package ansi

import (
	"fmt"
	"strconv"
)

type colorKind uint8

const (
	colorNone colorKind = iota
	colorReset
	colorNamed
	colorByte
	colorRGB
)

// Color is an ANSI named, 8-bit, or RGB terminal color. The zero value is
// None, which renders to nothing. String writes the foreground escape.
type Color struct {
	kind    colorKind
	n       uint8
	r, g, b uint8
}

// Named colors. ResetColor restores the terminal's default color without
// touching other styles.
var (
	None         = Color{}
	ResetColor   = Color{kind: colorReset}
	Black        = named(0)
	Red          = named(1)
	Green        = named(2)
	Yellow       = named(3)
	Blue         = named(4)
	Purple       = named(5)
	Cyan         = named(6)
	White        = named(7)
	BrightBlack  = named(8)
	BrightRed    = named(9)
	BrightGreen  = named(10)
	BrightYellow = named(11)
	BrightBlue   = named(12)
	BrightPurple = named(13)
	BrightCyan   = named(14)
	BrightWhite  = named(15)
)

func named(n uint8) Color {
	return Color{kind: colorNamed, n: n}
}

// Byte returns an 8-bit palette color.
func Byte(n uint8) Color {
	return Color{kind: colorByte, n: n}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

func rgbToByte(r, g, b uint8) uint8 {
	return uint8(16 + (uint32(r)*6/256)*36 + (uint32(g)*6/256)*6 + uint32(b)*6/256)
}

// ByteValue returns the 256-color palette index closest to the color.
func (c Color) ByteValue() uint8 {
	if c.kind == colorRGB {
		return rgbToByte(c.r, c.g, c.b)
	}
	return c.n
}

func (c Color) fgCode() string {
	switch c.kind {
	case colorNone:
		return ""
	case colorReset:
		return "39"
	case colorByte:
		return "38;5;" + strconv.Itoa(int(c.n))
	case colorRGB:
		return fmt.Sprintf("38;2;%d;%d;%d", c.r, c.g, c.b)
	default:
		if c.n < 8 {
			return "3" + strconv.Itoa(int(c.n))
		}
		return "9" + strconv.Itoa(int(c.n-8))
	}
}

func (c Color) bgCode() string {
	switch c.kind {
	case colorNone:
		return ""
	case colorReset:
		return "49"
	case colorByte:
		return "48;5;" + strconv.Itoa(int(c.n))
	case colorRGB:
		return fmt.Sprintf("48;2;%d;%d;%d", c.r, c.g, c.b)
	default:
		if c.n < 8 {
			return "4" + strconv.Itoa(int(c.n))
		}
		return "10" + strconv.Itoa(int(c.n-8))
	}
}

func (c Color) ulCode() string {
	switch c.kind {
	case colorNone:
		return ""
	case colorReset:
		return "59"
	case colorRGB:
		return fmt.Sprintf("58;2;%d;%d;%d", c.r, c.g, c.b)
	default:
		return "58;5;" + strconv.Itoa(int(c.ByteValue()))
	}
}

// Fg returns the foreground escape sequence for the color.
func (c Color) Fg() string {
	return escSeq(c.fgCode())
}

// Bg returns the background escape sequence for the color.
func (c Color) Bg() string {
	return escSeq(c.bgCode())
}

// Ul returns the underline-color escape sequence for the color.
func (c Color) Ul() string {
	return escSeq(c.ulCode())
}

func (c Color) String() string {
	return c.Fg()
}

// ParseColor parses a color name ("red", "bright-blue"; '-', '_', or a space
// separate the "bright" prefix), "gray", or an 8-bit palette index ("21").
func ParseColor(s string) (Color, error) {
	for i, ch := range s {
		if ch != '-' && ch != '_' && ch != ' ' {
			continue
		}
		if s[:i] != "bright" {
			continue
		}
		switch s[i+1:] {
		case "none":
			return None, nil
		case "black":
			return BrightBlack, nil
		case "red":
			return BrightRed, nil
		case "green":
			return BrightGreen, nil
		case "yellow":
			return BrightYellow, nil
		case "blue":
			return BrightBlue, nil
		case "purple":
			return BrightPurple, nil
		case "cyan":
			return BrightCyan, nil
		case "white":
			return BrightWhite, nil
		}
		return Color{}, fmt.Errorf("unknown color %q", s)
	}

	switch s {
	case "none":
		return None, nil
	case "black":
		return Black, nil
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "yellow":
		return Yellow, nil
	case "blue":
		return Blue, nil
	case "purple":
		return Purple, nil
	case "cyan":
		return Cyan, nil
	case "white":
		return White, nil
	case "gray":
		return BrightBlack, nil
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Byte(uint8(n)), nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

// escSeq wraps an SGR code list in an escape sequence. An empty code renders
// to nothing, which is what lets None colors disappear from output.
func escSeq(code string) string {
	if code == "" {
		return ""
	}
	return "\x1b[" + code + "m"
}
