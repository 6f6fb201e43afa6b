// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ansi

import (
	"fmt"
	"strconv"
	"strings"
)

// Style is a terminal text style code. String writes its escape sequence.
// Reset clears all colors and styles.
type Style uint8

const (
	Reset              Style = 0
	Bold               Style = 1
	Faint              Style = 2
	Italic             Style = 3
	Underlined         Style = 4
	Strikethrough      Style = 9
	ResetBold          Style = 22
	ResetItalic        Style = 23
	ResetUnderline     Style = 24
	ResetStrikethrough Style = 29

	// NoStyle renders to nothing.
	NoStyle Style = 255
)

func (s Style) String() string {
	if s == NoStyle {
		return ""
	}
	return escSeq(strconv.Itoa(int(s)))
}

// ParseStyle parses a style name. Matching is case-insensitive and accepts a
// few aliases ("underline", "crossed").
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "default", "none", "reset":
		return Reset, nil
	case "bold":
		return Bold, nil
	case "faint":
		return Faint, nil
	case "italic":
		return Italic, nil
	case "underlined", "underline":
		return Underlined, nil
	case "strikethrough", "striked", "crossed":
		return Strikethrough, nil
	}
	return NoStyle, fmt.Errorf("unknown style %q", s)
}

// UnderlineStyle selects the shape of a styled underline ("4:N" codes). These
// only take effect on terminals that support styled underlines; see
// UnderlineStyleSupported.
type UnderlineStyle uint8

const (
	UnderlineStraight UnderlineStyle = 1
	UnderlineDouble   UnderlineStyle = 2
	UnderlineCurly    UnderlineStyle = 3
	UnderlineDotted   UnderlineStyle = 4
	UnderlineDashed   UnderlineStyle = 5
)

func (u UnderlineStyle) code() string {
	return "4:" + strconv.Itoa(int(u))
}

func (u UnderlineStyle) String() string {
	return escSeq(u.code())
}

// ParseUnderlineStyle parses an underline style name, case-insensitively.
func ParseUnderlineStyle(s string) (UnderlineStyle, error) {
	switch strings.ToLower(s) {
	case "default", "straight":
		return UnderlineStraight, nil
	case "double":
		return UnderlineDouble, nil
	case "curly":
		return UnderlineCurly, nil
	case "dotted":
		return UnderlineDotted, nil
	case "dashed":
		return UnderlineDashed, nil
	}
	return 0, fmt.Errorf("unknown underline style %q", s)
}

// TextStyle is a composed foreground, background, and set of styles that
// renders as one merged escape sequence. Build it with NewTextStyle.
type TextStyle struct {
	fg      Color
	bg      Color
	styles  []Style
	ulColor Color
	ulStyle UnderlineStyle
}

// TextStyleOption configures a TextStyle.
type TextStyleOption func(*TextStyle)

func WithForeground(c Color) TextStyleOption {
	return func(t *TextStyle) {
		t.fg = c
	}
}

func WithBackground(c Color) TextStyleOption {
	return func(t *TextStyle) {
		t.bg = c
	}
}

// WithStyles adds styles to the composition. It can be used multiple times.
func WithStyles(styles ...Style) TextStyleOption {
	return func(t *TextStyle) {
		t.styles = append(t.styles, styles...)
	}
}

// WithUnderline sets the underline color and shape. These are dropped at
// render time when the terminal doesn't support styled underlines.
func WithUnderline(c Color, u UnderlineStyle) TextStyleOption {
	return func(t *TextStyle) {
		t.ulColor = c
		t.ulStyle = u
	}
}

func NewTextStyle(opts ...TextStyleOption) TextStyle {
	t := TextStyle{ulStyle: UnderlineStraight}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func (t TextStyle) String() string {
	var codes []string
	if c := t.fg.fgCode(); c != "" {
		codes = append(codes, c)
	}
	if c := t.bg.bgCode(); c != "" {
		codes = append(codes, c)
	}
	for _, s := range t.styles {
		if s != NoStyle {
			codes = append(codes, strconv.Itoa(int(s)))
		}
	}
	if t.ulColor != None && UnderlineStyleSupported() {
		codes = append(codes, t.ulColor.ulCode(), t.ulStyle.code())
	}
	return escSeq(strings.Join(codes, ";"))
}
