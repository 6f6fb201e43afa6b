// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flags

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewSetEmptyAliases(t *testing.T) {
	var v bool
	_, err := NewSet(BoolVar(&v))
	if !errors.Is(err, ErrNoAliases) {
		t.Fatalf("NewSet() error = %v, want ErrNoAliases", err)
	}
}

func TestNewSetDuplicateAlias(t *testing.T) {
	var a, b bool
	_, err := NewSet(
		BoolVar(&a, "-a", "--all"),
		BoolVar(&b, "--all"),
	)
	var dup *DuplicateAliasError
	if !errors.As(err, &dup) {
		t.Fatalf("NewSet() error = %v, want *DuplicateAliasError", err)
	}
	if dup.Alias != "--all" {
		t.Errorf("Alias = %q, want %q", dup.Alias, "--all")
	}
}

func TestNewSetBadAliases(t *testing.T) {
	tests := []struct {
		name  string
		alias string
	}{
		{"no dash", "m"},
		{"single dash word", "-onedash"},
		{"whitespace", "--space bar"},
		{"empty", ""},
		{"bare dash", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v bool
			_, err := NewSet(BoolVar(&v, tt.alias))
			var bad *BadAliasError
			if !errors.As(err, &bad) {
				t.Fatalf("NewSet() error = %v, want *BadAliasError", err)
			}
			if bad.Alias != tt.alias {
				t.Errorf("Alias = %q, want %q", bad.Alias, tt.alias)
			}
		})
	}
}

func TestParsePositionalsOnly(t *testing.T) {
	var v bool
	var color string

	in := []string{"one", "two", "-", "three"}
	args, err := Parse(in,
		BoolVar(&v, "-v"),
		StringVar(&color, "--color", "-c"),
	)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(in, args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
	if v || color != "" {
		t.Errorf("slots mutated: v = %v, color = %q", v, color)
	}
}

func TestParseBoolIdempotent(t *testing.T) {
	var v bool
	args, err := Parse([]string{"-v", "--verbose", "-v"},
		BoolVar(&v, "-v", "--verbose"),
	)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !v {
		t.Error("v = false, want true")
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestParseStringLastWins(t *testing.T) {
	var color string
	_, err := Parse([]string{"--color", "red", "--color", "blue"},
		StringVar(&color, "--color"),
	)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if color != "blue" {
		t.Errorf("color = %q, want %q", color, "blue")
	}
}

func TestParseStringsAppend(t *testing.T) {
	var tags []string
	_, err := Parse([]string{"--tag", "a", "--tag", "b"},
		StringsVar(&tags, "--tag"),
	)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCount(t *testing.T) {
	var v, e, unused, test int
	args, err := Parse([]string{"program", "-vvvv", "-eee", "--test", "argument"},
		CountVar(&v, "-v"),
		CountVar(&e, "-e"),
		CountVar(&unused, "-u", "--unused"),
		CountVar(&test, "-t", "--test"),
	)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v != 4 || e != 3 || unused != 0 || test != 1 {
		t.Errorf("counts = %d %d %d %d, want 4 3 0 1", v, e, unused, test)
	}
	if diff := cmp.Diff([]string{"program", "argument"}, args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCombinedShorts(t *testing.T) {
	var a, bigV, n, s, z bool
	var v int
	var longSpecific, notUsed string
	var many []string

	args, err := Parse(
		[]string{
			"argument_one",
			"-aVns",
			"--long-specific", "something",
			"-vvvvv",
			"--many", "first",
			"--many", "second",
			"argument_two",
		},
		BoolVar(&a, "-a"),
		BoolVar(&bigV, "-V"),
		BoolVar(&n, "-n"),
		BoolVar(&s, "-s"),
		StringVar(&longSpecific, "--long-specific"),
		StringVar(&notUsed, "--not-used"),
		CountVar(&v, "-v"),
		BoolVar(&z, "-z"),
		StringsVar(&many, "--many"),
	)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff([]string{"argument_one", "argument_two"}, args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
	if !(a && bigV && n && s) {
		t.Errorf("combined bools = %v %v %v %v, want all true", a, bigV, n, s)
	}
	if z {
		t.Error("z = true, want false")
	}
	if v != 5 {
		t.Errorf("v = %d, want 5", v)
	}
	if longSpecific != "something" {
		t.Errorf("longSpecific = %q, want %q", longSpecific, "something")
	}
	if notUsed != "" {
		t.Errorf("notUsed = %q, want empty", notUsed)
	}
	if diff := cmp.Diff([]string{"first", "second"}, many); diff != "" {
		t.Errorf("many mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEquals(t *testing.T) {
	var s, long string
	var many []string

	args, err := Parse(
		[]string{
			"arg_one",
			"-s=test1",
			"arg_two",
			"--long=test2",
			"--many=first",
			"arg_three",
			"--many", "second",
			"arg_four",
		},
		StringVar(&s, "-s"),
		StringVar(&long, "--long"),
		StringsVar(&many, "--many"),
	)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff([]string{"arg_one", "arg_two", "arg_three", "arg_four"}, args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
	if s != "test1" {
		t.Errorf("s = %q, want %q", s, "test1")
	}
	if long != "test2" {
		t.Errorf("long = %q, want %q", long, "test2")
	}
	if diff := cmp.Diff([]string{"first", "second"}, many); diff != "" {
		t.Errorf("many mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDoubleDash(t *testing.T) {
	var v, r int
	args, err := Parse(
		[]string{"program", "-v", "-rr", "--", "argument", "-file", "hello!", "-rrrr"},
		CountVar(&v, "-v"),
		CountVar(&r, "-r"),
	)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []string{"program", "argument", "-file", "hello!", "-rrrr"}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
	if v != 1 || r != 2 {
		t.Errorf("v, r = %d, %d, want 1, 2", v, r)
	}
}

func TestParseValueMayLookLikeFlag(t *testing.T) {
	// A value-taking flag consumes the next token unconditionally.
	var color string
	_, err := Parse([]string{"--color", "--help"},
		StringVar(&color, "--color"),
	)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if color != "--help" {
		t.Errorf("color = %q, want %q", color, "--help")
	}
}

func TestParseMissingValue(t *testing.T) {
	var color string
	_, err := Parse([]string{"--color"},
		StringVar(&color, "--color"),
	)
	var missing *MissingValueError
	if !errors.As(err, &missing) {
		t.Fatalf("Parse() error = %v, want *MissingValueError", err)
	}
	if missing.Flag != "--color" {
		t.Errorf("Flag = %q, want %q", missing.Flag, "--color")
	}
}

func TestParseUnknownFlagKeepsEarlierWrites(t *testing.T) {
	var color string
	_, err := Parse([]string{"--color", "red", "--bogus"},
		StringVar(&color, "--color"),
	)
	var unknown *UnknownFlagError
	if !errors.As(err, &unknown) {
		t.Fatalf("Parse() error = %v, want *UnknownFlagError", err)
	}
	if unknown.Flag != "--bogus" {
		t.Errorf("Flag = %q, want %q", unknown.Flag, "--bogus")
	}
	// Writes made before the fatal token are not rolled back.
	if color != "red" {
		t.Errorf("color = %q, want %q", color, "red")
	}
}

func TestParseUnknownShortInCombination(t *testing.T) {
	var a bool
	_, err := Parse([]string{"-ax"}, BoolVar(&a, "-a"))
	var unknown *UnknownFlagError
	if !errors.As(err, &unknown) {
		t.Fatalf("Parse() error = %v, want *UnknownFlagError", err)
	}
	if unknown.Flag != "-x" {
		t.Errorf("Flag = %q, want %q", unknown.Flag, "-x")
	}
}

func TestParseCombinedValueFlag(t *testing.T) {
	var s string
	var a bool
	_, err := Parse([]string{"-sa", "test"},
		StringVar(&s, "-s"),
		BoolVar(&a, "-a"),
	)
	var combined *CombinedValueError
	if !errors.As(err, &combined) {
		t.Fatalf("Parse() error = %v, want *CombinedValueError", err)
	}
	if combined.Flag != "-s" {
		t.Errorf("Flag = %q, want %q", combined.Flag, "-s")
	}
}

func TestParseExtraValue(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantFlag string
	}{
		{"short bool", []string{"-s=test"}, "-s"},
		{"long bool", []string{"--strict=yes"}, "--strict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s bool
			_, err := Parse(tt.args, BoolVar(&s, "-s", "--strict"))
			var extra *ExtraValueError
			if !errors.As(err, &extra) {
				t.Fatalf("Parse() error = %v, want *ExtraValueError", err)
			}
			if extra.Flag != tt.wantFlag {
				t.Errorf("Flag = %q, want %q", extra.Flag, tt.wantFlag)
			}
		})
	}
}

func TestParseConstructionErrorBeforeScan(t *testing.T) {
	// A bad flag list fails before any token is looked at, even tokens that
	// would themselves be errors.
	var a, b bool
	_, err := Parse([]string{"--bogus"},
		BoolVar(&a, "-a"),
		BoolVar(&b, "-a"),
	)
	var dup *DuplicateAliasError
	if !errors.As(err, &dup) {
		t.Fatalf("Parse() error = %v, want *DuplicateAliasError", err)
	}
}
