// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flags

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Kind determines how a flag consumes tokens when it matches.
type Kind int

const (
	// Bool flags are presence-only and never take a value.
	Bool Kind = iota
	// String flags consume exactly one following token; the last occurrence wins.
	String
	// Strings flags consume one token per occurrence and append.
	Strings
	// Count flags count their occurrences. Every letter of a combined short
	// run counts, so -vvv increments the slot three times.
	Count
)

// Flag describes one logical flag: its accepted spellings, its kind, and the
// caller-owned slot it writes to. Build one with BoolVar, StringVar,
// StringsVar, or CountVar. An alias is either a short form ("-v") or a long
// form ("--verbose"). The slot is only written during a parse call; the
// package never retains it afterwards.
type Flag struct {
	Aliases []string
	Kind    Kind

	boolSlot  *bool
	strSlot   *string
	sliceSlot *[]string
	countSlot *int
}

// BoolVar returns a presence-only flag bound to p. Repeating the flag is not
// an error; p is simply set to true again.
func BoolVar(p *bool, aliases ...string) *Flag {
	return &Flag{Aliases: aliases, Kind: Bool, boolSlot: p}
}

// StringVar returns a value-taking flag bound to p. If the flag appears more
// than once the last value wins.
func StringVar(p *string, aliases ...string) *Flag {
	return &Flag{Aliases: aliases, Kind: String, strSlot: p}
}

// StringsVar returns a value-taking flag bound to p. Each occurrence appends
// its value.
func StringsVar(p *[]string, aliases ...string) *Flag {
	return &Flag{Aliases: aliases, Kind: Strings, sliceSlot: p}
}

// CountVar returns a counting flag bound to p.
func CountVar(p *int, aliases ...string) *Flag {
	return &Flag{Aliases: aliases, Kind: Count, countSlot: p}
}

// Name returns the canonical spelling of the flag, its first alias.
func (f *Flag) Name() string {
	if len(f.Aliases) == 0 {
		return ""
	}
	return f.Aliases[0]
}

func (f *Flag) setValue(v string) {
	switch f.Kind {
	case String:
		*f.strSlot = v
	case Strings:
		*f.sliceSlot = append(*f.sliceSlot, v)
	}
}

// ErrNoAliases is returned by NewSet when a flag declares no aliases.
var ErrNoAliases = errors.New("flag has no aliases")

// DuplicateAliasError is returned by NewSet when two flags claim the same
// alias string.
type DuplicateAliasError struct {
	Alias string
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("duplicate alias: %s", e.Alias)
}

// BadAliasError is returned by NewSet for an alias that is not a valid short
// ("-v") or long ("--verbose") form.
type BadAliasError struct {
	Alias  string
	Reason string
}

func (e *BadAliasError) Error() string {
	return fmt.Sprintf("invalid alias %q: %s", e.Alias, e.Reason)
}

// UnknownFlagError is returned when a flag-like token (or a letter inside a
// combined short run) does not resolve to any registered flag.
type UnknownFlagError struct {
	Flag string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag: %s", e.Flag)
}

// MissingValueError is returned when a value-taking flag is the last token in
// the stream with nothing following it.
type MissingValueError struct {
	Flag string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("no value provided for %s", e.Flag)
}

// CombinedValueError is returned when a short flag that takes a value is
// combined with another flag in the same token, e.g. -sa where -s is a String
// flag. Flag holds the value-taking flag.
type CombinedValueError struct {
	Flag string
}

func (e *CombinedValueError) Error() string {
	return fmt.Sprintf("flag %s requires a value and can't be combined", e.Flag)
}

// ExtraValueError is returned when an inline "=value" is given to a flag that
// does not take a value.
type ExtraValueError struct {
	Flag string
}

func (e *ExtraValueError) Error() string {
	return fmt.Sprintf("flag %s does not take a value", e.Flag)
}

// Set is an indexed collection of flags, built once per parse invocation and
// read-only while scanning.
type Set struct {
	flags   []*Flag
	byAlias map[string]int
}

// NewSet validates the given flags and indexes their aliases. Every flag must
// declare at least one alias, every alias must be well-formed, and no alias
// may be claimed twice across the whole set.
func NewSet(fs ...*Flag) (*Set, error) {
	s := &Set{
		flags:   fs,
		byAlias: make(map[string]int),
	}
	for i, f := range fs {
		if len(f.Aliases) == 0 {
			return nil, ErrNoAliases
		}
		for _, alias := range f.Aliases {
			if err := checkAlias(alias); err != nil {
				return nil, err
			}
			if _, dup := s.byAlias[alias]; dup {
				return nil, &DuplicateAliasError{Alias: alias}
			}
			s.byAlias[alias] = i
		}
	}
	return s, nil
}

func checkAlias(alias string) error {
	if strings.ContainsFunc(alias, unicode.IsSpace) {
		return &BadAliasError{Alias: alias, Reason: "contains whitespace"}
	}
	if len(alias) < 2 || alias[0] != '-' {
		return &BadAliasError{Alias: alias, Reason: "must be a short form like -h or a long form like --help"}
	}
	if len(alias) > 2 && !strings.HasPrefix(alias, "--") {
		return &BadAliasError{Alias: alias, Reason: "long aliases start with two dashes"}
	}
	return nil
}

// lookup resolves an alias to its flag by exact string match. There is no
// prefix or abbreviation matching.
func (s *Set) lookup(alias string) (*Flag, bool) {
	i, ok := s.byAlias[alias]
	if !ok {
		return nil, false
	}
	return s.flags[i], true
}

// Result is the outcome of a scan: the unconsumed tokens in their original
// order, plus how many times each flag matched, keyed by canonical alias.
type Result struct {
	Args   []string
	Counts map[string]int
}

// Scan walks args left to right in a single pass. Flag-like tokens are
// dispatched against the set, writing slots as they match; everything else
// accumulates into Result.Args. With untilSubcommand set, the scan halts at
// the first non-flag token and returns it together with every remaining token,
// untouched, so the tail can be handed to a nested parse.
//
// The first malformed token fails the scan. Slot writes made before that
// point are not rolled back.
func (s *Set) Scan(args []string, untilSubcommand bool) (*Result, error) {
	res := &Result{
		Args:   []string{},
		Counts: make(map[string]int),
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "--" ends flag parsing. In subcommand mode it counts as the
		// first argument instead and halts the scan below.
		if arg == "--" {
			if !untilSubcommand {
				res.Args = append(res.Args, args[i+1:]...)
				break
			}
			res.Args = append(res.Args, args[i:]...)
			return res, nil
		}

		// A lone "-" conventionally means stdin and is never a flag.
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			if untilSubcommand {
				res.Args = append(res.Args, args[i:]...)
				return res, nil
			}
			res.Args = append(res.Args, arg)
			continue
		}

		consumed, err := s.scanFlag(arg, args, i, res)
		if err != nil {
			return nil, err
		}
		i += consumed
	}

	return res, nil
}

// scanFlag consumes one flag-like token, plus the following token when the
// matched flag takes a value and no inline "=value" was given. It returns how
// many extra tokens were consumed.
func (s *Set) scanFlag(arg string, args []string, i int, res *Result) (int, error) {
	name, val, hasVal := strings.Cut(arg, "=")
	if strings.HasPrefix(name, "--") {
		return s.scanLong(name, val, hasVal, args, i, res)
	}
	return s.scanShort(name, val, hasVal, args, i, res)
}

func (s *Set) scanLong(name, val string, hasVal bool, args []string, i int, res *Result) (int, error) {
	f, ok := s.lookup(name)
	if !ok {
		return 0, &UnknownFlagError{Flag: name}
	}
	res.Counts[f.Name()]++

	switch f.Kind {
	case Bool:
		if hasVal {
			return 0, &ExtraValueError{Flag: name}
		}
		*f.boolSlot = true
		return 0, nil
	case Count:
		// An inline value on a Count flag is ignored; the occurrence
		// still counts once.
		*f.countSlot++
		return 0, nil
	default:
		if hasVal {
			f.setValue(val)
			return 0, nil
		}
		if i+1 >= len(args) {
			return 0, &MissingValueError{Flag: name}
		}
		f.setValue(args[i+1])
		return 1, nil
	}
}

// scanShort walks the letters of a short token. Each letter is resolved on its
// own, which is what makes combined runs like -vAsn work. At most one letter
// in a run may take a value, and only if no further flag follows it.
func (s *Set) scanShort(name, val string, hasVal bool, args []string, i int, res *Result) (int, error) {
	extra := 0
	valueFlag := "" // short flag in this run that already took a value

	for _, ch := range name[1:] {
		short := "-" + string(ch)
		f, ok := s.lookup(short)
		if !ok {
			return 0, &UnknownFlagError{Flag: short}
		}
		if valueFlag != "" {
			return 0, &CombinedValueError{Flag: valueFlag}
		}
		res.Counts[f.Name()]++

		switch f.Kind {
		case Bool:
			if hasVal {
				return 0, &ExtraValueError{Flag: short}
			}
			*f.boolSlot = true
		case Count:
			*f.countSlot++
		default:
			if hasVal {
				f.setValue(val)
			} else if i+1 < len(args) {
				f.setValue(args[i+1])
				extra = 1
			} else {
				return 0, &MissingValueError{Flag: name}
			}
			valueFlag = short
		}
	}

	return extra, nil
}

// Parse builds a Set from fs and consumes all of args, returning every
// non-flag token in order. Construction errors surface before any scanning.
func Parse(args []string, fs ...*Flag) ([]string, error) {
	set, err := NewSet(fs...)
	if err != nil {
		return nil, err
	}
	res, err := set.Scan(args, false)
	if err != nil {
		return nil, err
	}
	return res.Args, nil
}

// ParseUntilSubcommand builds a Set from fs and consumes args only up to the
// first non-flag token. The returned remainder starts with that token (the
// subcommand name) followed by everything after it, in original order; the
// caller is expected to parse the tail with the subcommand's own flag list.
// An unknown flag before the subcommand is still an error; it never passes
// through to the tail.
func ParseUntilSubcommand(args []string, fs ...*Flag) ([]string, error) {
	set, err := NewSet(fs...)
	if err != nil {
		return nil, err
	}
	res, err := set.Scan(args, true)
	if err != nil {
		return nil, err
	}
	return res.Args, nil
}
