// Package model defines shared data structures.
package model

import "fmt"

// SortKey selects how frequency entries are ordered.
type SortKey int

const (
	// SortByChar orders entries by ascending code point.
	SortByChar SortKey = iota
	// SortByCount orders entries by descending count, ties by code point.
	SortByCount
)

// ParseSortKey parses a --sort-by value.
func ParseSortKey(value string) (SortKey, error) {
	switch value {
	case "char":
		return SortByChar, nil
	case "count":
		return SortByCount, nil
	default:
		return SortByChar, fmt.Errorf("invalid sort key %q (expected char or count)", value)
	}
}

// String returns the CLI name of the sort key.
func (k SortKey) String() string {
	if k == SortByCount {
		return "count"
	}
	return "char"
}

// ModeKind identifies a display mode.
type ModeKind int

const (
	// ModePlain emits every entry with its raw count.
	ModePlain ModeKind = iota
	// ModePercent emits each count as a percentage of the total.
	ModePercent
	// ModeTopN emits only the first N entries of the ordered sequence.
	ModeTopN
	// ModeMoreThan emits entries with count strictly greater than N.
	ModeMoreThan
	// ModeLessThan emits entries with count strictly less than N.
	ModeLessThan
	// ModeExactly emits entries with count equal to N.
	ModeExactly
)

// DisplayMode is the single active output-shaping rule for a run.
// N is meaningful for every kind except ModePlain and ModePercent.
type DisplayMode struct {
	Kind ModeKind
	N    int
}

// ModeFlags carries the raw, possibly overlapping display flags as
// parsed from the command line. Nil means the flag was not supplied.
type ModeFlags struct {
	Percent  bool
	TopN     *int
	MoreThan *int
	LessThan *int
	Exactly  *int
}

// ResolveMode collapses the raw flags into one display mode. When more
// than one flag was supplied, the first match in the fixed precedence
// order (percent, top, more-than, less-than, exactly) wins.
func ResolveMode(flags ModeFlags) DisplayMode {
	switch {
	case flags.Percent:
		return DisplayMode{Kind: ModePercent}
	case flags.TopN != nil:
		return DisplayMode{Kind: ModeTopN, N: *flags.TopN}
	case flags.MoreThan != nil:
		return DisplayMode{Kind: ModeMoreThan, N: *flags.MoreThan}
	case flags.LessThan != nil:
		return DisplayMode{Kind: ModeLessThan, N: *flags.LessThan}
	case flags.Exactly != nil:
		return DisplayMode{Kind: ModeExactly, N: *flags.Exactly}
	default:
		return DisplayMode{Kind: ModePlain}
	}
}
