package meld

import "fmt"

// Kind is the shape a meld must have. A meld's kind is fixed when it is
// laid down.
type Kind int

const (
	// MatchingRank is a set: every Number card shares one rank
	MatchingRank Kind = iota
	// Run is a gapless ascending sequence of ranks, gaps filled by wilds
	Run
	// MatchingColor is a color group: every Number card shares one color
	MatchingColor
)

// Kinds lists every meld kind
var Kinds = []Kind{MatchingRank, Run, MatchingColor}

// String returns the short name used in phase descriptions and config files
func (k Kind) String() string {
	switch k {
	case MatchingRank:
		return "set"
	case Run:
		return "run"
	case MatchingColor:
		return "color"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind name as produced by Kind.String
func ParseKind(s string) (Kind, error) {
	switch s {
	case "set", "rank":
		return MatchingRank, nil
	case "run":
		return Run, nil
	case "color":
		return MatchingColor, nil
	default:
		return 0, fmt.Errorf("meld: unknown kind %q", s)
	}
}
