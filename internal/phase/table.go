// Package phase holds the ten phase requirements and checks lay-downs
// against them.
package phase

import (
	"fmt"
	"strings"

	"github.com/lox/phaseten/internal/meld"
)

const (
	First = 1
	Last  = 10
)

// Requirement is one meld a phase asks for: a kind and an exact card count
type Requirement struct {
	Kind meld.Kind
	Size int
}

// String renders the requirement as "set of 3"
func (r Requirement) String() string {
	return fmt.Sprintf("%s of %d", r.Kind, r.Size)
}

// Requirements is the ordered list of melds a phase asks for
type Requirements []Requirement

var table = [Last + 1]Requirements{
	1:  {{meld.MatchingRank, 3}, {meld.MatchingRank, 3}},
	2:  {{meld.MatchingRank, 3}, {meld.Run, 4}},
	3:  {{meld.MatchingRank, 4}, {meld.Run, 4}},
	4:  {{meld.Run, 7}},
	5:  {{meld.Run, 8}},
	6:  {{meld.Run, 9}},
	7:  {{meld.MatchingRank, 4}, {meld.MatchingRank, 4}},
	8:  {{meld.MatchingColor, 7}},
	9:  {{meld.MatchingRank, 5}, {meld.MatchingRank, 2}},
	10: {{meld.MatchingRank, 5}, {meld.MatchingRank, 3}},
}

// Lookup returns the requirements of phase n, or false if n is not a phase.
// The returned slice is a copy.
func Lookup(n int) (Requirements, bool) {
	if n < First || n > Last {
		return nil, false
	}
	reqs := make(Requirements, len(table[n]))
	copy(reqs, table[n])
	return reqs, true
}

// For returns the requirements of phase n. It panics if n is outside
// First..Last; use Lookup for unchecked input.
func For(n int) Requirements {
	reqs, ok := Lookup(n)
	if !ok {
		panic(fmt.Sprintf("phase: no phase %d", n))
	}
	return reqs
}

// Describe renders phase n in words, e.g. "1 set of 3 + 1 run of 4"
func Describe(n int) string {
	return For(n).String()
}

// String renders the requirements, folding neighbours that are identical
func (rs Requirements) String() string {
	var parts []string
	for i := 0; i < len(rs); {
		j := i
		for j < len(rs) && rs[j] == rs[i] {
			j++
		}
		parts = append(parts, describe(rs[i], j-i))
		i = j
	}
	return strings.Join(parts, " + ")
}

func describe(r Requirement, count int) string {
	if r.Kind == meld.MatchingColor && count == 1 {
		return fmt.Sprintf("%d cards of one color", r.Size)
	}
	noun := r.Kind.String()
	if count > 1 {
		noun += "s"
	}
	return fmt.Sprintf("%d %s of %d", count, noun, r.Size)
}
