package phase

import (
	"errors"
	"fmt"

	"github.com/lox/phaseten/internal/deck"
	"github.com/lox/phaseten/internal/meld"
)

var (
	ErrSizeMismatch             = errors.New("phase: group size does not match requirement")
	ErrRequirementCountMismatch = errors.New("phase: wrong number of groups")
)

func init() {
	meld.RegisterReason(ErrSizeMismatch, meld.ReasonSizeMismatch)
	meld.RegisterReason(ErrRequirementCountMismatch, meld.ReasonRequirementCountMismatch)
}

// Check reports whether groups satisfy phase n. Group i answers requirement
// i; nothing is reordered. Each group must have exactly the required size
// and pass meld.Check for the required kind.
//
// Check only reads its arguments. It panics if n is not a phase.
func Check(n int, groups [][]deck.Card) error {
	reqs := For(n)
	if len(groups) != len(reqs) {
		return fmt.Errorf("phase %d needs %d groups, got %d: %w", n, len(reqs), len(groups), ErrRequirementCountMismatch)
	}
	for i, req := range reqs {
		if len(groups[i]) != req.Size {
			return fmt.Errorf("group %d (%s) has %d cards: %w", i+1, req, len(groups[i]), ErrSizeMismatch)
		}
		if err := meld.Check(req.Kind, groups[i]); err != nil {
			return fmt.Errorf("group %d (%s): %w", i+1, req, err)
		}
	}
	return nil
}

// Validate is Check reduced to a boolean
func Validate(n int, groups [][]deck.Card) bool {
	return Check(n, groups) == nil
}

// Suggest returns, for each requirement of phase n, the candidate groups the
// finders discover in cards. Suggestions for different requirements may
// overlap; picking a disjoint combination is the caller's job.
func Suggest(n int, cards []deck.Card) [][]meld.Group {
	reqs := For(n)
	out := make([][]meld.Group, len(reqs))
	for i, req := range reqs {
		out[i] = meld.FindGroups(cards, req.Kind, req.Size)
	}
	return out
}
