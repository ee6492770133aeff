package meld

import (
	"errors"

	"github.com/lox/phaseten/internal/deck"
)

// Rule violations. These are expected outcomes of checking a candidate and
// are always returned, never panicked.
var (
	ErrEmptyGroup   = errors.New("meld: empty group")
	ErrNoNumberCard = errors.New("meld: no number card")
	ErrKindMismatch = errors.New("meld: cards do not form the declared kind")

	// ErrCardNotOwned is returned when a card is not held by the source it
	// is supposed to come from.
	ErrCardNotOwned = errors.New("meld: card not owned by source")

	ErrMeldWouldBecomeEmpty   = errors.New("meld: removal would leave the meld empty")
	ErrMeldWouldBecomeIllegal = errors.New("meld: removal would leave the meld illegal")

	ErrCardNotInMeld = errors.New("meld: card not in meld")
	ErrDuplicateCard = errors.New("meld: card already in meld")
	ErrMeldRetired   = errors.New("meld: meld has been retired")
)

// Reason is the stable code for a rule violation
type Reason string

const (
	ReasonOK                       Reason = "ok"
	ReasonEmptyGroup               Reason = "empty-group"
	ReasonNoNumberCard             Reason = "no-number-card"
	ReasonKindMismatch             Reason = "kind-mismatch"
	ReasonSizeMismatch             Reason = "size-mismatch"
	ReasonRequirementCountMismatch Reason = "requirement-count-mismatch"
	ReasonCardNotOwned             Reason = "card-not-owned"
	ReasonMeldWouldBecomeEmpty     Reason = "meld-would-become-empty"
	ReasonMeldWouldBecomeIllegal   Reason = "meld-would-become-illegal"
	ReasonDuplicateCard            Reason = "duplicate-card"
	ReasonMeldRetired              Reason = "meld-retired"
	ReasonOther                    Reason = "other"
)

var reasons = []struct {
	err    error
	reason Reason
}{
	{ErrEmptyGroup, ReasonEmptyGroup},
	{ErrNoNumberCard, ReasonNoNumberCard},
	{ErrKindMismatch, ReasonKindMismatch},
	{ErrCardNotOwned, ReasonCardNotOwned},
	{ErrCardNotInMeld, ReasonCardNotOwned},
	{deck.ErrCardNotInHand, ReasonCardNotOwned},
	{ErrDuplicateCard, ReasonDuplicateCard},
	{ErrMeldRetired, ReasonMeldRetired},
	{ErrMeldWouldBecomeEmpty, ReasonMeldWouldBecomeEmpty},
	{ErrMeldWouldBecomeIllegal, ReasonMeldWouldBecomeIllegal},
}

// RegisterReason maps an error declared in another package onto a reason
// code. It must be called from package init.
func RegisterReason(err error, reason Reason) {
	reasons = append(reasons, struct {
		err    error
		reason Reason
	}{err, reason})
}

// ReasonOf classifies err. A nil error is ReasonOK; an error outside the
// taxonomy is ReasonOther.
func ReasonOf(err error) Reason {
	if err == nil {
		return ReasonOK
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ReasonOther
}
