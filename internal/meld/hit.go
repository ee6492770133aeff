package meld

import (
	"fmt"

	"github.com/lox/phaseten/internal/deck"
)

// Source is what a hit needs from whoever currently holds the card.
// *deck.Hand satisfies it.
type Source interface {
	Get(id deck.ID) (deck.Card, bool)
	Remove(id deck.ID) (deck.Card, bool)
}

// Hit moves one card from src onto target if the target stays legal with
// it. Either the card leaves src and joins target, or neither changes.
//
// Hit is not safe for concurrent use; callers sharing a Source or Meld
// across goroutines must serialise hits (see table.Board).
func Hit(src Source, target *Meld, c deck.Card) error {
	held, ok := src.Get(c.ID)
	if !ok || held != c {
		return fmt.Errorf("card %s (%d): %w", c, c.ID, ErrCardNotOwned)
	}

	candidate, err := target.appendCandidate(c)
	if err != nil {
		return err
	}

	if _, ok := src.Remove(c.ID); !ok {
		return fmt.Errorf("card %s (%d): %w", c, c.ID, ErrCardNotOwned)
	}
	target.cards = candidate
	return nil
}
