package meld

import (
	"fmt"

	"github.com/lox/phaseten/internal/deck"
)

// Meld is a group of cards laid down on the table. Its kind is fixed at
// creation. Every mutation recomputes legality over the full resulting card
// list, so a meld is legal and holds at least one Number card for as long
// as it is placed.
type Meld struct {
	kind    Kind
	cards   []deck.Card
	retired bool
}

// New places a meld. The caller must already have taken the cards out of
// the hand they came from; the meld becomes their only holder.
func New(kind Kind, cards []deck.Card) (*Meld, error) {
	if err := checkDistinct(cards); err != nil {
		return nil, err
	}
	if err := Check(kind, cards); err != nil {
		return nil, err
	}
	m := &Meld{kind: kind, cards: make([]deck.Card, len(cards))}
	copy(m.cards, cards)
	return m, nil
}

// Kind returns the meld's fixed kind
func (m *Meld) Kind() Kind {
	return m.kind
}

// Len returns the number of cards in the meld
func (m *Meld) Len() int {
	return len(m.cards)
}

// Cards returns a copy of the meld's cards in the order they were placed
func (m *Meld) Cards() []deck.Card {
	out := make([]deck.Card, len(m.cards))
	copy(out, m.cards)
	return out
}

// Contains reports whether the card with the given identity is in the meld
func (m *Meld) Contains(id deck.ID) bool {
	return m.indexOf(id) >= 0
}

// Retired reports whether the round that owned the meld has ended
func (m *Meld) Retired() bool {
	return m.retired
}

// Retire ends the meld's life. A retired meld rejects every mutation.
func (m *Meld) Retire() {
	m.retired = true
}

// CanAppend reports whether appending c would keep the meld legal, without
// changing anything
func (m *Meld) CanAppend(c deck.Card) error {
	_, err := m.appendCandidate(c)
	return err
}

// Append adds c to the meld if the result is legal. On failure the meld is
// unchanged.
func (m *Meld) Append(c deck.Card) error {
	candidate, err := m.appendCandidate(c)
	if err != nil {
		return err
	}
	m.cards = candidate
	return nil
}

// Remove takes the card with the given identity out of the meld. The
// removal is refused if it would leave the meld empty or illegal.
func (m *Meld) Remove(id deck.ID) (deck.Card, error) {
	if m.retired {
		return deck.Card{}, ErrMeldRetired
	}
	i := m.indexOf(id)
	if i < 0 {
		return deck.Card{}, fmt.Errorf("card %d: %w", id, ErrCardNotInMeld)
	}
	if len(m.cards) == 1 {
		return deck.Card{}, ErrMeldWouldBecomeEmpty
	}

	remainder := make([]deck.Card, 0, len(m.cards)-1)
	remainder = append(remainder, m.cards[:i]...)
	remainder = append(remainder, m.cards[i+1:]...)
	if err := Check(m.kind, remainder); err != nil {
		return deck.Card{}, fmt.Errorf("%w: %v", ErrMeldWouldBecomeIllegal, err)
	}

	removed := m.cards[i]
	m.cards = remainder
	return removed, nil
}

// String renders the meld as "run of 4: R3 W R5 R6"
func (m *Meld) String() string {
	return fmt.Sprintf("%s of %d: %s", m.kind, len(m.cards), deck.FormatCards(m.cards))
}

func (m *Meld) appendCandidate(c deck.Card) ([]deck.Card, error) {
	if m.retired {
		return nil, ErrMeldRetired
	}
	if m.Contains(c.ID) {
		return nil, fmt.Errorf("card %d: %w", c.ID, ErrDuplicateCard)
	}
	candidate := make([]deck.Card, 0, len(m.cards)+1)
	candidate = append(candidate, m.cards...)
	candidate = append(candidate, c)
	if err := Check(m.kind, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (m *Meld) indexOf(id deck.ID) int {
	for i, c := range m.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func checkDistinct(cards []deck.Card) error {
	seen := make(map[deck.ID]bool, len(cards))
	for _, c := range cards {
		if seen[c.ID] {
			return fmt.Errorf("card %d: %w", c.ID, ErrDuplicateCard)
		}
		seen[c.ID] = true
	}
	return nil
}
