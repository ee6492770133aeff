package deck

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCardNotInHand is returned when a card identity is not held by the hand
var ErrCardNotInHand = errors.New("deck: card not in hand")

// Hand is the ordered set of cards held by one player. Order only matters
// for display. A card is in at most one hand at a time; moving it elsewhere
// means removing it here first.
type Hand struct {
	cards []Card
}

// NewHand creates a hand holding the given cards
func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, 0, len(cards))}
	h.cards = append(h.cards, cards...)
	return h
}

// Add appends a card to the hand
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in hand order
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Contains reports whether the hand holds the card with the given identity
func (h *Hand) Contains(id ID) bool {
	return h.indexOf(id) >= 0
}

// Get returns the held card with the given identity
func (h *Hand) Get(id ID) (Card, bool) {
	if i := h.indexOf(id); i >= 0 {
		return h.cards[i], true
	}
	return Card{}, false
}

// Remove takes the card with the given identity out of the hand
func (h *Hand) Remove(id ID) (Card, bool) {
	i := h.indexOf(id)
	if i < 0 {
		return Card{}, false
	}
	c := h.cards[i]
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return c, true
}

// Select resolves a list of identities to the held cards, in the order given.
// The hand is not modified. An identity that is missing, or listed twice,
// yields ErrCardNotInHand.
func (h *Hand) Select(ids []ID) ([]Card, error) {
	seen := make(map[ID]bool, len(ids))
	cards := make([]Card, 0, len(ids))
	for _, id := range ids {
		c, ok := h.Get(id)
		if !ok || seen[id] {
			return nil, fmt.Errorf("card %d: %w", id, ErrCardNotInHand)
		}
		seen[id] = true
		cards = append(cards, c)
	}
	return cards, nil
}

// Sort orders the hand by color then rank, with Skip and Wild cards last
func (h *Hand) Sort() {
	sort.SliceStable(h.cards, func(i, j int) bool {
		a, b := h.cards[i], h.cards[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Color != b.Color {
			return a.Color < b.Color
		}
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		return a.ID < b.ID
	})
}

// Penalty returns the points charged for the cards still in the hand at the
// end of a round
func (h *Hand) Penalty() int {
	total := 0
	for _, c := range h.cards {
		total += c.Penalty()
	}
	return total
}

// Penalty returns the end-of-round penalty for holding the card
func (c Card) Penalty() int {
	switch c.Kind {
	case Number:
		if c.Rank <= 9 {
			return 5
		}
		return 10
	case Skip:
		return 15
	case Wild:
		return 25
	default:
		return 0
	}
}

func (h *Hand) indexOf(id ID) int {
	for i, c := range h.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}
