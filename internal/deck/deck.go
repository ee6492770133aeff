package deck

const (
	// CopiesPerFace is how many copies of each colored number card a deck holds
	CopiesPerFace = 2
	// WildCount is the number of Wild cards in a deck
	WildCount = 8
	// SkipCount is the number of Skip cards in a deck
	SkipCount = 4
	// Size is the total number of cards in a full deck
	Size = 4*int(MaxRank)*CopiesPerFace + WildCount + SkipCount
)

// Deck represents a draw pile. Cards are dealt from the top in the order
// the deck holds them; ordering the pile is the caller's business.
type Deck struct {
	cards []Card
	next  int
}

// NewDeck creates a full 108-card deck in construction order, minting every
// card's identity from gen
func NewDeck(gen *IDGenerator) *Deck {
	cards := make([]Card, 0, Size)
	for _, color := range Colors {
		for rank := MinRank; rank <= MaxRank; rank++ {
			for range CopiesPerFace {
				cards = append(cards, gen.NewNumber(color, rank))
			}
		}
	}
	for range SkipCount {
		cards = append(cards, gen.NewSkip())
	}
	for range WildCount {
		cards = append(cards, gen.NewWild())
	}
	return &Deck{cards: cards}
}

// NewDeckFromCards creates a deck that deals the given cards in order
func NewDeckFromCards(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Deal removes and returns the top n cards, or nil if fewer than n remain
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// DealOne removes and returns the top card
func (d *Deck) DealOne() (Card, bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	c := d.cards[d.next]
	d.next++
	return c, true
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return d.CardsRemaining() == 0
}
