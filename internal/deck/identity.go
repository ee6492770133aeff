package deck

import "sync"

// IDGenerator hands out card identities. Every card built from the same
// generator gets a distinct ID; IDs are never reused. A fresh generator
// starts at zero, which keeps tests deterministic.
type IDGenerator struct {
	mu   sync.Mutex
	next ID
}

// NewIDGenerator creates a generator whose first ID is 0
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next unused identity
func (g *IDGenerator) Next() ID {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.next
	g.next++
	return id
}

// Mint creates a card with the given face and a fresh identity.
// It panics if the face breaks the card invariant (Number cards need a color
// and a rank in range, Wild and Skip cards carry neither).
func (g *IDGenerator) Mint(f Face) Card {
	if err := checkFace(f); err != nil {
		panic(err.Error())
	}
	return Card{ID: g.Next(), Kind: f.Kind, Color: f.Color, Rank: f.Rank}
}

// NewNumber mints a Number card
func (g *IDGenerator) NewNumber(color Color, rank Rank) Card {
	return g.Mint(NumberFace(color, rank))
}

// NewWild mints a Wild card
func (g *IDGenerator) NewWild() Card {
	return g.Mint(WildFace())
}

// NewSkip mints a Skip card
func (g *IDGenerator) NewSkip() Card {
	return g.Mint(SkipFace())
}

func checkFace(f Face) error {
	switch f.Kind {
	case Number:
		if f.Color == NoColor {
			return errInvalidFace("number card without color")
		}
		if !f.Rank.Valid() {
			return errInvalidFace("number card rank out of range")
		}
	case Wild, Skip:
		if f.Color != NoColor || f.Rank != NoRank {
			return errInvalidFace(f.Kind.String() + " card with color or rank")
		}
	default:
		return errInvalidFace("unknown card kind")
	}
	return nil
}

type errInvalidFace string

func (e errInvalidFace) Error() string {
	return "deck: invalid card: " + string(e)
}
