package deck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind is the face type of a card
type Kind int

const (
	Number Kind = iota
	Wild
	Skip
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Wild:
		return "wild"
	case Skip:
		return "skip"
	default:
		return "?"
	}
}

// Color represents the color of a Number card. Wild and Skip cards carry NoColor.
type Color int

const (
	NoColor Color = iota
	Red
	Green
	Blue
	Yellow
)

// Colors lists the four card colors in deck order
var Colors = []Color{Red, Green, Blue, Yellow}

// String returns the string representation of a color
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	default:
		return "none"
	}
}

// Letter returns the single-letter notation for the color ("R", "G", "B", "Y")
func (c Color) Letter() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Rank is the face value of a Number card. Wild and Skip cards carry NoRank.
type Rank int

const (
	NoRank  Rank = 0
	MinRank Rank = 1
	MaxRank Rank = 12
)

// Valid reports whether the rank is inside [MinRank, MaxRank]
func (r Rank) Valid() bool {
	return r >= MinRank && r <= MaxRank
}

// ID is the identity of a physical card. Two cards with the same color and
// rank are still different cards; IDs tell them apart. IDs carry no game meaning.
type ID int

// Card represents one physical card. Cards are values; once constructed
// their fields never change.
type Card struct {
	ID    ID
	Kind  Kind
	Color Color
	Rank  Rank
}

// String returns the notation of a card (e.g., "R5", "W", "S")
func (c Card) String() string {
	switch c.Kind {
	case Number:
		return c.Color.Letter() + strconv.Itoa(int(c.Rank))
	case Wild:
		return "W"
	case Skip:
		return "S"
	default:
		return "?"
	}
}

// IsNumber returns true if the card is a Number card
func (c Card) IsNumber() bool {
	return c.Kind == Number
}

// IsWild returns true if the card is a Wild card
func (c Card) IsWild() bool {
	return c.Kind == Wild
}

// IsSkip returns true if the card is a Skip card
func (c Card) IsSkip() bool {
	return c.Kind == Skip
}

// Face is the game meaning of a card with its identity stripped
type Face struct {
	Kind  Kind
	Color Color
	Rank  Rank
}

// Face returns the card without its identity
func (c Card) Face() Face {
	return Face{Kind: c.Kind, Color: c.Color, Rank: c.Rank}
}

// String returns the notation of the face
func (f Face) String() string {
	return Card{Kind: f.Kind, Color: f.Color, Rank: f.Rank}.String()
}

// NumberFace returns the face of a Number card
func NumberFace(color Color, rank Rank) Face {
	return Face{Kind: Number, Color: color, Rank: rank}
}

// WildFace returns the face of a Wild card
func WildFace() Face {
	return Face{Kind: Wild}
}

// SkipFace returns the face of a Skip card
func SkipFace() Face {
	return Face{Kind: Skip}
}

// ParseFace parses a single card token. Tokens are case-insensitive:
// a color letter followed by a rank ("R5", "g12"), "W" for wild, "S" for skip.
func ParseFace(token string) (Face, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	switch t {
	case "":
		return Face{}, errors.New("empty card token")
	case "W", "WILD":
		return WildFace(), nil
	case "S", "SKIP":
		return SkipFace(), nil
	}

	var color Color
	switch t[0] {
	case 'R':
		color = Red
	case 'G':
		color = Green
	case 'B':
		color = Blue
	case 'Y':
		color = Yellow
	default:
		return Face{}, fmt.Errorf("invalid color in card %q", token)
	}

	n, err := strconv.Atoi(t[1:])
	if err != nil {
		return Face{}, fmt.Errorf("invalid rank in card %q", token)
	}
	rank := Rank(n)
	if !rank.Valid() {
		return Face{}, fmt.Errorf("rank out of range in card %q", token)
	}
	return NumberFace(color, rank), nil
}

// ParseFaces parses a whitespace or comma separated list of card tokens
func ParseFaces(s string) ([]Face, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	faces := make([]Face, 0, len(tokens))
	for _, tok := range tokens {
		f, err := ParseFace(tok)
		if err != nil {
			return nil, err
		}
		faces = append(faces, f)
	}
	return faces, nil
}

// ParseCards parses a list of card tokens and mints a fresh identity for each
// card from gen.
func ParseCards(gen *IDGenerator, s string) ([]Card, error) {
	faces, err := ParseFaces(s)
	if err != nil {
		return nil, err
	}
	cards := make([]Card, len(faces))
	for i, f := range faces {
		cards[i] = gen.Mint(f)
	}
	return cards, nil
}

// FormatCards renders cards in notation separated by spaces
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// MustParseCards is like ParseCards but panics on malformed input.
// Intended for tests and static fixtures.
func MustParseCards(gen *IDGenerator, s string) []Card {
	cards, err := ParseCards(gen, s)
	if err != nil {
		panic(err)
	}
	return cards
}
