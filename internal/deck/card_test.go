package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFaces(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Face
		wantErr  bool
	}{
		{
			name:  "numbers of every color",
			input: "R5 G12 B1 Y7",
			expected: []Face{
				NumberFace(Red, 5),
				NumberFace(Green, 12),
				NumberFace(Blue, 1),
				NumberFace(Yellow, 7),
			},
		},
		{
			name:     "wild and skip",
			input:    "W S",
			expected: []Face{WildFace(), SkipFace()},
		},
		{
			name:     "case insensitive with commas",
			input:    "r3,w, skip",
			expected: []Face{NumberFace(Red, 3), WildFace(), SkipFace()},
		},
		{
			name:    "invalid color",
			input:   "X5",
			wantErr: true,
		},
		{
			name:    "rank too high",
			input:   "R13",
			wantErr: true,
		},
		{
			name:    "rank zero",
			input:   "B0",
			wantErr: true,
		},
		{
			name:    "missing rank",
			input:   "G",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Face{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFaces(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCardsMintsDistinctIDs(t *testing.T) {
	gen := NewIDGenerator()
	cards, err := ParseCards(gen, "R5 R5 W")
	require.NoError(t, err)
	require.Len(t, cards, 3)

	assert.Equal(t, ID(0), cards[0].ID)
	assert.Equal(t, ID(1), cards[1].ID)
	assert.Equal(t, ID(2), cards[2].ID)
	assert.Equal(t, cards[0].Face(), cards[1].Face(), "same face, different cards")
	assert.NotEqual(t, cards[0], cards[1])
}

func TestCardString(t *testing.T) {
	gen := NewIDGenerator()
	cards := MustParseCards(gen, "r5 G12 w S")
	assert.Equal(t, "R5 G12 W S", FormatCards(cards))
}

func TestCardInvariant(t *testing.T) {
	gen := NewIDGenerator()

	n := gen.NewNumber(Blue, 9)
	assert.True(t, n.IsNumber())
	assert.Equal(t, Blue, n.Color)
	assert.Equal(t, Rank(9), n.Rank)

	w := gen.NewWild()
	assert.True(t, w.IsWild())
	assert.Equal(t, NoColor, w.Color)
	assert.Equal(t, NoRank, w.Rank)

	assert.Panics(t, func() { gen.Mint(Face{Kind: Number, Rank: 3}) }, "number card needs a color")
	assert.Panics(t, func() { gen.Mint(Face{Kind: Number, Color: Red, Rank: 13}) })
	assert.Panics(t, func() { gen.Mint(Face{Kind: Wild, Color: Red}) })
	assert.Panics(t, func() { gen.Mint(Face{Kind: Skip, Rank: 4}) })
}

func TestMustParseCards(t *testing.T) {
	gen := NewIDGenerator()
	cards := MustParseCards(gen, "Y1 Y2")
	require.Len(t, cards, 2)

	assert.Panics(t, func() { MustParseCards(gen, "invalid") })
}

func TestIDGeneratorIsIndependent(t *testing.T) {
	a := NewIDGenerator()
	b := NewIDGenerator()
	a.Next()
	a.Next()
	assert.Equal(t, ID(0), b.Next(), "generators do not share state")
	assert.Equal(t, ID(2), a.Next())
}
