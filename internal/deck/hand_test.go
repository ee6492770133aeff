package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandRemove(t *testing.T) {
	gen := NewIDGenerator()
	cards := MustParseCards(gen, "R5 B5 W")
	h := NewHand(cards...)

	require.True(t, h.Contains(cards[1].ID))
	got, ok := h.Remove(cards[1].ID)
	require.True(t, ok)
	assert.Equal(t, cards[1], got)
	assert.False(t, h.Contains(cards[1].ID))
	assert.Equal(t, 2, h.Len())

	_, ok = h.Remove(cards[1].ID)
	assert.False(t, ok, "a removed card cannot be removed twice")
}

func TestHandSelect(t *testing.T) {
	gen := NewIDGenerator()
	cards := MustParseCards(gen, "R5 B5 W Y9")
	h := NewHand(cards...)

	sel, err := h.Select([]ID{cards[2].ID, cards[0].ID})
	require.NoError(t, err)
	assert.Equal(t, []Card{cards[2], cards[0]}, sel)
	assert.Equal(t, 4, h.Len(), "select does not modify the hand")

	_, err = h.Select([]ID{cards[0].ID, 99})
	assert.ErrorIs(t, err, ErrCardNotInHand)

	_, err = h.Select([]ID{cards[0].ID, cards[0].ID})
	assert.ErrorIs(t, err, ErrCardNotInHand, "a card cannot be used twice")
}

func TestHandSort(t *testing.T) {
	gen := NewIDGenerator()
	h := NewHand(MustParseCards(gen, "W Y2 S R9 R3 G1")...)
	h.Sort()
	assert.Equal(t, "R3 R9 G1 Y2 W S", FormatCards(h.Cards()))
}

func TestHandPenalty(t *testing.T) {
	tests := []struct {
		name  string
		hand  string
		score int
	}{
		{"empty", "", 0},
		{"low numbers", "R1 G9", 10},
		{"high numbers", "B10 Y12", 20},
		{"skip", "S", 15},
		{"wild", "W", 25},
		{"mixed", "R5 B11 S W", 55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHand(MustParseCards(NewIDGenerator(), tt.hand)...)
			assert.Equal(t, tt.score, h.Penalty())
		})
	}
}
