package meld

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/phaseten/internal/deck"
)

func parse(s string) []deck.Card {
	return deck.MustParseCards(deck.NewIDGenerator(), s)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		cards string
		want  error
	}{
		// sets
		{"set of three", MatchingRank, "R5 B5 G5", nil},
		{"set with wild", MatchingRank, "R5 B5 W", nil},
		{"set with two ranks and wild", MatchingRank, "R5 B6 W", ErrKindMismatch},
		{"set mostly wild", MatchingRank, "R5 W W W", nil},
		{"set of wilds only", MatchingRank, "W W W", ErrNoNumberCard},
		{"set with skip", MatchingRank, "R5 B5 S", ErrKindMismatch},
		{"empty set", MatchingRank, "", ErrEmptyGroup},

		// runs
		{"run without gaps", Run, "R3 B4 G5 Y6", nil},
		{"run unordered", Run, "Y6 R3 G5 B4", nil},
		{"run gap filled by wild", Run, "R3 W B5 G6", nil},
		{"run gap not filled", Run, "R3 B5 G6", ErrKindMismatch},
		{"run gap of two with one wild", Run, "R3 W G6", ErrKindMismatch},
		{"run with excess wilds", Run, "R3 B4 W W", nil},
		{"run with duplicate rank", Run, "R3 B3 G4 W", ErrKindMismatch},
		{"run of wilds only", Run, "W W W W", ErrNoNumberCard},
		{"run with skip", Run, "R3 R4 S", ErrKindMismatch},
		{"single card run", Run, "Y12", nil},

		// colors
		{"color group", MatchingColor, "R1 R5 R9 R12", nil},
		{"color group with wild", MatchingColor, "G1 W G9", nil},
		{"color group mixed", MatchingColor, "G1 W B9", ErrKindMismatch},
		{"color group of wilds", MatchingColor, "W W", ErrNoNumberCard},

		{"unknown kind", Kind(42), "R1", ErrKindMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.kind, parse(tt.cards))
			if tt.want == nil {
				assert.NoError(t, err)
				assert.True(t, IsLegal(tt.kind, parse(tt.cards)))
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, IsLegal(tt.kind, parse(tt.cards)))
		})
	}
}

func TestCheckDoesNotReorderInput(t *testing.T) {
	cards := parse("Y6 R3 G5 B4")
	before := append([]deck.Card(nil), cards...)
	assert.NoError(t, Check(Run, cards))
	assert.Equal(t, before, cards)
}

func TestReasonOf(t *testing.T) {
	assert.Equal(t, ReasonOK, ReasonOf(nil))
	assert.Equal(t, ReasonKindMismatch, ReasonOf(Check(MatchingRank, parse("R5 B6"))))
	assert.Equal(t, ReasonNoNumberCard, ReasonOf(Check(Run, parse("W"))))
	assert.Equal(t, ReasonEmptyGroup, ReasonOf(Check(Run, nil)))
	assert.Equal(t, ReasonCardNotOwned, ReasonOf(deck.ErrCardNotInHand))
	assert.Equal(t, ReasonOther, ReasonOf(assert.AnError))
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		assert.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("straight")
	assert.Error(t, err)
}
