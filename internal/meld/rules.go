package meld

import (
	"fmt"
	"sort"

	"github.com/lox/phaseten/internal/deck"
)

// Check reports whether cards form a legal meld of the given kind.
// Wild cards substitute for missing ranks or colors but never anchor a meld:
// at least one Number card is always required. Skip cards are never legal.
//
// The result is nil for a legal meld, otherwise an error wrapping one of
// ErrEmptyGroup, ErrNoNumberCard or ErrKindMismatch.
func Check(kind Kind, cards []deck.Card) error {
	if len(cards) == 0 {
		return ErrEmptyGroup
	}

	numbers, wilds, err := split(cards)
	if err != nil {
		return err
	}
	if len(numbers) == 0 {
		return ErrNoNumberCard
	}

	switch kind {
	case MatchingRank:
		return checkMatchingRank(numbers)
	case Run:
		return checkRun(numbers, wilds)
	case MatchingColor:
		return checkMatchingColor(numbers)
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrKindMismatch, int(kind))
	}
}

// IsLegal is Check reduced to a boolean
func IsLegal(kind Kind, cards []deck.Card) bool {
	return Check(kind, cards) == nil
}

// split separates Number cards from wilds
func split(cards []deck.Card) (numbers []deck.Card, wilds int, err error) {
	numbers = make([]deck.Card, 0, len(cards))
	for _, c := range cards {
		switch c.Kind {
		case deck.Number:
			numbers = append(numbers, c)
		case deck.Wild:
			wilds++
		default:
			return nil, 0, fmt.Errorf("%w: %s card cannot be melded", ErrKindMismatch, c.Kind)
		}
	}
	return numbers, wilds, nil
}

func checkMatchingRank(numbers []deck.Card) error {
	anchor := numbers[0].Rank
	for _, c := range numbers[1:] {
		if c.Rank != anchor {
			return fmt.Errorf("%w: set mixes ranks %d and %d", ErrKindMismatch, anchor, c.Rank)
		}
	}
	return nil
}

func checkMatchingColor(numbers []deck.Card) error {
	anchor := numbers[0].Color
	for _, c := range numbers[1:] {
		if c.Color != anchor {
			return fmt.Errorf("%w: color group mixes %s and %s", ErrKindMismatch, anchor, c.Color)
		}
	}
	return nil
}

func checkRun(numbers []deck.Card, wilds int) error {
	ranks := sortedRanks(numbers)
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return fmt.Errorf("%w: run repeats rank %d", ErrKindMismatch, ranks[i])
		}
	}
	// Wilds beyond the gap are filler at either end of the run.
	if gap := runGap(ranks); gap > wilds {
		return fmt.Errorf("%w: run is missing %d ranks with %d wilds", ErrKindMismatch, gap, wilds)
	}
	return nil
}

// runGap returns how many integers are missing inside the span covered by
// ranks, which must be sorted ascending and distinct
func runGap(ranks []deck.Rank) int {
	if len(ranks) == 0 {
		return 0
	}
	span := int(ranks[len(ranks)-1]-ranks[0]) + 1
	return span - len(ranks)
}

func sortedRanks(numbers []deck.Card) []deck.Rank {
	ranks := make([]deck.Rank, len(numbers))
	for i, c := range numbers {
		ranks[i] = c.Rank
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	return ranks
}
