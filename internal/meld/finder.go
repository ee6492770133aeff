package meld

import (
	"sort"

	"github.com/lox/phaseten/internal/deck"
)

// Group is a candidate meld expressed as card identities
type Group []deck.ID

// FindMatchingRankGroups returns every size-card combination of Number cards
// that share a rank. A rank held n times yields C(n, size) groups. Wilds are
// ignored: discovery suggests groups, it does not decide legality.
//
// Ranks are visited in ascending order; within a rank, groups are produced in
// lexicographic order of their sorted identities.
func FindMatchingRankGroups(cards []deck.Card, size int) []Group {
	byRank := make(map[deck.Rank][]deck.ID)
	for _, c := range cards {
		if c.IsNumber() {
			byRank[c.Rank] = append(byRank[c.Rank], c.ID)
		}
	}

	var groups []Group
	for rank := deck.MinRank; rank <= deck.MaxRank; rank++ {
		groups = append(groups, combinations(byRank[rank], size)...)
	}
	return groups
}

// FindConsecutiveRunGroups returns one group per window of size distinct,
// exactly consecutive ranks among the Number cards. When several cards share
// a rank the lowest identity represents it. Overlapping windows each yield a
// group. No wild assistance is applied.
func FindConsecutiveRunGroups(cards []deck.Card, size int) []Group {
	if size <= 0 {
		return nil
	}

	rep := make(map[deck.Rank]deck.ID)
	for _, c := range cards {
		if !c.IsNumber() {
			continue
		}
		if id, ok := rep[c.Rank]; !ok || c.ID < id {
			rep[c.Rank] = c.ID
		}
	}
	if len(rep) < size {
		return nil
	}

	ranks := make([]deck.Rank, 0, len(rep))
	for r := range rep {
		ranks = append(ranks, r)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })

	var groups []Group
	for i := 0; i+size <= len(ranks); i++ {
		window := ranks[i : i+size]
		if runGap(window) != 0 {
			continue
		}
		g := make(Group, size)
		for j, r := range window {
			g[j] = rep[r]
		}
		groups = append(groups, g)
	}
	return groups
}

// FindMatchingColorGroups returns every size-card combination of Number
// cards that share a color, colors visited in deck order
func FindMatchingColorGroups(cards []deck.Card, size int) []Group {
	byColor := make(map[deck.Color][]deck.ID)
	for _, c := range cards {
		if c.IsNumber() {
			byColor[c.Color] = append(byColor[c.Color], c.ID)
		}
	}

	var groups []Group
	for _, color := range deck.Colors {
		groups = append(groups, combinations(byColor[color], size)...)
	}
	return groups
}

// FindGroups dispatches to the finder for kind
func FindGroups(cards []deck.Card, kind Kind, size int) []Group {
	switch kind {
	case MatchingRank:
		return FindMatchingRankGroups(cards, size)
	case Run:
		return FindConsecutiveRunGroups(cards, size)
	case MatchingColor:
		return FindMatchingColorGroups(cards, size)
	default:
		return nil
	}
}

// combinations returns every k-subset of ids in lexicographic order of the
// sorted input
func combinations(ids []deck.ID, k int) []Group {
	n := len(ids)
	if k <= 0 || n < k {
		return nil
	}
	sorted := make([]deck.ID, n)
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	var out []Group
	for {
		g := make(Group, k)
		for i, j := range idx {
			g[i] = sorted[j]
		}
		out = append(out, g)

		// advance the rightmost index that still has room
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
