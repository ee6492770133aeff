// Package meld decides what counts as a meld and keeps laid-down melds legal.
//
// There are three meld kinds: MatchingRank (a set), Run and MatchingColor.
// Check is the single legality rule for all of them and is shared by phase
// validation, meld mutation and hits. Wild cards fill missing ranks or
// colors but a meld always needs at least one Number card.
//
// # Discovery
//
// FindMatchingRankGroups, FindConsecutiveRunGroups and FindMatchingColorGroups
// suggest candidate groups from a hand snapshot. They never use wilds and
// their output is a hint, not a verdict:
//
//	groups := meld.FindMatchingRankGroups(hand.Cards(), 3)
//
// # Laid-down melds
//
// A Meld is created with New and changes only through Append, Remove and Hit.
// Each change is checked against the full resulting card list; on failure the
// meld is left as it was.
//
//	m, err := meld.New(meld.Run, cards)
//	if err := meld.Hit(hand, m, card); err != nil {
//	    switch meld.ReasonOf(err) { ... }
//	}
package meld
