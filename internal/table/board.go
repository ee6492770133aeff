// Package table holds the melds laid down during a round and serialises
// every change to them.
package table

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lox/phaseten/internal/deck"
	"github.com/lox/phaseten/internal/meld"
	"github.com/lox/phaseten/internal/phase"
)

var (
	ErrAlreadyLaidDown = errors.New("table: player has already laid down this round")
	ErrNotLaidDown     = errors.New("table: player has not laid down this round")
	ErrNoSuchMeld      = errors.New("table: no such meld")
)

const (
	ReasonAlreadyLaidDown meld.Reason = "already-laid-down"
	ReasonNotLaidDown     meld.Reason = "not-laid-down"
	ReasonNoSuchMeld      meld.Reason = "no-such-meld"
)

func init() {
	meld.RegisterReason(ErrAlreadyLaidDown, ReasonAlreadyLaidDown)
	meld.RegisterReason(ErrNotLaidDown, ReasonNotLaidDown)
	meld.RegisterReason(ErrNoSuchMeld, ReasonNoSuchMeld)
}

// Board owns every meld on the table for the current round, keyed by the
// player who laid it down. All mutations run under one lock, so a card can
// never be claimed by two lay-downs or hits at once. A hand passed to the
// board must not be mutated elsewhere while a call is in progress.
type Board struct {
	mu     sync.Mutex
	logger *log.Logger
	rows   map[string][]*meld.Meld
	order  []string
	round  int
}

// NewBoard creates an empty board for round 1
func NewBoard(logger *log.Logger) *Board {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{
		logger: logger.WithPrefix("board"),
		rows:   make(map[string][]*meld.Meld),
		round:  1,
	}
}

// LayDown checks groups against phase n and, if they satisfy it, moves the
// cards out of hand into new melds owned by player. Each group lists card
// identities from hand; group i answers requirement i of the phase. On any
// failure neither the hand nor the board changes.
func (b *Board) LayDown(player string, n int, hand *deck.Hand, groups []meld.Group) ([]*meld.Meld, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	logger := b.logger.With("player", player, "phase", n)

	if _, ok := b.rows[player]; ok {
		logger.Debug("Lay-down rejected", "reason", ReasonAlreadyLaidDown)
		return nil, fmt.Errorf("%s: %w", player, ErrAlreadyLaidDown)
	}

	cards, err := resolve(hand, groups)
	if err != nil {
		logger.Debug("Lay-down rejected", "reason", meld.ReasonOf(err), "error", err)
		return nil, err
	}
	if err := phase.Check(n, cards); err != nil {
		logger.Debug("Lay-down rejected", "reason", meld.ReasonOf(err), "error", err)
		return nil, err
	}

	reqs := phase.For(n)
	melds := make([]*meld.Meld, len(cards))
	for i, group := range cards {
		m, err := meld.New(reqs[i].Kind, group)
		if err != nil {
			// phase.Check already accepted the group
			return nil, fmt.Errorf("table: group %d: %w", i+1, err)
		}
		melds[i] = m
	}

	for _, group := range cards {
		for _, c := range group {
			hand.Remove(c.ID)
		}
	}
	b.rows[player] = melds
	b.order = append(b.order, player)

	logger.Info("Laid down phase", "melds", len(melds), "hand", hand.Len())
	return melds, nil
}

// Hit moves card c from the hitter's hand onto meld index of owner's row.
// The hitter must have laid down this round.
func (b *Board) Hit(hitter string, hand *deck.Hand, owner string, index int, c deck.Card) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	logger := b.logger.With("player", hitter, "owner", owner, "meld", index, "card", c)

	if _, ok := b.rows[hitter]; !ok {
		logger.Debug("Hit rejected", "reason", ReasonNotLaidDown)
		return fmt.Errorf("%s: %w", hitter, ErrNotLaidDown)
	}
	target, err := b.meldLocked(owner, index)
	if err != nil {
		logger.Debug("Hit rejected", "reason", meld.ReasonOf(err))
		return err
	}
	if err := meld.Hit(hand, target, c); err != nil {
		logger.Debug("Hit rejected", "reason", meld.ReasonOf(err), "error", err)
		return err
	}

	logger.Info("Hit", "meld_size", target.Len(), "hand", hand.Len())
	return nil
}

// HasLaidDown reports whether player has laid down this round
func (b *Board) HasLaidDown(player string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.rows[player]
	return ok
}

// Row returns a snapshot of the cards in each of player's melds
func (b *Board) Row(player string) [][]deck.Card {
	b.mu.Lock()
	defer b.mu.Unlock()
	row := b.rows[player]
	out := make([][]deck.Card, len(row))
	for i, m := range row {
		out[i] = m.Cards()
	}
	return out
}

// Players returns the players who have laid down, in lay-down order
func (b *Board) Players() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Round returns the current round number
func (b *Board) Round() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.round
}

// Reset retires every meld and starts the next round with an empty table
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	retired := 0
	for _, row := range b.rows {
		for _, m := range row {
			m.Retire()
			retired++
		}
	}
	b.rows = make(map[string][]*meld.Meld)
	b.order = nil
	b.round++
	b.logger.Debug("Round reset", "round", b.round, "retired", retired)
}

func (b *Board) meldLocked(owner string, index int) (*meld.Meld, error) {
	row, ok := b.rows[owner]
	if !ok {
		return nil, fmt.Errorf("%s: %w", owner, ErrNotLaidDown)
	}
	if index < 0 || index >= len(row) {
		return nil, fmt.Errorf("%s meld %d: %w", owner, index, ErrNoSuchMeld)
	}
	return row[index], nil
}

// resolve turns identity groups into cards held by hand. A card may appear
// in only one group.
func resolve(hand *deck.Hand, groups []meld.Group) ([][]deck.Card, error) {
	used := make(map[deck.ID]bool)
	out := make([][]deck.Card, len(groups))
	for i, g := range groups {
		cards, err := hand.Select(g)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i+1, err)
		}
		for _, c := range cards {
			if used[c.ID] {
				return nil, fmt.Errorf("group %d: card %d used twice: %w", i+1, c.ID, meld.ErrCardNotOwned)
			}
			used[c.ID] = true
		}
		out[i] = cards
	}
	return out, nil
}
