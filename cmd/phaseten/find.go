package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/phaseten/internal/deck"
	"github.com/lox/phaseten/internal/meld"
	"github.com/lox/phaseten/internal/phase"
)

// FindCmd suggests groups in a hand, either for one kind and size or for
// every requirement of a phase
type FindCmd struct {
	Hand  string `required:"" help:"Cards in notation, e.g. 'R5 B5 G5 W Y7'"`
	Kind  string `default:"set" enum:"set,run,color" help:"Meld kind to look for (set, run, color)"`
	Size  int    `default:"3" help:"Group size"`
	Phase int    `help:"Suggest groups for every requirement of this phase instead"`
}

func (c *FindCmd) Run(logger *log.Logger) error {
	cards, err := deck.ParseCards(deck.NewIDGenerator(), c.Hand)
	if err != nil {
		return err
	}
	hand := deck.NewHand(cards...)

	if c.Phase != 0 {
		reqs, ok := phase.Lookup(c.Phase)
		if !ok {
			return fmt.Errorf("invalid phase %d", c.Phase)
		}
		logger.Debug("Suggesting groups", "phase", c.Phase, "requirements", reqs.String())
		suggestions := phase.Suggest(c.Phase, hand.Cards())
		for i, req := range reqs {
			fmt.Fprintln(os.Stdout, titleStyle.Render(req.String()))
			printGroups(os.Stdout, hand, suggestions[i])
		}
		return nil
	}

	kind, err := meld.ParseKind(c.Kind)
	if err != nil {
		return err
	}
	logger.Debug("Finding groups", "kind", kind, "size", c.Size)
	printGroups(os.Stdout, hand, meld.FindGroups(hand.Cards(), kind, c.Size))
	return nil
}

func printGroups(w io.Writer, hand *deck.Hand, groups []meld.Group) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for i, g := range groups {
		cards, err := hand.Select(g)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "  %d. %s\n", i+1, renderCards(cards))
	}
}
