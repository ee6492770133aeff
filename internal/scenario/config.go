package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/phaseten/internal/deck"
	"github.com/lox/phaseten/internal/meld"
	"github.com/lox/phaseten/internal/phase"
	"github.com/lox/phaseten/internal/table"
)

// File is the content of one scenario file
type File struct {
	Scenarios []Scenario `hcl:"scenario,block"`
}

// Scenario is one table: players lay down in declaration order, then the
// hits run in declaration order
type Scenario struct {
	Name    string         `hcl:"name,label"`
	Players []PlayerConfig `hcl:"player,block"`
	Hits    []HitConfig    `hcl:"hit,block"`
}

// PlayerConfig declares a player's hand and, optionally, a lay-down attempt
type PlayerConfig struct {
	Name   string        `hcl:"name,label"`
	Phase  int           `hcl:"phase,optional"`
	Hand   string        `hcl:"hand"`
	Expect string        `hcl:"expect,optional"`
	Groups []GroupConfig `hcl:"group,block"`
}

// GroupConfig lists the cards of one group by notation
type GroupConfig struct {
	Cards string `hcl:"cards"`
}

// HitConfig is a single hit attempt
type HitConfig struct {
	Player string `hcl:"player"`
	Target string `hcl:"target"`
	Meld   int    `hcl:"meld,optional"`
	Card   string `hcl:"card"`
	Expect string `hcl:"expect,optional"`
}

var knownReasons = map[meld.Reason]bool{
	meld.ReasonOK:                       true,
	meld.ReasonEmptyGroup:               true,
	meld.ReasonNoNumberCard:             true,
	meld.ReasonKindMismatch:             true,
	meld.ReasonSizeMismatch:             true,
	meld.ReasonRequirementCountMismatch: true,
	meld.ReasonCardNotOwned:             true,
	meld.ReasonMeldWouldBecomeEmpty:     true,
	meld.ReasonMeldWouldBecomeIllegal:   true,
	meld.ReasonDuplicateCard:            true,
	meld.ReasonMeldRetired:              true,
	table.ReasonAlreadyLaidDown:         true,
	table.ReasonNotLaidDown:             true,
	table.ReasonNoSuchMeld:              true,
}

// Load reads and validates a scenario file
func Load(filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body, filename)
}

// Parse reads and validates scenario source held in memory
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body, filename)
}

func decode(body hcl.Body, filename string) (*File, error) {
	var f File
	if diags := gohcl.DecodeBody(body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		for j := range s.Players {
			if s.Players[j].Expect == "" {
				s.Players[j].Expect = string(meld.ReasonOK)
			}
		}
		for j := range s.Hits {
			if s.Hits[j].Expect == "" {
				s.Hits[j].Expect = string(meld.ReasonOK)
			}
		}
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &f, nil
}

// Validate checks that every scenario can be run: phases exist, card
// notation parses, hits name declared players and expectations are known
// reason codes
func (f *File) Validate() error {
	names := make(map[string]bool)
	for _, s := range f.Scenarios {
		if names[s.Name] {
			return fmt.Errorf("duplicate scenario %q", s.Name)
		}
		names[s.Name] = true
		if err := s.Validate(); err != nil {
			return fmt.Errorf("scenario %s: %w", s.Name, err)
		}
	}
	return nil
}

// Validate checks a single scenario
func (s *Scenario) Validate() error {
	players := make(map[string]bool)
	for _, p := range s.Players {
		if players[p.Name] {
			return fmt.Errorf("duplicate player %q", p.Name)
		}
		players[p.Name] = true

		if _, err := deck.ParseFaces(p.Hand); err != nil {
			return fmt.Errorf("player %s: hand: %w", p.Name, err)
		}
		if len(p.Groups) > 0 {
			if _, ok := phase.Lookup(p.Phase); !ok {
				return fmt.Errorf("player %s: invalid phase %d", p.Name, p.Phase)
			}
		}
		for i, g := range p.Groups {
			if _, err := deck.ParseFaces(g.Cards); err != nil {
				return fmt.Errorf("player %s: group %d: %w", p.Name, i+1, err)
			}
		}
		if !knownReasons[meld.Reason(p.Expect)] {
			return fmt.Errorf("player %s: unknown expectation %q", p.Name, p.Expect)
		}
	}

	for i, h := range s.Hits {
		if !players[h.Player] {
			return fmt.Errorf("hit %d: unknown player %q", i+1, h.Player)
		}
		if !players[h.Target] {
			return fmt.Errorf("hit %d: unknown target %q", i+1, h.Target)
		}
		if _, err := deck.ParseFace(h.Card); err != nil {
			return fmt.Errorf("hit %d: %w", i+1, err)
		}
		if !knownReasons[meld.Reason(h.Expect)] {
			return fmt.Errorf("hit %d: unknown expectation %q", i+1, h.Expect)
		}
	}
	return nil
}
