// Package scenario replays scripted tables described in HCL files:
// each player's lay-down attempt and each hit, compared with the outcome
// the file expects.
package scenario

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/phaseten/internal/deck"
	"github.com/lox/phaseten/internal/meld"
	"github.com/lox/phaseten/internal/table"
)

// StepResult is the outcome of one lay-down or hit
type StepResult struct {
	Step     string
	Expected meld.Reason
	Got      meld.Reason
	Err      error
}

// Passed reports whether the step ended the way the file expected
func (s StepResult) Passed() bool {
	return s.Expected == s.Got
}

// Result is the outcome of one scenario
type Result struct {
	Scenario string
	Steps    []StepResult
	// Penalties holds each player's hand penalty after the last step
	Penalties map[string]int
	Elapsed   time.Duration
}

// Passed reports whether every step passed
func (r Result) Passed() bool {
	for _, s := range r.Steps {
		if !s.Passed() {
			return false
		}
	}
	return true
}

// Failures returns the steps that did not pass
func (r Result) Failures() []StepResult {
	var out []StepResult
	for _, s := range r.Steps {
		if !s.Passed() {
			out = append(out, s)
		}
	}
	return out
}

// Runner executes scenarios. Scenarios share nothing, so RunAll runs them
// in parallel.
type Runner struct {
	logger   *log.Logger
	clock    quartz.Clock
	parallel int
}

// Option configures a Runner
type Option func(*Runner)

// WithClock sets the clock used to time scenarios
func WithClock(clock quartz.Clock) Option {
	return func(r *Runner) {
		r.clock = clock
	}
}

// WithParallelism caps how many scenarios RunAll runs at once
func WithParallelism(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.parallel = n
		}
	}
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(logger *log.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Runner{
		logger:   logger,
		clock:    quartz.NewReal(),
		parallel: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunAll runs scenarios concurrently and returns their results in input
// order. Rule violations are results, not errors; an error means a scenario
// could not be run at all.
func (r *Runner) RunAll(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	results := make([]Result, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)
	for i, s := range scenarios {
		g.Go(func() error {
			res, err := r.Run(ctx, s)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", s.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Run plays a single scenario on a fresh board
func (r *Runner) Run(ctx context.Context, s Scenario) (Result, error) {
	start := r.clock.Now()
	logger := r.logger.With("scenario", s.Name)

	gen := deck.NewIDGenerator()
	board := table.NewBoard(logger)
	hands := make(map[string]*deck.Hand, len(s.Players))
	result := Result{Scenario: s.Name, Penalties: make(map[string]int)}

	for _, p := range s.Players {
		cards, err := deck.ParseCards(gen, p.Hand)
		if err != nil {
			return Result{}, fmt.Errorf("player %s: %w", p.Name, err)
		}
		hands[p.Name] = deck.NewHand(cards...)
	}

	for _, p := range s.Players {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if len(p.Groups) == 0 {
			continue
		}
		hand := hands[p.Name]
		groups, err := pickGroups(gen, hand, p.Groups)
		if err != nil {
			return Result{}, fmt.Errorf("player %s: %w", p.Name, err)
		}
		_, err = board.LayDown(p.Name, p.Phase, hand, groups)
		result.Steps = append(result.Steps, StepResult{
			Step:     fmt.Sprintf("%s lays down phase %d", p.Name, p.Phase),
			Expected: meld.Reason(p.Expect),
			Got:      meld.ReasonOf(err),
			Err:      err,
		})
	}

	for _, h := range s.Hits {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		hand := hands[h.Player]
		face, err := deck.ParseFace(h.Card)
		if err != nil {
			return Result{}, fmt.Errorf("hit by %s: %w", h.Player, err)
		}
		c := pick(gen, hand, face, nil)
		err = board.Hit(h.Player, hand, h.Target, h.Meld, c)
		result.Steps = append(result.Steps, StepResult{
			Step:     fmt.Sprintf("%s hits %s on %s meld %d", h.Player, face, h.Target, h.Meld),
			Expected: meld.Reason(h.Expect),
			Got:      meld.ReasonOf(err),
			Err:      err,
		})
	}

	for name, hand := range hands {
		result.Penalties[name] = hand.Penalty()
	}
	result.Elapsed = r.clock.Since(start)

	for _, step := range result.Failures() {
		logger.Warn("Unexpected outcome", "step", step.Step, "expected", step.Expected, "got", step.Got)
	}
	logger.Debug("Scenario complete", "steps", len(result.Steps), "passed", result.Passed(), "elapsed", result.Elapsed)
	return result, nil
}

// pickGroups maps each group's card notation onto identities from hand. The
// same physical card is never picked twice across the groups.
func pickGroups(gen *deck.IDGenerator, hand *deck.Hand, groups []GroupConfig) ([]meld.Group, error) {
	used := make(map[deck.ID]bool)
	out := make([]meld.Group, len(groups))
	for i, g := range groups {
		faces, err := deck.ParseFaces(g.Cards)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i+1, err)
		}
		ids := make(meld.Group, len(faces))
		for j, f := range faces {
			c := pick(gen, hand, f, used)
			used[c.ID] = true
			ids[j] = c.ID
		}
		out[i] = ids
	}
	return out, nil
}

// pick returns the first card in hand with face f that is not in used. If
// the hand has none, it mints a card that belongs to nobody so the engine
// reports the card as not owned.
func pick(gen *deck.IDGenerator, hand *deck.Hand, f deck.Face, used map[deck.ID]bool) deck.Card {
	for _, c := range hand.Cards() {
		if c.Face() == f && !used[c.ID] {
			return c
		}
	}
	return gen.Mint(f)
}
