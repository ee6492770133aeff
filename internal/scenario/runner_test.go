package scenario

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/phaseten/internal/meld"
	"github.com/lox/phaseten/internal/table"
)

func loadBasic(t *testing.T) []Scenario {
	t.Helper()
	f, err := Load("testdata/basic.hcl")
	require.NoError(t, err)
	return f.Scenarios
}

func TestRunnerRun(t *testing.T) {
	r := NewRunner(nil, WithClock(quartz.NewMock(t)))
	res, err := r.Run(context.Background(), loadBasic(t)[0])
	require.NoError(t, err)

	require.Len(t, res.Steps, 7)
	for _, s := range res.Steps {
		assert.True(t, s.Passed(), "%s: expected %s, got %s (%v)", s.Step, s.Expected, s.Got, s.Err)
	}
	assert.True(t, res.Passed())
	assert.Empty(t, res.Failures())

	// alice keeps G2; bob's real 4 joins the run next to the wild
	assert.Equal(t, map[string]int{"alice": 5, "bob": 0}, res.Penalties)
	assert.Equal(t, time.Duration(0), res.Elapsed, "mock clock does not move on its own")
}

func TestRunnerReportsMismatch(t *testing.T) {
	src := `scenario "wrong-guess" {
  player "a" {
    phase = 1
    hand  = "R5 B5 G5 R9 B9 G9"
    expect = "kind-mismatch"
    group { cards = "R5 B5 G5" }
    group { cards = "R9 B9 G9" }
  }
}`
	f, err := Parse([]byte(src), "inline.hcl")
	require.NoError(t, err)

	res, err := NewRunner(nil).Run(context.Background(), f.Scenarios[0])
	require.NoError(t, err)
	assert.False(t, res.Passed())
	require.Len(t, res.Failures(), 1)
	assert.Equal(t, meld.ReasonOK, res.Failures()[0].Got)
}

func TestRunnerCardNotInHand(t *testing.T) {
	src := `scenario "phantom" {
  player "a" {
    phase  = 1
    hand   = "R5 B5 G5 R9 B9"
    expect = "card-not-owned"
    group { cards = "R5 B5 G5" }
    group { cards = "R9 B9 G9" }
  }
  player "b" {
    hand = "Y1"
  }
  hit {
    player = "b"
    target = "a"
    card   = "Y1"
    expect = "not-laid-down"
  }
}`
	f, err := Parse([]byte(src), "inline.hcl")
	require.NoError(t, err)

	res, err := NewRunner(nil).Run(context.Background(), f.Scenarios[0])
	require.NoError(t, err)
	require.Len(t, res.Steps, 2)
	assert.True(t, res.Passed(), "%+v", res.Steps)
	assert.Equal(t, table.ReasonNotLaidDown, res.Steps[1].Got)
}

func TestRunAll(t *testing.T) {
	scenarios := loadBasic(t)
	r := NewRunner(nil, WithParallelism(2), WithClock(quartz.NewMock(t)))

	results, err := r.RunAll(context.Background(), scenarios)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "phase-one-and-hits", results[0].Scenario)
	assert.Equal(t, "phase-two-size-mismatch", results[1].Scenario)
	for _, res := range results {
		assert.True(t, res.Passed(), res.Scenario)
	}
	assert.Equal(t, meld.ReasonSizeMismatch, results[1].Steps[0].Got)
}

func TestRunAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil).RunAll(ctx, loadBasic(t))
	assert.ErrorIs(t, err, context.Canceled)
}
