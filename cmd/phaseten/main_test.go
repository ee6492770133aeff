package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/phaseten/internal/deck"
	"github.com/lox/phaseten/internal/meld"
	"github.com/lox/phaseten/internal/scenario"
)

func TestCLIParse(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"--log-level", "debug", "find", "--hand", "R5 B5 G5", "--kind", "run", "--size", "4"})
	require.NoError(t, err)
	assert.Equal(t, "find", ctx.Command())
	assert.Equal(t, "debug", cli.LogLevel)
	assert.Equal(t, "run", cli.Find.Kind)
	assert.Equal(t, 4, cli.Find.Size)

	_, err = parser.Parse([]string{"find", "--hand", "R1", "--kind", "straight"})
	assert.Error(t, err)
}

func TestPrintPhases(t *testing.T) {
	var buf bytes.Buffer
	printPhases(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, " 1  2 sets of 3", lines[0])
	assert.Equal(t, " 8  7 cards of one color", lines[7])
}

func TestPrintGroups(t *testing.T) {
	cards := deck.MustParseCards(deck.NewIDGenerator(), "R5 B5 G5 Y5")
	hand := deck.NewHand(cards...)

	var buf bytes.Buffer
	printGroups(&buf, hand, meld.FindMatchingRankGroups(cards, 3))
	assert.Equal(t, 4, strings.Count(buf.String(), "\n"))

	buf.Reset()
	printGroups(&buf, hand, nil)
	assert.Contains(t, buf.String(), "(none)")
}

func TestPrintResults(t *testing.T) {
	f, err := scenario.Load("../../internal/scenario/testdata/basic.hcl")
	require.NoError(t, err)
	results, err := scenario.NewRunner(nil).RunAll(context.Background(), f.Scenarios)
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Equal(t, 0, printResults(&buf, results))
	assert.Contains(t, buf.String(), "phase-one-and-hits")

	results[0].Steps[0].Expected = meld.ReasonKindMismatch
	buf.Reset()
	assert.Equal(t, 1, printResults(&buf, results))
	assert.Contains(t, buf.String(), "expected kind-mismatch, got ok")
}
