package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/phaseten/internal/phase"
)

// PhasesCmd prints the phase requirement table
type PhasesCmd struct{}

func (c *PhasesCmd) Run() error {
	printPhases(os.Stdout)
	return nil
}

func printPhases(w io.Writer) {
	for n := phase.First; n <= phase.Last; n++ {
		fmt.Fprintf(w, "%2d  %s\n", n, phase.Describe(n))
	}
}
