package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/phaseten/internal/scenario"
)

// CheckCmd runs scenario files
type CheckCmd struct {
	Files    []string `arg:"" name:"file" type:"existingfile" help:"HCL scenario files"`
	Parallel int      `default:"0" help:"Maximum scenarios run at once (0 = GOMAXPROCS)"`
}

func (c *CheckCmd) Run(logger *log.Logger) error {
	ctx, cancel := signalContext(logger)
	defer cancel()

	var scenarios []scenario.Scenario
	for _, name := range c.Files {
		f, err := scenario.Load(name)
		if err != nil {
			return err
		}
		logger.Debug("Loaded scenario file", "file", name, "scenarios", len(f.Scenarios))
		scenarios = append(scenarios, f.Scenarios...)
	}

	runner := scenario.NewRunner(logger, scenario.WithParallelism(c.Parallel))
	results, err := runner.RunAll(ctx, scenarios)
	if err != nil {
		return err
	}

	if failed := printResults(os.Stdout, results); failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}

// printResults writes one line per scenario plus a line per failed step and
// returns the number of failed scenarios
func printResults(w io.Writer, results []scenario.Result) int {
	failed := 0
	for _, res := range results {
		if res.Passed() {
			fmt.Fprintf(w, "%s %s (%d steps)\n", passStyle.Render("PASS"), res.Scenario, len(res.Steps))
			continue
		}
		failed++
		fmt.Fprintf(w, "%s %s\n", failStyle.Render("FAIL"), res.Scenario)
		for _, step := range res.Failures() {
			fmt.Fprintf(w, "    %s: expected %s, got %s", step.Step, step.Expected, step.Got)
			if step.Err != nil {
				fmt.Fprintf(w, " (%v)", step.Err)
			}
			fmt.Fprintln(w)
		}
	}
	return failed
}
