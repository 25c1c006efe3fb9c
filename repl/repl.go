// Package repl provides an interactive command loop over a single
// simulation, reading command lines from an input stream and printing each
// result with the refreshed grid.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jeneen24/robot-grid-simulator/sim/engine"
)

// REPL reads command lines and executes them against one simulation.
type REPL struct {
	sim *engine.Simulation
	in  io.Reader
	out io.Writer
}

// New creates a REPL bound to the given simulation and streams.
func New(sim *engine.Simulation, in io.Reader, out io.Writer) *REPL {
	return &REPL{sim: sim, in: in, out: out}
}

// Run processes lines until EOF or a quit command. Blank lines are skipped;
// "help" and "quit"/"exit" are handled locally, everything else goes to the
// interpreter.
func (r *REPL) Run() error {
	sc := engine.Scenario{}
	if s := r.sim.Scenario(); s != nil {
		sc = *s
	}
	fmt.Fprintf(r.out, "%s (%dx%d grid). Type 'help' for commands, 'quit' to exit.\n\n",
		sc.Name, sc.GridWidth, sc.GridHeight)
	fmt.Fprintln(r.out, r.sim.RenderGrid())

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "exit":
			fmt.Fprintln(r.out, "Bye.")
			return nil
		case "help":
			fmt.Fprintln(r.out, helpText)
			continue
		}

		result := r.sim.Execute(line)
		if result.Success {
			fmt.Fprintln(r.out, result.Message)
		} else {
			fmt.Fprintf(r.out, "error (%s): %s\n", result.ErrorKind, result.Message)
		}

		// Movement and grid edits change the picture; reprint it.
		if commandChangesGrid(line) {
			fmt.Fprintln(r.out, r.sim.RenderGrid())
		}
	}

	return scanner.Err()
}

// commandChangesGrid reports whether the verb can move the robot or edit
// the grid, so the loop knows when to reprint the snapshot.
func commandChangesGrid(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case "forward", "f", "diagonal", "d", "obstacle", "remove_obstacle", "expand", "reset", "grid":
		return true
	}
	return false
}

const helpText = `Commands:
  forward <n>              move n steps in the current heading (alias: f)
  left | right             turn 45 degrees (aliases: l, r)
  diagonal <dir>           one step toward NE, SE, SW, or NW (alias: d)
  charge [amount]          add battery charge (default 50, capped at 100)
  obstacle <x> <y>         place an obstacle
  remove_obstacle <x> <y>  remove an obstacle
  expand <w> <h>           grow the grid (expandable scenarios only)
  report                   one-line status summary
  grid                     render the grid
  reset                    restore the starting state
  help                     show this text
  quit                     exit`
