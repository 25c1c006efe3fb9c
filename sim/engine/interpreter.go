package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// handler applies one parsed command to the simulation and returns the
// outcome message. State mutations happen inside the handler; handlers
// returning an error have left the simulation untouched except for the
// documented partial progress of multi-step moves.
type handler func(s *Simulation, args []string) (string, error)

// commandSpec is one row of the verb dispatch table: required argument
// count, a usage string for error messages, and the handler.
type commandSpec struct {
	verb    string
	minArgs int
	usage   string
	run     handler
}

// commandTable maps each verb (and its single-letter alias, where one
// exists) to its spec. Extra arguments beyond what a verb consumes are
// ignored.
var commandTable = map[string]commandSpec{}

func register(spec commandSpec, aliases ...string) {
	commandTable[spec.verb] = spec
	for _, a := range aliases {
		commandTable[a] = spec
	}
}

func init() {
	register(commandSpec{"forward", 0, "forward [steps]", cmdForward}, "f")
	register(commandSpec{"left", 0, "left", cmdLeft}, "l")
	register(commandSpec{"right", 0, "right", cmdRight}, "r")
	register(commandSpec{"diagonal", 1, "diagonal <northeast|southeast|southwest|northwest>", cmdDiagonal}, "d")
	register(commandSpec{"charge", 0, "charge [amount]", cmdCharge})
	register(commandSpec{"obstacle", 2, "obstacle <x> <y>", cmdObstacle})
	register(commandSpec{"remove_obstacle", 2, "remove_obstacle <x> <y>", cmdRemoveObstacle})
	register(commandSpec{"expand", 2, "expand <width> <height>", cmdExpand})
	register(commandSpec{"report", 0, "report", cmdReport})
	register(commandSpec{"grid", 0, "grid", cmdGrid})
	register(commandSpec{"reset", 0, "reset", cmdReset})
}

// Execute interprets one command line: whitespace tokenization, a
// case-insensitive verb lookup, argument validation, and application. Every
// line, successful or not, is appended to the command history.
func (s *Simulation) Execute(input string) Result {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return s.finish(input, "", Position{}, 0, "", newError(InvalidArgument, "empty command"))
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]
	from := s.Robot.Position
	movesBefore := s.Robot.MoveCount

	spec, ok := commandTable[verb]
	if !ok {
		return s.finish(input, verb, from, 0, "", newError(UnknownCommand, "unknown command: %q", strings.TrimSpace(input)))
	}
	if len(args) < spec.minArgs {
		return s.finish(input, spec.verb, from, 0, "", newError(InvalidArgument, "usage: %s", spec.usage))
	}

	msg, err := spec.run(s, args)
	return s.finish(input, spec.verb, from, s.Robot.MoveCount-movesBefore, msg, err)
}

// finish builds the Result and appends the history record for one line.
func (s *Simulation) finish(input, verb string, from Position, steps int, msg string, err error) Result {
	if steps < 0 {
		steps = 0 // reset zeroes the move counter
	}
	res := Result{Success: err == nil, Message: msg, StepsTaken: steps}
	if err != nil {
		res.ErrorKind = KindOf(err)
		res.Message = err.Error()
		if steps > 0 {
			res.Message = fmt.Sprintf("%s (completed %d step(s) before stopping)", err.Error(), steps)
		}
	}

	s.commandCount++
	s.history = append(s.history, CommandRecord{
		Input:     input,
		Verb:      verb,
		Message:   res.Message,
		Success:   res.Success,
		ErrorKind: res.ErrorKind,
		From:      from,
		To:        s.Robot.Position,
		Battery:   s.Robot.Battery,
		Timestamp: time.Now().Unix(),
		Number:    s.commandCount,
	})
	return res
}

func cmdForward(s *Simulation, args []string) (string, error) {
	steps := DefaultForwardSteps
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return "", newError(InvalidArgument, "forward steps must be a positive integer, got %q", args[0])
		}
		steps = n
	}

	taken, err := s.Robot.Forward(s.Grid, steps)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("moved forward %d step(s) to (%d, %d), battery %d%%",
		taken, s.Robot.Position.X, s.Robot.Position.Y, s.Robot.Battery), nil
}

func cmdLeft(s *Simulation, args []string) (string, error) {
	s.Robot.TurnLeft()
	return fmt.Sprintf("turned left, now facing %s", s.Robot.Heading), nil
}

func cmdRight(s *Simulation, args []string) (string, error) {
	s.Robot.TurnRight()
	return fmt.Sprintf("turned right, now facing %s", s.Robot.Heading), nil
}

func cmdDiagonal(s *Simulation, args []string) (string, error) {
	dir, ok := ParseHeading(args[0])
	if !ok || !dir.Diagonal() {
		return "", newError(InvalidArgument, "diagonal direction must be northeast, southeast, southwest or northwest, got %q", args[0])
	}
	if err := s.Robot.Diagonal(s.Grid, dir); err != nil {
		return "", err
	}
	return fmt.Sprintf("moved diagonally %s to (%d, %d), battery %d%%",
		dir.Name(), s.Robot.Position.X, s.Robot.Position.Y, s.Robot.Battery), nil
}

func cmdCharge(s *Simulation, args []string) (string, error) {
	amount := DefaultCharge
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return "", newError(InvalidArgument, "charge amount must be a non-negative integer, got %q", args[0])
		}
		amount = n
	}

	gained := s.Robot.Charge(amount)
	return fmt.Sprintf("battery charged by %d%%, now at %d%%", gained, s.Robot.Battery), nil
}

func cmdObstacle(s *Simulation, args []string) (string, error) {
	x, y, err := parseCoordinates(args)
	if err != nil {
		return "", err
	}
	if x == s.Robot.Position.X && y == s.Robot.Position.Y {
		return "", newError(Blocked, "cannot place obstacle at (%d, %d): robot occupies that cell", x, y)
	}
	if err := s.Grid.AddObstacle(x, y); err != nil {
		return "", err
	}
	return fmt.Sprintf("obstacle added at (%d, %d)", x, y), nil
}

func cmdRemoveObstacle(s *Simulation, args []string) (string, error) {
	x, y, err := parseCoordinates(args)
	if err != nil {
		return "", err
	}
	if s.Grid.RemoveObstacle(x, y) {
		return fmt.Sprintf("obstacle removed from (%d, %d)", x, y), nil
	}
	return fmt.Sprintf("no obstacle at (%d, %d)", x, y), nil
}

func cmdExpand(s *Simulation, args []string) (string, error) {
	w, h, err := parseCoordinates(args)
	if err != nil {
		return "", err
	}
	if w < 1 || h < 1 {
		return "", newError(InvalidArgument, "grid dimensions must be positive integers, got %d and %d", w, h)
	}
	if err := s.Grid.Expand(w, h); err != nil {
		return "", err
	}
	return fmt.Sprintf("grid expanded to %dx%d", w, h), nil
}

func cmdReport(s *Simulation, args []string) (string, error) {
	r := s.Report()
	return fmt.Sprintf("position (%d, %d) facing %s | battery %d%% | grid %dx%d | moves %d | obstacles %d",
		r.Position.X, r.Position.Y, r.Heading, r.Battery, r.GridWidth, r.GridHeight, r.MoveCount, r.Obstacles), nil
}

func cmdGrid(s *Simulation, args []string) (string, error) {
	return s.RenderGrid(), nil
}

func cmdReset(s *Simulation, args []string) (string, error) {
	s.Reset()
	return "robot reset to starting state", nil
}

// parseCoordinates reads two integer arguments.
func parseCoordinates(args []string) (int, int, error) {
	x, errX := strconv.Atoi(args[0])
	y, errY := strconv.Atoi(args[1])
	if errX != nil || errY != nil {
		return 0, 0, newError(InvalidArgument, "coordinates must be integers, got %q %q", args[0], args[1])
	}
	return x, y, nil
}
