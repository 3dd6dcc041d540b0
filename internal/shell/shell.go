// Package shell runs the interactive fleet menu over a line-oriented console.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/example/fleet/internal/ports/primary"
)

// Option is a menu choice.
type Option int

const (
	OptionCreate Option = iota + 1
	OptionStart
	OptionEnd
	OptionRefuel
	OptionViewLog
	OptionExit
)

var menu = []struct {
	option Option
	label  string
}{
	{OptionCreate, "Create a new starship"},
	{OptionStart, "Start a mission"},
	{OptionEnd, "End a mission"},
	{OptionRefuel, "Refuel a starship"},
	{OptionViewLog, "View mission log"},
	{OptionExit, "Exit"},
}

// Prompts and console messages.
const (
	PromptOption       = "Choose an option: "
	PromptShipID       = "Enter Starship ID: "
	PromptShipName     = "Enter Starship Name: "
	PromptDailyRate    = "Enter Daily Rate: "
	PromptFuelCapacity = "Enter Fuel Capacity: "

	MsgExiting       = "Exiting program."
	MsgInvalidOption = "Invalid option. Please try again."
	MsgInvalidNumber = "Invalid number. Please try again."
)

// Fleet is the set of operations the menu dispatches to.
// *cli.FleetAdapter satisfies it.
type Fleet interface {
	Create(ctx context.Context, req primary.CreateShipRequest) error
	Start(ctx context.Context, shipID int) error
	End(ctx context.Context, shipID int) error
	Refuel(ctx context.Context, shipID int) error
	ViewLog(ctx context.Context, shipID int) error
	Fail(err error)
}

// Shell reads menu choices from in and writes prompts to out.
type Shell struct {
	fleet Fleet
	in    *bufio.Reader
	out   io.Writer
}

// New creates a Shell.
func New(fleet Fleet, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		fleet: fleet,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

// Run loops over the menu until the exit option is chosen, input ends or
// ctx is done. All three end the session normally and return nil.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		s.printMenu()
		line, err := s.prompt(PromptOption)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(s.out, MsgInvalidOption)
			continue
		}

		switch Option(choice) {
		case OptionCreate:
			err = s.create(ctx)
		case OptionStart:
			err = s.withShip(ctx, s.fleet.Start)
		case OptionEnd:
			err = s.withShip(ctx, s.fleet.End)
		case OptionRefuel:
			err = s.withShip(ctx, s.fleet.Refuel)
		case OptionViewLog:
			err = s.withShip(ctx, s.fleet.ViewLog)
		case OptionExit:
			fmt.Fprintln(s.out, MsgExiting)
			return nil
		default:
			fmt.Fprintln(s.out, MsgInvalidOption)
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			s.fleet.Fail(err)
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	for _, item := range menu {
		fmt.Fprintf(s.out, "%d. %s\n", item.option, item.label)
	}
}

func (s *Shell) create(ctx context.Context) error {
	shipID, err := s.readInt(PromptShipID)
	if err != nil {
		return err
	}
	name, err := s.prompt(PromptShipName)
	if err != nil {
		return err
	}
	rate, err := s.readFloat(PromptDailyRate)
	if err != nil {
		return err
	}
	capacity, err := s.readFloat(PromptFuelCapacity)
	if err != nil {
		return err
	}

	return s.fleet.Create(ctx, primary.CreateShipRequest{
		ShipID:       shipID,
		Name:         name,
		DailyRate:    rate,
		FuelCapacity: capacity,
	})
}

func (s *Shell) withShip(ctx context.Context, op func(context.Context, int) error) error {
	shipID, err := s.readInt(PromptShipID)
	if err != nil {
		return err
	}
	return op(ctx, shipID)
}

// prompt writes p and reads one line without its line ending.
// A final line without a newline is returned before io.EOF.
func (s *Shell) prompt(p string) (string, error) {
	fmt.Fprint(s.out, p)

	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readInt re-prompts until the line parses as an integer.
func (s *Shell) readInt(p string) (int, error) {
	for {
		line, err := s.prompt(p)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(s.out, MsgInvalidNumber)
	}
}

// readFloat re-prompts until the line parses as a finite number.
func (s *Shell) readFloat(p string) (float64, error) {
	for {
		line, err := s.prompt(p)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
			return v, nil
		}
		fmt.Fprintln(s.out, MsgInvalidNumber)
	}
}
