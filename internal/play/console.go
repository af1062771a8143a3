// Package play runs an interactive tic-tac-toe console: it draws the board,
// status line and move list, and turns typed commands into cell clicks and
// history jumps.
package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"timetravel/internal/game"
	"timetravel/internal/view"
)

const help = "Commands: 0-8 to play a cell, j N to jump to step N, n for a new game, q to quit"

// Console reads commands from in and draws frames to out.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	backend Backend
}

// NewConsole creates a console over backend.
func NewConsole(in io.Reader, out io.Writer, backend Backend) *Console {
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		backend: backend,
	}
}

// Run draws the game and handles commands until quit, end of input or a
// backend failure.
func (c *Console) Run(ctx context.Context) error {
	st, err := c.backend.State(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, help)
	if err := c.draw(st); err != nil {
		return err
	}

	for {
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		next, quit, err := c.handle(ctx, strings.TrimSpace(c.in.Text()))
		switch {
		case quit:
			return nil
		case errors.Is(err, errUsage), errors.Is(err, game.ErrStepOutOfRange):
			fmt.Fprintln(c.out, err)
			continue
		case err != nil:
			return err
		}

		if err := c.draw(next); err != nil {
			return err
		}
	}
}

var errUsage = errors.New(help)

func (c *Console) handle(ctx context.Context, line string) (game.State, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		st, err := c.backend.State(ctx)
		return st, false, err
	}

	switch strings.ToLower(fields[0]) {
	case "q", "quit", "exit":
		return game.State{}, true, nil
	case "n", "new":
		st, err := c.backend.Reset(ctx)
		return st, false, err
	case "j", "jump":
		if len(fields) != 2 {
			return game.State{}, false, errUsage
		}
		step, err := strconv.Atoi(fields[1])
		if err != nil {
			return game.State{}, false, errUsage
		}
		st, err := c.backend.Jump(ctx, step)
		if errors.Is(err, game.ErrStepOutOfRange) {
			return st, false, fmt.Errorf("no step %d in this game: %w", step, game.ErrStepOutOfRange)
		}
		return st, false, err
	}

	cell, err := strconv.Atoi(fields[0])
	if err != nil || len(fields) != 1 || !game.ValidCell(cell) {
		return game.State{}, false, errUsage
	}
	st, err := c.backend.Click(ctx, cell)
	return st, false, err
}

func (c *Console) draw(st game.State) error {
	fmt.Fprintln(c.out)
	return view.Render(c.out, st, true)
}
