package game

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrStepOutOfRange = errors.New("step out of range")
	ErrEmptyHistory   = errors.New("history must contain at least the starting step")
	ErrInvalidHistory = errors.New("history does not follow legal play")
)

// Step is one recorded position: the board and whose turn is next.
type Step struct {
	Board   Board
	XIsNext bool
}

// ToMove returns the mark whose turn it is at this step.
func (s Step) ToMove() Mark {
	if s.XIsNext {
		return MarkX
	}
	return MarkO
}

// State is a game history plus the step currently displayed.
// Transitions return a new State and leave the receiver untouched.
type State struct {
	history []Step
	step    int
}

// New returns the starting state: an empty board with X to move.
func New() State {
	return State{
		history: []Step{{XIsNext: true}},
	}
}

// Restore rebuilds a State from a recorded history, checking that every
// step follows from the previous one by a single legal move and that no
// move follows a win.
func Restore(history []Step, step int) (State, error) {
	if len(history) == 0 {
		return State{}, ErrEmptyHistory
	}
	if history[0] != (Step{XIsNext: true}) {
		return State{}, fmt.Errorf("%w: step 0 is not an empty board with X to move", ErrInvalidHistory)
	}
	for i := 1; i < len(history); i++ {
		prev, cur := history[i-1], history[i]
		if _, won := prev.Board.Winner(); won {
			return State{}, fmt.Errorf("%w: step %d plays after the game was won", ErrInvalidHistory, i)
		}
		changed := cur.Board.diff(prev.Board)
		if len(changed) != 1 {
			return State{}, fmt.Errorf("%w: step %d changes %d cells", ErrInvalidHistory, i, len(changed))
		}
		cell := changed[0]
		if prev.Board[cell] != MarkEmpty || cur.Board[cell] != prev.ToMove() {
			return State{}, fmt.Errorf("%w: step %d plays %s on cell %d", ErrInvalidHistory, i, cur.Board[cell], cell)
		}
		if cur.XIsNext == prev.XIsNext {
			return State{}, fmt.Errorf("%w: step %d does not pass the turn", ErrInvalidHistory, i)
		}
	}
	if step < 0 || step >= len(history) {
		return State{}, ErrStepOutOfRange
	}

	h := make([]Step, len(history))
	copy(h, history)
	return State{history: h, step: step}, nil
}

// StepNumber returns the index of the displayed step.
func (s State) StepNumber() int {
	return s.step
}

// Len returns the number of recorded steps.
func (s State) Len() int {
	return len(s.history)
}

// History returns a copy of the recorded steps.
func (s State) History() []Step {
	h := make([]Step, len(s.history))
	copy(h, s.history)
	return h
}

// Current returns the displayed step.
func (s State) Current() Step {
	return s.history[s.step]
}

// Board returns the displayed board.
func (s State) Board() Board {
	return s.Current().Board
}

// CanMove reports whether ApplyMove would accept a move on cell.
func (s State) CanMove(cell int) bool {
	cur := s.Current()
	if _, won := cur.Board.Winner(); won {
		return false
	}
	return ValidCell(cell) && cur.Board[cell] == MarkEmpty
}

// ApplyMove plays the mark to move on cell. Steps after the displayed one are
// discarded first. When the game is already won or the cell is taken or out
// of bounds, the receiver is returned unchanged.
func (s State) ApplyMove(cell int) State {
	if !s.CanMove(cell) {
		return s
	}

	cur := s.Current()
	history := make([]Step, s.step+1, s.step+2)
	copy(history, s.history[:s.step+1])
	history = append(history, Step{
		Board:   cur.Board.With(cell, cur.ToMove()),
		XIsNext: !cur.XIsNext,
	})

	return State{history: history, step: len(history) - 1}
}

// JumpTo moves the cursor to a recorded step without touching history.
func (s State) JumpTo(step int) (State, error) {
	if step < 0 || step >= len(s.history) {
		return s, fmt.Errorf("%w: %d not in [0, %d)", ErrStepOutOfRange, step, len(s.history))
	}
	return State{history: s.history, step: step}, nil
}

// Status is the display status derived from the current board.
type Status struct {
	Winner Mark
	Next   Mark
}

// Finished returns true if the displayed board has a winner.
func (s Status) Finished() bool {
	return s.Winner != MarkEmpty
}

func (s Status) String() string {
	if s.Finished() {
		return "Winner: " + s.Winner.String()
	}
	return "Next player: " + s.Next.String()
}

// Status derives the winner or next player for the displayed step.
func (s State) Status() Status {
	cur := s.Current()
	if w, ok := cur.Board.Winner(); ok {
		return Status{Winner: w}
	}
	return Status{Next: cur.ToMove()}
}
