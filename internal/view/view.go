// Package view turns a game.State into what a player sees: the grid of
// cells, the status line and the list of history entries to jump to.
package view

import (
	"fmt"
	"io"
	"strings"

	"timetravel/internal/game"
)

// Cell is one square of the rendered grid.
type Cell struct {
	Index   int
	Label   string
	Winning bool
}

// Move is one entry of the move list.
type Move struct {
	Step    int
	Label   string
	Current bool
}

// Page is everything needed to draw one frame.
type Page struct {
	Rows   [game.Size][game.Size]Cell
	Status string
	Moves  []Move
}

// CellLabel returns the text shown in a cell: "X", "O" or nothing.
func CellLabel(m game.Mark) string {
	switch m {
	case game.MarkX:
		return "X"
	case game.MarkO:
		return "O"
	default:
		return ""
	}
}

// MoveLabel returns the button text for a history entry.
func MoveLabel(step int) string {
	if step == 0 {
		return "Go to game start"
	}
	return fmt.Sprintf("Go to move #%d", step)
}

// StatusLine returns "Winner: X" or "Next player: O" for the displayed step.
func StatusLine(s game.State) string {
	return s.Status().String()
}

// Rows lays the board out as three rows of three cells.
func Rows(b game.Board) [game.Size][game.Size]Cell {
	line, _, won := b.WinningLine()

	var rows [game.Size][game.Size]Cell
	for i, m := range b {
		rows[i/game.Size][i%game.Size] = Cell{
			Index:   i,
			Label:   CellLabel(m),
			Winning: won && (i == line[0] || i == line[1] || i == line[2]),
		}
	}
	return rows
}

// Moves lists one entry per recorded step.
func Moves(s game.State) []Move {
	moves := make([]Move, s.Len())
	for i := range moves {
		moves[i] = Move{
			Step:    i,
			Label:   MoveLabel(i),
			Current: i == s.StepNumber(),
		}
	}
	return moves
}

// Build derives the full page for a state.
func Build(s game.State) Page {
	return Page{
		Rows:   Rows(s.Board()),
		Status: StatusLine(s),
		Moves:  Moves(s),
	}
}

// Grid renders the board as a bordered text grid. With showIndex, empty
// cells show their index so a terminal player knows what to type. Cells on
// the winning line are starred.
func Grid(b game.Board, showIndex bool) string {
	return grid(Rows(b), showIndex)
}

func grid(rows [game.Size][game.Size]Cell, showIndex bool) string {
	var sb strings.Builder
	separator := "+" + strings.Repeat("---+", game.Size)

	sb.WriteString(separator + "\n")
	for _, row := range rows {
		cells := make([]string, 0, game.Size)
		for _, c := range row {
			label := c.Label
			if label == "" {
				label = " "
				if showIndex {
					label = fmt.Sprint(c.Index)
				}
			}
			if c.Winning {
				cells = append(cells, "*"+label+"*")
			} else {
				cells = append(cells, " "+label+" ")
			}
		}
		sb.WriteString("|" + strings.Join(cells, "|") + "|\n")
		sb.WriteString(separator + "\n")
	}
	return sb.String()
}

// Render writes the grid, status line and move list.
func Render(w io.Writer, s game.State, showIndex bool) error {
	page := Build(s)

	var sb strings.Builder
	sb.WriteString(grid(page.Rows, showIndex))
	sb.WriteString(page.Status + "\n")
	for _, m := range page.Moves {
		marker := " "
		if m.Current {
			marker = ">"
		}
		fmt.Fprintf(&sb, "%s %d. %s\n", marker, m.Step, m.Label)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
