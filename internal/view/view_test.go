package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetravel/internal/game"
)

func playAll(s game.State, cells ...int) game.State {
	for _, c := range cells {
		s = s.ApplyMove(c)
	}
	return s
}

func TestMoveLabel(t *testing.T) {
	assert.Equal(t, "Go to game start", MoveLabel(0))
	assert.Equal(t, "Go to move #1", MoveLabel(1))
	assert.Equal(t, "Go to move #9", MoveLabel(9))
}

func TestCellLabel(t *testing.T) {
	assert.Equal(t, "X", CellLabel(game.MarkX))
	assert.Equal(t, "O", CellLabel(game.MarkO))
	assert.Equal(t, "", CellLabel(game.MarkEmpty))
}

func TestStatusLine(t *testing.T) {
	s := game.New()
	assert.Equal(t, "Next player: X", StatusLine(s))

	s = playAll(s, 0)
	assert.Equal(t, "Next player: O", StatusLine(s))

	s = playAll(s, 3, 1, 4, 2)
	assert.Equal(t, "Winner: X", StatusLine(s))
}

func TestRows(t *testing.T) {
	s := playAll(game.New(), 0, 3, 1, 4, 2)

	rows := Rows(s.Board())

	assert.Equal(t, Cell{Index: 0, Label: "X", Winning: true}, rows[0][0])
	assert.Equal(t, Cell{Index: 2, Label: "X", Winning: true}, rows[0][2])
	assert.Equal(t, Cell{Index: 4, Label: "O"}, rows[1][1])
	assert.Equal(t, Cell{Index: 8, Label: ""}, rows[2][2])
}

func TestMoves(t *testing.T) {
	s := playAll(game.New(), 0, 3, 1)
	s, err := s.JumpTo(1)
	require.NoError(t, err)

	moves := Moves(s)

	require.Len(t, moves, 4)
	assert.Equal(t, Move{Step: 0, Label: "Go to game start"}, moves[0])
	assert.Equal(t, Move{Step: 1, Label: "Go to move #1", Current: true}, moves[1])
	assert.Equal(t, "Go to move #3", moves[3].Label)
}

func TestBuild_AfterJumpToStart(t *testing.T) {
	s := playAll(game.New(), 0, 3, 1)
	s, err := s.JumpTo(0)
	require.NoError(t, err)

	page := Build(s)

	assert.Equal(t, "Next player: X", page.Status)
	assert.Len(t, page.Moves, 4)
	for _, row := range page.Rows {
		for _, c := range row {
			assert.Empty(t, c.Label)
		}
	}
}

func TestGrid(t *testing.T) {
	s := playAll(game.New(), 4)

	want := "" +
		"+---+---+---+\n" +
		"|   |   |   |\n" +
		"+---+---+---+\n" +
		"|   | X |   |\n" +
		"+---+---+---+\n" +
		"|   |   |   |\n" +
		"+---+---+---+\n"
	assert.Equal(t, want, Grid(s.Board(), false))

	withIndex := Grid(s.Board(), true)
	assert.Contains(t, withIndex, "| 0 | 1 | 2 |\n")
	assert.Contains(t, withIndex, "| 3 | X | 5 |\n")
}

func TestGrid_WinningLine(t *testing.T) {
	s := playAll(game.New(), 0, 3, 1, 4, 2)

	out := Grid(s.Board(), false)
	assert.Contains(t, out, "|*X*|*X*|*X*|\n")
	assert.Contains(t, out, "| O | O |   |\n")
}

func TestRender(t *testing.T) {
	s := playAll(game.New(), 0)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s, true))

	out := buf.String()
	assert.Contains(t, out, "| X | 1 | 2 |")
	assert.Contains(t, out, "Next player: O\n")
	assert.Contains(t, out, "  0. Go to game start\n")
	assert.Contains(t, out, "> 1. Go to move #1\n")
}

func TestRender_WithoutIndex(t *testing.T) {
	s := playAll(game.New(), 0)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s, false))

	out := buf.String()
	assert.Contains(t, out, "| X |   |   |\n")
	assert.NotContains(t, out, "| 1 |")
}
