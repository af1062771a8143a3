package game

import (
	"fmt"
	"strings"
)

// Mark represents a cell state on the board
type Mark int

const (
	MarkEmpty Mark = iota
	MarkX
	MarkO
)

func (m Mark) String() string {
	switch m {
	case MarkEmpty:
		return " "
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "?"
	}
}

// ParseMark converts "X", "O" or "" back into a Mark.
func ParseMark(s string) (Mark, error) {
	switch strings.TrimSpace(s) {
	case "":
		return MarkEmpty, nil
	case "X", "x":
		return MarkX, nil
	case "O", "o":
		return MarkO, nil
	default:
		return MarkEmpty, fmt.Errorf("unknown mark %q", s)
	}
}

const (
	// Size is the side length of the board.
	Size = 3
	// Cells is the number of cells on the board.
	Cells = Size * Size
)

// Lines lists the eight winning triples in the order they are checked:
// rows, columns, then diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid in row-major order. It is an array, so assigning a
// Board copies it.
type Board [Cells]Mark

// Get returns the mark at the given index, or MarkEmpty when out of bounds.
func (b Board) Get(i int) Mark {
	if !ValidCell(i) {
		return MarkEmpty
	}
	return b[i]
}

// With returns a copy of the board with cell i set to mark.
func (b Board) With(i int, mark Mark) Board {
	b[i] = mark
	return b
}

// ValidCell reports whether i indexes a cell.
func ValidCell(i int) bool {
	return i >= 0 && i < Cells
}

// IsFull returns true if all cells are occupied
func (b Board) IsFull() bool {
	for _, cell := range b {
		if cell == MarkEmpty {
			return false
		}
	}
	return true
}

// Winner returns the mark holding the first completed line, if any.
// It does not detect draws and does not check that the board is reachable.
func (b Board) Winner() (Mark, bool) {
	_, mark, ok := b.WinningLine()
	return mark, ok
}

// WinningLine returns the first completed line and its mark.
func (b Board) WinningLine() ([3]int, Mark, bool) {
	for _, line := range Lines {
		m := b[line[0]]
		if m != MarkEmpty && m == b[line[1]] && m == b[line[2]] {
			return line, m, true
		}
	}
	return [3]int{}, MarkEmpty, false
}

// diff returns the indices where b and o differ.
func (b Board) diff(o Board) []int {
	var idx []int
	for i := range b {
		if b[i] != o[i] {
			idx = append(idx, i)
		}
	}
	return idx
}
