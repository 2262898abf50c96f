package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusFinished = "finished"

	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
	PlayerTie Cell = "-"

	EmptyCell Cell = ""
)

const BoardSize = 3

const rowSeparator = "---+---+---"

// Cell is the content of a single board position: EmptyCell or a player's marker.
type Cell string

// WinLines lists every row, column and diagonal as (row, col) triples.
var WinLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is the 3x3 grid. The zero value is an empty board.
type Board struct {
	grid [BoardSize][BoardSize]Cell
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// PlaceMarker puts symbol at (row, col) and reports whether it did.
// The board is left untouched when the cell is out of range or occupied.
func (that *Board) PlaceMarker(row, col int, symbol Cell) bool {
	return that.TryPlace(row, col, symbol) == nil
}

// TryPlace is PlaceMarker with the reason for a rejected placement.
func (that *Board) TryPlace(row, col int, symbol Cell) error {
	if symbol == EmptyCell {
		return apperror.ErrInvalidMarker
	}

	if !inRange(row) || !inRange(col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	if that.grid[row][col] != EmptyCell {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that.grid[row][col] = symbol

	return nil
}

func (that *Board) CheckWin(symbol Cell) bool {
	if symbol == EmptyCell {
		return false
	}

	for _, line := range WinLines {
		if that.lineOf(line, symbol) {
			return true
		}
	}

	return false
}

func (that *Board) lineOf(line [3][2]int, symbol Cell) bool {
	for _, pos := range line {
		if that.grid[pos[0]][pos[1]] != symbol {
			return false
		}
	}
	return true
}

func (that *Board) IsFull() bool {
	for _, row := range that.grid {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// GetCell does no bounds checking; row and col must be in [0, BoardSize).
func (that *Board) GetCell(row, col int) Cell {
	return that.grid[row][col]
}

// DetermineGameResult returns the first of marks that owns a full line,
// PlayerTie when the board is full without one, and EmptyCell while the game continues.
func (that *Board) DetermineGameResult(marks ...Cell) Cell {
	for _, mark := range marks {
		if that.CheckWin(mark) {
			return mark
		}
	}

	// the game will continue until all the squares are full
	if !that.IsFull() {
		return EmptyCell
	}

	return PlayerTie
}

// Display renders the grid, e.g.
//
//	 X | O | X
//	---+---+---
func (that *Board) Display() string {
	var sb strings.Builder

	for i, row := range that.grid {
		for j, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(cell.String())
			if j < BoardSize-1 {
				sb.WriteString(" |")
			}
		}
		sb.WriteString("\n")

		if i < BoardSize-1 {
			sb.WriteString(rowSeparator)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (that *Board) String() string {
	return that.Display()
}

// String renders an empty cell as a blank.
func (c Cell) String() string {
	if c == EmptyCell {
		return " "
	}
	return string(c)
}

func inRange(idx int) bool {
	return idx >= 0 && idx < BoardSize
}
