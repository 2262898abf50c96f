package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFrom builds a board from three rows where '.' marks an empty cell.
func boardFrom(t *testing.T, rows ...string) *Board {
	t.Helper()

	require.Len(t, rows, BoardSize)

	board := NewBoard()
	for r, row := range rows {
		require.Len(t, row, BoardSize)
		for c, ch := range row {
			if ch == '.' {
				continue
			}
			require.True(t, board.PlaceMarker(r, c, Cell(string(ch))))
		}
	}

	return board
}

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: every cell should be empty
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			assert.Equal(t, EmptyCell, board.GetCell(r, c))
		}
	}
	assert.False(t, board.IsFull())
}

func TestBoard_PlaceMarker(t *testing.T) {
	t.Run("Places marker on empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: X is placed in the center
		ok := board.PlaceMarker(1, 1, PlayerX)

		// Then: the placement succeeds and only that cell changes
		require.True(t, ok)
		expected := boardFrom(t, "...", ".X.", "...")
		assert.Equal(t, expected, board)
	})

	t.Run("Rejects occupied cell and leaves board unchanged", func(t *testing.T) {
		// Given: a board with X in the corner
		board := boardFrom(t, "X..", "...", "...")
		before := *board

		// When: O tries the same cell
		ok := board.PlaceMarker(0, 0, PlayerO)

		// Then: the placement fails and nothing changes
		require.False(t, ok)
		assert.Equal(t, before, *board)
	})

	t.Run("Rejects out of range coordinates without panicking", func(t *testing.T) {
		cases := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-1, 3}, {5, 5}}

		for _, pos := range cases {
			// Given: an empty board
			board := NewBoard()
			before := *board

			// When: X is placed outside the grid
			ok := board.PlaceMarker(pos[0], pos[1], PlayerX)

			// Then: the placement fails and nothing changes
			assert.False(t, ok, "position %v", pos)
			assert.Equal(t, before, *board)
		}
	})
}

func TestBoard_TryPlace(t *testing.T) {
	t.Run("Out of range", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: placing at row 0, col 4 after the 1-based adjustment
		err := board.TryPlace(-1, 3, PlayerX)

		// Then: ErrOutOfRange is returned
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
	})

	t.Run("Occupied", func(t *testing.T) {
		// Given: a board with O on the bottom right
		board := boardFrom(t, "...", "...", "..O")

		// When: X tries the same cell
		err := board.TryPlace(2, 2, PlayerX)

		// Then: ErrCellOccupied is returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Empty marker", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: the empty cell value is used as a marker
		err := board.TryPlace(0, 0, EmptyCell)

		// Then: ErrInvalidMarker is returned and the board is still empty
		require.ErrorIs(t, err, apperror.ErrInvalidMarker)
		assert.Equal(t, NewBoard(), board)
	})
}

func TestBoard_CheckWin(t *testing.T) {
	for _, line := range WinLines {
		// Given: a board where X owns exactly this line
		board := NewBoard()
		for _, pos := range line {
			require.True(t, board.PlaceMarker(pos[0], pos[1], PlayerX))
		}

		// Then: X wins and O does not
		assert.True(t, board.CheckWin(PlayerX), "line %v", line)
		assert.False(t, board.CheckWin(PlayerO), "line %v", line)
	}

	t.Run("Mixed line does not win", func(t *testing.T) {
		// Given: a top row shared between X and O
		board := boardFrom(t, "XXO", "...", "...")

		// Then: nobody wins
		assert.False(t, board.CheckWin(PlayerX))
		assert.False(t, board.CheckWin(PlayerO))
	})

	t.Run("Empty marker never wins", func(t *testing.T) {
		assert.False(t, NewBoard().CheckWin(EmptyCell))
	})

	t.Run("Fewer than three markers never win", func(t *testing.T) {
		// Given: every board reachable by filling cells with X, O or nothing
		cells := [3]Cell{EmptyCell, PlayerX, PlayerO}
		for code := 0; code < 19683; code++ {
			board := NewBoard()
			xs := 0
			n := code
			for i := 0; i < BoardSize*BoardSize; i++ {
				cell := cells[n%3]
				n /= 3
				board.grid[i/BoardSize][i%BoardSize] = cell
				if cell == PlayerX {
					xs++
				}
			}

			// Then: X cannot win with fewer than three markers
			if xs < 3 && board.CheckWin(PlayerX) {
				t.Fatalf("X wins with %d markers:\n%s", xs, board.Display())
			}
		}
	})
}

func TestBoard_IsFull(t *testing.T) {
	// Given: nine distinct valid placements
	board := NewBoard()
	marks := [2]Cell{PlayerX, PlayerO}

	for i := 0; i < BoardSize*BoardSize; i++ {
		// Then: the board is not full before the ninth placement
		assert.False(t, board.IsFull(), "after %d placements", i)

		// When: the next cell is filled
		require.True(t, board.PlaceMarker(i/BoardSize, i%BoardSize, marks[i%2]))
	}

	// Then: the board is full after the ninth
	assert.True(t, board.IsFull())
}

func TestBoard_DetermineGameResult(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want Cell
	}{
		{name: "X wins row", rows: []string{"XXX", "OO.", "..."}, want: PlayerX},
		{name: "O wins anti-diagonal", rows: []string{"XXO", "XO.", "O.."}, want: PlayerO},
		{name: "Draw", rows: []string{"XOX", "XOO", "OXX"}, want: PlayerTie},
		{name: "Ongoing", rows: []string{"XO.", ".X.", "..O"}, want: EmptyCell},
		{name: "Win on a full board beats draw", rows: []string{"XOX", "OXO", "OXX"}, want: PlayerX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: the board from the table
			board := boardFrom(t, tt.rows...)

			// When: determining the result
			got := board.DetermineGameResult(PlayerX, PlayerO)

			// Then: it matches
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoard_Display(t *testing.T) {
	// Given: a partially filled board
	board := boardFrom(t, "X.O", ".X.", "O..")

	// When: rendering it
	got := board.Display()

	// Then: cells are padded, columns split by '|' and rows by separators
	want := " X |   | O\n" +
		"---+---+---\n" +
		"   | X |  \n" +
		"---+---+---\n" +
		" O |   |  \n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Display() mismatch (-want +got):\n%s", diff)
	}
}
