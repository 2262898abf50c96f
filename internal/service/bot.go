package service

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Rand is the source of the bot's choices. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a seeded generator. A zero seed is replaced by the current time.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	if seed == 0 {
		s = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewPCG(s, s)) //nolint: gosec // game moves, not secrets
}

type BotService interface {
	MakeTurn(board *entity.Board, mark entity.Cell) (row, col int, err error)
}

type botService struct {
	rand Rand
}

func NewBotService(rnd Rand) BotService {
	return &botService{
		rand: rnd,
	}
}

// MakeTurn samples (row, col) uniformly until it hits an empty cell and places mark there.
func (that *botService) MakeTurn(board *entity.Board, mark entity.Cell) (int, int, error) {
	if board.IsFull() {
		return -1, -1, apperror.ErrNoAvailableMoves
	}

	var row, col int
	for {
		row = that.rand.IntN(entity.BoardSize)
		col = that.rand.IntN(entity.BoardSize)

		if board.GetCell(row, col) == entity.EmptyCell {
			break
		}
	}

	if err := board.TryPlace(row, col, mark); err != nil {
		return -1, -1, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return row, col, nil
}
