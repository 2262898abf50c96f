package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
)

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	IncrementTally(ctx context.Context, outcome string) error
	GetTally(ctx context.Context) (entity.Tally, error)
}

type gameController interface {
	Run() (*entity.Result, error)
}

// GameManager plays games and records their results.
type GameManager struct {
	logger     *slog.Logger
	resultRepo resultRepo
}

// NewGameManager creates a GameManager storing results in resultRepo.
func NewGameManager(logger *slog.Logger, resultRepo resultRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		resultRepo: resultRepo,
	}
}

// Play runs one game to completion and records its result.
// Recording failures are logged; they never fail a game that was played out.
func (that *GameManager) Play(ctx context.Context, game gameController) (*entity.Result, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	log := that.logger.With("method", "Play", "gameID", gameID)
	log.Info("game started")

	result, err := game.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to play game: %w", err)
	}

	result.ID = gameID
	log.Info("game finished", "outcome", result.Outcome(), "moves", len(result.Moves))

	that.recordResult(ctx, result)

	return result, nil
}

func (that *GameManager) recordResult(ctx context.Context, result *entity.Result) {
	log := that.logger.With("method", "recordResult", "gameID", result.ID)

	if err := that.resultRepo.Save(ctx, result); err != nil {
		log.Error("failed to save result", "error", err)
	} else if stored, err := that.resultRepo.GetByID(ctx, result.ID); err != nil {
		log.Error("failed to read back saved result", "error", err)
	} else {
		log.Debug("result saved", "outcome", stored.Outcome(), "moves", len(stored.Moves))
	}

	if err := that.resultRepo.IncrementTally(ctx, result.Outcome()); err != nil {
		log.Error("failed to update tally", "error", err)
		return
	}

	tally, err := that.resultRepo.GetTally(ctx)
	if err != nil {
		log.Error("failed to get tally", "error", err)
		return
	}

	// With the in-memory store this only ever counts the current game.
	log.Info("results so far",
		"human_wins", tally.HumanWins,
		"computer_wins", tally.ComputerWins,
		"draws", tally.Draws,
		"games", tally.Total(),
	)
}
