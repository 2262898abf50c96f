package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - plays one game on stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run plays one game on the given streams. in is closed when the game ends.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.ReadCloser, out io.Writer) error {
	log := logger.With("component", "app")

	resultRepo, closeStorage := initResultRepository(ctx, log, conf)
	defer closeStorage()

	human := entity.NewPlayer(entity.Cell(conf.HumanMark))
	computer := entity.NewPlayer(entity.Cell(conf.ComputerMark))
	botService := service.NewBotService(service.NewRand(conf.Seed))

	gameController := tictactoe.NewGameController(logger, human, computer, botService, in, out)
	gameManager := usecase.NewGameManager(logger, resultRepo)

	if _, err := gameManager.Play(ctx, gameController); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

// initResultRepository picks redis when enabled and reachable, the in-memory store otherwise.
func initResultRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.ResultRepository, func()) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryResultRepository(), func() {}
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		log.Warn("could not connect to redis storage, results are kept in memory", "error", err)
		return repository.NewMemoryResultRepository(), func() {}
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewResultRepository(redisStorage.Connection), closeStorage
}
