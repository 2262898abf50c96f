package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const tallyKey = "results:tally"

var (
	ErrResultNotFound = errors.New("result not found")
	ErrUnknownOutcome = errors.New("unknown game outcome")
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)

	IncrementTally(ctx context.Context, outcome string) error
	GetTally(ctx context.Context) (entity.Tally, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	err = that.client.Set(ctx, resultKey(result.ID), resultJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Result{}, ErrResultNotFound
	}

	if err != nil {
		return &entity.Result{}, fmt.Errorf("failed to get result by id: %w", err)
	}

	var existingResult entity.Result
	if err = json.Unmarshal([]byte(response), &existingResult); err != nil {
		return &entity.Result{}, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &existingResult, nil
}

func (that *dbResult) IncrementTally(ctx context.Context, outcome string) error {
	if !isKnownOutcome(outcome) {
		return fmt.Errorf("%w: %q", ErrUnknownOutcome, outcome)
	}

	if err := that.client.HIncrBy(ctx, tallyKey, outcome, 1).Err(); err != nil {
		return fmt.Errorf("failed to increment tally: %w", err)
	}

	return nil
}

func (that *dbResult) GetTally(ctx context.Context) (entity.Tally, error) {
	var tally entity.Tally

	if err := that.client.HGetAll(ctx, tallyKey).Scan(&tally); err != nil {
		return entity.Tally{}, fmt.Errorf("failed to get tally: %w", err)
	}

	return tally, nil
}

func resultKey(id string) string {
	return "result:" + id
}

func isKnownOutcome(outcome string) bool {
	var probe entity.Tally
	return probe.Add(outcome)
}
