package repository

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// memResult keeps results for the lifetime of the process. Used when redis is disabled.
type memResult struct {
	results map[string]entity.Result
	tally   entity.Tally
}

func NewMemoryResultRepository() ResultRepository {
	return &memResult{
		results: make(map[string]entity.Result),
	}
}

func (that *memResult) Save(_ context.Context, result *entity.Result) error {
	stored := *result
	stored.Moves = append([]entity.Move(nil), result.Moves...)
	that.results[result.ID] = stored

	return nil
}

func (that *memResult) GetByID(_ context.Context, id string) (*entity.Result, error) {
	existingResult, ok := that.results[id]
	if !ok {
		return &entity.Result{}, ErrResultNotFound
	}

	return &existingResult, nil
}

func (that *memResult) IncrementTally(_ context.Context, outcome string) error {
	if !that.tally.Add(outcome) {
		return fmt.Errorf("%w: %q", ErrUnknownOutcome, outcome)
	}

	return nil
}

func (that *memResult) GetTally(_ context.Context) (entity.Tally, error) {
	return that.tally, nil
}
