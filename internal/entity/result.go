package entity

import "time"

const (
	OutcomeHumanWin    = "human"
	OutcomeComputerWin = "computer"
	OutcomeDraw        = "draw"
)

// Move is a single successful placement.
type Move struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Mark Cell `json:"mark"`
}

// Result is the record of a finished game.
type Result struct {
	ID           string    `json:"id"`
	Winner       Cell      `json:"winner"`
	Status       string    `json:"status"`
	HumanMark    Cell      `json:"human_mark"`
	ComputerMark Cell      `json:"computer_mark"`
	Moves        []Move    `json:"moves"`
	FinishedAt   time.Time `json:"finished_at"`
}

// Tally holds running totals over all recorded games.
type Tally struct {
	HumanWins    int64 `json:"human_wins" redis:"human"`
	ComputerWins int64 `json:"computer_wins" redis:"computer"`
	Draws        int64 `json:"draws" redis:"draw"`
}

func (that *Result) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Result) IsDraw() bool {
	return that.Winner == PlayerTie
}

// Outcome classifies a finished game from the human's point of view. It is empty for unfinished games.
func (that *Result) Outcome() string {
	if !that.IsFinished() {
		return ""
	}

	switch that.Winner {
	case PlayerTie:
		return OutcomeDraw
	case that.HumanMark:
		return OutcomeHumanWin
	case that.ComputerMark:
		return OutcomeComputerWin
	default:
		return ""
	}
}

func (that *Tally) Add(outcome string) bool {
	switch outcome {
	case OutcomeHumanWin:
		that.HumanWins++
	case OutcomeComputerWin:
		that.ComputerWins++
	case OutcomeDraw:
		that.Draws++
	default:
		return false
	}

	return true
}

func (that Tally) Total() int64 {
	return that.HumanWins + that.ComputerWins + that.Draws
}
