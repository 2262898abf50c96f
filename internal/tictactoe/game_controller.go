package tictactoe

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	msgInvalidMove  = "Invalid move. Try again."
	msgHumanWins    = "You win!"
	msgComputerWins = "Computer wins!"
	msgDraw         = "It's a draw!"
)

// State is the phase of a game.
type State int

const (
	StateHumanTurn State = iota
	StateComputerTurn
	StateWon
	StateDraw
)

func (s State) String() string {
	switch s {
	case StateHumanTurn:
		return "human_turn"
	case StateComputerTurn:
		return "computer_turn"
	case StateWon:
		return "won"
	case StateDraw:
		return "draw"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// IsTerminal reports whether the game is over.
func (s State) IsTerminal() bool {
	return s == StateWon || s == StateDraw
}

type moveMaker interface {
	MakeTurn(board *entity.Board, mark entity.Cell) (row, col int, err error)
}

// GameController runs one game between a human on the console and the bot.
type GameController struct {
	logger *slog.Logger

	board    *entity.Board
	human    entity.Player
	computer entity.Player
	bot      moveMaker
	console  *Console

	state  State
	winner entity.Cell
	moves  []entity.Move
}

// NewGameController creates a game with the human to move first on an empty board.
func NewGameController(logger *slog.Logger, human, computer entity.Player, bot moveMaker, in io.ReadCloser, out io.Writer) *GameController {
	return &GameController{
		logger: logger.With("component", "game_controller"),

		board:    entity.NewBoard(),
		human:    human,
		computer: computer,
		bot:      bot,
		console:  NewConsole(in, out),

		state: StateHumanTurn,
	}
}

// Run plays until a win or a draw. The input is closed on every return path.
func (that *GameController) Run() (*entity.Result, error) {
	log := that.logger.With("method", "Run")

	defer func() {
		if err := that.console.Close(); err != nil {
			log.Error("could not close input", "error", err)
		}
	}()

	for !that.state.IsTerminal() {
		that.console.ShowBoard(that.board)

		var err error
		switch that.state {
		case StateHumanTurn:
			err = that.humanTurn()
		case StateComputerTurn:
			err = that.computerTurn()
		}

		if err != nil {
			return nil, fmt.Errorf("game stopped in state %s: %w", that.state, err)
		}

		if err = that.console.Err(); err != nil {
			return nil, err
		}
	}

	result := that.result()

	that.console.ShowBoard(that.board)
	that.console.Println(finalMessage(result))

	if err := that.console.Err(); err != nil {
		return nil, err
	}

	log.Debug("game finished", "state", that.state, "winner", that.winner, "moves", len(that.moves))

	return result, nil
}

func (that *GameController) humanTurn() error {
	log := that.logger.With("method", "humanTurn")

	that.console.Println(fmt.Sprintf("Your turn (Player %s). Enter row and column (1-3): ", that.human.Symbol()))

	row, col, err := that.console.ReadMove()
	if errors.Is(err, apperror.ErrMalformedInput) {
		log.Debug("rejected input", "error", err)
		that.console.Println(msgInvalidMove)
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to read move: %w", err)
	}

	if err = that.board.TryPlace(row, col, that.human.Symbol()); err != nil {
		log.Debug("rejected move", "error", err)
		that.console.Println(msgInvalidMove)
		return nil
	}

	that.advance(that.human, row, col, StateComputerTurn)

	return nil
}

func (that *GameController) computerTurn() error {
	that.console.Println(fmt.Sprintf("Computer's turn (Player %s).", that.computer.Symbol()))

	row, col, err := that.bot.MakeTurn(that.board, that.computer.Symbol())
	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.advance(that.computer, row, col, StateHumanTurn)

	return nil
}

// advance records a placed move and picks the next state: win first, then draw, then next.
// Only the mover can have completed a line.
func (that *GameController) advance(player entity.Player, row, col int, next State) {
	mark := player.Symbol()
	that.moves = append(that.moves, entity.Move{Row: row, Col: col, Mark: mark})

	that.logger.Debug("move placed", "mark", mark, "row", row, "col", col)

	switch winner := that.board.DetermineGameResult(mark); winner {
	case entity.EmptyCell:
		that.state = next
	case entity.PlayerTie:
		that.state = StateDraw
		that.winner = winner
	default:
		that.state = StateWon
		that.winner = winner
	}
}

func finalMessage(result *entity.Result) string {
	switch {
	case result.IsDraw():
		return msgDraw
	case result.Winner == result.HumanMark:
		return msgHumanWins
	default:
		return msgComputerWins
	}
}

func (that *GameController) result() *entity.Result {
	return &entity.Result{
		Winner:       that.winner,
		Status:       entity.StatusFinished,
		HumanMark:    that.human.Symbol(),
		ComputerMark: that.computer.Symbol(),
		Moves:        that.moves,
		FinishedAt:   time.Now(),
	}
}

func (that *GameController) State() State {
	return that.state
}

func (that *GameController) Board() *entity.Board {
	return that.board
}
