package tictactoe

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const boardHeading = "Current Board:"

// Console reads coordinates line by line and writes game text.
// The first write error is kept and reported by Err.
type Console struct {
	scanner *bufio.Scanner
	pending []string
	input   io.Closer
	out     io.Writer
	err     error
}

// NewConsole creates a console over the given streams.
func NewConsole(in io.ReadCloser, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		input:   in,
		out:     out,
	}
}

// ReadMove reads a 1-based row and column and returns them 0-based.
// A move may span lines. On malformed input the rest of the current line is dropped.
// Range is not checked here; the board rejects out of range cells.
func (that *Console) ReadMove() (int, int, error) {
	row, err := that.nextInt()
	if err != nil {
		return 0, 0, err
	}

	col, err := that.nextInt()
	if err != nil {
		return 0, 0, err
	}

	return row - 1, col - 1, nil
}

func (that *Console) nextInt() (int, error) {
	token, err := that.nextToken()
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(token)
	if err != nil {
		that.pending = nil
		return 0, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, token)
	}

	return value, nil
}

func (that *Console) nextToken() (string, error) {
	for len(that.pending) == 0 {
		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read input: %w", err)
			}

			return "", apperror.ErrInputClosed
		}

		that.pending = strings.Fields(that.scanner.Text())
	}

	token := that.pending[0]
	that.pending = that.pending[1:]

	return token, nil
}

func (that *Console) Println(line string) {
	if that.err != nil {
		return
	}

	if _, err := fmt.Fprintln(that.out, line); err != nil {
		that.err = fmt.Errorf("failed to write output: %w", err)
	}
}

func (that *Console) ShowBoard(board *entity.Board) {
	that.Println(boardHeading)

	if that.err != nil {
		return
	}

	if _, err := io.WriteString(that.out, board.Display()); err != nil {
		that.err = fmt.Errorf("failed to write board: %w", err)
	}
}

func (that *Console) Err() error {
	return that.err
}

func (that *Console) Close() error {
	if err := that.input.Close(); err != nil {
		return fmt.Errorf("failed to close input: %w", err)
	}

	return nil
}
