package chess

import (
	"fmt"

	"github.com/termchess/engine/internal/errors"
)

// BoardSize is the number of ranks and files on the board.
const BoardSize = 8

// Position is a board coordinate. Row 0 is rank 1 (White's back rank)
// and Col 0 is the a-file. A Position produced by NewPosition or
// ParseSquare is always within the board.
type Position struct {
	Row int
	Col int
}

// NewPosition builds a Position from row and column indices, rejecting
// coordinates outside [0,7].
func NewPosition(row, col int) (Position, error) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return Position{}, fmt.Errorf("position (%d,%d): %w", row, col, errors.ErrOutOfBounds)
	}
	return Position{Row: row, Col: col}, nil
}

// ParseSquare converts algebraic square notation such as "e4" into a
// Position.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidNotation)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidNotation)
	}
	return Position{Row: int(rank - '1'), Col: int(file - 'a')}, nil
}

// Offset returns the position shifted by (drow, dcol). The second
// return value is false if the result would fall off the board.
func (p Position) Offset(drow, dcol int) (Position, bool) {
	row := p.Row + drow
	col := p.Col + dcol
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return Position{}, false
	}
	return Position{Row: row, Col: col}, true
}

// String returns the algebraic name of the square, e.g. "e4".
func (p Position) String() string {
	return string([]byte{byte('a' + p.Col), byte('1' + p.Row)})
}
