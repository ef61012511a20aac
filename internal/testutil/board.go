package testutil

import (
	"testing"

	"github.com/termchess/engine/internal/chess"
	"github.com/termchess/engine/internal/engine"
)

// MustBoard builds a board and side to move from a FEN string, failing
// the test on malformed input.
func MustBoard(t *testing.T, fen string) (*chess.Board, chess.Color) {
	t.Helper()
	board, toMove, err := engine.BoardFromFEN(fen)
	if err != nil {
		t.Fatalf("BoardFromFEN(%q) error: %v", fen, err)
	}
	return board, toMove
}

// Sq parses an algebraic square name, failing the test on bad input.
func Sq(t *testing.T, s string) chess.Position {
	t.Helper()
	pos, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", s, err)
	}
	return pos
}

// FindMove looks up a move by its coordinate string (e.g. "e2e4",
// "e7e8Q") in a move list.
func FindMove(moves []chess.Move, coord string) (chess.Move, bool) {
	for _, m := range moves {
		if m.String() == coord {
			return m, true
		}
	}
	return chess.Move{}, false
}
