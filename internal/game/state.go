package game

import (
	"github.com/termchess/engine/internal/chess"
	"github.com/termchess/engine/internal/engine"
)

// Status enumerates the derived game statuses.
type Status int

const (
	StatusPlaying Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
	StatusDraw
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"Playing", "Check", "Checkmate", "Stalemate", "Draw"}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// GameState is the derived state of a game. Winner is only meaningful
// when Status is StatusCheckmate.
type GameState struct {
	Status Status
	Winner chess.Color
}

// determineState derives the game state for the side to move. It has
// no side effects on the board and is idempotent. Empty-legal-moves
// outcomes (checkmate, stalemate) take precedence over the fifty-move
// clock.
func determineState(board *chess.Board, toMove chess.Color) GameState {
	legalMoves := engine.LegalMoves(board, toMove)
	inCheck := engine.IsInCheck(board, toMove)

	if len(legalMoves) == 0 {
		if inCheck {
			// The side not to move just delivered mate.
			return GameState{Status: StatusCheckmate, Winner: toMove.Opposite()}
		}
		return GameState{Status: StatusStalemate}
	}
	if board.HalfmoveClock >= 100 {
		return GameState{Status: StatusDraw}
	}
	if inCheck {
		return GameState{Status: StatusCheck}
	}
	return GameState{Status: StatusPlaying}
}
