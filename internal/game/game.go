// Package game orchestrates a chess game: turn tracking, derived
// status, and an undo history over the board owned by the Game.
package game

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/termchess/engine/internal/chess"
	"github.com/termchess/engine/internal/engine"
	"github.com/termchess/engine/internal/errors"
	"github.com/termchess/engine/internal/logx"
)

// Mode selects who plays each side. It is opaque to the rules engine.
type Mode int

const (
	ModePlayerVsPlayer Mode = iota
	ModePlayerVsEngine
)

// HistoryEntry records an applied move together with the auxiliary
// board state as it was immediately before the move. The snapshot is
// the sole mechanism for exact reversal.
type HistoryEntry struct {
	Move  chess.Move
	Prior chess.Snapshot
}

// Game owns a Board for its whole lifetime and is the only writer to
// it. All operations are synchronous; a Game must not be shared across
// goroutines.
type Game struct {
	ID         uuid.UUID
	Board      *chess.Board
	Turn       chess.Color
	State      GameState
	Mode       Mode
	Difficulty int
	History    []HistoryEntry

	log zerolog.Logger
}

// New creates a game in the standard starting position. Difficulty is
// carried through for the opponent-search component and has no meaning
// here.
func New(mode Mode, difficulty int) *Game {
	g := &Game{
		ID:         uuid.New(),
		Board:      engine.NewInitialBoard(),
		Turn:       chess.White,
		Mode:       mode,
		Difficulty: difficulty,
		log:        logx.Nop(),
	}
	g.State = determineState(g.Board, g.Turn)
	return g
}

// NewFromPosition creates a game over an existing position with an
// empty history. The persistence layer uses this to rebuild a game
// from stored data; tests use it to start mid-game.
func NewFromPosition(board *chess.Board, turn chess.Color, mode Mode, difficulty int) *Game {
	g := &Game{
		ID:         uuid.New(),
		Board:      board,
		Turn:       turn,
		Mode:       mode,
		Difficulty: difficulty,
		log:        logx.Nop(),
	}
	g.State = determineState(g.Board, g.Turn)
	return g
}

// SetLogger installs a logger for move and status events.
func (g *Game) SetLogger(log zerolog.Logger) {
	g.log = log
}

// LegalMoves returns the legal moves for the side to move. The set is
// generated fresh on every call; nothing is cached across moves.
func (g *Game) LegalMoves() []chess.Move {
	return engine.LegalMoves(g.Board, g.Turn)
}

// MakeMove validates that the move is a member of the current legal
// set, applies it, and recomputes the game state. A rejected move
// leaves the game untouched.
func (g *Game) MakeMove(m chess.Move) error {
	if !g.isLegal(m) {
		return errors.Wrapf(errors.ErrIllegalMove, "move %s for %s", m, g.Turn)
	}

	g.History = append(g.History, HistoryEntry{Move: m, Prior: g.Board.SaveState()})
	engine.MakeMove(g.Board, m)
	if g.Turn == chess.Black {
		g.Board.FullmoveNumber++
	}
	g.Turn = g.Turn.Opposite()
	g.State = determineState(g.Board, g.Turn)

	g.log.Debug().
		Stringer("game", g.ID).
		Stringer("move", m).
		Stringer("status", g.State.Status).
		Msg("move applied")
	return nil
}

// UndoMove reverses the most recently applied move, restoring the
// board, the turn and the counters to their pre-move values.
func (g *Game) UndoMove() error {
	if len(g.History) == 0 {
		return errors.ErrNoHistory
	}

	entry := g.History[len(g.History)-1]
	g.History = g.History[:len(g.History)-1]

	engine.UnmakeMove(g.Board, entry.Move, entry.Prior)
	mover := g.Turn.Opposite()
	if mover == chess.Black {
		g.Board.FullmoveNumber--
	}
	g.Turn = mover
	g.State = determineState(g.Board, g.Turn)

	g.log.Debug().
		Stringer("game", g.ID).
		Stringer("move", entry.Move).
		Msg("move undone")
	return nil
}

// IsGameOver returns true once no further moves can be played.
func (g *Game) IsGameOver() bool {
	switch g.State.Status {
	case StatusCheckmate, StatusStalemate, StatusDraw:
		return true
	default:
		return false
	}
}

// isLegal reports whether the move is a member of the freshly generated
// legal-move set. Equality is structural.
func (g *Game) isLegal(m chess.Move) bool {
	for _, legal := range g.LegalMoves() {
		if legal == m {
			return true
		}
	}
	return false
}

// startingCounts is the per-side piece census of the initial position.
var startingCounts = map[chess.PieceType]int{
	chess.Pawn:   8,
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Rook:   2,
	chess.Queen:  1,
	chess.King:   1,
}

// Captured returns how many pieces of each type the given colour has
// lost, derived by diffing the board census against the starting
// counts. Types whose on-board count exceeds the starting count
// (promotions) report zero.
func (g *Game) Captured(color chess.Color) map[chess.PieceType]int {
	current := make(map[chess.PieceType]int)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := g.Board.Squares[row][col]
			if !piece.IsEmpty() && piece.Color == color {
				current[piece.Type]++
			}
		}
	}

	captured := make(map[chess.PieceType]int)
	for pieceType, start := range startingCounts {
		if lost := start - current[pieceType]; lost > 0 {
			captured[pieceType] = lost
		}
	}
	return captured
}
