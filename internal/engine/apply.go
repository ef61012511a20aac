package engine

import "github.com/termchess/engine/internal/chess"

// MakeMove unconditionally applies a move that is already known to be a
// member of the current legal-move set. It is infallible by contract:
// the caller (Game) validates membership and saves a board snapshot
// before calling.
//
// Turn and fullmove bookkeeping belong to Game; MakeMove touches only
// the board.
func MakeMove(board *chess.Board, m chess.Move) {
	mover := m.Piece.Color

	// Remove the moving piece.
	board.Clear(m.From)

	// An en passant capture removes the pawn behind the destination,
	// not the piece on it.
	if m.IsEnPassant() {
		behind := chess.Position{Row: m.To.Row - mover.PawnDirection(), Col: m.To.Col}
		board.Clear(behind)
	}

	// Place the moved piece, promoted if requested.
	placed := m.Piece
	if m.IsPromotion() {
		placed = chess.Piece{Type: m.Promotion, Color: mover}
	}
	board.Set(m.To, placed)

	// Castling also relocates the rook.
	switch m.Tag {
	case chess.TagKingsideCastle:
		rook := board.Get(chess.Position{Row: m.To.Row, Col: 7})
		board.Clear(chess.Position{Row: m.To.Row, Col: 7})
		board.Set(chess.Position{Row: m.To.Row, Col: 5}, rook)
	case chess.TagQueensideCastle:
		rook := board.Get(chess.Position{Row: m.To.Row, Col: 0})
		board.Clear(chess.Position{Row: m.To.Row, Col: 0})
		board.Set(chess.Position{Row: m.To.Row, Col: 3}, rook)
	}

	// Revoke castling rights: moving the king or a rook, or capturing
	// a rook on its home square.
	if m.Piece.Type == chess.King {
		if mover == chess.White {
			board.WhiteKingside = false
			board.WhiteQueenside = false
		} else {
			board.BlackKingside = false
			board.BlackQueenside = false
		}
	}
	if m.Piece.Type == chess.Rook {
		revokeRookRight(board, mover, m.From)
	}
	if m.Captured.Type == chess.Rook && !m.IsEnPassant() {
		revokeRookRight(board, m.Captured.Color, m.To)
	}

	// The en passant window lasts exactly one ply: set it only on a
	// double pawn advance, clear it on every other move.
	board.EnPassant = false
	if m.Piece.Type == chess.Pawn && abs(m.To.Row-m.From.Row) == 2 {
		board.EnPassant = true
		board.EnPassantTarget = chess.Position{Row: (m.From.Row + m.To.Row) / 2, Col: m.From.Col}
	}

	// Halfmove clock resets on pawn moves and captures.
	if m.Piece.Type == chess.Pawn || m.IsCapture() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
}

// UnmakeMove is the exact structural inverse of MakeMove. The snapshot
// must be the one saved immediately before the move was applied; the
// auxiliary fields are restored from it rather than inferred, since
// castling-right revocation is lossy.
func UnmakeMove(board *chess.Board, m chess.Move, prior chess.Snapshot) {
	mover := m.Piece.Color

	// Take the moved piece off the destination and put the mover back,
	// demoting a promoted pawn.
	board.Clear(m.To)
	board.Set(m.From, m.Piece)

	// Restore the captured piece. The en passant victim goes back to
	// its own square behind the destination, not to the destination.
	if m.IsEnPassant() {
		behind := chess.Position{Row: m.To.Row - mover.PawnDirection(), Col: m.To.Col}
		board.Set(behind, m.Captured)
	} else if m.IsCapture() {
		board.Set(m.To, m.Captured)
	}

	// Return a castled rook to its corner.
	switch m.Tag {
	case chess.TagKingsideCastle:
		rook := board.Get(chess.Position{Row: m.To.Row, Col: 5})
		board.Clear(chess.Position{Row: m.To.Row, Col: 5})
		board.Set(chess.Position{Row: m.To.Row, Col: 7}, rook)
	case chess.TagQueensideCastle:
		rook := board.Get(chess.Position{Row: m.To.Row, Col: 3})
		board.Clear(chess.Position{Row: m.To.Row, Col: 3})
		board.Set(chess.Position{Row: m.To.Row, Col: 0}, rook)
	}

	board.RestoreState(prior)
}

// revokeRookRight clears the castling right associated with a rook home
// square, if the given square is one.
func revokeRookRight(board *chess.Board, color chess.Color, pos chess.Position) {
	if color == chess.White && pos.Row == 0 {
		if pos.Col == 7 {
			board.WhiteKingside = false
		}
		if pos.Col == 0 {
			board.WhiteQueenside = false
		}
	} else if color == chess.Black && pos.Row == 7 {
		if pos.Col == 7 {
			board.BlackKingside = false
		}
		if pos.Col == 0 {
			board.BlackQueenside = false
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
