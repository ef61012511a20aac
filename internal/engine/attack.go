// Package engine implements the chess rules: attack detection, legal
// move generation and reversible move application.
package engine

import "github.com/termchess/engine/internal/chess"

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsSquareAttacked returns true if any piece of byColor reaches the
// square under pseudo-legal movement. It deliberately never consults
// the legality filter, which is what lets legal-move generation call it
// without recursing. Pawns attack diagonally only; en passant is not an
// attack for this query.
func IsSquareAttacked(board *chess.Board, square chess.Position, byColor chess.Color) bool {
	// Pawn attacks: a byColor pawn one row behind (from byColor's
	// point of view) on an adjacent file attacks the square.
	pawnRow := -byColor.PawnDirection()
	for _, dc := range []int{-1, 1} {
		if from, ok := square.Offset(pawnRow, dc); ok {
			if board.Get(from) == (chess.Piece{Type: chess.Pawn, Color: byColor}) {
				return true
			}
		}
	}

	// Knight attacks.
	for _, off := range knightOffsets {
		if from, ok := square.Offset(off[0], off[1]); ok {
			if board.Get(from) == (chess.Piece{Type: chess.Knight, Color: byColor}) {
				return true
			}
		}
	}

	// King attacks.
	for _, off := range kingOffsets {
		if from, ok := square.Offset(off[0], off[1]); ok {
			if board.Get(from) == (chess.Piece{Type: chess.King, Color: byColor}) {
				return true
			}
		}
	}

	// Sliding attacks along diagonals (bishop, queen).
	if slidingAttack(board, square, byColor, diagonalDirs, chess.Bishop) {
		return true
	}

	// Sliding attacks along ranks and files (rook, queen).
	return slidingAttack(board, square, byColor, straightDirs, chess.Rook)
}

// slidingAttack walks rays outward from the square and reports whether
// the first occupied square on any ray holds a byColor slider of the
// given type or a byColor queen.
func slidingAttack(board *chess.Board, square chess.Position, byColor chess.Color, dirs [][2]int, slider chess.PieceType) bool {
	for _, dir := range dirs {
		pos := square
		for {
			next, ok := pos.Offset(dir[0], dir[1])
			if !ok {
				break
			}
			piece := board.Get(next)
			if !piece.IsEmpty() {
				if piece.Color == byColor && (piece.Type == slider || piece.Type == chess.Queen) {
					return true
				}
				break // Blocked
			}
			pos = next
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, color chess.Color) bool {
	kingSquare, ok := findKing(board, color)
	if !ok {
		return false // No king on the board (test positions)
	}
	return IsSquareAttacked(board, kingSquare, color.Opposite())
}

// findKing locates the king of the given colour on the board.
func findKing(board *chess.Board, color chess.Color) (chess.Position, bool) {
	king := chess.Piece{Type: chess.King, Color: color}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[row][col] == king {
				return chess.Position{Row: row, Col: col}, true
			}
		}
	}
	return chess.Position{}, false
}
