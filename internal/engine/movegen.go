package engine

import "github.com/termchess/engine/internal/chess"

// promotionTargets are generated once per pseudo-legal promotion move.
var promotionTargets = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// LegalMoves returns every legal move for the given colour. Generation
// is two-phase: pseudo-legal geometry first, then a filter that rejects
// any move leaving the mover's own king in check. Pinned pieces fall
// out of the filter naturally. Move ordering is insertion order and not
// part of the contract.
func LegalMoves(board *chess.Board, color chess.Color) []chess.Move {
	var moves []chess.Move
	for _, m := range PseudoLegalMoves(board, color) {
		if !leavesKingInCheck(board, m, color) {
			moves = append(moves, m)
		}
	}
	return moves
}

// PseudoLegalMoves returns every geometrically valid move for the given
// colour, ignoring whether it exposes the mover's own king.
func PseudoLegalMoves(board *chess.Board, color chess.Color) []chess.Move {
	var moves []chess.Move
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Color != color {
				continue
			}
			from := chess.Position{Row: row, Col: col}
			switch piece.Type {
			case chess.Pawn:
				moves = append(moves, pawnMoves(board, from, color)...)
			case chess.Knight:
				moves = append(moves, offsetMoves(board, from, piece, knightOffsets)...)
			case chess.Bishop:
				moves = append(moves, slidingMoves(board, from, piece, diagonalDirs)...)
			case chess.Rook:
				moves = append(moves, slidingMoves(board, from, piece, straightDirs)...)
			case chess.Queen:
				moves = append(moves, slidingMoves(board, from, piece, diagonalDirs)...)
				moves = append(moves, slidingMoves(board, from, piece, straightDirs)...)
			case chess.King:
				moves = append(moves, offsetMoves(board, from, piece, kingOffsets)...)
				moves = append(moves, castlingMoves(board, color)...)
			}
		}
	}
	return moves
}

// pawnMoves generates pawn advances, captures, en passant and
// promotions from the given square.
func pawnMoves(board *chess.Board, from chess.Position, color chess.Color) []chess.Move {
	var moves []chess.Move
	pawn := chess.Piece{Type: chess.Pawn, Color: color}
	dir := color.PawnDirection()

	startRow := 1
	promoRow := chess.BoardSize - 1
	if color == chess.Black {
		startRow = 6
		promoRow = 0
	}

	// Single advance, and double advance from the starting rank.
	if to, ok := from.Offset(dir, 0); ok && board.Get(to).IsEmpty() {
		moves = append(moves, pawnAdvanceOrPromote(pawn, from, to, chess.Piece{}, promoRow)...)
		if from.Row == startRow {
			if to2, ok := from.Offset(2*dir, 0); ok && board.Get(to2).IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: to2, Piece: pawn})
			}
		}
	}

	// Diagonal captures, including en passant against the current
	// target square.
	for _, dc := range []int{-1, 1} {
		to, ok := from.Offset(dir, dc)
		if !ok {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Color != color {
			moves = append(moves, pawnAdvanceOrPromote(pawn, from, to, target, promoRow)...)
		}
		if board.EnPassant && to == board.EnPassantTarget {
			moves = append(moves, chess.Move{
				From:     from,
				To:       to,
				Piece:    pawn,
				Captured: chess.Piece{Type: chess.Pawn, Color: color.Opposite()},
				Tag:      chess.TagEnPassant,
			})
		}
	}

	return moves
}

// pawnAdvanceOrPromote emits a single pawn move, fanned out once per
// promotion target when the destination is the last rank. A pawn
// reaching the last rank without a promotion target is not a valid
// move value.
func pawnAdvanceOrPromote(pawn chess.Piece, from, to chess.Position, captured chess.Piece, promoRow int) []chess.Move {
	if to.Row != promoRow {
		return []chess.Move{{From: from, To: to, Piece: pawn, Captured: captured}}
	}
	moves := make([]chess.Move, 0, len(promotionTargets))
	for _, target := range promotionTargets {
		moves = append(moves, chess.Move{
			From:      from,
			To:        to,
			Piece:     pawn,
			Captured:  captured,
			Tag:       chess.TagPromotion,
			Promotion: target,
		})
	}
	return moves
}

// offsetMoves generates fixed-offset moves (knight, king), filtered by
// "not occupied by a friendly piece".
func offsetMoves(board *chess.Board, from chess.Position, piece chess.Piece, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Color == piece.Color {
			continue
		}
		moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
	}
	return moves
}

// slidingMoves walks rays outward one square at a time, stopping at the
// first occupied square (capturing it if enemy) or the board edge.
func slidingMoves(board *chess.Board, from chess.Position, piece chess.Piece, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		pos := from
		for {
			to, ok := pos.Offset(dir[0], dir[1])
			if !ok {
				break
			}
			target := board.Get(to)
			if target.IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: to, Piece: piece})
				pos = to
				continue
			}
			if target.Color != piece.Color {
				moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
			}
			break // Blocked
		}
	}
	return moves
}

// castlingMoves generates castling for the given colour, gated by the
// remaining rights, empty squares between king and rook, and the rule
// that the king may not castle out of, through, or into check.
func castlingMoves(board *chess.Board, color chess.Color) []chess.Move {
	row := 0
	kingside := board.WhiteKingside
	queenside := board.WhiteQueenside
	if color == chess.Black {
		row = 7
		kingside = board.BlackKingside
		queenside = board.BlackQueenside
	}

	king := chess.Piece{Type: chess.King, Color: color}
	rook := chess.Piece{Type: chess.Rook, Color: color}
	kingFrom := chess.Position{Row: row, Col: 4}
	if board.Get(kingFrom) != king {
		return nil
	}

	opponent := color.Opposite()
	if IsSquareAttacked(board, kingFrom, opponent) {
		return nil
	}

	var moves []chess.Move
	if kingside && board.Get(chess.Position{Row: row, Col: 7}) == rook {
		f := chess.Position{Row: row, Col: 5}
		g := chess.Position{Row: row, Col: 6}
		if board.Get(f).IsEmpty() && board.Get(g).IsEmpty() &&
			!IsSquareAttacked(board, f, opponent) && !IsSquareAttacked(board, g, opponent) {
			moves = append(moves, chess.Move{From: kingFrom, To: g, Piece: king, Tag: chess.TagKingsideCastle})
		}
	}
	if queenside && board.Get(chess.Position{Row: row, Col: 0}) == rook {
		b := chess.Position{Row: row, Col: 1}
		c := chess.Position{Row: row, Col: 2}
		d := chess.Position{Row: row, Col: 3}
		if board.Get(b).IsEmpty() && board.Get(c).IsEmpty() && board.Get(d).IsEmpty() &&
			!IsSquareAttacked(board, d, opponent) && !IsSquareAttacked(board, c, opponent) {
			moves = append(moves, chess.Move{From: kingFrom, To: c, Piece: king, Tag: chess.TagQueensideCastle})
		}
	}
	return moves
}

// leavesKingInCheck applies the move on a scratch copy and tests
// whether the mover's own king ends up attacked.
func leavesKingInCheck(board *chess.Board, m chess.Move, color chess.Color) bool {
	test := board.Copy()
	MakeMove(test, m)
	return IsInCheck(test, color)
}
