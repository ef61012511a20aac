package engine

import "github.com/termchess/engine/internal/chess"

// HasInsufficientMaterial returns true if neither side can possibly
// deliver mate. It is a read-only query for the surrounding
// application (e.g. offering a draw); the game state machine itself
// only draws on the fifty-move rule.
//
// Insufficient material covers:
//   - K vs K
//   - K+B vs K
//   - K+N vs K
//   - K+B vs K+B with both bishops on the same square colour
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Type == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material.
			if piece.Type == chess.Pawn || piece.Type == chess.Rook || piece.Type == chess.Queen {
				return false
			}

			light := isLightSquare(chess.Position{Row: row, Col: col})
			if piece.Color == chess.White {
				whitePieces = append(whitePieces, piece.Type)
				if piece.Type == chess.Bishop {
					whiteBishopOnLight = light
				}
			} else {
				blackPieces = append(blackPieces, piece.Type)
				if piece.Type == chess.Bishop {
					blackBishopOnLight = light
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B, same colour bishops
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(p chess.Position) bool {
	return (p.Row+p.Col)%2 == 1
}
