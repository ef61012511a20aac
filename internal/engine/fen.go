package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/termchess/engine/internal/chess"
	"github.com/termchess/engine/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromFENChar converts a FEN piece character to a piece type.
func pieceFromFENChar(c byte) chess.PieceType {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoPiece
	}
}

// fenCharFromPiece returns the FEN letter for a piece: uppercase for
// White, lowercase for Black.
func fenCharFromPiece(p chess.Piece) byte {
	letter := p.Type.Letter()
	if p.Color == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// BoardFromFEN creates a board and the side to move from a FEN string.
// The turn is returned separately because the board itself does not own
// it; Game does.
func BoardFromFEN(fen string) (*chess.Board, chess.Color, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	parseCastlingRights(board, parts)
	if err := parseEnPassant(board, parts); err != nil {
		return nil, chess.White, err
	}
	parseClocks(board, parts)

	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	row := chess.BoardSize - 1
	col := 0

	for _, c := range positions {
		switch {
		case c == '/':
			row--
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			pieceType := pieceFromFENChar(byte(c))
			if pieceType == chess.NoPiece {
				return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character %q", c)
			}
			if row < 0 || col >= chess.BoardSize {
				return errors.Wrap(errors.ErrInvalidFEN, "piece placement out of bounds")
			}

			color := chess.White
			if unicode.IsLower(c) {
				color = chess.Black
			}
			board.Squares[row][col] = chess.Piece{Type: pieceType, Color: color}
			col++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Color, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move %q", parts[1])
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) {
	board.WhiteKingside = false
	board.WhiteQueenside = false
	board.BlackKingside = false
	board.BlackQueenside = false

	if len(parts) < 3 || parts[2] == "-" {
		return
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.WhiteKingside = true
		case 'Q':
			board.WhiteQueenside = true
		case 'k':
			board.BlackKingside = true
		case 'q':
			board.BlackQueenside = true
		}
	}
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.EnPassant = false
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid en passant square %q", parts[3])
	}
	board.EnPassant = true
	board.EnPassantTarget = target
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) {
	if len(parts) >= 5 {
		fmt.Sscanf(parts[4], "%d", &board.HalfmoveClock)
	}
	if len(parts) >= 6 {
		fmt.Sscanf(parts[5], "%d", &board.FullmoveNumber)
	}
}

// BoardToFEN converts a board and the side to move to a FEN string.
func BoardToFEN(board *chess.Board, toMove chess.Color) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	if board.EnPassant {
		sb.WriteString(board.EnPassantTarget.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.FullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(fenCharFromPiece(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	if board.WhiteKingside {
		sb.WriteByte('K')
		hasCastling = true
	}
	if board.WhiteQueenside {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if board.BlackKingside {
		sb.WriteByte('k')
		hasCastling = true
	}
	if board.BlackQueenside {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _, _ := BoardFromFEN(InitialFEN)
	return board
}
