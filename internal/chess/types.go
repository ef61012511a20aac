// Package chess provides the core value types of the rules engine:
// colours, pieces, positions, moves and the board itself.
package chess

// Color represents the colour of a piece or player.
type Color int

const (
	White Color = iota
	Black
)

// String returns the string representation of a colour.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns the row delta a pawn of this colour advances by.
func (c Color) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter for a piece type, as used
// in FEN and move strings. NoPiece yields a space.
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Piece is a (type, colour) pair occupying a board square. The zero
// value (Type == NoPiece) represents an empty square.
type Piece struct {
	Type  PieceType
	Color Color
}

// IsEmpty reports whether this value represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

// String returns e.g. "White Knight", or "Empty" for the zero value.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Color.String() + " " + p.Type.String()
}
