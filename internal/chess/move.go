package chess

// MoveTag categorizes the special kinds of moves that need extra
// handling when applied or reversed.
type MoveTag int

const (
	TagNone MoveTag = iota
	TagKingsideCastle
	TagQueensideCastle
	TagEnPassant
	TagPromotion
)

// Move describes a single board transition. Moves are plain values and
// compare structurally with ==; membership of the legal-move set is
// decided by that equality.
type Move struct {
	From Position
	To   Position

	// The piece being moved.
	Piece Piece

	// The piece captured, including the pawn taken en passant.
	// Zero if the move captures nothing.
	Captured Piece

	// Tag marks castling, en passant and promotion moves.
	Tag MoveTag

	// Promotion is the piece type a pawn promotes to. Only valid
	// when Tag is TagPromotion.
	Promotion PieceType
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Tag {
	case TagKingsideCastle, TagQueensideCastle:
		return true
	default:
		return false
	}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Tag == TagPromotion
}

// IsEnPassant returns true if this move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Tag == TagEnPassant
}

// String returns the move in coordinate notation, e.g. "e2e4" or
// "e7e8Q" for a promotion.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter())
	}
	return s
}
