package chess

// Board holds the piece placement and the auxiliary state needed to
// apply and reverse moves. All fields are plain data so that external
// collaborators (rendering, persistence) can walk them read-only; only
// the engine's move application code mutates a Board.
type Board struct {
	// Squares is indexed [row][col]: Squares[0][0] is a1,
	// Squares[7][7] is h8. The zero Piece means an empty square.
	Squares [BoardSize][BoardSize]Piece

	// En passant capture target. EnPassant is true for exactly one
	// reply ply after a double pawn advance, with Target holding the
	// square the pawn skipped.
	EnPassant       bool
	EnPassantTarget Position

	// Castling rights. Once revoked they never come back for the
	// rest of the game.
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool

	// Plies since the last pawn move or capture (fifty-move rule).
	HalfmoveClock uint

	// Incremented after each Black move.
	FullmoveNumber uint
}

// NewBoard creates an empty board with no castling rights.
func NewBoard() *Board {
	return &Board{FullmoveNumber: 1}
}

// SetupInitialPosition resets the board to the standard starting layout
// with full castling rights.
func (b *Board) SetupInitialPosition() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.Squares[row][col] = Piece{}
		}
	}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = Piece{Type: backRank[col], Color: White}
		b.Squares[1][col] = Piece{Type: Pawn, Color: White}
		b.Squares[6][col] = Piece{Type: Pawn, Color: Black}
		b.Squares[7][col] = Piece{Type: backRank[col], Color: Black}
	}

	b.EnPassant = false
	b.WhiteKingside = true
	b.WhiteQueenside = true
	b.BlackKingside = true
	b.BlackQueenside = true
	b.HalfmoveClock = 0
	b.FullmoveNumber = 1
}

// Get returns the piece at the given position.
func (b *Board) Get(p Position) Piece {
	return b.Squares[p.Row][p.Col]
}

// Set places a piece at the given position.
func (b *Board) Set(p Position, piece Piece) {
	b.Squares[p.Row][p.Col] = piece
}

// Clear empties the given square.
func (b *Board) Clear(p Position) {
	b.Squares[p.Row][p.Col] = Piece{}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Snapshot captures the auxiliary board state that move application
// overwrites irreversibly. Castling-right revocation and en passant
// assignment cannot be inverted from a Move alone, so callers save a
// Snapshot before applying a move and hand it back unchanged to undo.
type Snapshot struct {
	EnPassant       bool
	EnPassantTarget Position
	WhiteKingside   bool
	WhiteQueenside  bool
	BlackKingside   bool
	BlackQueenside  bool
	HalfmoveClock   uint
}

// SaveState captures the current auxiliary state.
func (b *Board) SaveState() Snapshot {
	return Snapshot{
		EnPassant:       b.EnPassant,
		EnPassantTarget: b.EnPassantTarget,
		WhiteKingside:   b.WhiteKingside,
		WhiteQueenside:  b.WhiteQueenside,
		BlackKingside:   b.BlackKingside,
		BlackQueenside:  b.BlackQueenside,
		HalfmoveClock:   b.HalfmoveClock,
	}
}

// RestoreState overwrites the auxiliary state with a saved snapshot.
func (b *Board) RestoreState(s Snapshot) {
	b.EnPassant = s.EnPassant
	b.EnPassantTarget = s.EnPassantTarget
	b.WhiteKingside = s.WhiteKingside
	b.WhiteQueenside = s.WhiteQueenside
	b.BlackKingside = s.BlackKingside
	b.BlackQueenside = s.BlackQueenside
	b.HalfmoveClock = s.HalfmoveClock
}
