package engine_test

import (
	"testing"

	"github.com/termchess/engine/internal/chess"
	"github.com/termchess/engine/internal/engine"
	"github.com/termchess/engine/internal/testutil"
)

// TestLegalMoves_StartingPosition tests the well-known opening move count
func TestLegalMoves_StartingPosition(t *testing.T) {
	board := engine.NewInitialBoard()

	moves := engine.LegalMoves(board, chess.White)
	if len(moves) != 20 {
		t.Fatalf("LegalMoves(White) on initial board = %d moves, want 20", len(moves))
	}

	pawnMoves := 0
	knightMoves := 0
	for _, m := range moves {
		switch m.Piece.Type {
		case chess.Pawn:
			pawnMoves++
		case chess.Knight:
			knightMoves++
		default:
			t.Errorf("unexpected piece type %v in opening moves", m.Piece.Type)
		}
	}
	if pawnMoves != 16 || knightMoves != 4 {
		t.Errorf("opening moves = %d pawn + %d knight, want 16 + 4", pawnMoves, knightMoves)
	}
}

// perft counts leaf nodes of the legal-move tree to the given depth.
func perft(board *chess.Board, color chess.Color, depth int) int {
	moves := engine.LegalMoves(board, color)
	if depth <= 1 {
		return len(moves)
	}
	total := 0
	for _, m := range moves {
		next := board.Copy()
		engine.MakeMove(next, m)
		total += perft(next, color.Opposite(), depth-1)
	}
	return total
}

// TestPerft tests movegen against the known node counts from the
// starting position
func TestPerft(t *testing.T) {
	wants := map[int]int{
		1: 20,
		2: 400,
		3: 8902,
	}

	board := engine.NewInitialBoard()
	for depth := 1; depth <= 3; depth++ {
		if got := perft(board, chess.White, depth); got != wants[depth] {
			t.Errorf("perft(%d) = %d, want %d", depth, got, wants[depth])
		}
	}
}

// TestLegalMoves_PinnedPiece tests that the check filter removes every
// move of an absolutely pinned piece
func TestLegalMoves_PinnedPiece(t *testing.T) {
	// White knight on e2 is pinned against the king on e1 by the
	// rook on e4.
	board, _ := testutil.MustBoard(t, "4k3/8/8/8/4r3/8/4N3/4K3 w - - 0 1")
	e2 := testutil.Sq(t, "e2")

	for _, m := range engine.LegalMoves(board, chess.White) {
		if m.From == e2 {
			t.Errorf("pinned knight produced legal move %s", m)
		}
	}
}

// TestLegalMoves_MustEscapeCheck tests that only check-resolving moves
// survive the filter
func TestLegalMoves_MustEscapeCheck(t *testing.T) {
	// White king on e1 checked by the rook on e8; the rook on a2 can
	// block on e2, the king can step off the e-file.
	board, _ := testutil.MustBoard(t, "4r1k1/8/8/8/8/8/R7/4K3 w - - 0 1")

	moves := engine.LegalMoves(board, chess.White)
	for _, m := range moves {
		next := board.Copy()
		engine.MakeMove(next, m)
		if engine.IsInCheck(next, chess.White) {
			t.Errorf("move %s leaves the king in check", m)
		}
	}

	if _, ok := testutil.FindMove(moves, "a2e2"); !ok {
		t.Error("blocking move a2e2 should be legal")
	}
	if _, ok := testutil.FindMove(moves, "e1e2"); ok {
		t.Error("e1e2 keeps the king on the checked file and must be filtered")
	}
}

// TestCastlingMoves tests castling availability and its gates
func TestCastlingMoves(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		color     chess.Color
		coord     string
		available bool
	}{
		{"white kingside open", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", chess.White, "e1g1", true},
		{"white queenside open", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", chess.White, "e1c1", true},
		{"black kingside open", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", chess.Black, "e8g8", true},
		{"black queenside open", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", chess.Black, "e8c8", true},
		{"right revoked", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", chess.White, "e1g1", false},
		{"king in check", "4r3/8/8/8/8/8/8/R3K2R w KQ - 0 1", chess.White, "e1g1", false},
		{"king passes through attacked square", "5r2/8/8/8/8/8/8/R3K2R w KQ - 0 1", chess.White, "e1g1", false},
		{"destination attacked", "6r1/8/8/8/8/8/8/R3K2R w KQ - 0 1", chess.White, "e1g1", false},
		{"path not empty", "r3k2r/8/8/8/8/8/8/R2QK2R w KQkq - 0 1", chess.White, "e1c1", false},
		{"attacked b1 does not block queenside", "1r6/8/8/8/8/8/8/R3K3 w Q - 0 1", chess.White, "e1c1", true},
		{"rook missing from corner", "r3k2r/8/8/8/8/8/8/R3K3 w KQkq - 0 1", chess.White, "e1g1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := testutil.MustBoard(t, tt.fen)
			moves := engine.LegalMoves(board, tt.color)
			_, ok := testutil.FindMove(moves, tt.coord)
			if ok != tt.available {
				t.Errorf("castle %s available = %v, want %v", tt.coord, ok, tt.available)
			}
		})
	}
}

// TestEnPassantGeneration tests the one-ply capture window
func TestEnPassantGeneration(t *testing.T) {
	// White just played e2e4; the black d4 pawn may take en passant.
	withTarget := "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2"
	board, _ := testutil.MustBoard(t, withTarget)

	moves := engine.LegalMoves(board, chess.Black)
	m, ok := testutil.FindMove(moves, "d4e3")
	if !ok {
		t.Fatal("en passant capture d4e3 should be generated")
	}
	if m.Tag != chess.TagEnPassant {
		t.Errorf("d4e3 tag = %v, want TagEnPassant", m.Tag)
	}
	if m.Captured != (chess.Piece{Type: chess.Pawn, Color: chess.White}) {
		t.Errorf("d4e3 captured = %v, want white pawn", m.Captured)
	}

	// Same position with the window expired.
	expired := "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2"
	board, _ = testutil.MustBoard(t, expired)
	if _, ok := testutil.FindMove(engine.LegalMoves(board, chess.Black), "d4e3"); ok {
		t.Error("en passant must not be generated once the target is cleared")
	}
}

// TestPromotionGeneration tests that promotions fan out per target piece
func TestPromotionGeneration(t *testing.T) {
	board, _ := testutil.MustBoard(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")

	moves := engine.LegalMoves(board, chess.White)
	var promotions []chess.Move
	for _, m := range moves {
		if m.From == testutil.Sq(t, "a7") {
			promotions = append(promotions, m)
		}
	}
	if len(promotions) != 4 {
		t.Fatalf("pawn on a7 produced %d moves, want 4 promotions", len(promotions))
	}

	seen := make(map[chess.PieceType]bool)
	for _, m := range promotions {
		if m.Tag != chess.TagPromotion {
			t.Errorf("move %s tag = %v, want TagPromotion", m, m.Tag)
		}
		seen[m.Promotion] = true
	}
	for _, target := range []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight} {
		if !seen[target] {
			t.Errorf("missing promotion to %v", target)
		}
	}
}

// TestPawnDoubleAdvance tests the blocked and unblocked double push
func TestPawnDoubleAdvance(t *testing.T) {
	board := engine.NewInitialBoard()
	moves := engine.LegalMoves(board, chess.White)
	if _, ok := testutil.FindMove(moves, "e2e4"); !ok {
		t.Error("double advance e2e4 should be legal from the start")
	}

	// A piece on the intermediate square blocks both advances.
	board, _ = testutil.MustBoard(t, "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1")
	moves = engine.LegalMoves(board, chess.White)
	if _, ok := testutil.FindMove(moves, "e2e3"); ok {
		t.Error("e2e3 should be blocked by the knight on e3")
	}
	if _, ok := testutil.FindMove(moves, "e2e4"); ok {
		t.Error("e2e4 should be blocked by the knight on e3")
	}

	// A piece on the destination square blocks only the double push.
	board, _ = testutil.MustBoard(t, "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1")
	moves = engine.LegalMoves(board, chess.White)
	if _, ok := testutil.FindMove(moves, "e2e3"); !ok {
		t.Error("e2e3 should be legal with only e4 occupied")
	}
	if _, ok := testutil.FindMove(moves, "e2e4"); ok {
		t.Error("e2e4 should be blocked by the knight on e4")
	}
}
