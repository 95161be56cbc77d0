package chess

import (
	"testing"
)

func TestNewPosition(t *testing.T) {
	p := NewPosition()

	t.Run("initial state", func(t *testing.T) {
		if p.ToMove != White {
			t.Errorf("ToMove = %v; want White", p.ToMove)
		}
		if p.FullmoveNumber != 1 {
			t.Errorf("FullmoveNumber = %d; want 1", p.FullmoveNumber)
		}
		if p.EnPassant != NoSquare {
			t.Errorf("EnPassant = %v; want NoSquare", p.EnPassant)
		}
		if p.Castling != NoCastling {
			t.Errorf("Castling = %v; want -", p.Castling)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for sq := A1; sq <= H8; sq++ {
			if piece, ok := p.PieceAt(sq); ok {
				t.Errorf("PieceAt(%v) = %v; want empty", sq, piece)
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	p := NewInitialPosition()

	tests := []struct {
		name  string
		sq    Square
		piece Piece
	}{
		{"white rook a1", A1, W(Rook)},
		{"white knight b1", B1, W(Knight)},
		{"white bishop c1", C1, W(Bishop)},
		{"white queen d1", D1, W(Queen)},
		{"white king e1", E1, W(King)},
		{"white rook h1", H1, W(Rook)},
		{"white pawn e2", E2, W(Pawn)},
		{"black pawn e7", E7, B(Pawn)},
		{"black queen d8", D8, B(Queen)},
		{"black king e8", E8, B(King)},
		{"black rook h8", H8, B(Rook)},
		{"empty e4", E4, NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Get(tt.sq); got != tt.piece {
				t.Errorf("Get(%v) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	if p.KingSquare(White) != E1 || p.KingSquare(Black) != E8 {
		t.Errorf("Kings = %v; want [e8 e1]", p.Kings)
	}
	if p.Castling != AllCastling {
		t.Errorf("Castling = %v; want KQkq", p.Castling)
	}
}

func TestSetTracksKings(t *testing.T) {
	p := NewPosition()
	p.Set(E1, W(King))
	p.Set(E1, NoPiece)
	if p.KingSquare(White) != NoSquare {
		t.Errorf("KingSquare(White) = %v after removal; want NoSquare", p.KingSquare(White))
	}
	p.Set(G1, W(King))
	if p.KingSquare(White) != G1 {
		t.Errorf("KingSquare(White) = %v; want g1", p.KingSquare(White))
	}
	// Overwriting another square must not disturb the tracked king.
	p.Set(E1, W(Rook))
	if p.KingSquare(White) != G1 {
		t.Errorf("KingSquare(White) = %v; want g1", p.KingSquare(White))
	}
}

func TestCopyIsIndependent(t *testing.T) {
	p := NewInitialPosition()
	cp := p.Copy()
	cp.Set(E2, NoPiece)
	cp.ToMove = Black

	if p.Get(E2) != W(Pawn) {
		t.Error("modifying the copy changed the original squares")
	}
	if p.ToMove != White {
		t.Error("modifying the copy changed the original side to move")
	}
}

func TestSquare(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Square
		ok   bool
	}{
		{"a1", "a1", A1, true},
		{"e4", "e4", E4, true},
		{"h8", "h8", H8, true},
		{"bad file", "i1", NoSquare, false},
		{"bad rank", "a9", NoSquare, false},
		{"too long", "a10", NoSquare, false},
		{"empty", "", NoSquare, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseSquare(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseSquare(%q) = (%v, %v); want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
			if ok && got.String() != tt.in {
				t.Errorf("String() = %q; want %q", got.String(), tt.in)
			}
		})
	}

	if E4.File() != 4 || E4.Rank() != 3 {
		t.Errorf("E4 = (%d, %d); want (4, 3)", E4.File(), E4.Rank())
	}
	if H8.Offset(1, 0) != NoSquare {
		t.Error("h8 + 1 file should be off the board")
	}
	if B1.Offset(1, 2) != C3 {
		t.Errorf("b1 + (1,2) = %v; want c3", B1.Offset(1, 2))
	}
}

func TestPieceEncoding(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for kind := Pawn; kind <= King; kind++ {
			p := MakePiece(colour, kind)
			if p == NoPiece {
				t.Fatalf("MakePiece(%v, %v) = NoPiece", colour, kind)
			}
			if p.Kind() != kind || p.Colour() != colour {
				t.Errorf("MakePiece(%v, %v) decodes to (%v, %v)", colour, kind, p.Colour(), p.Kind())
			}
		}
	}
	if W(Knight).FENLetter() != 'N' || B(Knight).FENLetter() != 'n' {
		t.Errorf("FENLetter = %c/%c; want N/n", W(Knight).FENLetter(), B(Knight).FENLetter())
	}
}

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{AllCastling, "KQkq"},
		{NoCastling, "-"},
		{WhiteKingside | BlackQueenside, "Kq"},
	}
	for _, tt := range tests {
		if got := tt.rights.String(); got != tt.want {
			t.Errorf("CastlingRights(%d).String() = %q; want %q", tt.rights, got, tt.want)
		}
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{From: E2, To: E4, Flags: FlagDoublePush}, "e2e4"},
		{Move{From: E7, To: E8, Promotion: Queen}, "e7e8q"},
		{Move{From: A7, To: B8, Promotion: Knight, Flags: FlagCapture}, "a7b8n"},
	}
	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("Move.String() = %q; want %q", got, tt.want)
		}
	}
}
