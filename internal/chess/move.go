package chess

// MoveFlag marks the special properties of a move.
type MoveFlag uint8

const (
	FlagCapture MoveFlag = 1 << iota
	FlagEnPassant
	FlagCastleKingside
	FlagCastleQueenside
	FlagDoublePush
)

// Move represents a single chess move. A Move is only meaningful
// relative to the Position it was generated from.
type Move struct {
	From Square
	To   Square

	// The piece promoted to (NoKind if not a promotion).
	Promotion Kind

	Flags MoveFlag
}

// Has reports whether all of the given flags are set.
func (m Move) Has(f MoveFlag) bool {
	return m.Flags&f == f
}

// IsCapture returns true if this move is a capture (en passant included).
func (m Move) IsCapture() bool {
	return m.Has(FlagCapture)
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Flags&(FlagCastleKingside|FlagCastleQueenside) != 0
}

// String returns the coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	buf := make([]byte, 0, 5)
	buf = append(buf, m.From.FileChar(), m.From.RankChar(), m.To.FileChar(), m.To.RankChar())
	if m.IsPromotion() {
		buf = append(buf, m.Promotion.Letter()+('a'-'A'))
	}
	return string(buf)
}

// UndoRecord holds everything needed to invert one applied move.
type UndoRecord struct {
	Move Move

	// The piece that moved, as it stood on the origin square.
	Moved Piece

	// The piece captured and where it stood (NoPiece/NoSquare if none).
	// For en passant the square differs from Move.To.
	Captured       Piece
	CapturedSquare Square

	// State before the move.
	Castling       CastlingRights
	EnPassant      Square
	HalfmoveClock  int
	FullmoveNumber int
}
