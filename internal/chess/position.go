package chess

// Position is one ply's snapshot of the game: piece placement, side to
// move, castling rights, en-passant target and move counters.
// Every field is exported so positions compare with == and cmp.Diff.
type Position struct {
	Squares [BoardSize * BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// The square a pawn skipped with a double push on the previous ply,
	// or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// Starts at 1 and is incremented after Black's move.
	FullmoveNumber int

	// Where the two kings are, indexed by Colour; kept current by Set.
	Kings [2]Square
}

// NewPosition creates an empty board with White to move.
func NewPosition() *Position {
	return &Position{
		ToMove:         White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
		Kings:          [2]Square{NoSquare, NoSquare},
	}
}

// NewInitialPosition creates a position with the standard starting layout.
func NewInitialPosition() *Position {
	p := NewPosition()
	p.SetupInitialPosition()
	return p
}

// SetupInitialPosition sets up the standard chess starting position.
func (p *Position) SetupInitialPosition() {
	*p = *NewPosition()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, kind := range backRank {
		p.Set(NewSquare(file, 0), W(kind))
		p.Set(NewSquare(file, 1), W(Pawn))
		p.Set(NewSquare(file, 6), B(Pawn))
		p.Set(NewSquare(file, 7), B(kind))
	}
	p.Castling = AllCastling
}

// Get returns the piece on sq, NoPiece if empty or off the board.
func (p *Position) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return p.Squares[sq]
}

// PieceAt returns the piece on sq and whether the square is occupied.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	piece := p.Get(sq)
	return piece, piece != NoPiece
}

// Set places a piece (or NoPiece) on sq and keeps the king squares current.
func (p *Position) Set(sq Square, piece Piece) {
	if !sq.Valid() {
		return
	}
	if old := p.Squares[sq]; old.Kind() == King && p.Kings[old.Colour()] == sq {
		p.Kings[old.Colour()] = NoSquare
	}
	p.Squares[sq] = piece
	if piece.Kind() == King {
		p.Kings[piece.Colour()] = sq
	}
}

// KingSquare returns the square of the given colour's king, or NoSquare.
func (p *Position) KingSquare(colour Colour) Square {
	return p.Kings[colour]
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}
