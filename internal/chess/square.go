package chess

// Square identifies one of the 64 board cells: file + 8*rank, a1 = 0, h8 = 63.
type Square int8

// NoSquare marks an absent square (e.g. no en-passant target).
const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from 0-based file and rank indices.
// It returns NoSquare when either index is off the board.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// ParseSquare parses a square name such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 || !IsFile(s[0]) || !IsRank(s[1]) {
		return NoSquare, false
	}
	return NewSquare(int(s[0]-FirstFile), int(s[1]-FirstRank)), true
}

// IsFile reports whether c is a file letter 'a'-'h'.
func IsFile(c byte) bool {
	return c >= FirstFile && c <= LastFile
}

// IsRank reports whether c is a rank digit '1'-'8'.
func IsRank(c byte) bool {
	return c >= FirstRank && c <= LastRank
}

// File returns the 0-based file index.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the 0-based rank index.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= A1 && s <= H8
}

// FileChar returns the file letter.
func (s Square) FileChar() byte {
	return byte(FirstFile + s.File())
}

// RankChar returns the rank digit.
func (s Square) RankChar() byte {
	return byte(FirstRank + s.Rank())
}

// Offset returns the square df files and dr ranks away, or NoSquare.
func (s Square) Offset(df, dr int) Square {
	if !s.Valid() {
		return NoSquare
	}
	return NewSquare(s.File()+df, s.Rank()+dr)
}

// String returns the square name, or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.FileChar(), s.RankChar()})
}
