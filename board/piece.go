package board

// Piece encodes a chessman as a signed value: the sign is the owning
// color, the magnitude the piece kind. Multiplying a square's content by
// the side-to-move sign normalizes it to "own piece > 0, enemy piece < 0",
// which is the form the notation codec works in.
type Piece int8

const (
	NoPiece Piece = 0
	Pawn    Piece = 1
	Knight  Piece = 2
	Bishop  Piece = 3
	Rook    Piece = 4
	Queen   Piece = 5
	King    Piece = 6
)

// Color is the sign a side contributes to its pieces.
type Color int8

const (
	White Color = 1
	Black Color = -1
)

// Other returns the opposing side.
func (c Color) Other() Color { return -c }

// index maps a color to a slot in per-side arrays.
func (c Color) index() int {
	if c == White {
		return 0
	}
	return 1
}

// Kind strips the color sign and returns the piece kind (Pawn..King).
func (p Piece) Kind() Piece {
	if p < 0 {
		return -p
	}
	return p
}

// Color returns the side owning the piece. NoPiece yields the zero Color,
// which matches neither side.
func (p Piece) Color() Color {
	switch {
	case p > 0:
		return White
	case p < 0:
		return Black
	}
	return 0
}

// signed attaches a color sign to a piece kind.
func signed(kind Piece, c Color) Piece {
	return kind.Kind() * Piece(c)
}

var pieceChars = [King + 1]byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}

// PieceChar returns the uppercase notation letter for a piece kind.
func PieceChar(p Piece) byte {
	k := p.Kind()
	if k < Pawn || k > King {
		return '?'
	}
	return pieceChars[k]
}

// PieceFromChar maps an uppercase notation letter to a piece kind.
// Anything else, including lowercase letters, maps to NoPiece; callers
// that accept lowercase input normalize before calling.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return Pawn
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	}
	return NoPiece
}
