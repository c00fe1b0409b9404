package board

// Square is a board-linear index: rank*Width + file, from a1 = 0 to
// h8 = 63. NoSquare is the explicit invalid square used for "no en
// passant target", "castling right lost" and lexicon parse failures.
type Square int

// Board dimensions. Fixed at 8x8; kept as named constants because the
// notation grammar validates files and ranks against them.
const (
	Width       = 8
	Height      = 8
	SquareCount = Width * Height
)

const NoSquare Square = -1

// SquareAt builds a square from zero-based file and rank coordinates.
// Out-of-range coordinates yield NoSquare.
func SquareAt(file, rank int) Square {
	if file < 0 || file >= Width || rank < 0 || rank >= Height {
		return NoSquare
	}
	return Square(rank*Width + file)
}

// File returns the zero-based file of the square.
func (s Square) File() int { return int(s) % Width }

// Rank returns the zero-based rank of the square.
func (s Square) Rank() int { return int(s) / Width }

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool { return s >= 0 && s < SquareCount }

// SquareString returns the algebraic token for a square ("e4").
// Invalid squares render as "-".
func SquareString(s Square) string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare parses a two-character algebraic token. Malformed input
// yields NoSquare.
func ParseSquare(tok string) Square {
	if len(tok) != 2 {
		return NoSquare
	}
	return SquareAt(int(tok[0])-'a', int(tok[1])-'1')
}
