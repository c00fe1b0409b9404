package board

import "strings"

// FENStartPos is the standard starting position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board holds a full position. It is mutated only through MakeMove /
// UnmakeMove; a single board must not be shared between goroutines
// without external serialization, because the notation encoder probes
// positions with a transient make/unmake cycle.
type Board struct {
	squares [SquareCount]Piece
	side    Color

	kings [2]Square

	// Castling registry, indexed [color][wing]. castleRook is the start
	// square of the rook still eligible for that wing (NoSquare once the
	// right is lost). castleTarget and rookTarget are the king and rook
	// destination squares, fixed by the board geometry at setup time:
	// they stay valid for randomized starting positions, where the start
	// squares do not.
	castleRook   [2][2]Square
	castleTarget [2][2]Square
	rookTarget   [2][2]Square

	epSquare Square

	halfmove int
	fullmove int

	// randomStart marks positions from randomized back-rank variants
	// (Chess960 and friends), where castling cannot be inferred from
	// fixed squares.
	randomStart bool
}

// PieceAt returns the piece on a square, NoPiece for empty or invalid
// squares.
func (b *Board) PieceAt(s Square) Piece {
	if !s.Valid() {
		return NoPiece
	}
	return b.squares[s]
}

// pieceOn is PieceAt by coordinates, tolerant of off-board arguments.
func (b *Board) pieceOn(file, rank int) Piece {
	if file < 0 || file >= Width || rank < 0 || rank >= Height {
		return NoPiece
	}
	return b.squares[rank*Width+file]
}

// SideToMove returns the color whose turn it is.
func (b *Board) SideToMove() Color { return b.side }

// KingSquare returns the square of the given side's king.
func (b *Board) KingSquare(c Color) Square { return b.kings[c.index()] }

// CastleTarget returns the registered king destination square for the
// given side and wing. The registry is set up from the board geometry and
// does not depend on whether the castling right is still available.
func (b *Board) CastleTarget(c Color, cs CastleSide) Square {
	if cs == CastleNone {
		return NoSquare
	}
	return b.castleTarget[c.index()][wingIndex(cs)]
}

// CastleRook returns the start square of the rook still eligible to
// castle on the given wing, or NoSquare when the right is gone.
func (b *Board) CastleRook(c Color, cs CastleSide) Square {
	if cs == CastleNone {
		return NoSquare
	}
	return b.castleRook[c.index()][wingIndex(cs)]
}

// EnPassantSquare returns the current en passant target square, or
// NoSquare when none is available.
func (b *Board) EnPassantSquare() Square { return b.epSquare }

// RandomStart reports whether the position comes from a randomized
// back-rank setup.
func (b *Board) RandomStart() bool { return b.randomStart }

// Width returns the number of files on the board.
func (b *Board) Width() int { return Width }

// Height returns the number of ranks on the board.
func (b *Board) Height() int { return Height }

// HalfmoveClock returns the fifty-move-rule counter.
func (b *Board) HalfmoveClock() int { return b.halfmove }

// FullmoveNumber returns the current full move number.
func (b *Board) FullmoveNumber() int { return b.fullmove }

// String renders the position as an ASCII diagram, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for rank := Height - 1; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < Width; file++ {
			p := b.squares[rank*Width+file]
			if p == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteByte(fenChar(p))
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}
