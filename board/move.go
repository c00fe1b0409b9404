package board

// CastleSide distinguishes the two castling wings.
type CastleSide int8

const (
	CastleNone CastleSide = iota
	CastleKingside
	CastleQueenside
)

// wingIndex maps a castling side to a slot in per-wing arrays.
func wingIndex(cs CastleSide) int {
	if cs == CastleQueenside {
		return 1
	}
	return 0
}

// Move is an immutable description of a single move. From and To are
// board-linear squares; for castling, To is the king's destination (the
// registered castling target square). Promotion is a colorless piece
// kind, NoPiece when the move does not promote.
type Move struct {
	From, To  Square
	Promotion Piece
	Castle    CastleSide
}

// String renders the move in coordinate form (e2e4, e7e8q), which is also
// what perft divide output and the UCI protocol use.
func (m Move) String() string {
	s := SquareString(m.From) + SquareString(m.To)
	if m.Promotion != NoPiece {
		s += string(PieceChar(m.Promotion) | 0x20)
	}
	return s
}
