package board

type offset struct{ file, rank int }

var (
	knightOffsets = [8]offset{
		{-1, 2}, {1, 2}, {-1, -2}, {1, -2},
		{-2, 1}, {2, 1}, {-2, -1}, {2, -1},
	}
	kingOffsets = [8]offset{
		{-1, 0}, {-1, -1}, {-1, 1}, {1, 0},
		{1, -1}, {1, 1}, {0, -1}, {0, 1},
	}
	bishopDirs = [4]offset{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	rookDirs   = [4]offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsSquareAttacked reports whether any piece of color by attacks sq with
// the current occupancy.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	f, r := sq.File(), sq.Rank()

	// A pawn attacks diagonally forward, so it sits one rank behind the
	// target along its own advance direction.
	pawnRank := r - int(by)
	for _, df := range [2]int{-1, 1} {
		if b.pieceOn(f+df, pawnRank) == signed(Pawn, by) {
			return true
		}
	}

	for _, o := range knightOffsets {
		if b.pieceOn(f+o.file, r+o.rank) == signed(Knight, by) {
			return true
		}
	}
	for _, o := range kingOffsets {
		if b.pieceOn(f+o.file, r+o.rank) == signed(King, by) {
			return true
		}
	}

	for _, d := range bishopDirs {
		if p := b.firstAlong(f, r, d); p == signed(Bishop, by) || p == signed(Queen, by) {
			return true
		}
	}
	for _, d := range rookDirs {
		if p := b.firstAlong(f, r, d); p == signed(Rook, by) || p == signed(Queen, by) {
			return true
		}
	}
	return false
}

// firstAlong walks a ray and returns the first piece it meets, NoPiece if
// the ray leaves the board empty-handed.
func (b *Board) firstAlong(file, rank int, d offset) Piece {
	file += d.file
	rank += d.rank
	for file >= 0 && file < Width && rank >= 0 && rank < Height {
		if p := b.squares[rank*Width+file]; p != NoPiece {
			return p
		}
		file += d.file
		rank += d.rank
	}
	return NoPiece
}

// InCheck reports whether the given side's king is attacked.
func (b *Board) InCheck(c Color) bool {
	k := b.kings[c.index()]
	if !k.Valid() {
		return false
	}
	return b.IsSquareAttacked(k, c.Other())
}

// LegalMoves enumerates every legal move for the side to move. Each call
// returns a fresh slice in no guaranteed order.
func (b *Board) LegalMoves() []Move {
	pseudo := b.pseudoMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		st := b.MakeMove(m)
		ok := !b.InCheck(b.side.Other())
		b.UnmakeMove(st)
		if ok {
			legal = append(legal, m)
		}
	}
	return legal
}

func (b *Board) pseudoMoves() []Move {
	moves := make([]Move, 0, 64)
	us := b.side
	for sq := Square(0); sq < SquareCount; sq++ {
		switch b.squares[sq] * Piece(us) {
		case Pawn:
			b.pawnMoves(&moves, sq)
		case Knight:
			b.stepMoves(&moves, sq, knightOffsets[:])
		case Bishop:
			b.slideMoves(&moves, sq, bishopDirs[:])
		case Rook:
			b.slideMoves(&moves, sq, rookDirs[:])
		case Queen:
			b.slideMoves(&moves, sq, bishopDirs[:])
			b.slideMoves(&moves, sq, rookDirs[:])
		case King:
			b.stepMoves(&moves, sq, kingOffsets[:])
		}
	}
	b.castleMoves(&moves)
	return moves
}

func (b *Board) stepMoves(dst *[]Move, from Square, steps []offset) {
	f, r := from.File(), from.Rank()
	for _, o := range steps {
		to := SquareAt(f+o.file, r+o.rank)
		if to == NoSquare {
			continue
		}
		if b.squares[to]*Piece(b.side) <= 0 {
			*dst = append(*dst, Move{From: from, To: to})
		}
	}
}

func (b *Board) slideMoves(dst *[]Move, from Square, dirs []offset) {
	for _, d := range dirs {
		f, r := from.File()+d.file, from.Rank()+d.rank
		for f >= 0 && f < Width && r >= 0 && r < Height {
			to := Square(r*Width + f)
			p := b.squares[to] * Piece(b.side)
			if p > 0 {
				break
			}
			*dst = append(*dst, Move{From: from, To: to})
			if p < 0 {
				break
			}
			f += d.file
			r += d.rank
		}
	}
}

func (b *Board) pawnMoves(dst *[]Move, from Square) {
	us := b.side
	dir := int(us)
	f, r := from.File(), from.Rank()

	homeRank, lastRank := 1, Height-1
	if us == Black {
		homeRank, lastRank = Height-2, 0
	}

	push := func(to Square) {
		if to.Rank() == lastRank {
			for _, promo := range [4]Piece{Queen, Rook, Bishop, Knight} {
				*dst = append(*dst, Move{From: from, To: to, Promotion: promo})
			}
			return
		}
		*dst = append(*dst, Move{From: from, To: to})
	}

	if one := SquareAt(f, r+dir); one != NoSquare && b.squares[one] == NoPiece {
		push(one)
		if r == homeRank {
			if two := SquareAt(f, r+2*dir); two != NoSquare && b.squares[two] == NoPiece {
				*dst = append(*dst, Move{From: from, To: two})
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := SquareAt(f+df, r+dir)
		if to == NoSquare {
			continue
		}
		if b.squares[to]*Piece(us) < 0 || to == b.epSquare {
			push(to)
		}
	}
}

// castleMoves generates castling moves: right available, every square
// the king or rook crosses empty apart from the two castling pieces
// themselves, and no square on the king's path attacked. The checks work
// from the registered start and target squares, so they hold for
// randomized starting setups too; the final own-king filter in
// LegalMoves catches a rook departure that uncovers a check.
func (b *Board) castleMoves(dst *[]Move) {
	ci := b.side.index()
	kingFrom := b.kings[ci]
	if !kingFrom.Valid() || b.InCheck(b.side) {
		return
	}
	for _, cs := range [2]CastleSide{CastleKingside, CastleQueenside} {
		w := wingIndex(cs)
		rookFrom := b.castleRook[ci][w]
		if rookFrom == NoSquare {
			continue
		}
		kingTo := b.castleTarget[ci][w]
		rookTo := b.rookTarget[ci][w]
		if !b.castlePathClear(kingFrom, kingTo, rookFrom, rookTo) {
			continue
		}
		if !b.castlePathSafe(kingFrom, kingTo) {
			continue
		}
		*dst = append(*dst, Move{From: kingFrom, To: kingTo, Castle: cs})
	}
}

func (b *Board) castlePathClear(kingFrom, kingTo, rookFrom, rookTo Square) bool {
	spanClear := func(from, to Square) bool {
		lo, hi := from, to
		if lo > hi {
			lo, hi = hi, lo
		}
		for s := lo; s <= hi; s++ {
			if s == kingFrom || s == rookFrom {
				continue
			}
			if b.squares[s] != NoPiece {
				return false
			}
		}
		return true
	}
	return spanClear(kingFrom, kingTo) && spanClear(rookFrom, rookTo)
}

func (b *Board) castlePathSafe(kingFrom, kingTo Square) bool {
	them := b.side.Other()
	step := Square(1)
	if kingTo < kingFrom {
		step = -1
	}
	for s := kingFrom; ; s += step {
		if s != kingFrom && b.IsSquareAttacked(s, them) {
			return false
		}
		if s == kingTo {
			return true
		}
	}
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		st := b.MakeMove(m)
		nodes += Perft(b, depth-1)
		b.UnmakeMove(st)
	}
	return nodes
}

// PerftDivide returns per-root-move leaf counts, the classic movegen
// debugging view.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	for _, m := range b.LegalMoves() {
		st := b.MakeMove(m)
		div[m] = Perft(b, depth-1)
		b.UnmakeMove(st)
	}
	return div
}
