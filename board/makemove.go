package board

// MoveState is the undo token returned by MakeMove and consumed by
// UnmakeMove. Calls must be strictly paired, most-recent first.
type MoveState struct {
	move       Move
	captured   Piece
	capturedSq Square

	prevCastleRook [2][2]Square
	prevEp         Square
	prevHalf       int
	prevFull       int

	rookFrom, rookTo Square
}

// MakeMove applies a pseudo-legal move and returns the token that undoes
// it. Legality (own king left in check) is the caller's concern; the
// legal move generator filters with an InCheck probe after applying.
func (b *Board) MakeMove(m Move) MoveState {
	st := MoveState{
		move:           m,
		captured:       NoPiece,
		capturedSq:     NoSquare,
		prevCastleRook: b.castleRook,
		prevEp:         b.epSquare,
		prevHalf:       b.halfmove,
		prevFull:       b.fullmove,
		rookFrom:       NoSquare,
		rookTo:         NoSquare,
	}

	us := b.side
	ci := us.index()
	moved := b.squares[m.From]
	kind := moved.Kind()

	if m.Castle == CastleNone {
		if b.squares[m.To] != NoPiece {
			st.captured = b.squares[m.To]
			st.capturedSq = m.To
		} else if kind == Pawn && m.To == b.epSquare && b.epSquare != NoSquare {
			capSq := m.To - Square(int(us)*Width)
			st.captured = b.squares[capSq]
			st.capturedSq = capSq
			b.squares[capSq] = NoPiece
		}
	}

	b.epSquare = NoSquare

	if m.Castle != CastleNone {
		w := wingIndex(m.Castle)
		rookFrom := b.castleRook[ci][w]
		rookTo := b.rookTarget[ci][w]
		rook := b.squares[rookFrom]

		// Lift both pieces before placing either: in randomized starts
		// the four squares involved may overlap.
		b.squares[m.From] = NoPiece
		b.squares[rookFrom] = NoPiece
		b.squares[m.To] = moved
		b.squares[rookTo] = rook

		b.kings[ci] = m.To
		st.rookFrom, st.rookTo = rookFrom, rookTo
		b.castleRook[ci][0] = NoSquare
		b.castleRook[ci][1] = NoSquare
	} else {
		b.squares[m.From] = NoPiece
		if m.Promotion != NoPiece {
			b.squares[m.To] = signed(m.Promotion, us)
		} else {
			b.squares[m.To] = moved
		}

		if kind == King {
			b.kings[ci] = m.To
			b.castleRook[ci][0] = NoSquare
			b.castleRook[ci][1] = NoSquare
		}
		b.clearRookRight(m.From)
		b.clearRookRight(m.To)

		if kind == Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
			b.epSquare = m.From + Square(int(us)*Width)
		}
	}

	if kind == Pawn || st.captured != NoPiece {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if us == Black {
		b.fullmove++
	}
	b.side = us.Other()

	return st
}

// UnmakeMove restores the position as it was before the matching
// MakeMove call.
func (b *Board) UnmakeMove(st MoveState) {
	b.side = b.side.Other()
	us := b.side
	ci := us.index()
	m := st.move

	if m.Castle != CastleNone {
		rook := b.squares[st.rookTo]
		king := b.squares[m.To]
		b.squares[st.rookTo] = NoPiece
		b.squares[m.To] = NoPiece
		b.squares[m.From] = king
		b.squares[st.rookFrom] = rook
		b.kings[ci] = m.From
	} else {
		moved := b.squares[m.To]
		if m.Promotion != NoPiece {
			moved = signed(Pawn, us)
		}
		b.squares[m.To] = NoPiece
		b.squares[m.From] = moved
		if moved.Kind() == King {
			b.kings[ci] = m.From
		}
		if st.capturedSq != NoSquare {
			b.squares[st.capturedSq] = st.captured
		}
	}

	b.castleRook = st.prevCastleRook
	b.epSquare = st.prevEp
	b.halfmove = st.prevHalf
	b.fullmove = st.prevFull
}

// clearRookRight drops any castling right whose rook start square was
// vacated or captured on.
func (b *Board) clearRookRight(sq Square) {
	for ci := 0; ci < 2; ci++ {
		for w := 0; w < 2; w++ {
			if b.castleRook[ci][w] == sq {
				b.castleRook[ci][w] = NoSquare
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
