package board

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// fenChar returns the FEN letter for a signed piece: uppercase white,
// lowercase black.
func fenChar(p Piece) byte {
	ch := PieceChar(p)
	if p < 0 {
		ch |= 0x20
	}
	return ch
}

// pieceFromFENChar parses a FEN piece letter into a signed piece.
func pieceFromFENChar(ch byte) Piece {
	kind := PieceFromChar(ch &^ 0x20)
	if kind == NoPiece {
		return NoPiece
	}
	if ch&0x20 != 0 {
		return -kind
	}
	return kind
}

// ParseFEN builds a board from a FEN record. Both conventional castling
// fields (KQkq) and Shredder-FEN file letters (HAha) are accepted; file
// letters, or a conventional field over a non-standard king and rook
// layout, mark the position as a randomized start.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.Errorf("fen %q: expected at least 4 fields, got %d", fen, len(fields))
	}

	b := &Board{
		epSquare: NoSquare,
		fullmove: 1,
	}
	b.kings[0], b.kings[1] = NoSquare, NoSquare
	for ci := 0; ci < 2; ci++ {
		backRank := ci * (Height - 1)
		b.castleRook[ci][0] = NoSquare
		b.castleRook[ci][1] = NoSquare
		b.castleTarget[ci][wingIndex(CastleKingside)] = SquareAt(6, backRank)
		b.castleTarget[ci][wingIndex(CastleQueenside)] = SquareAt(2, backRank)
		b.rookTarget[ci][wingIndex(CastleKingside)] = SquareAt(5, backRank)
		b.rookTarget[ci][wingIndex(CastleQueenside)] = SquareAt(3, backRank)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != Height {
		return nil, errors.Errorf("fen %q: expected %d ranks", fen, Height)
	}
	for i, rankStr := range ranks {
		rank := Height - 1 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '0'+Width {
				file += int(ch - '0')
				continue
			}
			p := pieceFromFENChar(ch)
			if p == NoPiece {
				return nil, errors.Errorf("fen %q: unrecognized piece character %q", fen, ch)
			}
			if file >= Width {
				return nil, errors.Errorf("fen %q: rank %d overflows", fen, rank+1)
			}
			sq := SquareAt(file, rank)
			b.squares[sq] = p
			if p.Kind() == King {
				b.kings[p.Color().index()] = sq
			}
			file++
		}
		if file != Width {
			return nil, errors.Errorf("fen %q: rank %d has %d files", fen, rank+1, file)
		}
	}
	if b.kings[0] == NoSquare || b.kings[1] == NoSquare {
		return nil, errors.Errorf("fen %q: both kings must be present", fen)
	}

	switch fields[1] {
	case "w":
		b.side = White
	case "b":
		b.side = Black
	default:
		return nil, errors.Errorf("fen %q: side to move must be 'w' or 'b'", fen)
	}

	if fields[2] != "-" {
		for j := 0; j < len(fields[2]); j++ {
			if err := b.addCastlingRight(fields[2][j]); err != nil {
				return nil, errors.Wrapf(err, "fen %q", fen)
			}
		}
		if !b.randomStart && b.nonStandardCastlingLayout() {
			b.randomStart = true
		}
	}

	if fields[3] != "-" {
		ep := ParseSquare(fields[3])
		if ep == NoSquare {
			return nil, errors.Errorf("fen %q: bad en passant square %q", fen, fields[3])
		}
		b.epSquare = ep
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, errors.Wrapf(err, "fen %q: halfmove clock", fen)
		}
		b.halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, errors.Wrapf(err, "fen %q: fullmove number", fen)
		}
		b.fullmove = n
	}

	return b, nil
}

// addCastlingRight resolves one castling-field character to a rook start
// square. Conventional letters pick the outermost rook on the wing;
// Shredder file letters name the rook's file directly.
func (b *Board) addCastlingRight(ch byte) error {
	var c Color
	var rookSq Square
	var cs CastleSide

	switch {
	case ch == 'K' || ch == 'Q':
		c = White
		cs = CastleKingside
		if ch == 'Q' {
			cs = CastleQueenside
		}
		rookSq = b.outermostRook(c, cs)
	case ch == 'k' || ch == 'q':
		c = Black
		cs = CastleKingside
		if ch == 'q' {
			cs = CastleQueenside
		}
		rookSq = b.outermostRook(c, cs)
	case ch >= 'A' && ch <= 'A'+Width-1:
		c = White
		rookSq = SquareAt(int(ch-'A'), 0)
		b.randomStart = true
	case ch >= 'a' && ch <= 'a'+Width-1:
		c = Black
		rookSq = SquareAt(int(ch-'a'), Height-1)
		b.randomStart = true
	default:
		return errors.Errorf("bad castling character %q", ch)
	}

	if rookSq == NoSquare || b.squares[rookSq] != signed(Rook, c) {
		return errors.Errorf("castling right %q names no rook", ch)
	}
	if cs == CastleNone {
		// File-letter rights: the wing follows from the rook's side of
		// the king.
		king := b.kings[c.index()]
		if rookSq.File() > king.File() {
			cs = CastleKingside
		} else {
			cs = CastleQueenside
		}
	}
	b.castleRook[c.index()][wingIndex(cs)] = rookSq
	return nil
}

// outermostRook finds the rook a conventional K/Q/k/q right refers to:
// the rook furthest from the king on that wing of the back rank.
func (b *Board) outermostRook(c Color, cs CastleSide) Square {
	king := b.kings[c.index()]
	rank := c.index() * (Height - 1)
	rook := signed(Rook, c)
	if cs == CastleKingside {
		for file := Width - 1; file > king.File(); file-- {
			if sq := SquareAt(file, rank); b.squares[sq] == rook {
				return sq
			}
		}
		return NoSquare
	}
	for file := 0; file < king.File(); file++ {
		if sq := SquareAt(file, rank); b.squares[sq] == rook {
			return sq
		}
	}
	return NoSquare
}

// nonStandardCastlingLayout reports whether the castling pieces are not
// on their orthodox squares, which under conventional castling letters
// still implies a randomized start.
func (b *Board) nonStandardCastlingLayout() bool {
	for ci := 0; ci < 2; ci++ {
		rank := ci * (Height - 1)
		hasRight := b.castleRook[ci][0] != NoSquare || b.castleRook[ci][1] != NoSquare
		if !hasRight {
			continue
		}
		if b.kings[ci] != SquareAt(4, rank) {
			return true
		}
		if ks := b.castleRook[ci][wingIndex(CastleKingside)]; ks != NoSquare && ks != SquareAt(Width-1, rank) {
			return true
		}
		if qs := b.castleRook[ci][wingIndex(CastleQueenside)]; qs != NoSquare && qs != SquareAt(0, rank) {
			return true
		}
	}
	return false
}

// ToFEN produces the FEN record for the current position. Randomized
// starts emit Shredder-style file letters for the castling field.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := Height - 1; rank >= 0; rank-- {
		blanks := 0
		for file := 0; file < Width; file++ {
			p := b.squares[rank*Width+file]
			if p == NoPiece {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteByte('0' + byte(blanks))
				blanks = 0
			}
			sb.WriteByte(fenChar(p))
		}
		if blanks > 0 {
			sb.WriteByte('0' + byte(blanks))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.side == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	castleLen := sb.Len()
	letters := [2][2]byte{{'K', 'Q'}, {'k', 'q'}}
	for ci := 0; ci < 2; ci++ {
		for _, cs := range [2]CastleSide{CastleKingside, CastleQueenside} {
			rookSq := b.castleRook[ci][wingIndex(cs)]
			if rookSq == NoSquare {
				continue
			}
			if b.randomStart {
				ch := byte('A' + rookSq.File())
				if ci == 1 {
					ch |= 0x20
				}
				sb.WriteByte(ch)
			} else {
				sb.WriteByte(letters[ci][wingIndex(cs)])
			}
		}
	}
	if sb.Len() == castleLen {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	if b.epSquare == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(SquareString(b.epSquare))
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))

	return sb.String()
}
