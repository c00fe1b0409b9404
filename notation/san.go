package notation

import (
	"strings"

	"github.com/pkg/errors"

	"chess-notation/board"
)

// EncodeSAN renders a move in standard algebraic notation. The move must
// be legal for the position; the output is unspecified otherwise. The
// board is probed with one apply/revert cycle to decide the check or mate
// suffix and is restored before the function returns.
func EncodeSAN(b *board.Board, m board.Move) string {
	piece := b.PieceAt(m.From).Kind()

	// A legal move only ever lands on an enemy piece.
	capture := b.PieceAt(m.To) != board.NoPiece
	if piece == board.Pawn && m.To != board.NoSquare && m.To == b.EnPassantSquare() {
		// En passant: a capture even though the target square is empty.
		capture = true
	}

	var suffix byte
	st := b.MakeMove(m)
	if b.InCheck(b.SideToMove()) {
		if len(b.LegalMoves()) == 0 {
			suffix = '#'
		} else {
			suffix = '+'
		}
	}
	b.UnmakeMove(st)

	if m.Castle != board.CastleNone {
		s := "O-O"
		if m.Castle == board.CastleQueenside {
			s = "O-O-O"
		}
		if suffix != 0 {
			s += string(suffix)
		}
		return s
	}

	var sb strings.Builder
	needFile, needRank := false, false
	switch piece {
	case board.Pawn:
		needFile = capture
	case board.King:
		// Only one king per side, never ambiguous.
		sb.WriteByte(board.PieceChar(board.King))
	default:
		sb.WriteByte(board.PieceChar(piece))
		needFile, needRank = disambiguate(b, m, piece)
	}

	if needFile {
		sb.WriteByte('a' + byte(m.From.File()))
	}
	if needRank {
		sb.WriteByte('1' + byte(m.From.Rank()))
	}
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(board.SquareString(m.To))
	if m.Promotion != board.NoPiece {
		sb.WriteByte('=')
		sb.WriteByte(board.PieceChar(m.Promotion))
	}
	if suffix != 0 {
		sb.WriteByte(suffix)
	}
	return sb.String()
}

// disambiguate decides which source coordinates SAN must carry. Every
// other legal move of the same piece kind to the same target collides;
// the source file alone is preferred when no collider shares it, then the
// rank, then both.
func disambiguate(b *board.Board, m board.Move, piece board.Piece) (needFile, needRank bool) {
	collision, fileShared, rankShared := false, false, false
	for _, other := range b.LegalMoves() {
		if other.From == m.From || other.To != m.To {
			continue
		}
		if b.PieceAt(other.From).Kind() != piece {
			continue
		}
		collision = true
		if other.From.File() == m.From.File() {
			fileShared = true
		}
		if other.From.Rank() == m.From.Rank() {
			rankShared = true
		}
	}
	switch {
	case !collision:
		return false, false
	case !fileShared:
		return true, false
	case !rankShared:
		return false, true
	}
	return true, true
}

// DecodeSAN parses standard algebraic notation against the position. The
// parsed piece kind, target square, optional source constraints and
// promotion are matched against the current legal moves; anything other
// than exactly one match is an error.
func DecodeSAN(b *board.Board, s string) (board.Move, error) {
	str := s
	// Trailing check, mate and commentary marks carry no move identity.
	for len(str) > 0 && strings.IndexByte("+#!?", str[len(str)-1]) >= 0 {
		str = str[:len(str)-1]
	}
	if len(str) < 2 {
		return board.Move{}, errors.Wrapf(ErrSyntax, "san %q: too short", s)
	}

	us := b.SideToMove()

	// Castling carries no squares in the text. It resolves from the king
	// square and the board's castling target registry and is not matched
	// against the legal move list; legality stays with the caller, same
	// as for LAN input.
	if strings.HasPrefix(str, "O-O") {
		var cs board.CastleSide
		switch str {
		case "O-O":
			cs = board.CastleKingside
		case "O-O-O":
			cs = board.CastleQueenside
		default:
			return board.Move{}, errors.Wrapf(ErrSyntax, "san %q: bad castling token", s)
		}
		return board.Move{
			From:   b.KingSquare(us),
			To:     b.CastleTarget(us, cs),
			Castle: cs,
		}, nil
	}

	// A SAN move cannot open with the capture mark, and pawn moves never
	// carry an explicit piece letter.
	if str[0] == 'x' || str[0] == 'P' {
		return board.Move{}, errors.Wrapf(ErrSyntax, "san %q: bad leading character", s)
	}

	i := 0
	target := board.NoSquare
	srcFile, srcRank := -1, -1

	piece := board.PieceFromChar(str[0])
	if piece == board.NoPiece {
		piece = board.Pawn
		// A bare pawn move may name the target square outright ("e4").
		if t := board.ParseSquare(str[0:2]); t != board.NoSquare {
			target = t
			i = 2
		}
	} else {
		i = 1
	}

	stringIsCapture := false
	if target == board.NoSquare {
		if f := int(str[i]) - 'a'; f >= 0 && f < b.Width() {
			srcFile = f
			i++
			if i == len(str) {
				return board.Move{}, errors.Wrapf(ErrSyntax, "san %q: truncated", s)
			}
		}
		if str[i] >= '0' && str[i] <= '9' {
			r := int(str[i]) - '1'
			if r < 0 || r >= b.Height() {
				return board.Move{}, errors.Wrapf(ErrSyntax, "san %q: rank out of range", s)
			}
			srcRank = r
			i++
		}
		if i == len(str) {
			// The presumed source square was actually the target.
			if srcFile < 0 || srcRank < 0 {
				return board.Move{}, errors.Wrapf(ErrSyntax, "san %q: truncated", s)
			}
			target = board.SquareAt(srcFile, srcRank)
			srcFile, srcRank = -1, -1
		} else if str[i] == 'x' {
			i++
			if i == len(str) {
				return board.Move{}, errors.Wrapf(ErrSyntax, "san %q: dangling capture mark", s)
			}
			stringIsCapture = true
		}
		if target == board.NoSquare {
			if i+2 > len(str) {
				return board.Move{}, errors.Wrapf(ErrSyntax, "san %q: missing target square", s)
			}
			target = board.ParseSquare(str[i : i+2])
			i += 2
		}
	}
	if target == board.NoSquare {
		return board.Move{}, errors.Wrapf(ErrSyntax, "san %q: bad target square", s)
	}

	// The string must agree with the board about being a capture.
	isCapture := b.PieceAt(target)*board.Piece(us) < 0 ||
		(piece == board.Pawn && target == b.EnPassantSquare())
	if isCapture != stringIsCapture {
		return board.Move{}, errors.Wrapf(ErrIllegalMove, "san %q: capture mark disagrees with the position", s)
	}

	promotion := board.NoPiece
	if i < len(str) {
		if str[i] == '=' || str[i] == '(' {
			i++
			if i == len(str) {
				return board.Move{}, errors.Wrapf(ErrSyntax, "san %q: dangling promotion mark", s)
			}
		}
		promotion = board.PieceFromChar(str[i])
		if promotion == board.NoPiece {
			return board.Move{}, errors.Wrapf(ErrSyntax, "san %q: bad promotion letter", s)
		}
	}

	var match board.Move
	found := false
	for _, m := range b.LegalMoves() {
		if b.PieceAt(m.From).Kind() != piece {
			continue
		}
		if m.To != target {
			continue
		}
		if srcRank >= 0 && m.From.Rank() != srcRank {
			continue
		}
		if srcFile >= 0 && m.From.File() != srcFile {
			continue
		}
		// Castling was resolved earlier; a king slide that happens to
		// share the target square must not match it here.
		if m.Castle != board.CastleNone {
			continue
		}
		if m.Promotion != promotion {
			continue
		}
		if found {
			return board.Move{}, errors.Wrapf(ErrAmbiguous, "san %q", s)
		}
		match, found = m, true
	}
	if !found {
		return board.Move{}, errors.Wrapf(ErrIllegalMove, "san %q", s)
	}
	return match, nil
}
