package notation

import (
	"github.com/pkg/errors"

	"chess-notation/board"
)

// EncodeLAN renders a move in long algebraic notation: source square,
// target square, and a lowercase promotion letter when promoting. LAN is
// unambiguous by construction and carries no capture or check marks.
func EncodeLAN(m board.Move) string {
	s := board.SquareString(m.From) + board.SquareString(m.To)
	if m.Promotion != board.NoPiece {
		s += string(board.PieceChar(m.Promotion) | 0x20)
	}
	return s
}

// DecodeLAN parses long algebraic notation against the given position.
// When the source square holds the moving side's king, castling is
// inferred geometrically from the index distance: two or three squares
// toward a wing is read as castling on that wing. The three-square case
// covers randomized starts where the king begins far from its castling
// destination. The inference does not verify legality; that stays with
// the move generator downstream.
func DecodeLAN(b *board.Board, s string) (board.Move, error) {
	if len(s) < 4 {
		return board.Move{}, errors.Wrapf(ErrSyntax, "lan %q: too short", s)
	}
	from := board.ParseSquare(s[0:2])
	to := board.ParseSquare(s[2:4])
	if from == board.NoSquare || to == board.NoSquare {
		return board.Move{}, errors.Wrapf(ErrSyntax, "lan %q: bad square token", s)
	}

	promotion := board.NoPiece
	if len(s) > 4 {
		promotion = board.PieceFromChar(s[4] &^ 0x20)
		if promotion == board.NoPiece {
			return board.Move{}, errors.Wrapf(ErrSyntax, "lan %q: bad promotion letter", s)
		}
	}

	castle := board.CastleNone
	if p := b.PieceAt(from); p.Kind() == board.King && p.Color() == b.SideToMove() {
		switch diff := int(to) - int(from); {
		case diff == -2 || diff == -3:
			castle = board.CastleQueenside
		case diff == 2 || diff == 3:
			castle = board.CastleKingside
		}
	}

	return board.Move{From: from, To: to, Promotion: promotion, Castle: castle}, nil
}
