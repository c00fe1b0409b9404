// Package notation converts chess moves between their in-memory form and
// the two algebraic text notations: SAN ("Nbd7+", "O-O", "e8=Q#") and LAN
// ("e7e8q"). Encoding needs the full board context to resolve captures,
// disambiguation and check status; decoding resolves the text against the
// position's legal moves.
//
// The codec never changes a board permanently. SAN encoding applies and
// reverts one move to probe the resulting check or mate status, so a
// board must not be shared with other goroutines during a call.
package notation

import (
	"github.com/pkg/errors"

	"chess-notation/board"
)

// Format selects the textual notation for encoding.
type Format int

const (
	// SAN is Standard Algebraic Notation.
	SAN Format = iota
	// LAN is Long Algebraic Notation: source square, target square,
	// promotion letter.
	LAN
)

// Decode failure classes. Wrapped errors carry the offending string and
// position context; classify with errors.Is.
var (
	// ErrSyntax marks a structurally malformed move string.
	ErrSyntax = errors.New("notation: malformed move string")

	// ErrIllegalMove marks a well-formed string that does not describe a
	// legal move in the position, including a capture mark that
	// disagrees with the board.
	ErrIllegalMove = errors.New("notation: no matching legal move")

	// ErrAmbiguous marks a string that matches more than one legal move.
	// The codec refuses to guess.
	ErrAmbiguous = errors.New("notation: ambiguous move")
)

// Encode renders a legal move as text. SAN is used when requested, and is
// forced for castling moves in randomized-start games: LAN cannot tell a
// long king slide from castling when the castling target is not at a
// fixed offset from the king.
func Encode(b *board.Board, m board.Move, f Format) string {
	if f == SAN || (m.Castle != board.CastleNone && b.RandomStart()) {
		return EncodeSAN(b, m)
	}
	return EncodeLAN(m)
}

// Decode parses a move in either notation, trying SAN first and falling
// back to LAN. When both fail, the SAN error is returned since it carries
// the more specific diagnosis.
func Decode(b *board.Board, s string) (board.Move, error) {
	m, sanErr := DecodeSAN(b, s)
	if sanErr == nil {
		return m, nil
	}
	if m, lanErr := DecodeLAN(b, s); lanErr == nil {
		return m, nil
	}
	return board.Move{}, sanErr
}
