// Command notate is an interactive move-notation workbench: load a
// position, list its legal moves, convert moves between SAN and LAN, and
// play moves to walk through a game.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/exp/slices"

	"chess-notation/board"
	"chess-notation/notation"
)

const usage = `commands:
  position start|<fen>   load a position
  board                  print the board
  fen                    print the position as FEN
  moves                  list legal moves in SAN
  san <move>             convert a move (any notation) to SAN
  lan <move>             convert a move (any notation) to LAN
  play <move>...         play one or more moves
  help                   this text
  quit                   exit`

func main() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "notate> ",
		InterruptPrompt: "^C",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	b, _ := board.ParseFEN(board.FENStartPos)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		switch strings.ToLower(tokens[0]) {
		case "quit", "exit":
			return
		case "help":
			fmt.Println(usage)
		case "position":
			if len(tokens) < 2 {
				fmt.Println("usage: position start|<fen>")
				continue
			}
			fen := strings.Join(tokens[1:], " ")
			if tokens[1] == "start" {
				fen = board.FENStartPos
			}
			nb, err := board.ParseFEN(fen)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			b = nb
		case "board":
			fmt.Println(b)
		case "fen":
			fmt.Println(b.ToFEN())
		case "moves":
			sans := make([]string, 0, 48)
			for _, m := range b.LegalMoves() {
				sans = append(sans, notation.EncodeSAN(b, m))
			}
			slices.Sort(sans)
			fmt.Println(strings.Join(sans, " "))
		case "san":
			if m, ok := resolve(b, tokens[1:]); ok {
				fmt.Println(notation.EncodeSAN(b, m))
			}
		case "lan":
			if m, ok := resolve(b, tokens[1:]); ok {
				fmt.Println(notation.EncodeLAN(m))
			}
		case "play":
			for _, tok := range tokens[1:] {
				m, ok := resolve(b, []string{tok})
				if !ok {
					break
				}
				b.MakeMove(m)
				fmt.Printf("%s  (%s)\n", tok, b.ToFEN())
			}
		default:
			fmt.Println(usage)
		}
	}
}

// resolve decodes a single move argument in either notation and verifies
// it against the position's legal moves, since LAN decoding alone is
// purely geometric.
func resolve(b *board.Board, args []string) (board.Move, bool) {
	if len(args) != 1 {
		fmt.Println("expected one move argument")
		return board.Move{}, false
	}
	m, err := notation.Decode(b, args[0])
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return board.Move{}, false
	}
	if !slices.Contains(b.LegalMoves(), m) {
		fmt.Printf("error: %s is not legal here\n", args[0])
		return board.Move{}, false
	}
	return m, true
}
