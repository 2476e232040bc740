package engine

import (
	"io"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

func quietConfig() *config.Config {
	return config.NewConfigBuilder().Quiet().WithLogFile(io.Discard).Build()
}

// newTestBoard builds a silent board from fen, or the start position when
// fen is empty.
func newTestBoard(t testing.TB, fen string) *Board {
	t.Helper()
	if fen == "" {
		b, err := NewBoard(WithConfig(quietConfig()))
		if err != nil {
			t.Fatalf("NewBoard() error = %v", err)
		}
		return b
	}
	b, err := NewBoardFromFEN(fen, WithConfig(quietConfig()))
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error = %v", fen, err)
	}
	return b
}

// playAll plays tokens alternately, starting with the side to move, and
// fails on the first rejected move.
func playAll(t testing.TB, b *Board, tokens ...string) {
	t.Helper()
	for _, token := range tokens {
		colour := b.Turn()
		ok, err := b.Play(colour, token)
		if err != nil {
			t.Fatalf("Play(%s, %q) error = %v", colour, token, err)
		}
		if !ok {
			t.Fatalf("Play(%s, %q) = false in %s", colour, token, b.ToFEN())
		}
	}
}

func sq(s string) chess.Square {
	return chess.MustParseSquare(s)
}

func lastSAN(t testing.TB, b *Board) string {
	t.Helper()
	e, ok := b.LastMove()
	if !ok {
		t.Fatal("LastMove() found no move")
	}
	return e.SAN
}
