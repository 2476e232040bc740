package chess

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Geometry describes the dimensions of a board.
type Geometry struct {
	Files int
	Ranks int
}

// Standard is the 8x8 board.
var Standard = Geometry{Files: 8, Ranks: 8}

// Contains reports whether sq lies on the board.
func (g Geometry) Contains(sq Square) bool {
	return sq.File >= 0 && sq.File < g.Files && sq.Rank >= 0 && sq.Rank < g.Ranks
}

// Squares enumerates every square, rank by rank starting at a1.
func (g Geometry) Squares() []Square {
	sqs := make([]Square, 0, g.Files*g.Ranks)
	for rank := 0; rank < g.Ranks; rank++ {
		for file := 0; file < g.Files; file++ {
			sqs = append(sqs, Square{File: file, Rank: rank})
		}
	}
	return sqs
}

// LastRank returns the promotion rank index for a colour.
func (g Geometry) LastRank(c Colour) int {
	if c == White {
		return g.Ranks - 1
	}
	return 0
}

// PawnRank returns the rank index pawns of a colour start on.
func (g Geometry) PawnRank(c Colour) int {
	if c == White {
		return 1
	}
	return g.Ranks - 2
}

// Square is a zero-based file and rank pair.
type Square struct {
	File int
	Rank int
}

// FileLetter returns the file as a lowercase letter.
func (sq Square) FileLetter() byte {
	return byte('a' + sq.File)
}

// String returns the algebraic name of the square.
func (sq Square) String() string {
	return string(sq.FileLetter()) + strconv.Itoa(sq.Rank+1)
}

// Offset returns the square df files and dr ranks away.
func (sq Square) Offset(df, dr int) Square {
	return Square{File: sq.File + df, Rank: sq.Rank + dr}
}

// IsLight reports whether sq is a light square.
func (sq Square) IsLight() bool {
	return (sq.File+sq.Rank)%2 == 1
}

// ParseSquare converts an algebraic square name for the given geometry.
func ParseSquare(s string, g Geometry) (Square, error) {
	if len(s) < 2 || len(s) > 3 {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	if s[0] < 'a' || s[0] > 'z' || s[1] < '1' || s[1] > '9' {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	sq := Square{File: int(s[0] - 'a'), Rank: rank - 1}
	if !g.Contains(sq) {
		return Square{}, fmt.Errorf("%q outside %dx%d board: %w", s, g.Files, g.Ranks, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare on the standard board but panics on error.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s, Standard)
	if err != nil {
		panic(err)
	}
	return sq
}
