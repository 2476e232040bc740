package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// RookType records which castling right a rook belongs to.
type RookType int

const (
	NoRookType RookType = iota
	CastleShortRook
	CastleLongRook
	PromotedRook
)

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// Piece is a piece placed on a board. Pieces are values and never change;
// moving one replaces it with a new Piece at the destination.
type Piece struct {
	Kind     chess.Piece
	Colour   chess.Colour
	Square   chess.Square
	RookType RookType

	// Squares reachable ignoring occupancy, one ordered ray per direction.
	// Knights and kings have one single-square ray per offset. For pawns
	// this holds the forward squares only.
	rays [][]chess.Square
	// Pawn diagonal capture squares.
	captures []chess.Square
}

// newPiece builds a piece and computes its mobility for geometry g.
func newPiece(kind chess.Piece, colour chess.Colour, sq chess.Square, rookType RookType, g chess.Geometry) Piece {
	p := Piece{Kind: kind, Colour: colour, Square: sq}
	if kind == chess.Rook {
		p.RookType = rookType
	}

	switch {
	case kind == chess.Pawn:
		p.rays, p.captures = pawnMobility(colour, sq, g)
	case kind == chess.Knight:
		p.rays = stepRays(sq, knightOffsets, g)
	case kind == chess.King:
		p.rays = stepRays(sq, kingOffsets, g)
	case kind.IsSlider():
		if kind != chess.Rook {
			p.rays = slidingRays(sq, diagonalDirs, g)
		}
		if kind != chess.Bishop {
			p.rays = append(p.rays, slidingRays(sq, straightDirs, g)...)
		}
	}
	return p
}

// stepRays returns one single-square ray per on-board offset.
func stepRays(sq chess.Square, offsets [][2]int, g chess.Geometry) [][]chess.Square {
	var rays [][]chess.Square
	for _, off := range offsets {
		to := sq.Offset(off[0], off[1])
		if g.Contains(to) {
			rays = append(rays, []chess.Square{to})
		}
	}
	return rays
}

// slidingRays returns the squares in each direction up to the board edge.
func slidingRays(sq chess.Square, dirs [][2]int, g chess.Geometry) [][]chess.Square {
	var rays [][]chess.Square
	for _, dir := range dirs {
		var ray []chess.Square
		for to := sq.Offset(dir[0], dir[1]); g.Contains(to); to = to.Offset(dir[0], dir[1]) {
			ray = append(ray, to)
		}
		if len(ray) > 0 {
			rays = append(rays, ray)
		}
	}
	return rays
}

// pawnMobility returns the forward ray and the diagonal capture squares.
func pawnMobility(colour chess.Colour, sq chess.Square, g chess.Geometry) ([][]chess.Square, []chess.Square) {
	dir := 1
	if colour == chess.Black {
		dir = -1
	}

	var forward []chess.Square
	if one := sq.Offset(0, dir); g.Contains(one) {
		forward = append(forward, one)
		if two := sq.Offset(0, 2*dir); sq.Rank == g.PawnRank(colour) && g.Contains(two) {
			forward = append(forward, two)
		}
	}

	var captures []chess.Square
	for _, df := range []int{-1, 1} {
		if to := sq.Offset(df, dir); g.Contains(to) {
			captures = append(captures, to)
		}
	}

	var rays [][]chess.Square
	if len(forward) > 0 {
		rays = append(rays, forward)
	}
	return rays, captures
}

// Mobility returns the rays computed at construction. Callers must not
// modify them.
func (p Piece) Mobility() [][]chess.Square {
	return p.rays
}

// CaptureSquares returns a pawn's diagonal squares; nil for other kinds.
func (p Piece) CaptureSquares() []chess.Square {
	return p.captures
}

// String returns the FEN letter followed by the square, e.g. "Ng1" or "pe7".
func (p Piece) String() string {
	return string(p.Kind.ColouredLetter(p.Colour)) + p.Square.String()
}
