package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CastlingRule describes one castling move for one colour.
type CastlingRule struct {
	KingFrom chess.Square
	KingTo   chess.Square
	RookFrom chess.Square
	RookTo   chess.Square

	// Squares that must be empty, other than the king's and rook's own.
	Empty []chess.Square
	// Squares the opponent must not attack: origin, transit and destination.
	Safe []chess.Square
}

// CastlingRules is the castling table of a variant, indexed by colour and side.
type CastlingRules [2][2]CastlingRule

// Rule returns the rule for colour and side.
func (r *CastlingRules) Rule(c chess.Colour, side chess.CastleSide) CastlingRule {
	return r[c][side]
}

// RookType returns the rook type for a rook of colour c standing on sq.
func (r *CastlingRules) RookType(c chess.Colour, sq chess.Square) RookType {
	switch sq {
	case r[c][chess.Short].RookFrom:
		return CastleShortRook
	case r[c][chess.Long].RookFrom:
		return CastleLongRook
	}
	return NoRookType
}

// NewCastlingRules builds the table for a board whose kings start on
// kingFile and whose rooks start on shortRookFile and longRookFile. The king
// lands two files from each edge and the rook beside it, as in classical chess.
func NewCastlingRules(g chess.Geometry, kingFile, shortRookFile, longRookFile int) CastlingRules {
	var rules CastlingRules
	for _, c := range chess.Colours {
		rank := 0
		if c == chess.Black {
			rank = g.Ranks - 1
		}
		rules[c][chess.Short] = newCastlingRule(rank, kingFile, g.Files-2, shortRookFile, g.Files-3)
		rules[c][chess.Long] = newCastlingRule(rank, kingFile, 2, longRookFile, 3)
	}
	return rules
}

func newCastlingRule(rank, kingFrom, kingTo, rookFrom, rookTo int) CastlingRule {
	rule := CastlingRule{
		KingFrom: chess.Square{File: kingFrom, Rank: rank},
		KingTo:   chess.Square{File: kingTo, Rank: rank},
		RookFrom: chess.Square{File: rookFrom, Rank: rank},
		RookTo:   chess.Square{File: rookTo, Rank: rank},
	}

	lo, hi := minMax(kingFrom, kingTo, rookFrom, rookTo)
	for file := lo; file <= hi; file++ {
		if file == kingFrom || file == rookFrom {
			continue
		}
		if between(file, kingFrom, kingTo) || between(file, rookFrom, rookTo) {
			rule.Empty = append(rule.Empty, chess.Square{File: file, Rank: rank})
		}
	}

	step := sign(kingTo - kingFrom)
	for file := kingFrom; ; file += step {
		rule.Safe = append(rule.Safe, chess.Square{File: file, Rank: rank})
		if file == kingTo || step == 0 {
			break
		}
	}
	return rule
}

// between reports whether x lies in the closed interval spanned by a and b.
func between(x, a, b int) bool {
	if a > b {
		a, b = b, a
	}
	return x >= a && x <= b
}

func minMax(xs ...int) (int, int) {
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
