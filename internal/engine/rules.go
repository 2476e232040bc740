package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// DrawRuleResult summarises the draw conditions of the current game.
type DrawRuleResult struct {
	// ThreefoldRepetition is true if the current position has occurred at
	// least three times and a draw may be claimed.
	ThreefoldRepetition bool

	// FivefoldRepetition is true if any position occurred 5 or more times.
	FivefoldRepetition bool

	// FiftyMoveRule is true once 100 half-moves have been made without a
	// pawn move or capture.
	FiftyMoveRule bool

	// SeventyFiveMoveRule is the automatic variant at 150 half-moves.
	SeventyFiveMoveRule bool

	// DeadPosition is true if neither side can ever checkmate.
	DeadPosition bool

	// Stalemate is true if the side to move has no legal move and is not
	// in check.
	Stalemate bool
}

// IsDraw reports whether any automatic draw condition holds. Threefold
// repetition and the fifty-move rule only entitle a claim and are excluded.
func (r DrawRuleResult) IsDraw() bool {
	return r.FivefoldRepetition || r.SeventyFiveMoveRule || r.DeadPosition || r.Stalemate
}

// DrawRules evaluates every draw predicate for the current position.
func (b *Board) DrawRules() DrawRuleResult {
	counter := b.positionCounter()
	return DrawRuleResult{
		ThreefoldRepetition: counter.Count(b.Signature()) >= 3,
		FivefoldRepetition:  counter.MaxCount() >= 5,
		FiftyMoveRule:       b.IsFiftyMoveDraw(),
		SeventyFiveMoveRule: b.IsSeventyFiveMoveDraw(),
		DeadPosition:        b.IsDeadPosition(),
		Stalemate:           b.IsStalemate(),
	}
}

// IsFivefoldRepetition reports whether some position of the game, counting
// the start position, has occurred five times.
func (b *Board) IsFivefoldRepetition() bool {
	return b.positionCounter().MaxCount() >= 5
}

// IsThreefoldRepetition reports whether the current position has occurred
// three times.
func (b *Board) IsThreefoldRepetition() bool {
	return b.positionCounter().Count(b.Signature()) >= 3
}

// IsFiftyMoveDraw reports whether 100 half-moves have passed without a pawn
// move or capture.
func (b *Board) IsFiftyMoveDraw() bool {
	return b.halfmoveClock() >= 100
}

// IsSeventyFiveMoveDraw reports whether 150 half-moves have passed without
// a pawn move or capture.
func (b *Board) IsSeventyFiveMoveDraw() bool {
	return b.halfmoveClock() >= 150
}

// positionCounter counts the signature of the start position and of every
// position reached since.
func (b *Board) positionCounter() *hashing.PositionCounter {
	counter := hashing.NewPositionCounter()
	counter.Add(signatureOf(b.startFEN))
	for _, e := range b.history {
		counter.Add(signatureOf(e.FEN))
	}
	return counter
}

// signatureOf keeps the first four fields of a FEN string.
func signatureOf(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}

// IsDeadPosition reports whether neither side has mating material:
// - K vs K
// - K+B vs K
// - K+N vs K
// - any number of bishops, all on squares of one colour
func (b *Board) IsDeadPosition() bool {
	var minors []Piece
	for _, p := range b.pieces {
		switch p.Kind {
		case chess.King:
		case chess.Bishop, chess.Knight:
			minors = append(minors, p)
		default:
			return false
		}
	}

	if len(minors) <= 1 {
		return true
	}
	light := minors[0].Square.IsLight()
	for _, p := range minors {
		if p.Kind != chess.Bishop || p.Square.IsLight() != light {
			return false
		}
	}
	return true
}

// HasMaterialOdds reports whether the game started from a position whose
// material differs between the sides.
func (b *Board) HasMaterialOdds() bool {
	start, err := NewBoardFromFEN(b.startFEN, WithConfig(b.cfg), WithVariant(b.variant))
	if err != nil {
		return false
	}
	var count [2][chess.King + 1]int
	for _, p := range start.pieces {
		count[p.Colour][p.Kind]++
	}
	return count[chess.White] != count[chess.Black]
}
