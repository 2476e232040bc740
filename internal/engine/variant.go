package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Variant bundles the geometry, start position and castling table of a rule set.
type Variant struct {
	Name     string
	Geometry chess.Geometry
	StartFEN string
	Castling CastlingRules
}

// Classical returns the standard chess variant.
func Classical() *Variant {
	return &Variant{
		Name:     "classical",
		Geometry: chess.Standard,
		StartFEN: InitialFEN,
		Castling: NewCastlingRules(chess.Standard, 4, 7, 0),
	}
}

// variants maps names to constructors.
var variants = map[string]func() *Variant{
	"classical": Classical,
	"standard":  Classical,
}

// NewVariant returns the variant registered under name.
func NewVariant(name string) (*Variant, error) {
	ctor, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, errors.ErrUnknownVariant)
	}
	return ctor(), nil
}
