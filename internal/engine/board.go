// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board is the state of one game: the pieces, whose turn it is, castling
// rights and the history of committed moves. A Board is not safe for
// concurrent use.
type Board struct {
	cfg      *config.Config
	variant  *Variant
	geometry chess.Geometry

	// One piece per occupied square.
	pieces   map[chess.Square]Piece
	turn     chess.Colour
	castling chess.CastlingRights
	history  []HistoryEntry

	// Position the history starts from.
	startFEN       string
	startTurn      chess.Colour
	startEnPassant *chess.Square
	startHalfmove  int
	startFullmove  int

	// Caches rebuilt by refresh after every mutation.
	free     []chess.Square
	used     [2][]chess.Square
	pressure [2][]chess.Square
	attacked [2]map[chess.Square]bool
}

// Option configures a Board.
type Option func(*Board)

// WithConfig sets the configuration used for logging and variant lookup.
func WithConfig(cfg *config.Config) Option {
	return func(b *Board) {
		if cfg != nil {
			b.cfg = cfg
		}
	}
}

// WithVariant sets the variant directly, overriding the configured name.
func WithVariant(v *Variant) Option {
	return func(b *Board) {
		if v != nil {
			b.variant = v
		}
	}
}

// NewBoard creates a board holding the variant's starting position.
func NewBoard(opts ...Option) (*Board, error) {
	b, err := newBoard(opts)
	if err != nil {
		return nil, err
	}
	if err := b.loadFEN(b.variant.StartFEN); err != nil {
		return nil, errors.Wrapf(err, "%s start position", b.variant.Name)
	}
	return b, nil
}

// newBoard applies options and resolves the variant.
func newBoard(opts []Option) (*Board, error) {
	b := &Board{cfg: config.NewConfig()}
	for _, opt := range opts {
		opt(b)
	}
	if b.variant == nil {
		if err := b.cfg.Validate(); err != nil {
			return nil, errors.Wrap(err, "board config")
		}
		v, err := NewVariant(b.cfg.Variant)
		if err != nil {
			return nil, err
		}
		b.variant = v
	}
	b.geometry = b.variant.Geometry
	return b, nil
}

// Clone returns a fully independent copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	clone.pieces = make(map[chess.Square]Piece, len(b.pieces))
	for sq, p := range b.pieces {
		clone.pieces[sq] = p
	}
	clone.history = make([]HistoryEntry, len(b.history))
	copy(clone.history, b.history)
	clone.refresh()
	return &clone
}

// refresh recomputes the free, used and attacked square caches.
func (b *Board) refresh() {
	b.free = b.free[:0:0]
	b.used = [2][]chess.Square{}
	b.pressure = [2][]chess.Square{}
	b.attacked = [2]map[chess.Square]bool{{}, {}}

	squares := b.geometry.Squares()
	for _, sq := range squares {
		if p, ok := b.pieces[sq]; ok {
			b.used[p.Colour] = append(b.used[p.Colour], sq)
		} else {
			b.free = append(b.free, sq)
		}
	}
	for _, sq := range squares {
		p, ok := b.pieces[sq]
		if !ok {
			continue
		}
		for _, target := range p.AttackSquares(b) {
			b.attacked[p.Colour][target] = true
		}
	}
	for _, sq := range squares {
		for _, c := range chess.Colours {
			if b.attacked[c][sq] {
				b.pressure[c] = append(b.pressure[c], sq)
			}
		}
	}
}

// place puts a freshly constructed piece on sq.
func (b *Board) place(kind chess.Piece, colour chess.Colour, sq chess.Square, rookType RookType) {
	b.pieces[sq] = newPiece(kind, colour, sq, rookType, b.geometry)
}

// Turn returns the side to move.
func (b *Board) Turn() chess.Colour {
	return b.turn
}

// CastlingRights returns the castling rights still held.
func (b *Board) CastlingRights() chess.CastlingRights {
	return b.castling
}

// Geometry returns the board dimensions.
func (b *Board) Geometry() chess.Geometry {
	return b.geometry
}

// Variant returns the rule set the board plays.
func (b *Board) Variant() *Variant {
	return b.variant
}

// Pieces returns every piece on the board, ordered a1, b1, ... by square.
func (b *Board) Pieces() []Piece {
	var pieces []Piece
	for _, sq := range b.geometry.Squares() {
		if p, ok := b.pieces[sq]; ok {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// PiecesOf returns the pieces of one colour, ordered by square.
func (b *Board) PiecesOf(c chess.Colour) []Piece {
	var pieces []Piece
	for _, sq := range b.used[c] {
		pieces = append(pieces, b.pieces[sq])
	}
	return pieces
}

// PieceBySq returns the piece standing on sq.
func (b *Board) PieceBySq(sq chess.Square) (Piece, bool) {
	p, ok := b.pieces[sq]
	return p, ok
}

// Piece returns the first piece of colour c and the given kind.
func (b *Board) Piece(c chess.Colour, kind chess.Piece) (Piece, bool) {
	for _, sq := range b.used[c] {
		if p := b.pieces[sq]; p.Kind == kind {
			return p, true
		}
	}
	return Piece{}, false
}

// SqCount summarises square occupancy.
type SqCount struct {
	Free []chess.Square
	Used [2][]chess.Square // indexed by colour
}

// SqCount returns a copy of the free and used square sets.
func (b *Board) SqCount() SqCount {
	count := SqCount{Free: append([]chess.Square(nil), b.free...)}
	for _, c := range chess.Colours {
		count.Used[c] = append([]chess.Square(nil), b.used[c]...)
	}
	return count
}

// Attacked returns the squares colour c exerts pressure on, ordered by square.
func (b *Board) Attacked(c chess.Colour) []chess.Square {
	return append([]chess.Square(nil), b.pressure[c]...)
}

// isAttacked reports whether sq is under pressure from colour by.
func (b *Board) isAttacked(sq chess.Square, by chess.Colour) bool {
	return b.attacked[by][sq]
}

// kingSquare returns where the king of colour c stands.
func (b *Board) kingSquare(c chess.Colour) (chess.Square, bool) {
	king, ok := b.Piece(c, chess.King)
	return king.Square, ok
}

// enPassantTarget returns the square a pawn may capture onto en passant and
// the colour allowed to make that capture. Only the most recent move, or the
// FEN field before any move, can open the window.
func (b *Board) enPassantTarget() (chess.Square, chess.Colour, bool) {
	if len(b.history) == 0 {
		if b.startEnPassant == nil {
			return chess.Square{}, chess.White, false
		}
		return *b.startEnPassant, b.turn, true
	}

	last := b.history[len(b.history)-1]
	from, to := last.From(), last.To
	if last.Piece.Kind != chess.Pawn || abs(to.Rank-from.Rank) != 2 {
		return chess.Square{}, chess.White, false
	}
	passed := chess.Square{File: from.File, Rank: (from.Rank + to.Rank) / 2}
	return passed, last.Piece.Colour.Opposite(), true
}

// halfmoveClock counts half-moves since the last capture or pawn move.
func (b *Board) halfmoveClock() int {
	if len(b.history) == 0 {
		return b.startHalfmove
	}
	return b.history[len(b.history)-1].Halfmove
}

// fullmoveNumber is the FEN move number of the current position.
func (b *Board) fullmoveNumber() int {
	plies := len(b.history)
	if b.startTurn == chess.Black {
		plies++
	}
	return b.startFullmove + plies/2
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
