package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Undo takes back the most recent move and returns its history entry, or
// nil when there is nothing to undo.
func (b *Board) Undo() *HistoryEntry {
	if len(b.history) == 0 {
		return nil
	}
	e := b.unmake()
	b.cfg.Logf(2, "%s: undo %s", e.Piece.Colour, e.SAN)
	return &e
}

// unmake reverses the last history entry. The history must not be empty.
func (b *Board) unmake() HistoryEntry {
	e := b.history[len(b.history)-1]
	mover := e.Piece

	delete(b.pieces, e.To)
	if e.CastledRook != nil {
		rule := b.variant.Castling.Rule(mover.Colour, e.Move.CastleSide())
		delete(b.pieces, rule.RookTo)
		b.place(chess.Rook, mover.Colour, e.CastledRook.Square, e.CastledRook.RookType)
	}

	// The pre-move piece is rebuilt, so a promoted piece goes back to a pawn.
	b.place(mover.Kind, mover.Colour, mover.Square, mover.RookType)
	if e.Captured != nil {
		b.place(e.Captured.Kind, e.Captured.Colour, e.Captured.Square, e.Captured.RookType)
	}

	b.castling = e.CastlingBefore
	b.turn = mover.Colour
	b.history = b.history[:len(b.history)-1]
	b.refresh()
	return e
}
