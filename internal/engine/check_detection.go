package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheck reports whether the side to move has its king attacked.
func (b *Board) IsCheck() bool {
	return b.inCheck(b.turn)
}

// IsMate reports whether the side to move is checkmated.
func (b *Board) IsMate() bool {
	return b.inCheck(b.turn) && !b.hasLegalMove()
}

// IsStalemate reports whether the side to move has no legal move while not
// in check.
func (b *Board) IsStalemate() bool {
	return !b.inCheck(b.turn) && !b.hasLegalMove()
}

// inCheck reports whether colour c's king stands on a pressured square.
func (b *Board) inCheck(c chess.Colour) bool {
	kingSq, ok := b.kingSquare(c)
	return ok && b.isAttacked(kingSq, c.Opposite())
}

// checkingPieces returns the opposing pieces attacking colour c's king.
func (b *Board) checkingPieces(c chess.Colour) []Piece {
	kingSq, ok := b.kingSquare(c)
	if !ok {
		return nil
	}
	var checkers []Piece
	for _, sq := range b.used[c.Opposite()] {
		p := b.pieces[sq]
		if containsSquare(p.AttackSquares(b), kingSq) {
			checkers = append(checkers, p)
		}
	}
	return checkers
}

// checkStatus describes the position for the side to move, as rendered in
// the suffix of the move that produced it.
func (b *Board) checkStatus() chess.CheckStatus {
	switch {
	case !b.IsCheck():
		return chess.NoCheck
	case b.hasLegalMove():
		return chess.Check
	}
	return chess.Checkmate
}
