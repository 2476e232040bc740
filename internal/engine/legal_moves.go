package engine

import (
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// LegalMoves returns the SAN of every legal move for the side to move,
// sorted. Each token carries its disambiguation and check suffix and can be
// fed straight back to Play.
func (b *Board) LegalMoves() []string {
	var sans []string
	for _, sq := range b.used[b.turn] {
		p := b.pieces[sq]
		for _, m := range b.pseudoMoves(p) {
			if !b.isLegal(p, m) {
				continue
			}
			clone := b.Clone()
			clone.commit(p, m, b.disambiguation(p, m))
			sans = append(sans, clone.history[len(clone.history)-1].SAN)
		}
	}
	sort.Strings(sans)
	return sans
}

// LegalSquares returns the squares the piece on sq can legally move to, in
// board order. Castling is reported as the king's destination. The result is
// empty for an empty square or a piece whose side is not to move.
func (b *Board) LegalSquares(sq chess.Square) []chess.Square {
	p, ok := b.pieces[sq]
	if !ok || p.Colour != b.turn {
		return nil
	}

	seen := make(map[chess.Square]bool)
	for _, m := range b.pseudoMoves(p) {
		if !b.isLegal(p, m) {
			continue
		}
		if m.IsCastle() {
			seen[b.variant.Castling.Rule(p.Colour, m.CastleSide()).KingTo] = true
		} else {
			seen[m.To] = true
		}
	}

	var squares []chess.Square
	for _, s := range b.geometry.Squares() {
		if seen[s] {
			squares = append(squares, s)
		}
	}
	return squares
}

// hasLegalMove reports whether the side to move can make any move.
func (b *Board) hasLegalMove() bool {
	for _, sq := range b.used[b.turn] {
		p := b.pieces[sq]
		for _, m := range b.pseudoMoves(p) {
			if b.isLegal(p, m) {
				return true
			}
		}
	}
	return false
}

// isLegal checks a move produced by pseudoMoves.
func (b *Board) isLegal(p Piece, m chess.Move) bool {
	if m.IsCastle() {
		return b.canCastle(p.Colour, m.CastleSide())
	}
	return b.leavesKingSafe(p, m)
}

// pseudoMoves lists the moves of p allowed by occupancy alone, one per
// promotion piece on the last rank, plus castling for a king.
func (b *Board) pseudoMoves(p Piece) []chess.Move {
	var moves []chess.Move
	for _, to := range p.MoveSquares(b) {
		m := chess.Move{
			Class:       chess.PieceMove,
			Colour:      p.Colour,
			PieceToMove: p.Kind,
			To:          to,
		}
		_, m.Capture = b.pieces[to]

		if p.Kind != chess.Pawn {
			m.Disambiguation = p.Square.String()
			m.Text = notation.Encode(m)
			moves = append(moves, m)
			continue
		}

		m.Class = chess.PawnMove
		if to.File != p.Square.File {
			m.Capture = true
			m.Disambiguation = string(p.Square.FileLetter())
		}
		if to.Rank != b.geometry.LastRank(p.Colour) {
			m.Text = notation.Encode(m)
			moves = append(moves, m)
			continue
		}
		for _, promo := range chess.PromotionPieces {
			pm := m
			pm.Class = chess.PawnMoveWithPromotion
			pm.PromotedPiece = promo
			pm.Text = notation.Encode(pm)
			moves = append(moves, pm)
		}
	}

	if p.Kind == chess.King {
		for _, side := range []chess.CastleSide{chess.Short, chess.Long} {
			if !b.castling.Has(p.Colour, side) || b.variant.Castling.Rule(p.Colour, side).KingFrom != p.Square {
				continue
			}
			m := chess.Move{Class: chess.KingsideCastle, Colour: p.Colour, PieceToMove: chess.King}
			if side == chess.Long {
				m.Class = chess.QueensideCastle
			}
			m.Text = notation.Encode(m)
			moves = append(moves, m)
		}
	}
	return moves
}
