package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// Play decodes a PGN-like token for colour and commits it if legal.
// An illegal move returns false with a nil error and leaves the board
// untouched; only a malformed token returns an error.
func (b *Board) Play(colour chess.Colour, token string) (bool, error) {
	move, err := notation.DecodeMove(token, colour, b.geometry)
	if err != nil {
		b.cfg.Logf(2, "%s: %v", colour, err)
		return false, err
	}
	if !b.playMove(move) {
		b.cfg.Logf(2, "%s: illegal move %q in %s", colour, token, b.ToFEN())
		return false, nil
	}
	return true, nil
}

// PlayLAN commits a long-algebraic move such as "e2e4" or "e7e8q".
func (b *Board) PlayLAN(colour chess.Colour, token string) (bool, error) {
	lan, err := notation.DecodeLAN(token, b.geometry)
	if err != nil {
		b.cfg.Logf(2, "%s: %v", colour, err)
		return false, err
	}
	move, ok := b.lanToMove(colour, lan)
	if !ok {
		b.cfg.Logf(2, "%s: illegal move %q in %s", colour, token, b.ToFEN())
		return false, nil
	}
	return b.Play(colour, move.Text)
}

// lanToMove re-derives the PGN-like move for a long-algebraic token from
// the piece on the source square.
func (b *Board) lanToMove(colour chess.Colour, lan notation.LAN) (chess.Move, bool) {
	p, ok := b.pieces[lan.From]
	if !ok || p.Colour != colour {
		return chess.Move{}, false
	}

	move := chess.Move{Colour: colour, PieceToMove: p.Kind, To: lan.To}
	_, occupied := b.pieces[lan.To]

	switch p.Kind {
	case chess.King:
		for _, side := range []chess.CastleSide{chess.Short, chess.Long} {
			rule := b.variant.Castling.Rule(colour, side)
			if lan.From == rule.KingFrom && lan.To == rule.KingTo && abs(lan.To.File-lan.From.File) > 1 {
				move.Class = chess.KingsideCastle
				if side == chess.Long {
					move.Class = chess.QueensideCastle
				}
				move.To = chess.Square{}
			}
		}
		if !move.IsCastle() {
			move.Class = chess.PieceMove
			move.Disambiguation = lan.From.String()
			move.Capture = occupied
		}
	case chess.Pawn:
		move.Class = chess.PawnMove
		if abs(lan.To.File-lan.From.File) > 1 {
			return chess.Move{}, false
		}
		if lan.To.File != lan.From.File {
			move.Capture = true
			move.Disambiguation = string(lan.From.FileLetter())
		}
		lastRank := lan.To.Rank == b.geometry.LastRank(colour)
		if lastRank != (lan.Promotion != chess.Empty) {
			return chess.Move{}, false
		}
		if lastRank {
			move.Class = chess.PawnMoveWithPromotion
			move.PromotedPiece = lan.Promotion
		}
	default:
		move.Class = chess.PieceMove
		move.Disambiguation = lan.From.String()
		move.Capture = occupied
	}

	if p.Kind != chess.Pawn && lan.Promotion != chess.Empty {
		return chess.Move{}, false
	}
	move.Text = notation.Encode(move)
	return move, true
}

// playMove runs the legality algorithm and commits the move if exactly one
// piece can make it without leaving its own king attacked.
func (b *Board) playMove(m chess.Move) bool {
	if m.Colour != b.turn {
		return false
	}

	if m.IsCastle() {
		if !b.canCastle(m.Colour, m.CastleSide()) {
			return false
		}
		king, _ := b.pieces[b.variant.Castling.Rule(m.Colour, m.CastleSide()).KingFrom]
		b.commit(king, m, "")
		return true
	}

	if !b.captureConsistent(m) {
		return false
	}

	var survivors []Piece
	for _, p := range b.candidates(m) {
		if b.leavesKingSafe(p, m) {
			survivors = append(survivors, p)
		}
	}
	if len(survivors) != 1 {
		return false
	}

	p := survivors[0]
	b.commit(p, m, b.disambiguation(p, m))
	return true
}

// captureConsistent checks the capture flag against the destination.
func (b *Board) captureConsistent(m chess.Move) bool {
	target, occupied := b.pieces[m.To]
	if !m.IsCapture() {
		return !occupied
	}
	if occupied {
		return target.Colour != m.Colour
	}
	epSq, capturer, ep := b.enPassantTarget()
	return m.PieceToMove == chess.Pawn && ep && epSq == m.To && capturer == m.Colour
}

// candidates returns the pieces matching the move whose move squares
// include the destination.
func (b *Board) candidates(m chess.Move) []Piece {
	var found []Piece
	for _, sq := range b.used[m.Colour] {
		p := b.pieces[sq]
		if p.Kind != m.PieceToMove || !m.MatchesSource(sq) {
			continue
		}
		// Pawns capture sideways and push straight.
		if p.Kind == chess.Pawn && m.IsCapture() != (sq.File != m.To.File) {
			continue
		}
		if containsSquare(p.MoveSquares(b), m.To) {
			found = append(found, p)
		}
	}
	return found
}

// leavesKingSafe plays the move on a clone and reports whether the mover's
// king is free of attack afterwards.
func (b *Board) leavesKingSafe(p Piece, m chess.Move) bool {
	clone := b.Clone()
	clone.apply(p, m)
	kingSq, ok := clone.kingSquare(p.Colour)
	return ok && !clone.isAttacked(kingSq, p.Colour.Opposite())
}

// canCastle checks rights, occupancy, attacked squares and finally the
// king's safety on a clone.
func (b *Board) canCastle(c chess.Colour, side chess.CastleSide) bool {
	if !b.castling.Has(c, side) {
		return false
	}
	rule := b.variant.Castling.Rule(c, side)

	king, ok := b.pieces[rule.KingFrom]
	if !ok || king.Kind != chess.King || king.Colour != c {
		return false
	}
	rook, ok := b.pieces[rule.RookFrom]
	if !ok || rook.Kind != chess.Rook || rook.Colour != c {
		return false
	}
	for _, sq := range rule.Empty {
		if _, occupied := b.pieces[sq]; occupied {
			return false
		}
	}
	for _, sq := range rule.Safe {
		if b.isAttacked(sq, c.Opposite()) {
			return false
		}
	}

	m := chess.Move{Class: chess.KingsideCastle, Colour: c, PieceToMove: chess.King}
	if side == chess.Long {
		m.Class = chess.QueensideCastle
	}
	return b.leavesKingSafe(king, m)
}

// commit applies a move already proven legal and records its SAN and FEN.
func (b *Board) commit(p Piece, m chess.Move, disambiguation string) {
	b.apply(p, m)

	e := &b.history[len(b.history)-1]
	resolved := e.Move
	resolved.Disambiguation = disambiguation
	resolved.CheckStatus = b.checkStatus()
	resolved.Text = notation.Encode(resolved)
	e.Move = resolved
	e.SAN = resolved.Text
	e.FEN = b.ToFEN()
}

// apply mutates the board for move m made by p. It assumes the move is
// pseudo-legal and does not check the mover's king; simulations call it
// directly on clones.
func (b *Board) apply(p Piece, m chess.Move) {
	e := HistoryEntry{
		Move:           m,
		Piece:          p,
		CastlingBefore: b.castling,
		Halfmove:       b.halfmoveClock() + 1,
	}
	e.Move.Text = ""

	if m.IsCastle() {
		rule := b.variant.Castling.Rule(p.Colour, m.CastleSide())
		rook, ok := b.pieces[rule.RookFrom]
		if !ok {
			panic("engine: castling rook missing from " + rule.RookFrom.String())
		}
		delete(b.pieces, rule.KingFrom)
		delete(b.pieces, rule.RookFrom)
		b.place(chess.King, p.Colour, rule.KingTo, NoRookType)
		b.place(chess.Rook, p.Colour, rule.RookTo, rook.RookType)

		e.To = rule.KingTo
		e.CastledRook = &rook
		b.castling = b.castling.WithoutColour(p.Colour)
	} else {
		from := p.Square
		e.To = m.To
		e.Move.Disambiguation = ""

		captureSq := m.To
		if _, occupied := b.pieces[m.To]; !occupied && p.Kind == chess.Pawn && from.File != m.To.File {
			captureSq = chess.Square{File: m.To.File, Rank: from.Rank}
			e.EnPassant = true
		}
		if captured, ok := b.pieces[captureSq]; ok {
			e.Captured = &captured
			e.Move.Capture = true
			delete(b.pieces, captureSq)
		}

		delete(b.pieces, from)
		switch {
		case m.PromotedPiece != chess.Empty:
			rookType := NoRookType
			if m.PromotedPiece == chess.Rook {
				rookType = PromotedRook
			}
			b.place(m.PromotedPiece, p.Colour, m.To, rookType)
		default:
			b.place(p.Kind, p.Colour, m.To, p.RookType)
		}

		if p.Kind == chess.Pawn || e.Captured != nil {
			e.Halfmove = 0
		}
		b.castling = b.updateCastlingRights(p, e.Captured)
	}

	b.history = append(b.history, e)
	b.turn = p.Colour.Opposite()
	b.refresh()
}

// updateCastlingRights returns the rights after p moves and, optionally,
// captures captured.
func (b *Board) updateCastlingRights(p Piece, captured *Piece) chess.CastlingRights {
	rights := b.castling
	rules := &b.variant.Castling

	switch p.Kind {
	case chess.King:
		rights = rights.WithoutColour(p.Colour)
	case chess.Rook:
		for _, side := range []chess.CastleSide{chess.Short, chess.Long} {
			if rules.Rule(p.Colour, side).RookFrom == p.Square {
				rights = rights.Without(p.Colour, side)
			}
		}
	}

	if captured != nil && captured.Kind == chess.Rook {
		for _, side := range []chess.CastleSide{chess.Short, chess.Long} {
			if rules.Rule(captured.Colour, side).RookFrom == captured.Square {
				rights = rights.Without(captured.Colour, side)
			}
		}
	}
	return rights
}

// disambiguation returns the shortest source hint that singles p out among
// the pieces able to make the same move legally.
func (b *Board) disambiguation(p Piece, m chess.Move) string {
	if p.Kind == chess.Pawn {
		if p.Square.File != m.To.File {
			return string(p.Square.FileLetter())
		}
		return ""
	}
	if p.Kind == chess.King {
		return ""
	}

	var rivals []Piece
	for _, sq := range b.used[p.Colour] {
		other := b.pieces[sq]
		if sq == p.Square || other.Kind != p.Kind {
			continue
		}
		if containsSquare(other.MoveSquares(b), m.To) && b.leavesKingSafe(other, m) {
			rivals = append(rivals, other)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, r := range rivals {
		sameFile = sameFile || r.Square.File == p.Square.File
		sameRank = sameRank || r.Square.Rank == p.Square.Rank
	}
	switch {
	case !sameFile:
		return string(p.Square.FileLetter())
	case !sameRank:
		return p.Square.String()[1:]
	}
	return p.Square.String()
}

func containsSquare(sqs []chess.Square, sq chess.Square) bool {
	for _, s := range sqs {
		if s == sq {
			return true
		}
	}
	return false
}
