package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// MoveSquares returns the squares the piece can move to under the current
// occupancy, without regard to the safety of its own king.
func (p Piece) MoveSquares(b *Board) []chess.Square {
	var sqs []chess.Square

	if p.Kind == chess.Pawn {
		for _, ray := range p.rays {
			for _, sq := range ray {
				if _, occupied := b.pieces[sq]; occupied {
					break // No jumping over a blocker
				}
				sqs = append(sqs, sq)
			}
		}
		epSq, capturer, ep := b.enPassantTarget()
		for _, sq := range p.captures {
			if target, ok := b.pieces[sq]; ok && target.Colour != p.Colour {
				sqs = append(sqs, sq)
			} else if ep && sq == epSq && capturer == p.Colour {
				sqs = append(sqs, sq)
			}
		}
		return sqs
	}

	for _, ray := range p.rays {
		for _, sq := range ray {
			target, occupied := b.pieces[sq]
			if !occupied {
				sqs = append(sqs, sq)
				continue
			}
			if target.Colour != p.Colour {
				sqs = append(sqs, sq)
			}
			break // Blocked
		}
	}
	return sqs
}

// DefendedSquares returns the squares holding pieces of the same colour
// that this piece protects.
func (p Piece) DefendedSquares(b *Board) []chess.Square {
	var sqs []chess.Square

	if p.Kind == chess.Pawn {
		for _, sq := range p.captures {
			if target, ok := b.pieces[sq]; ok && target.Colour == p.Colour {
				sqs = append(sqs, sq)
			}
		}
		return sqs
	}

	for _, ray := range p.rays {
		for _, sq := range ray {
			target, occupied := b.pieces[sq]
			if !occupied {
				continue
			}
			if target.Colour == p.Colour {
				sqs = append(sqs, sq)
			}
			break
		}
	}
	return sqs
}

// AttackSquares returns the squares the piece exerts pressure on. Pawns
// press only their diagonals, whatever stands there.
func (p Piece) AttackSquares(b *Board) []chess.Square {
	if p.Kind == chess.Pawn {
		return p.captures
	}
	return p.MoveSquares(b)
}

// Attacking returns the opposing pieces this piece could capture.
func (p Piece) Attacking(b *Board) []Piece {
	var pieces []Piece
	for _, sq := range p.MoveSquares(b) {
		if target, ok := b.pieces[sq]; ok && target.Colour != p.Colour {
			pieces = append(pieces, target)
		}
	}
	return pieces
}

// Defending returns the friendly pieces this piece protects.
func (p Piece) Defending(b *Board) []Piece {
	var pieces []Piece
	for _, sq := range p.DefendedSquares(b) {
		pieces = append(pieces, b.pieces[sq])
	}
	return pieces
}

// IsPinned reports whether lifting the piece off the board would expose
// its own king to an additional attacker.
func (p Piece) IsPinned(b *Board) bool {
	if p.Kind == chess.King {
		return false
	}
	before := len(b.checkingPieces(p.Colour))

	clone := b.Clone()
	delete(clone.pieces, p.Square)
	clone.refresh()

	return len(clone.checkingPieces(p.Colour)) > before
}
