package chess

import "strings"

// Move represents a single chess move as decoded from a notation token.
// A Move may describe more than one candidate piece; the board resolves it.
type Move struct {
	// The move text as supplied (e.g., "Nf3", "exd6", "O-O").
	Text string

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// The side making the move.
	Colour Colour

	// The piece being moved.
	PieceToMove Piece

	// Partial source square: "", a file ("b"), a rank ("1") or both ("b1").
	Disambiguation string

	// Destination square. Unused for castling.
	To Square

	// Whether the token declares a capture.
	Capture bool

	// The piece promoted to (Empty if not a promotion).
	PromotedPiece Piece

	// Whether this move gives check or checkmate. Informational only.
	CheckStatus CheckStatus
}

// IsCapture returns true if this move declares a capture.
func (m *Move) IsCapture() bool {
	return m.Capture
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// CastleSide returns the castling side of a castling move.
func (m *Move) CastleSide() CastleSide {
	if m.Class == QueensideCastle {
		return Long
	}
	return Short
}

// MatchesSource reports whether sq agrees with the move's disambiguation.
func (m *Move) MatchesSource(sq Square) bool {
	if m.Disambiguation == "" {
		return true
	}
	file := strings.TrimRight(m.Disambiguation, "0123456789")
	rank := m.Disambiguation[len(file):]
	if file != "" && file != string(sq.FileLetter()) {
		return false
	}
	if rank != "" && rank != sq.String()[1:] {
		return false
	}
	return true
}
