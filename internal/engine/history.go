package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// HistoryEntry is one committed move together with what undo needs to
// reverse it.
type HistoryEntry struct {
	// The move as resolved by the board.
	Move chess.Move

	// The moving piece as it stood before the move. For castling, the king.
	Piece Piece

	// Destination of the moving piece. For castling, the king's destination.
	To chess.Square

	// The captured piece, if any.
	Captured *Piece

	// The rook as it stood before castling.
	CastledRook *Piece

	// Whether the capture was en passant.
	EnPassant bool

	// Castling rights before the move.
	CastlingBefore chess.CastlingRights

	// Half-move clock after the move.
	Halfmove int

	// SAN of the move, disambiguated and with the engine's check suffix.
	SAN string

	// FEN of the position after the move.
	FEN string
}

// From returns the square the moving piece left.
func (e HistoryEntry) From() chess.Square {
	return e.Piece.Square
}

// LAN returns the move in long-algebraic form.
func (e HistoryEntry) LAN() string {
	s := e.From().String() + e.To.String()
	if e.Move.PromotedPiece != chess.Empty {
		s += strings.ToLower(string(e.Move.PromotedPiece.Letter()))
	}
	return s
}

// History returns a copy of the committed moves, oldest first.
func (b *Board) History() []HistoryEntry {
	return append([]HistoryEntry(nil), b.history...)
}

// LastMove returns the most recent history entry.
func (b *Board) LastMove() (HistoryEntry, bool) {
	if len(b.history) == 0 {
		return HistoryEntry{}, false
	}
	return b.history[len(b.history)-1], true
}

// Captures returns the pieces captured by colour c, in the order taken.
func (b *Board) Captures(c chess.Colour) []Piece {
	var captured []Piece
	for _, e := range b.history {
		if e.Captured != nil && e.Piece.Colour == c {
			captured = append(captured, *e.Captured)
		}
	}
	return captured
}

// StartFEN returns the FEN of the position the history starts from.
func (b *Board) StartFEN() string {
	return b.startFEN
}

// Movetext returns the numbered move list, e.g. "1.e4 e5 2.Nf3". A history
// starting with Black opens with "1...".
func (b *Board) Movetext() string {
	var sb strings.Builder
	number := b.startFullmove
	colour := b.startTurn

	for i, e := range b.history {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case colour == chess.White:
			sb.WriteString(strconv.Itoa(number))
			sb.WriteByte('.')
		case i == 0:
			sb.WriteString(strconv.Itoa(number))
			sb.WriteString("...")
		}
		sb.WriteString(e.SAN)

		if colour == chess.Black {
			number++
		}
		colour = colour.Opposite()
	}
	return sb.String()
}
