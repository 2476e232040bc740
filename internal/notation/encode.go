package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Encode renders a resolved move as SAN. Disambiguation, capture and check
// status are taken from the move as given.
func Encode(m chess.Move) string {
	var sb strings.Builder

	switch m.Class {
	case chess.KingsideCastle:
		sb.WriteString(chess.CastleShort)
	case chess.QueensideCastle:
		sb.WriteString(chess.CastleLong)
	case chess.PawnMove, chess.PawnMoveWithPromotion:
		if m.IsCapture() {
			sb.WriteString(m.Disambiguation)
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.PromotedPiece.Letter())
		}
	default:
		sb.WriteByte(m.PieceToMove.Letter())
		sb.WriteString(m.Disambiguation)
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	sb.WriteString(m.CheckStatus.Suffix())
	return sb.String()
}
