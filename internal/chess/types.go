// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// Colours lists both colours, White first.
var Colours = [2]Colour{White, Black}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the FEN side-to-move letter.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// ParseColour converts a FEN side-to-move field to a colour.
func ParseColour(s string) (Colour, error) {
	switch s {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	}
	return White, fmt.Errorf("invalid side to move %q: %w", s, errors.ErrInvalidFEN)
}

// Piece represents a chess piece type.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// ColouredLetter returns the FEN letter of a piece: uppercase for White.
func (p Piece) ColouredLetter(c Colour) byte {
	l := p.Letter()
	if c == Black {
		l += 'a' - 'A'
	}
	return l
}

// IsSlider reports whether the piece moves along rays.
func (p Piece) IsSlider() bool {
	return p == Bishop || p == Rook || p == Queen
}

// PieceFromLetter converts a piece letter in either case to a piece type.
// Empty is returned for anything else.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return Empty
}

// PromotionPieces lists the kinds a pawn may promote to.
var PromotionPieces = []Piece{Queen, Rook, Bishop, Knight}

// CastleSide selects short (king side) or long (queen side) castling.
type CastleSide int

const (
	Short CastleSide = iota
	Long
)

// String returns the castling token for the side.
func (s CastleSide) String() string {
	if s == Short {
		return CastleShort
	}
	return CastleLong
}

// Castling tokens.
const (
	CastleShort = "O-O"
	CastleLong  = "O-O-O"
)

// CastlingRights is an immutable set of the castling moves still permitted.
type CastlingRights uint8

const (
	WhiteShort CastlingRights = 1 << iota
	WhiteLong
	BlackShort
	BlackLong

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteShort | WhiteLong | BlackShort | BlackLong
)

// CastlingRight returns the single right for a colour and side.
func CastlingRight(c Colour, side CastleSide) CastlingRights {
	r := WhiteShort
	if side == Long {
		r = WhiteLong
	}
	if c == Black {
		r <<= 2
	}
	return r
}

// Has reports whether the right for colour and side is still held.
func (r CastlingRights) Has(c Colour, side CastleSide) bool {
	return r&CastlingRight(c, side) != 0
}

// Without returns the rights with the given right removed.
func (r CastlingRights) Without(c Colour, side CastleSide) CastlingRights {
	return r &^ CastlingRight(c, side)
}

// WithoutColour returns the rights with both rights of c removed.
func (r CastlingRights) WithoutColour(c Colour) CastlingRights {
	return r.Without(c, Short).Without(c, Long)
}

// String returns the FEN castling field.
func (r CastlingRights) String() string {
	if r == NoCastling {
		return "-"
	}
	var sb strings.Builder
	if r&WhiteShort != 0 {
		sb.WriteByte('K')
	}
	if r&WhiteLong != 0 {
		sb.WriteByte('Q')
	}
	if r&BlackShort != 0 {
		sb.WriteByte('k')
	}
	if r&BlackLong != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}

// ParseCastlingRights parses a FEN castling field.
func ParseCastlingRights(s string) (CastlingRights, error) {
	if s == "-" {
		return NoCastling, nil
	}
	if s == "" {
		return NoCastling, fmt.Errorf("empty castling field: %w", errors.ErrInvalidFEN)
	}
	rights := NoCastling
	for i := 0; i < len(s); i++ {
		var r CastlingRights
		switch s[i] {
		case 'K':
			r = WhiteShort
		case 'Q':
			r = WhiteLong
		case 'k':
			r = BlackShort
		case 'q':
			r = BlackLong
		default:
			return NoCastling, fmt.Errorf("invalid castling character %q: %w", s[i], errors.ErrInvalidFEN)
		}
		if rights&r != 0 {
			return NoCastling, fmt.Errorf("repeated castling character %q: %w", s[i], errors.ErrInvalidFEN)
		}
		rights |= r
	}
	return rights, nil
}

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	PieceMove
	KingsideCastle
	QueensideCastle
)

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// Suffix returns the SAN suffix for the status.
func (s CheckStatus) Suffix() string {
	switch s {
	case Check:
		return "+"
	case Checkmate:
		return "#"
	}
	return ""
}
