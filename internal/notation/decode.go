// Package notation decodes move tokens into structured moves and renders
// resolved moves back into SAN.
package notation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var (
	// Nbd2, R1e1, Qh4xe1, Kxf2
	pieceRegex = regexp.MustCompile(`^([KQRBN])([a-z]??[0-9]*?)(x?)([a-z][0-9]+)$`)
	// e4, exd5, ed5, e8=Q, exf8Q
	pawnRegex = regexp.MustCompile(`^(?:([a-z])x?)?([a-z][0-9]+)(?:=?([QRBN]))?$`)
	// e2e4, e7e8q
	lanRegex = regexp.MustCompile(`^([a-z][0-9]+)([a-z][0-9]+)([qrbnQRBN]?)$`)
)

// DecodeMove parses a PGN-like token for the given side into a Move.
// The result may match several pieces; the board resolves which one moves.
func DecodeMove(token string, colour chess.Colour, g chess.Geometry) (chess.Move, error) {
	move := chess.Move{Text: token, Colour: colour}
	body, status := stripCheck(token)
	move.CheckStatus = status

	if class, ok := castlingClass(body); ok {
		move.Class = class
		move.PieceToMove = chess.King
		return move, nil
	}

	if m := pieceRegex.FindStringSubmatch(body); m != nil {
		to, err := chess.ParseSquare(m[4], g)
		if err != nil {
			return chess.Move{}, notationError(token, "a destination square", err)
		}
		if err := checkDisambiguation(m[2], g); err != nil {
			return chess.Move{}, notationError(token, "a source file or rank", err)
		}
		move.Class = chess.PieceMove
		move.PieceToMove = chess.PieceFromLetter(m[1][0])
		move.Disambiguation = m[2]
		move.Capture = m[3] != ""
		move.To = to
		return move, nil
	}

	if m := pawnRegex.FindStringSubmatch(body); m != nil {
		to, err := chess.ParseSquare(m[2], g)
		if err != nil {
			return chess.Move{}, notationError(token, "a destination square", err)
		}
		move.Class = chess.PawnMove
		move.PieceToMove = chess.Pawn
		move.To = to
		if m[1] != "" {
			if err := checkDisambiguation(m[1], g); err != nil {
				return chess.Move{}, notationError(token, "a source file", err)
			}
			if d := int(m[1][0]-'a') - to.File; d != 1 && d != -1 {
				return chess.Move{}, notationError(token, "a capture onto an adjacent file", nil)
			}
			move.Disambiguation = m[1]
			move.Capture = true
		}
		lastRank := to.Rank == g.LastRank(colour)
		switch {
		case m[3] != "" && !lastRank:
			return chess.Move{}, notationError(token, "promotion only on the last rank", nil)
		case m[3] == "" && lastRank:
			return chess.Move{}, notationError(token, "a promotion piece", nil)
		case m[3] != "":
			move.Class = chess.PawnMoveWithPromotion
			move.PromotedPiece = chess.PieceFromLetter(m[3][0])
		}
		return move, nil
	}

	return chess.Move{}, notationError(token, "a piece move, pawn move or castling", nil)
}

// LAN is a decoded long-algebraic token.
type LAN struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.Piece // Empty when no promotion letter was given
}

// String renders the token in lowercase long-algebraic form.
func (l LAN) String() string {
	s := l.From.String() + l.To.String()
	if l.Promotion != chess.Empty {
		s += strings.ToLower(string(l.Promotion.Letter()))
	}
	return s
}

// DecodeLAN parses a long-algebraic token such as "e2e4" or "e7e8q".
func DecodeLAN(token string, g chess.Geometry) (LAN, error) {
	m := lanRegex.FindStringSubmatch(token)
	if m == nil {
		return LAN{}, notationError(token, "<from><to><promotion>?", nil)
	}
	from, err := chess.ParseSquare(m[1], g)
	if err != nil {
		return LAN{}, notationError(token, "a source square", err)
	}
	to, err := chess.ParseSquare(m[2], g)
	if err != nil {
		return LAN{}, notationError(token, "a destination square", err)
	}
	if from == to {
		return LAN{}, notationError(token, "distinct squares", nil)
	}
	lan := LAN{From: from, To: to}
	if m[3] != "" {
		lan.Promotion = chess.PieceFromLetter(m[3][0])
	}
	return lan, nil
}

// stripCheck removes a single trailing check or mate indicator.
func stripCheck(token string) (string, chess.CheckStatus) {
	switch {
	case strings.HasSuffix(token, "#"):
		return token[:len(token)-1], chess.Checkmate
	case strings.HasSuffix(token, "+"):
		return token[:len(token)-1], chess.Check
	}
	return token, chess.NoCheck
}

// castlingClass recognises O-O and O-O-O, also written with zeros.
func castlingClass(body string) (chess.MoveClass, bool) {
	switch strings.ReplaceAll(body, "0", "O") {
	case chess.CastleShort:
		return chess.KingsideCastle, true
	case chess.CastleLong:
		return chess.QueensideCastle, true
	}
	return 0, false
}

// checkDisambiguation verifies the file and rank parts lie on the board.
func checkDisambiguation(dis string, g chess.Geometry) error {
	if dis == "" {
		return nil
	}
	file := strings.TrimRight(dis, "0123456789")
	if file != "" && int(file[0]-'a') >= g.Files {
		return fmt.Errorf("file %q: %w", file, errors.ErrInvalidSquare)
	}
	if rank := dis[len(file):]; rank != "" {
		probe := "a" + rank
		if _, err := chess.ParseSquare(probe, g); err != nil {
			return fmt.Errorf("rank %q: %w", rank, errors.ErrInvalidSquare)
		}
	}
	return nil
}

func notationError(token, expected string, cause error) error {
	err := errors.ErrUnknownNotation
	if cause != nil {
		err = fmt.Errorf("%w: %w", errors.ErrUnknownNotation, cause)
	}
	return &errors.NotationError{Err: err, Token: token, Expected: expected}
}
