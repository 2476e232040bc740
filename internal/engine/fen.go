package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// NewBoardFromFEN creates a board from a FEN string. The placement, side to
// move, castling and en passant fields are required; the clocks default to
// 0 and 1.
func NewBoardFromFEN(fen string, opts ...Option) (*Board, error) {
	b, err := newBoard(opts)
	if err != nil {
		return nil, err
	}
	if err := b.loadFEN(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// loadFEN replaces the whole board state with the position described by fen.
func (b *Board) loadFEN(fen string) error {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return fmt.Errorf("%d fields in %q: %w", len(parts), fen, errors.ErrInvalidFEN)
	}

	pieces, err := b.parsePlacement(parts[0])
	if err != nil {
		return err
	}

	turn, err := chess.ParseColour(parts[1])
	if err != nil {
		return fenError("side to move", parts[1], err)
	}

	rights, err := chess.ParseCastlingRights(parts[2])
	if err != nil {
		return fenError("castling", parts[2], err)
	}

	ep, err := b.parseEnPassant(parts[3], turn, pieces)
	if err != nil {
		return err
	}

	halfmove, fullmove := 0, 1
	if len(parts) >= 5 {
		if halfmove, err = parseClock(parts[4], 0); err != nil {
			return fenError("halfmove clock", parts[4], err)
		}
	}
	if len(parts) == 6 {
		if fullmove, err = parseClock(parts[5], 1); err != nil {
			return fenError("fullmove number", parts[5], err)
		}
	}

	b.pieces = pieces
	b.turn = turn
	b.castling = b.usableRights(rights)
	b.history = nil
	b.startTurn = turn
	b.startEnPassant = ep
	b.startHalfmove = halfmove
	b.startFullmove = fullmove
	b.refresh()
	b.startFEN = b.ToFEN()

	if b.castling != rights {
		b.cfg.Logf(2, "castling rights %s reduced to %s: king or rook not at home", rights, b.castling)
	}
	return nil
}

// parsePlacement decodes the piece placement field, top rank first.
func (b *Board) parsePlacement(field string) (map[chess.Square]Piece, error) {
	g := b.geometry
	rows := strings.Split(field, "/")
	if len(rows) != g.Ranks {
		return nil, fenError("placement", field, fmt.Errorf("%d ranks, want %d: %w", len(rows), g.Ranks, errors.ErrInvalidFEN))
	}

	pieces := make(map[chess.Square]Piece)
	kings := [2]int{}
	for i, row := range rows {
		rank := g.Ranks - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c == '0' {
				return nil, fenError("placement", field, fmt.Errorf("run starting with 0 in rank %d: %w", rank+1, errors.ErrInvalidFEN))
			}
			if c >= '1' && c <= '9' {
				k := j
				for k < len(row) && row[k] >= '0' && row[k] <= '9' {
					k++
				}
				run, _ := strconv.Atoi(row[j:k])
				file += run
				j = k - 1
				continue
			}

			kind := chess.PieceFromLetter(c)
			if kind == chess.Empty {
				return nil, fenError("placement", field, fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN))
			}
			if file >= g.Files {
				return nil, fenError("placement", field, fmt.Errorf("rank %d wider than %d files: %w", rank+1, g.Files, errors.ErrInvalidFEN))
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			sq := chess.Square{File: file, Rank: rank}
			if kind == chess.Pawn && (rank == 0 || rank == g.Ranks-1) {
				return nil, fenError("placement", field, fmt.Errorf("pawn on %s: %w", sq, errors.ErrInvalidFEN))
			}
			if kind == chess.King {
				kings[colour]++
			}
			pieces[sq] = newPiece(kind, colour, sq, b.variant.Castling.RookType(colour, sq), g)
			file++
		}
		if file != g.Files {
			return nil, fenError("placement", field, fmt.Errorf("rank %d spans %d files, want %d: %w", rank+1, file, g.Files, errors.ErrInvalidFEN))
		}
	}

	for _, c := range chess.Colours {
		if kings[c] != 1 {
			return nil, fenError("placement", field, fmt.Errorf("%d %s kings: %w", kings[c], c, errors.ErrInvalidFEN))
		}
	}
	return pieces, nil
}

// parseEnPassant decodes the en passant field. The square must lie behind a
// pawn of the side that just moved and be empty.
func (b *Board) parseEnPassant(field string, turn chess.Colour, pieces map[chess.Square]Piece) (*chess.Square, error) {
	if field == "-" {
		return nil, nil
	}
	sq, err := chess.ParseSquare(field, b.geometry)
	if err != nil {
		return nil, fenError("en passant", field, fmt.Errorf("%w: %w", errors.ErrInvalidFEN, err))
	}

	mover := turn.Opposite()
	dir := 1
	if mover == chess.Black {
		dir = -1
	}
	if sq.Rank != b.geometry.PawnRank(mover)+dir {
		return nil, fenError("en passant", field, fmt.Errorf("wrong rank for %s to move: %w", turn, errors.ErrInvalidFEN))
	}
	if _, occupied := pieces[sq]; occupied {
		return nil, fenError("en passant", field, fmt.Errorf("square occupied: %w", errors.ErrInvalidFEN))
	}
	if pawn, ok := pieces[sq.Offset(0, dir)]; !ok || pawn.Kind != chess.Pawn || pawn.Colour != mover {
		return nil, fenError("en passant", field, fmt.Errorf("no %s pawn in front: %w", mover, errors.ErrInvalidFEN))
	}
	return &sq, nil
}

// usableRights drops rights whose king or rook is not on its home square.
func (b *Board) usableRights(rights chess.CastlingRights) chess.CastlingRights {
	for _, c := range chess.Colours {
		for _, side := range []chess.CastleSide{chess.Short, chess.Long} {
			if !rights.Has(c, side) {
				continue
			}
			rule := b.variant.Castling.Rule(c, side)
			king, kingOK := b.pieces[rule.KingFrom]
			rook, rookOK := b.pieces[rule.RookFrom]
			if !kingOK || king.Kind != chess.King || king.Colour != c ||
				!rookOK || rook.Kind != chess.Rook || rook.Colour != c {
				rights = rights.Without(c, side)
			}
		}
	}
	return rights
}

// parseClock decodes a counter no smaller than least.
func parseClock(field string, least int) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil || n < least {
		return 0, fmt.Errorf("want an integer >= %d: %w", least, errors.ErrInvalidFEN)
	}
	return n, nil
}

func fenError(field, value string, err error) error {
	return &errors.FENError{Err: err, Field: field, Value: value}
}

// ToFEN renders the current position with all six fields.
func (b *Board) ToFEN() string {
	return fmt.Sprintf("%s %d %d", b.Signature(), b.halfmoveClock(), b.fullmoveNumber())
}

// Signature renders the first four FEN fields: placement, side to move,
// castling rights and en passant square. Two positions with the same
// signature count as a repetition.
func (b *Board) Signature() string {
	var sb strings.Builder

	b.writePlacement(&sb)
	sb.WriteByte(' ')
	sb.WriteByte(b.turn.Letter())
	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')
	if sq, _, ok := b.enPassantTarget(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
	return sb.String()
}

// writePlacement writes the piece placement field, top rank first.
func (b *Board) writePlacement(sb *strings.Builder) {
	g := b.geometry
	for rank := g.Ranks - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < g.Files; file++ {
			p, ok := b.pieces[chess.Square{File: file, Rank: rank}]
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Kind.ColouredLetter(p.Colour))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
