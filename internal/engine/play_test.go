package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestPlay_Legality(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		token  string
		want   bool
	}{
		{"pawn single step", "", chess.White, "e3", true},
		{"pawn double step", "", chess.White, "e4", true},
		{"pawn triple step", "", chess.White, "e5", false},
		{"knight", "", chess.White, "Nf3", true},
		{"knight onto own pawn", "", chess.White, "Nd2", false},
		{"blocked bishop", "", chess.White, "Bc4", false},
		{"capture on empty square", "", chess.White, "exd3", false},
		{"king onto own piece", "", chess.White, "Ke2", false},
		{"castling through pieces", "", chess.White, "O-O", false},
		{"wrong side", "", chess.Black, "e5", false},
		{"pinned knight", "k3r3/8/8/8/8/8/4N3/4K3 w - - 0 1", chess.White, "Nc3", false},
		{"check ignored", "4r2k/8/8/8/8/8/8/R3K3 w - - 0 1", chess.White, "Ra2", false},
		{"king steps out of check", "4r2k/8/8/8/8/8/8/R3K3 w - - 0 1", chess.White, "Kd2", true},
		{"king takes defended checker", "k3r3/8/8/8/8/8/4q3/4K3 w - - 0 1", chess.White, "Kxe2", false},
		{"king walks along checking ray", "4r2k/8/8/8/8/8/8/R3K3 w - - 0 1", chess.White, "Ke2", false},
		{"ambiguous knights", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", chess.White, "Nd2", false},
		{"file disambiguation", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", chess.White, "Nbd2", true},
		{"rank disambiguation", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", chess.White, "R1a3", true},
		{"wrong disambiguation", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", chess.White, "R4a3", false},
		{"capture without x", "4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1", chess.White, "Rd5", false},
		{"capture with x", "4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1", chess.White, "Rxd5", true},
		{"pawn push onto piece", "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1", chess.White, "e3", false},
		{"double push jumping blocker", "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1", chess.White, "e4", false},
		{"pawn captures own piece", "4k3/8/8/8/8/3N4/4P3/4K3 w - - 0 1", chess.White, "exd3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, tt.fen)
			before := b.ToFEN()

			got, err := b.Play(tt.colour, tt.token)
			testutil.AssertNoError(t, err, "Play(%q)", tt.token)
			if got != tt.want {
				t.Errorf("Play(%s, %q) = %v, want %v", tt.colour, tt.token, got, tt.want)
			}
			if !got && b.ToFEN() != before {
				t.Errorf("rejected move changed the board: %q, want %q", b.ToFEN(), before)
			}
		})
	}
}

func TestPlay_MalformedToken(t *testing.T) {
	tests := []struct {
		token string
		want  error
	}{
		{"", chesserrors.ErrUnknownNotation},
		{"Zz9", chesserrors.ErrUnknownNotation},
		{"e9", chesserrors.ErrInvalidSquare},
		{"e8", chesserrors.ErrUnknownNotation},
		{"exe3", chesserrors.ErrUnknownNotation},
		{"O-O-O-O", chesserrors.ErrUnknownNotation},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			b := newTestBoard(t, "")
			ok, err := b.Play(chess.White, tt.token)
			if ok {
				t.Errorf("Play(%q) = true, want false", tt.token)
			}
			testutil.AssertErrorIs(t, err, tt.want, "Play(%q)", tt.token)

			var notationErr *chesserrors.NotationError
			if !errors.As(err, &notationErr) {
				t.Fatalf("Play(%q) error %T is not a *NotationError", tt.token, err)
			}
			if notationErr.Token != tt.token {
				t.Errorf("NotationError.Token = %q, want %q", notationErr.Token, tt.token)
			}
		})
	}
}

func TestPlay_FoolsMate(t *testing.T) {
	b := newTestBoard(t, "")
	playAll(t, b, "f3", "e5", "g4", "Qh4#")

	testutil.AssertTrue(t, b.IsCheck(), "IsCheck()")
	testutil.AssertTrue(t, b.IsMate(), "IsMate()")
	testutil.AssertFalse(t, b.IsStalemate(), "IsStalemate()")
	if got := lastSAN(t, b); got != "Qh4#" {
		t.Errorf("last SAN = %q, want Qh4#", got)
	}
	if got := b.Movetext(); got != "1.f3 e5 2.g4 Qh4#" {
		t.Errorf("Movetext() = %q", got)
	}
	testutil.AssertEqual(t, b.LegalMoves(), []string(nil), "LegalMoves() after mate")
}

func TestPlay_CheckSuffixComputed(t *testing.T) {
	b := newTestBoard(t, "")
	// Suffixes on input are informational; the engine computes its own.
	playAll(t, b, "e4+", "f5", "Qh5")
	if got := lastSAN(t, b); got != "Qh5+" {
		t.Errorf("last SAN = %q, want Qh5+", got)
	}
	if history := b.History(); history[0].SAN != "e4" {
		t.Errorf("first SAN = %q, want e4", history[0].SAN)
	}
	testutil.AssertTrue(t, b.IsCheck(), "IsCheck()")
	testutil.AssertFalse(t, b.IsMate(), "IsMate()")
}

func TestPlay_EnPassant(t *testing.T) {
	t.Run("immediately after the double step", func(t *testing.T) {
		b := newTestBoard(t, "")
		playAll(t, b, "e4", "Nc6", "e5", "d5")
		if got, want := b.ToFEN(), "r1bqkbnr/ppp1pppp/2n5/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"; got != want {
			t.Errorf("ToFEN() = %q, want %q", got, want)
		}

		playAll(t, b, "exd6")
		if got, want := b.ToFEN(), "r1bqkbnr/ppp1pppp/2nP4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3"; got != want {
			t.Errorf("ToFEN() = %q, want %q", got, want)
		}
		e, _ := b.LastMove()
		if !e.EnPassant || e.Captured == nil || e.Captured.Square != sq("d5") {
			t.Errorf("last move EnPassant = %v, Captured = %v; want pawn taken on d5", e.EnPassant, e.Captured)
		}
	})

	t.Run("expires after one move", func(t *testing.T) {
		b := newTestBoard(t, "")
		playAll(t, b, "e4", "Nc6", "e5", "d5", "a3", "a6")
		ok, err := b.Play(chess.White, "exd6")
		testutil.AssertNoError(t, err)
		testutil.AssertFalse(t, ok, "exd6 a move too late")
	})

	t.Run("from the FEN field", func(t *testing.T) {
		b := newTestBoard(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
		ok, err := b.PlayLAN(chess.White, "e5d6")
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, ok, "e5d6 en passant")
		if _, ok := b.PieceBySq(sq("d5")); ok {
			t.Error("captured pawn still on d5")
		}
	})

	t.Run("pawn beside a single-stepped pawn", func(t *testing.T) {
		b := newTestBoard(t, "")
		playAll(t, b, "e4", "d6", "e5", "a6", "a3", "d5")
		// d7-d6-d5 took two moves, so there is no en passant window.
		ok, err := b.Play(chess.White, "exd6")
		testutil.AssertNoError(t, err)
		testutil.AssertFalse(t, ok, "exd6 after d6-d5")
	})
}

func TestPlay_Castling(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		token   string
		want    bool
		wantFEN string
	}{
		{
			name:    "short",
			fen:     "4k3/8/8/8/8/8/8/4K2R w K - 0 1",
			token:   "O-O",
			want:    true,
			wantFEN: "4k3/8/8/8/8/8/8/5RK1 b - - 1 1",
		},
		{
			name:    "long with b1 attacked",
			fen:     "1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 1",
			token:   "O-O-O",
			want:    true,
			wantFEN: "1r2k3/8/8/8/8/8/8/2KR4 b - - 1 1",
		},
		{
			name:    "black short",
			fen:     "r3k2r/8/8/8/8/8/8/4K3 b kq - 3 9",
			token:   "0-0",
			want:    true,
			wantFEN: "r4rk1/8/8/8/8/8/8/4K3 w - - 4 10",
		},
		{"transit square attacked by bishop", "4k3/8/b7/8/8/8/8/4K2R w K - 0 1", "O-O", false, ""},
		{"out of check", "4k3/8/8/8/8/8/8/r3K2R w K - 0 1", "O-O", false, ""},
		{"into check", "4k1r1/8/8/8/8/8/8/4K2R w K - 0 1", "O-O", false, ""},
		{"blocked by knight", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", "O-O-O", false, ""},
		{"without the right", "4k3/8/8/8/8/8/8/4K2R w - - 0 1", "O-O", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, tt.fen)
			got, err := b.Play(b.Turn(), tt.token)
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Fatalf("Play(%q) = %v, want %v", tt.token, got, tt.want)
			}
			if got && b.ToFEN() != tt.wantFEN {
				t.Errorf("ToFEN() = %q, want %q", b.ToFEN(), tt.wantFEN)
			}
			if !got && b.ToFEN() != newTestBoard(t, tt.fen).ToFEN() {
				t.Errorf("rejected castling changed the board: %q", b.ToFEN())
			}
		})
	}
}

func TestPlay_CastlingRights(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  string
	}{
		{"king move clears both", []string{"Kd1"}, "kq"},
		{"rook move clears its side", []string{"Rh2"}, "Qkq"},
		{"rook capture on home square", []string{"Rh2", "Rxa1+"}, "k"},
		{"rook returning home keeps rights lost", []string{"Rh2", "Kd8", "Rh1"}, "Q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
			playAll(t, b, tt.moves...)
			if got := b.CastlingRights().String(); got != tt.want {
				t.Errorf("CastlingRights() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlay_Promotion(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		token   string
		wantSAN string
		wantSq  string
		want    chess.Piece
	}{
		{"queen", "8/P6k/8/8/8/8/8/K7 w - - 0 1", "a8=Q", "a8=Q", "a8", chess.Queen},
		{"knight", "8/P6k/8/8/8/8/8/K7 w - - 0 1", "a8N", "a8=N", "a8", chess.Knight},
		{"capture with check", "1r5k/P7/8/8/8/8/8/K7 w - - 0 1", "axb8=Q", "axb8=Q+", "b8", chess.Queen},
		{"black rook", "k7/8/8/8/8/8/6p1/K7 b - - 0 1", "g1=R+", "g1=R+", "g1", chess.Rook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, tt.fen)
			playAll(t, b, tt.token)

			if got := lastSAN(t, b); got != tt.wantSAN {
				t.Errorf("last SAN = %q, want %q", got, tt.wantSAN)
			}
			p, ok := b.PieceBySq(sq(tt.wantSq))
			if !ok || p.Kind != tt.want {
				t.Fatalf("PieceBySq(%s) = %v, want a %v", tt.wantSq, p, tt.want)
			}
			if p.Kind == chess.Rook && p.RookType != PromotedRook {
				t.Errorf("promoted rook RookType = %v, want PromotedRook", p.RookType)
			}
		})
	}
}

func TestPlay_PieceCaptureWithoutDisambiguation(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		setup   []string
		token   string
		wantSAN string
	}{
		{"knight", "", []string{"e4", "e5", "Nf3", "Nc6"}, "Nxe5", "Nxe5"},
		{"bishop with check", "", []string{"e4", "e5", "Bc4", "Nc6"}, "Bxf7+", "Bxf7+"},
		{"rook with check", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", nil, "Rxa8+", "Rxa8+"},
		{"check suffix omitted", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", nil, "Rxa8", "Rxa8+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, tt.fen)
			playAll(t, b, tt.setup...)
			playAll(t, b, tt.token)
			if got := lastSAN(t, b); got != tt.wantSAN {
				t.Errorf("SAN = %q, want %q", got, tt.wantSAN)
			}
		})
	}
}

func TestPlayLAN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		token   string
		want    bool
		wantSAN string
	}{
		{"pawn", "", "e2e4", true, "e4"},
		{"knight", "", "g1f3", true, "Nf3"},
		{"empty source", "", "e3e4", false, ""},
		{"opponent's piece", "", "e7e5", false, ""},
		{"disambiguated knight", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", "f1d2", true, "Nfd2"},
		{"castling", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", "e1g1", true, "O-O"},
		{"king step", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", "e1f1", true, "Kf1"},
		{"promotion", "8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8q", true, "a8=Q"},
		{"underpromotion uppercase", "8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8B", true, "a8=B"},
		{"promotion letter missing", "8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8", false, ""},
		{"promotion letter on a non-pawn", "", "g1f3q", false, ""},
		{"capture", "4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1", "d1d5", true, "Rxd5"},
		{"pawn two files sideways", "", "a2c3", false, ""},
		{"pawn far across the board", "", "a2h3", false, ""},
		{"pawn two files forward and sideways", "", "e2g4", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, tt.fen)
			got, err := b.PlayLAN(chess.White, tt.token)
			testutil.AssertNoError(t, err, "PlayLAN(%q)", tt.token)
			if got != tt.want {
				t.Fatalf("PlayLAN(%q) = %v, want %v", tt.token, got, tt.want)
			}
			if got {
				if san := lastSAN(t, b); san != tt.wantSAN {
					t.Errorf("last SAN = %q, want %q", san, tt.wantSAN)
				}
			}
		})
	}
}

func TestPlayLAN_Malformed(t *testing.T) {
	for _, token := range []string{"", "e2", "e2e2", "e2e9", "Nf3", "e2-e4"} {
		t.Run(token, func(t *testing.T) {
			b := newTestBoard(t, "")
			ok, err := b.PlayLAN(chess.White, token)
			if ok {
				t.Errorf("PlayLAN(%q) = true, want false", token)
			}
			testutil.AssertErrorIs(t, err, chesserrors.ErrUnknownNotation, "PlayLAN(%q)", token)
		})
	}
}

func TestPlay_LogsRejectedMoves(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithVerbosity(2).WithLogFile(&buf).Build()
	b, err := NewBoard(WithConfig(cfg))
	testutil.AssertNoError(t, err)

	if ok, _ := b.Play(chess.White, "e5"); ok {
		t.Fatal("Play(e5) = true, want false")
	}
	if got := buf.String(); !strings.Contains(got, `illegal move "e5"`) {
		t.Errorf("log = %q, want a line about e5", got)
	}

	buf.Reset()
	cfg.Verbosity = 1
	b.Play(chess.White, "e5")
	if buf.Len() != 0 {
		t.Errorf("log at verbosity 1 = %q, want nothing", buf.String())
	}
}
