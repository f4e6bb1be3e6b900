package boxshogi

import (
	"errors"
	"strings"
	"testing"
)

// setupPosition 用 "d a1" 形式的摆放快速建局面
func setupPosition(t *testing.T, toMove Side, lowerCaps, upperCaps []string, placements ...string) *Position {
	t.Helper()
	s := Setup{LowerCaptures: lowerCaps, UpperCaptures: upperCaps, SideToMove: toMove}
	for _, pl := range placements {
		f := strings.Fields(pl)
		s.Pieces = append(s.Pieces, Placement{Name: f[0], At: f[1]})
	}
	pos, err := NewPositionFromSetup(s)
	if err != nil {
		t.Fatalf("setup %v: %v", placements, err)
	}
	return pos
}

func sq(t *testing.T, s string) Coord {
	t.Helper()
	c, err := ParseCoord(s)
	if err != nil {
		t.Fatalf("coord %q: %v", s, err)
	}
	return c
}

func actionStrings(actions []Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.String()
	}
	return out
}

func TestIsPathClear(t *testing.T) {
	pos := setupPosition(t, Lower, nil, nil, "d a1", "D e5", "n c1", "p c3", "G e4")
	if pos.IsPathClear(sq(t, "c1"), sq(t, "c5")) {
		t.Fatalf("c1->c5 passes c3, should be blocked")
	}
	if !pos.IsPathClear(sq(t, "c1"), sq(t, "c3")) {
		t.Fatalf("c1->c3 ends on c3, should be clear")
	}
	if !pos.IsPathClear(sq(t, "e4"), sq(t, "b1")) {
		t.Fatalf("e4->b1 diagonal is empty")
	}
	if pos.IsMoveLegal(sq(t, "c1"), sq(t, "c5"), Lower, false) {
		t.Fatalf("note should not jump over c3")
	}
	if !pos.IsMoveLegal(sq(t, "e4"), sq(t, "b1"), Upper, false) {
		t.Fatalf("governance e4->b1 should be legal")
	}
}

func TestDriveMovesOneSquare(t *testing.T) {
	pos := setupPosition(t, Lower, nil, nil, "d c3", "D e5")
	from := sq(t, "c3")
	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			to := Coord{Col: col, Row: row}
			if to == from {
				continue
			}
			want := abs(col-from.Col) <= 1 && abs(row-from.Row) <= 1
			if got := pos.IsMoveLegal(from, to, Lower, false); got != want {
				t.Fatalf("drive c3->%s legal=%v want %v", to, got, want)
			}
		}
	}
}

func TestPromotionRequestNeedsZone(t *testing.T) {
	pos := setupPosition(t, Lower, nil, nil, "d a1", "D e1", "r c2", "r b4", "s d4", "+g a4")
	cases := []struct {
		from, to string
		want     bool
	}{
		{"c2", "c3", false}, // 不在升变区
		{"b4", "b5", true},  // 进入升变区
		{"d4", "d5", false}, // Shield 不能升变
		{"a4", "a5", false}, // 已升变
	}
	for _, tc := range cases {
		if got := pos.IsMoveLegal(sq(t, tc.from), sq(t, tc.to), Lower, true); got != tc.want {
			t.Fatalf("%s->%s promote legal=%v want %v", tc.from, tc.to, got, tc.want)
		}
	}
	// 从升变区走出同样可以升变
	upper := setupPosition(t, Upper, nil, nil, "d a5", "D e5", "R c1")
	if !upper.IsMoveLegal(sq(t, "c1"), sq(t, "b2"), Upper, true) {
		t.Fatalf("upper relay leaving its zone should be able to promote")
	}
}

func TestNoteChecksDriveDownFile(t *testing.T) {
	pos := setupPosition(t, Lower, nil, nil, "d a1", "D e5", "N a5")
	inCheck, attackers := pos.IsInCheck(Lower)
	if !inCheck {
		t.Fatalf("lower should be in check from a5")
	}
	if len(attackers) != 1 || attackers[0].String() != "a5" {
		t.Fatalf("attackers = %v", attackers)
	}
	if pos.InCheck(Upper) {
		t.Fatalf("upper should not be in check")
	}

	got := actionStrings(pos.EnumerateEscapes(Lower))
	want := []string{"move a1 b1", "move a1 b2"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("escapes = %v, want %v", got, want)
	}
	for _, mv := range got {
		if strings.HasSuffix(mv, " a2") {
			t.Fatalf("escape %q stays on the attacked file", mv)
		}
	}
}

func TestEscapesIncludeBlockingDrops(t *testing.T) {
	pos := setupPosition(t, Lower, []string{"g"}, nil, "d a1", "D e5", "N a5")
	got := actionStrings(pos.EnumerateEscapes(Lower))
	want := []string{"move a1 b1", "move a1 b2", "drop g a4", "drop g a3", "drop g a2"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("escapes = %v, want %v", got, want)
	}
}

func TestEscapesCaptureAttacker(t *testing.T) {
	pos := setupPosition(t, Lower, nil, nil, "d a1", "D e5", "N a5", "g c3", "s b1", "p b2")
	got := actionStrings(pos.EnumerateEscapes(Lower))
	// a2 仍在 a 列上，b1、b2 被己方占住，只能吃或垫
	want := []string{"move c3 a5", "move b1 a2"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("escapes = %v, want %v", got, want)
	}
}

func TestDoubleCheckOnlyDriveSteps(t *testing.T) {
	pos := setupPosition(t, Lower, []string{"p"}, nil, "d c1", "D e5", "N c5", "G a3", "n a1")
	inCheck, attackers := pos.IsInCheck(Lower)
	if !inCheck || len(attackers) != 2 {
		t.Fatalf("expected double check, got %v %v", inCheck, attackers)
	}
	got := actionStrings(pos.EnumerateEscapes(Lower))
	want := []string{"move c1 b1", "move c1 d1", "move c1 d2"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("escapes = %v, want %v", got, want)
	}
}

func TestPinnedPieceCannotBlock(t *testing.T) {
	pos := setupPosition(t, Lower, nil, nil, "d a1", "s b2", "G d4", "N e1", "D e5")
	_, attackers := pos.IsInCheck(Lower)
	if len(attackers) != 1 || attackers[0].String() != "e1" {
		t.Fatalf("attackers = %v, want [e1]", attackers)
	}
	got := actionStrings(pos.EnumerateEscapes(Lower))
	want := []string{"move a1 a2"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("escapes = %v, want %v", got, want)
	}
}

func TestEscapesRestorePosition(t *testing.T) {
	pos := setupPosition(t, Lower, []string{"g", "p"}, []string{"R"}, "d a1", "D e5", "N a5", "g c3", "s b1")
	before := pos.Encode()
	hash := pos.Hash
	pos.EnumerateEscapes(Lower)
	pos.LegalActions(Lower)
	pos.CheckDrop(PiecePreview, Lower, sq(t, "d4"))
	if pos.Encode() != before || pos.Hash != hash {
		t.Fatalf("position changed by evaluation:\n%s\n%s", before, pos.Encode())
	}
	if pos.Hash != pos.CalculateHash() {
		t.Fatalf("hash drifted")
	}
}

func TestCheckmateHasNoEscapes(t *testing.T) {
	pos := setupPosition(t, Lower, nil, nil, "d a1", "D e5", "N a5", "N b5")
	if !pos.InCheck(Lower) {
		t.Fatalf("lower should be in check")
	}
	if esc := pos.EnumerateEscapes(Lower); len(esc) != 0 {
		t.Fatalf("expected checkmate, escapes = %v", actionStrings(esc))
	}
	if acts := pos.LegalActions(Lower); len(acts) != 0 {
		t.Fatalf("expected no legal actions, got %v", actionStrings(acts))
	}
}

func TestPreviewDropMateRejected(t *testing.T) {
	pos := setupPosition(t, Lower, []string{"p"}, nil, "d a1", "D e5", "g c2", "n d1")
	err := pos.CheckDrop(PiecePreview, Lower, sq(t, "e4"))
	if !errors.Is(err, &Error{Kind: KindIllegalDrop, Reason: ReasonPreviewDropMate}) {
		t.Fatalf("err = %v, want preview drop mate", err)
	}

	// 去掉封住 d 列的 n，对方还有退路，打入成立
	pos = setupPosition(t, Lower, []string{"p"}, nil, "d a1", "D e5", "g c2")
	if err := pos.CheckDrop(PiecePreview, Lower, sq(t, "e4")); err != nil {
		t.Fatalf("drop should be legal: %v", err)
	}
}

func TestDropRestrictions(t *testing.T) {
	pos := setupPosition(t, Lower, []string{"p", "r"}, []string{"P"}, "d a1", "D e5", "p c2", "N b3")
	cases := []struct {
		name   string
		pt     PieceType
		side   Side
		to     string
		reason Reason
	}{
		{"not in captures", PieceNote, Lower, "d3", ReasonNotInCaptures},
		{"occupied", PieceRelay, Lower, "b3", ReasonDropOccupied},
		{"preview in zone", PiecePreview, Lower, "d5", ReasonPreviewInZone},
		{"upper preview in zone", PiecePreview, Upper, "b1", ReasonPreviewInZone},
		{"two previews", PiecePreview, Lower, "c4", ReasonTwoPreviewsInFile},
		{"ok relay in zone", PieceRelay, Lower, "d5", ""},
		{"ok preview", PiecePreview, Lower, "d3", ""},
		{"other side's previews do not count", PiecePreview, Upper, "c4", ""},
	}
	for _, tc := range cases {
		err := pos.CheckDrop(tc.pt, tc.side, sq(t, tc.to))
		if legal := pos.IsDropLegal(tc.pt, tc.side, sq(t, tc.to)); legal != (tc.reason == "") {
			t.Fatalf("%s: IsDropLegal = %v", tc.name, legal)
		}
		if tc.reason == "" {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if ReasonOf(err) != tc.reason {
			t.Fatalf("%s: err = %v, want reason %s", tc.name, err, tc.reason)
		}
		if !errors.Is(err, ErrIllegalDrop) {
			t.Fatalf("%s: err %v should be an illegal drop", tc.name, err)
		}
	}
}

func TestPromotedPreviewDoesNotBlockDrop(t *testing.T) {
	pos := setupPosition(t, Lower, []string{"p"}, nil, "d a1", "D e5", "+p c4")
	if err := pos.CheckDrop(PiecePreview, Lower, sq(t, "c3")); err != nil {
		t.Fatalf("promoted preview should not count: %v", err)
	}
}
