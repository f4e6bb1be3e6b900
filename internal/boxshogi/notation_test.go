package boxshogi

import (
	"errors"
	"testing"
)

func TestEncodeInitialPosition(t *testing.T) {
	want := "NGRSD/4P/5/p4/dsrgn -/- l"
	if got := NewInitialPosition().Encode(); got != want {
		t.Fatalf("encode = %q, want %q", got, want)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, s := range []string{
		"NGRSD/4P/5/p4/dsrgn -/- l",
		"4D/1+R3/2g2/5/d3+n PR/rpg u",
		"D4/5/5/5/4d -/pp l",
	} {
		pos, err := DecodePosition(s)
		if err != nil {
			t.Fatalf("decode %q: %v", s, err)
		}
		if got := pos.Encode(); got != s {
			t.Fatalf("round trip %q -> %q", s, got)
		}
		if pos.Hash != pos.CalculateHash() {
			t.Fatalf("%q: hash not initialised", s)
		}
	}
}

func TestDecodeRebuildsIndex(t *testing.T) {
	pos, err := DecodePosition("4D/1+R3/2g2/5/d3+n PR/rpg u")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if pos.SideToMove != Upper {
		t.Fatalf("side = %s", pos.SideToMove)
	}
	if d, _ := pos.Player(Upper).Drive(); d.String() != "e5" {
		t.Fatalf("upper drive at %s", d)
	}
	if n := pos.Player(Lower).PieceCount(); n != 3 {
		t.Fatalf("lower pieces = %d", n)
	}
	if got := pos.Player(Lower).CaptureLetters(); len(got) != 3 || got[0] != "r" || got[2] != "g" {
		t.Fatalf("lower captures = %v", got)
	}
	pc := pos.Board.Get(Coord{Col: 1, Row: 3})
	if pc == nil || pc.Type != PieceRelay || pc.Side != Upper || !pc.Promoted {
		t.Fatalf("b4 = %v", pc)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"NGRSD/4P/5/p4/dsrgn -/-",
		"NGRSD/4P/5/p4 -/- l",
		"NGRSD/4P/5/p5/dsrgn -/- l",
		"NGRSD/4P/5/p4/dsrgx -/- l",
		"NGRSD/4P/5/p4/dsrg+ -/- l",
		"NGRSD/4P/5/p4/dsrgn -/- x",
		"NGRSD/4P/5/p4/dsrgn - l",
		"NGRS1/4P/5/p4/dsrgn -/- l",
	} {
		if _, err := DecodePosition(s); !errors.Is(err, ErrInvalidNotation) {
			t.Fatalf("decode %q: err = %v, want ErrInvalidNotation", s, err)
		}
	}
}

func TestParseActionRoundTrip(t *testing.T) {
	for _, s := range []string{"move a1 a2", "move b4 b5 promote", "drop p c3", "drop g e5"} {
		a, err := ParseAction(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if a.String() != s {
			t.Fatalf("%q -> %q", s, a.String())
		}
	}
	a, err := ParseAction("  move A1   B2 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a.String() != "move a1 b2" {
		t.Fatalf("normalised = %q", a.String())
	}
}
