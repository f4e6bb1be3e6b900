package game

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"

	"boxshogi/internal/boxshogi"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(zaptest.NewLogger(t))
	g := m.NewGame()
	if _, err := uuid.Parse(g.ID); err != nil {
		t.Fatalf("id %q is not a uuid: %v", g.ID, err)
	}

	snap, err := m.Get(g.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snap.Notation != "NGRSD/4P/5/p4/dsrgn -/- l" || snap.SideToMove != boxshogi.Lower {
		t.Fatalf("snapshot = %+v", snap)
	}

	out, err := m.Submit(g.ID, "move a2 a3")
	if err != nil || out.Status != boxshogi.Applied {
		t.Fatalf("submit: %+v %v", out, err)
	}
	a, _ := boxshogi.ParseAction("move e4 e3")
	if out, err := m.Apply(g.ID, a); err != nil || out.Status != boxshogi.Applied {
		t.Fatalf("apply: %+v %v", out, err)
	}
	snap, _ = m.Get(g.ID)
	if snap.Turns != 2 || snap.Notation != "NGRSD/5/p3P/5/dsrgn -/- l" {
		t.Fatalf("snapshot after moves = %+v", snap)
	}
	events, err := m.Events(g.ID)
	if err != nil || len(events) != 2 {
		t.Fatalf("events = %v %v", events, err)
	}

	if err := m.Remove(g.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := m.Get(g.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("get after remove: %v", err)
	}
}

func TestManagerUnknownGame(t *testing.T) {
	m := NewManager(nil)
	if _, err := m.Submit("nope", "move a1 a2"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("submit: %v", err)
	}
	if _, err := m.Apply("nope", boxshogi.Action{}); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("apply: %v", err)
	}
	if err := m.Forfeit("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("forfeit: %v", err)
	}
	if err := m.Remove("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("remove: %v", err)
	}
	if _, err := m.Events("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("events: %v", err)
	}
}

func TestManagerFromSetupAndOptions(t *testing.T) {
	m := NewManager(nil, boxshogi.WithMaxTurns(1))
	g, err := m.NewGameFromSetup(boxshogi.Setup{
		Pieces: []boxshogi.Placement{{Name: "d", At: "a1"}, {Name: "D", At: "e5"}},
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	m.Submit(g.ID, "move a1 a2")
	snap, _ := m.Get(g.ID)
	if snap.State != boxshogi.Tie || snap.Result == nil || snap.Result.Reason != boxshogi.EndTooManyMoves {
		t.Fatalf("snapshot = %+v", snap)
	}

	if _, err := m.NewGameFromSetup(boxshogi.Setup{Pieces: []boxshogi.Placement{{Name: "d", At: "a1"}}}); err == nil {
		t.Fatalf("setup without upper drive should fail")
	}
}

func TestManagerListAndForfeit(t *testing.T) {
	m := NewManager(nil)
	a := m.NewGame()
	b := m.NewGame()
	ids := m.List()
	if len(ids) != 2 {
		t.Fatalf("list = %v", ids)
	}
	seen := map[string]bool{ids[0]: true, ids[1]: true}
	if !seen[a.ID] || !seen[b.ID] {
		t.Fatalf("list = %v, want %s and %s", ids, a.ID, b.ID)
	}
	if err := m.Forfeit(b.ID); err != nil {
		t.Fatalf("forfeit: %v", err)
	}
	snap, _ := m.Get(b.ID)
	if snap.State != boxshogi.WonByUpper || snap.Result.Reason != boxshogi.EndIllegalMove {
		t.Fatalf("snapshot = %+v", snap)
	}
}
