package game

import (
	"time"

	"boxshogi/internal/boxshogi"
)

type GameState struct {
	ID        string
	Session   *boxshogi.Session
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot 对局的只读摘要
type Snapshot struct {
	ID         string
	Notation   string
	Board      string
	SideToMove boxshogi.Side
	State      boxshogi.State
	Result     *boxshogi.Result
	InCheck    bool
	Available  []boxshogi.Action
	Turns      int
	UpperCaps  []string
	LowerCaps  []string
	UpdatedAt  time.Time
}

func (g *GameState) snapshot() Snapshot {
	s := g.Session
	pos := s.Position()
	return Snapshot{
		ID:         g.ID,
		Notation:   pos.Encode(),
		Board:      pos.Board.String(),
		SideToMove: s.SideToMove(),
		State:      s.State(),
		Result:     s.Result(),
		InCheck:    s.InCheck(),
		Available:  s.AvailableMoves(),
		Turns:      s.TurnCount(),
		UpperCaps:  pos.Player(boxshogi.Upper).CaptureLetters(),
		LowerCaps:  pos.Player(boxshogi.Lower).CaptureLetters(),
		UpdatedAt:  g.UpdatedAt,
	}
}
