package boxshogi

import (
	"fmt"
	"strings"
)

// Placement 一条初始摆放，如 {Name: "+r", At: "c3"}
type Placement struct {
	Name string
	At   string
}

// Setup 自定义初始局面：摆放列表加双方持驹
type Setup struct {
	Pieces        []Placement
	UpperCaptures []string
	LowerCaptures []string
	SideToMove    Side
}

// NewPositionFromSetup 按 Setup 构建局面；同一格重复、持驹带 "+"、Drive 数量不对均报错
func NewPositionFromSetup(s Setup) (*Position, error) {
	pos := NewEmptyPosition()
	for _, pl := range s.Pieces {
		pc, err := ParsePieceName(pl.Name)
		if err != nil {
			return nil, err
		}
		at, err := ParseCoord(pl.At)
		if err != nil {
			return nil, err
		}
		if !pos.Board.IsEmpty(at) {
			return nil, fmt.Errorf("square %s used twice", at)
		}
		pos.put(at, pc)
	}
	for _, e := range []struct {
		side    Side
		letters []string
	}{{Upper, s.UpperCaptures}, {Lower, s.LowerCaptures}} {
		for _, l := range e.letters {
			l = strings.TrimSpace(l)
			if len(l) != 1 {
				return nil, fmt.Errorf("invalid capture %q", l)
			}
			pt, ok := PieceTypeFromLetter(l[0])
			if !ok {
				return nil, fmt.Errorf("invalid capture %q", l)
			}
			pos.addCapture(e.side, pt)
		}
	}
	if s.SideToMove == Upper {
		pos.SetSideToMove(Upper)
	}
	if err := pos.validateDrives(); err != nil {
		return nil, err
	}
	return pos, nil
}
