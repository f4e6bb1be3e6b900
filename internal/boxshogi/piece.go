package boxshogi

import (
	"errors"
	"fmt"
	"strings"
)

var ErrCannotPromote = errors.New("piece cannot be promoted")

// movement 是棋子当前使用的走法，由类型与是否升变共同决定
type movement int8

const (
	moveDrive movement = iota
	moveNote
	moveGovernance
	moveShield
	moveRelay
	movePreview
	moveGovernanceDrive // +g
	moveNoteDrive       // +n
)

// Piece 的身份是指针本身；同类同阵营的两个棋子互不相等。
type Piece struct {
	Type     PieceType
	Side     Side
	Promoted bool
}

func NewPiece(pt PieceType, side Side) *Piece {
	return &Piece{Type: pt, Side: side}
}

func (p *Piece) movement() movement {
	if p.Promoted {
		switch p.Type {
		case PieceRelay, PiecePreview:
			return moveShield
		case PieceGovernance:
			return moveGovernanceDrive
		case PieceNote:
			return moveNoteDrive
		}
	}
	switch p.Type {
	case PieceDrive:
		return moveDrive
	case PieceNote:
		return moveNote
	case PieceGovernance:
		return moveGovernance
	case PieceShield:
		return moveShield
	case PieceRelay:
		return moveRelay
	default:
		return movePreview
	}
}

// MovementAllowed 只判断位移形状，不看路径与棋盘边界。
func (p *Piece) MovementAllowed(dCol, dRow int) bool {
	fwd := p.Side.forward()
	step := abs(dCol) <= 1 && abs(dRow) <= 1
	switch p.movement() {
	case moveDrive:
		return step
	case moveNote:
		return dCol == 0 || dRow == 0
	case moveGovernance:
		return abs(dCol) == abs(dRow)
	case moveShield:
		// 不能斜后退
		return step && !(dCol != 0 && dRow == -fwd)
	case moveRelay:
		// 不能横走，也不能直退
		if !step || (dRow == 0 && dCol != 0) {
			return false
		}
		return !(dCol == 0 && dRow == -fwd)
	case movePreview:
		return dCol == 0 && dRow == fwd
	case moveGovernanceDrive:
		return step || abs(dCol) == abs(dRow)
	case moveNoteDrive:
		return step || dCol == 0 || dRow == 0
	}
	return false
}

func (p *Piece) CanPromote() bool {
	return !p.Promoted && p.Type.Promotable()
}

// Promote 已升变或不可升变时返回错误，棋子保持不变。
func (p *Piece) Promote() error {
	if !p.CanPromote() {
		return fmt.Errorf("%w: %s", ErrCannotPromote, p.Name())
	}
	p.Promoted = true
	return nil
}

// Name 形如 "p"、"+R"
func (p *Piece) Name() string {
	name := LetterFor(p.Type, p.Side)
	if p.Promoted {
		return "+" + name
	}
	return name
}

func (p *Piece) String() string {
	return p.Name()
}

// ParsePieceName 解析 "p" / "+R" 这类棋子名，大小写决定阵营。
func ParsePieceName(name string) (*Piece, error) {
	promoted := strings.HasPrefix(name, "+")
	letters := strings.TrimPrefix(name, "+")
	if len(letters) != 1 {
		return nil, fmt.Errorf("invalid piece name %q", name)
	}
	pt, ok := PieceTypeFromLetter(letters[0])
	if !ok {
		return nil, fmt.Errorf("invalid piece name %q", name)
	}
	side := Lower
	if letters[0] >= 'A' && letters[0] <= 'Z' {
		side = Upper
	}
	p := NewPiece(pt, side)
	if promoted {
		if err := p.Promote(); err != nil {
			return nil, err
		}
	}
	return p, nil
}
