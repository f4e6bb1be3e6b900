package boxshogi

import (
	"fmt"
	"strings"
)

const BoardSize = 5

type Side int8

const (
	NoSide Side = -1
	Lower  Side = 0
	Upper  Side = 1
)

func (s Side) Opponent() Side {
	switch s {
	case Lower:
		return Upper
	case Upper:
		return Lower
	}
	return NoSide
}

// String 返回玩家名，大小写即阵营：lower / UPPER
func (s Side) String() string {
	switch s {
	case Lower:
		return "lower"
	case Upper:
		return "UPPER"
	}
	return "none"
}

// forward 前进方向：lower 向上(+1)，UPPER 向下(-1)
func (s Side) forward() int {
	if s == Upper {
		return -1
	}
	return 1
}

// PromotionRow 升变区所在行：lower 为第 5 行(4)，UPPER 为第 1 行(0)
func (s Side) PromotionRow() int {
	if s == Upper {
		return 0
	}
	return BoardSize - 1
}

type PieceType int8

const (
	PieceNone       PieceType = iota
	PieceDrive                // d，相当于王
	PieceNote                 // n，直线
	PieceGovernance           // g，斜线
	PieceShield               // s，类似金
	PieceRelay                // r，类似银
	PiecePreview              // p，类似步
)

var pieceTypeLetters = map[PieceType]byte{
	PieceDrive:      'd',
	PieceNote:       'n',
	PieceGovernance: 'g',
	PieceShield:     's',
	PieceRelay:      'r',
	PiecePreview:    'p',
}

// Letter 返回小写字母；调用方按阵营决定大小写。
func (pt PieceType) Letter() byte {
	if l, ok := pieceTypeLetters[pt]; ok {
		return l
	}
	return '?'
}

func (pt PieceType) String() string {
	switch pt {
	case PieceDrive:
		return "Drive"
	case PieceNote:
		return "Note"
	case PieceGovernance:
		return "Governance"
	case PieceShield:
		return "Shield"
	case PieceRelay:
		return "Relay"
	case PiecePreview:
		return "Preview"
	}
	return "None"
}

// Promotable：Drive 与 Shield 永不升变
func (pt PieceType) Promotable() bool {
	switch pt {
	case PieceNote, PieceGovernance, PieceRelay, PiecePreview:
		return true
	}
	return false
}

// PieceTypeFromLetter 不区分大小写。
func PieceTypeFromLetter(ch byte) (PieceType, bool) {
	lower := ch
	if lower >= 'A' && lower <= 'Z' {
		lower += 'a' - 'A'
	}
	for pt, l := range pieceTypeLetters {
		if l == lower {
			return pt, true
		}
	}
	return PieceNone, false
}

// LetterFor 按阵营给出大小写字母，用于吃子列表与棋盘显示。
func LetterFor(pt PieceType, side Side) string {
	l := string(pt.Letter())
	if side == Upper {
		return strings.ToUpper(l)
	}
	return l
}

// Coord (col,row)，col 0='a'，row 0 为第 1 行
type Coord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (c Coord) OnBoard() bool {
	return c.Col >= 0 && c.Col < BoardSize && c.Row >= 0 && c.Row < BoardSize
}

func (c Coord) String() string {
	if !c.OnBoard() {
		return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col, c.Row+1)
}

// ParseCoord 解析 "a1".."e5"，列字母不区分大小写。
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("invalid square %q", s)
	}
	file := s[0]
	if file >= 'A' && file <= 'Z' {
		file += 'a' - 'A'
	}
	rank := s[1]
	if file < 'a' || file > 'e' || rank < '1' || rank > '5' {
		return Coord{}, fmt.Errorf("invalid square %q", s)
	}
	return Coord{Col: int(file - 'a'), Row: int(rank - '1')}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
