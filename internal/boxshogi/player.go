package boxshogi

import "sort"

// PlayerState 一方的在盘棋子索引与持驹。
// 只由 Position 的变更方法修改，保证与棋盘一致。
type PlayerState struct {
	Side      Side
	captures  []PieceType // 按吃入顺序，一律按未升变类型存
	positions map[*Piece]Coord
	drive     Coord
	hasDrive  bool
}

func newPlayerState(side Side) *PlayerState {
	return &PlayerState{
		Side:      side,
		positions: make(map[*Piece]Coord),
	}
}

// Located 是在盘棋子及其位置
type Located struct {
	Piece *Piece
	At    Coord
}

// Pieces 按 (col,row) 排序，保证遍历顺序稳定
func (ps *PlayerState) Pieces() []Located {
	out := make([]Located, 0, len(ps.positions))
	for pc, at := range ps.positions {
		out = append(out, Located{Piece: pc, At: at})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].At.Col != out[j].At.Col {
			return out[i].At.Col < out[j].At.Col
		}
		return out[i].At.Row < out[j].At.Row
	})
	return out
}

func (ps *PlayerState) PieceCount() int {
	return len(ps.positions)
}

// Locate 返回棋子当前位置
func (ps *PlayerState) Locate(p *Piece) (Coord, bool) {
	c, ok := ps.positions[p]
	return c, ok
}

// Drive 返回己方 Drive 的位置；被吃后 ok=false
func (ps *PlayerState) Drive() (Coord, bool) {
	return ps.drive, ps.hasDrive
}

// Captures 返回持驹副本
func (ps *PlayerState) Captures() []PieceType {
	out := make([]PieceType, len(ps.captures))
	copy(out, ps.captures)
	return out
}

// CaptureLetters 按阵营大小写输出持驹，如 ["p","r"]
func (ps *PlayerState) CaptureLetters() []string {
	out := make([]string, 0, len(ps.captures))
	for _, pt := range ps.captures {
		out = append(out, LetterFor(pt, ps.Side))
	}
	return out
}

func (ps *PlayerState) HasCapture(pt PieceType) bool {
	return ps.captureIndex(pt) >= 0
}

func (ps *PlayerState) captureCount(pt PieceType) int {
	n := 0
	for _, c := range ps.captures {
		if c == pt {
			n++
		}
	}
	return n
}

// distinctCaptures 按首次出现顺序去重
func (ps *PlayerState) distinctCaptures() []PieceType {
	var out []PieceType
	seen := make(map[PieceType]bool, len(ps.captures))
	for _, pt := range ps.captures {
		if !seen[pt] {
			seen[pt] = true
			out = append(out, pt)
		}
	}
	return out
}

func (ps *PlayerState) captureIndex(pt PieceType) int {
	for i, c := range ps.captures {
		if c == pt {
			return i
		}
	}
	return -1
}

func (ps *PlayerState) insertCapture(i int, pt PieceType) {
	if i < 0 || i > len(ps.captures) {
		i = len(ps.captures)
	}
	ps.captures = append(ps.captures, PieceNone)
	copy(ps.captures[i+1:], ps.captures[i:])
	ps.captures[i] = pt
}

func (ps *PlayerState) removeCaptureAt(i int) PieceType {
	pt := ps.captures[i]
	ps.captures = append(ps.captures[:i], ps.captures[i+1:]...)
	return pt
}

func (ps *PlayerState) track(p *Piece, at Coord) {
	ps.positions[p] = at
	if p.Type == PieceDrive {
		ps.drive = at
		ps.hasDrive = true
	}
}

func (ps *PlayerState) untrack(p *Piece) {
	delete(ps.positions, p)
	if p.Type == PieceDrive {
		ps.hasDrive = false
	}
}
