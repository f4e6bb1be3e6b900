package boxshogi

import "strings"

// Board 5x5，squares[col][row]，空格为 nil
type Board struct {
	squares [BoardSize][BoardSize]*Piece
}

// Get 越界返回 nil
func (b *Board) Get(c Coord) *Piece {
	if !c.OnBoard() {
		return nil
	}
	return b.squares[c.Col][c.Row]
}

func (b *Board) IsEmpty(c Coord) bool {
	return b.Get(c) == nil
}

// Place 覆盖目标格原有棋子；越界忽略
func (b *Board) Place(c Coord, p *Piece) {
	if !c.OnBoard() {
		return
	}
	b.squares[c.Col][c.Row] = p
}

// Remove 返回被移走的棋子（可能为 nil）
func (b *Board) Remove(c Coord) *Piece {
	if !c.OnBoard() {
		return nil
	}
	p := b.squares[c.Col][c.Row]
	b.squares[c.Col][c.Row] = nil
	return p
}

// standardLayout 初始摆放：lower 在第 1 行，UPPER 在第 5 行，各一个 Preview 在己方 Drive 之前
var standardLayout = []struct {
	name string
	at   string
}{
	{"d", "a1"}, {"s", "b1"}, {"r", "c1"}, {"g", "d1"}, {"n", "e1"}, {"p", "a2"},
	{"N", "a5"}, {"G", "b5"}, {"R", "c5"}, {"S", "d5"}, {"D", "e5"}, {"P", "e4"},
}

// String 与交互界面一致：第 5 行在上，空格 "__|"
func (b *Board) String() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		sb.WriteByte(byte('1' + row))
		sb.WriteString(" |")
		for col := 0; col < BoardSize; col++ {
			p := b.squares[col][row]
			switch {
			case p == nil:
				sb.WriteString("__|")
			case p.Promoted:
				sb.WriteString(p.Name())
				sb.WriteByte('|')
			default:
				sb.WriteByte(' ')
				sb.WriteString(p.Name())
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("    a  b  c  d  e\n")
	return sb.String()
}
