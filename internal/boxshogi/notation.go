package boxshogi

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidNotation = errors.New("invalid position notation")

// Encode 类 FEN 记法：
//
//	<第5行>/<第4行>/.../<第1行> <UPPER持驹>/<lower持驹> <l|u>
//
// 空格用数字压缩，升变棋子前加 "+"，无持驹写 "-"。
// 例：开局为 "NGRSD/4P/5/p4/dsrgn -/- l"
func (p *Position) Encode() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		if row < BoardSize-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < BoardSize; col++ {
			pc := p.Board.Get(Coord{Col: col, Row: row})
			if pc == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(pc.Name())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(encodeCaptures(p.Player(Upper)))
	sb.WriteByte('/')
	sb.WriteString(encodeCaptures(p.Player(Lower)))
	sb.WriteByte(' ')
	if p.SideToMove == Upper {
		sb.WriteByte('u')
	} else {
		sb.WriteByte('l')
	}
	return sb.String()
}

func encodeCaptures(ps *PlayerState) string {
	letters := ps.CaptureLetters()
	if len(letters) == 0 {
		return "-"
	}
	return strings.Join(letters, "")
}

func DecodePosition(s string) (*Position, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return nil, ErrInvalidNotation
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != BoardSize {
		return nil, ErrInvalidNotation
	}
	pos := NewEmptyPosition()
	for i, text := range rows {
		row := BoardSize - 1 - i
		col := 0
		promoted := false
		for j := 0; j < len(text); j++ {
			ch := text[j]
			if col >= BoardSize {
				return nil, ErrInvalidNotation
			}
			if ch >= '1' && ch <= '5' && !promoted {
				col += int(ch - '0')
				continue
			}
			if ch == '+' && !promoted {
				promoted = true
				continue
			}
			name := string(ch)
			if promoted {
				name = "+" + name
			}
			pc, err := ParsePieceName(name)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidNotation, err)
			}
			pos.put(Coord{Col: col, Row: row}, pc)
			promoted = false
			col++
		}
		if col != BoardSize || promoted {
			return nil, ErrInvalidNotation
		}
	}

	caps := strings.Split(parts[1], "/")
	if len(caps) != 2 {
		return nil, ErrInvalidNotation
	}
	for i, side := range []Side{Upper, Lower} {
		if caps[i] == "-" {
			continue
		}
		for j := 0; j < len(caps[i]); j++ {
			pt, ok := PieceTypeFromLetter(caps[i][j])
			if !ok {
				return nil, ErrInvalidNotation
			}
			pos.addCapture(side, pt)
		}
	}

	switch parts[2] {
	case "l":
		pos.SetSideToMove(Lower)
	case "u":
		pos.SetSideToMove(Upper)
	default:
		return nil, ErrInvalidNotation
	}
	if err := pos.validateDrives(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNotation, err)
	}
	return pos, nil
}

// validateDrives 每方恰好一个 Drive
func (p *Position) validateDrives() error {
	for _, side := range []Side{Lower, Upper} {
		n := 0
		for _, lp := range p.Player(side).Pieces() {
			if lp.Piece.Type == PieceDrive {
				n++
			}
		}
		if n != 1 {
			return fmt.Errorf("%s has %d drives, want 1", side, n)
		}
	}
	return nil
}
