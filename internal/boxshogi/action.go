package boxshogi

import (
	"fmt"
	"strings"
)

type ActionKind int8

const (
	ActionMove ActionKind = iota
	ActionDrop
)

// Action 一步行动：走子（可带升变）或打入
type Action struct {
	Kind    ActionKind
	From    Coord
	To      Coord
	Promote bool
	Piece   PieceType // 仅打入使用
}

func MoveAction(from, to Coord, promote bool) Action {
	return Action{Kind: ActionMove, From: from, To: to, Promote: promote}
}

func DropAction(pt PieceType, to Coord) Action {
	return Action{Kind: ActionDrop, Piece: pt, To: to}
}

// String 输出 "move a1 a2"、"move a4 a5 promote"、"drop p c3"
func (a Action) String() string {
	if a.Kind == ActionDrop {
		return fmt.Sprintf("drop %c %s", a.Piece.Letter(), a.To)
	}
	if a.Promote {
		return fmt.Sprintf("move %s %s promote", a.From, a.To)
	}
	return fmt.Sprintf("move %s %s", a.From, a.To)
}

func malformed(format string, args ...any) *Error {
	return newError(KindMalformedAction, ReasonInvalidFormat, format, args...)
}

// ParseAction 解析一行命令；格式错误返回 KindMalformedAction
func ParseAction(text string) (Action, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Action{}, malformed("empty input")
	}
	switch fields[0] {
	case "move":
		if len(fields) != 3 && len(fields) != 4 {
			return Action{}, malformed("usage: move <from> <to> [promote]")
		}
		from, err := ParseCoord(fields[1])
		if err != nil {
			return Action{}, &Error{Kind: KindMalformedAction, Reason: ReasonInvalidFormat, Cause: err}
		}
		to, err := ParseCoord(fields[2])
		if err != nil {
			return Action{}, &Error{Kind: KindMalformedAction, Reason: ReasonInvalidFormat, Cause: err}
		}
		promote := false
		if len(fields) == 4 {
			if fields[3] != "promote" {
				return Action{}, malformed("unexpected token %q", fields[3])
			}
			promote = true
		}
		return MoveAction(from, to, promote), nil
	case "drop":
		if len(fields) != 3 {
			return Action{}, malformed("usage: drop <piece> <square>")
		}
		// 打入的棋子字母必须小写
		if len(fields[1]) != 1 || fields[1][0] < 'a' || fields[1][0] > 'z' {
			return Action{}, malformed("piece to drop must be a lowercase letter, got %q", fields[1])
		}
		pt, ok := PieceTypeFromLetter(fields[1][0])
		if !ok {
			return Action{}, malformed("unknown piece %q", fields[1])
		}
		to, err := ParseCoord(fields[2])
		if err != nil {
			return Action{}, &Error{Kind: KindMalformedAction, Reason: ReasonInvalidFormat, Cause: err}
		}
		return DropAction(pt, to), nil
	}
	return Action{}, malformed("unknown command %q", fields[0])
}
