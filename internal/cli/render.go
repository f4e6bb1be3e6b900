package cli

import (
	"strings"

	"boxshogi/internal/boxshogi"
	"boxshogi/internal/game"
)

// Status 渲染一次完整的对局状态。echo 为上一步动作行，开局时为空。
// 对局未结束时以行棋方提示符 "lower> " 结尾。
func Status(snap game.Snapshot, echo string) string {
	var sb strings.Builder
	sb.WriteString(echo)
	sb.WriteString("\n")
	sb.WriteString(snap.Board)
	sb.WriteString("\n")
	sb.WriteString("Captures UPPER: " + strings.Join(snap.UpperCaps, " ") + "\n")
	sb.WriteString("Captures lower: " + strings.Join(snap.LowerCaps, " ") + "\n\n")

	switch snap.State {
	case boxshogi.WonByLower, boxshogi.WonByUpper:
		sb.WriteString(snap.Result.Winner.String() + " player wins.  " + string(snap.Result.Reason))
	case boxshogi.Tie:
		sb.WriteString("Tie game.  " + string(boxshogi.EndTooManyMoves))
	default:
		name := snap.SideToMove.String()
		if snap.InCheck {
			sb.WriteString(name + " player is in check!\n")
			sb.WriteString("Available moves:\n")
			for _, a := range snap.Available {
				sb.WriteString(a.String() + "\n")
			}
		}
		sb.WriteString(Prompt(snap.SideToMove))
	}
	return sb.String()
}

// Echo 动作回显行
func Echo(side boxshogi.Side, line string) string {
	return side.String() + " player action: " + line
}

func Prompt(side boxshogi.Side) string {
	return side.String() + "> "
}
