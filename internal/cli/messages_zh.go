package cli

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.SimplifiedChinese

	message.SetString(lang, InvalidInputKey, "输入格式不正确，请按以下格式重新输入：\n"+
		"\n"+
		"            move x# x#\n"+
		"            move x# x# promote\n"+
		"\n"+
		"其中 x 为 {a, b, c, d, e}，# 为 {1,2,3,4,5}\n"+
		"\n"+
		"            drop x y#\n"+
		"\n"+
		"其中 x 为持驹中的棋子，必须小写！\n"+
		"     y 为 {a, b, c, d, e}，# 为 {1,2,3,4,5}")
	message.SetString(lang, InCheckKey, "你正被将军，只能从可选动作列表中选择。\n"+
		"\n"+
		"请重新选择。")
	message.SetString(lang, RetryKey, "请换一个动作再试。")
	message.SetString(lang, RetryValidKey, "请重新输入有效的动作。")
	message.SetString(lang, ExitHintKey, "输入 \"exit\" 可退出对局")

	message.SetString(lang, NoPieceKey, "该位置没有棋子！")
	message.SetString(lang, OpponentPieceKey, "不能移动对方的棋子！")
	message.SetString(lang, CaptureOwnPieceKey, "不能吃自己的棋子！")
	message.SetString(lang, SelfCheckKey, "不能让自己的 Drive 处于被将军状态！")
	message.SetString(lang, CannotMoveKey, "棋子不能走到该位置！\n"+
		"\n"+
		"要么不符合该棋子的走法，要么路径上有其他棋子阻挡。")
	message.SetString(lang, NotInCapturesKey, "要打入的棋子不在你的持驹中！")
	message.SetString(lang, DropOccupiedKey, "不能打入到已有棋子的位置！")
	message.SetString(lang, PreviewInZoneKey, "Preview 不能打入升变区！")
	message.SetString(lang, TwoPreviewsInFileKey, "同一列已有你的 Preview，不能再打入。")
	message.SetString(lang, PreviewDropMateKey, "打入 Preview 不能直接造成将死。")
	message.SetString(lang, GameOverKey, "对局已经结束。")
}
