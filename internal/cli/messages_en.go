package cli

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, InvalidInputKey, "Given input is not valid, please try again in the format:\n"+
		"\n"+
		"            move x# x#\n"+
		"            move x# x# promote\n"+
		"\n"+
		"In which x in {a, b, c, d, e}, # in {1,2,3,4,5}\n"+
		"\n"+
		"            drop x y#\n"+
		"\n"+
		"In which x is a piece in your captures and has to be lowercase!\n"+
		"          y in {a, b, c, d, e}, # in {1,2,3,4,5}")
	message.SetString(lang, InCheckKey, "Since you are currently in check, you can only select actions\n"+
		"from your available moves list\n"+
		"\n"+
		"Please try make your selection again.")
	message.SetString(lang, RetryKey, "Please try another action again.")
	message.SetString(lang, RetryValidKey, "Please try a valid input again.")
	message.SetString(lang, ExitHintKey, "You can also exit the game by typing: \"exit\"")

	message.SetString(lang, NoPieceKey, "There is no piece in given position!")
	message.SetString(lang, OpponentPieceKey, "You can not move your opponent's piece!")
	message.SetString(lang, CaptureOwnPieceKey, "You can not capture your own piece!")
	message.SetString(lang, SelfCheckKey, "You can not move your drive into check!")
	message.SetString(lang, CannotMoveKey, "You can not move your piece to that position!\n"+
		"\n"+
		"Is either your move does not follow the rules of that piece\n"+
		"Or there is a piece in between your piece and your destination.")
	message.SetString(lang, NotInCapturesKey, "The piece you want to drop is not in your capture!")
	message.SetString(lang, DropOccupiedKey, "You cannot drop your piece on the position of another piece!")
	message.SetString(lang, PreviewInZoneKey, "You cannot drop your preview on the promotion zone!")
	message.SetString(lang, TwoPreviewsInFileKey, "You cannot drop your preview here, since you already have a\n"+
		"preview in the same column.")
	message.SetString(lang, PreviewDropMateKey, "You cannot drop your preview on a square that results in\n"+
		"an immediate checkmate.")
	message.SetString(lang, GameOverKey, "The game is already over.")
}
