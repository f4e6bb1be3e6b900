package cli

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"boxshogi/internal/boxshogi"
)

// 帮助文本的 catalog key
const (
	InvalidInputKey      = "help.invalid_input"
	InCheckKey           = "help.in_check"
	RetryKey             = "help.retry"
	RetryValidKey        = "help.retry_valid"
	ExitHintKey          = "help.exit_hint"
	NoPieceKey           = "help.no_piece"
	OpponentPieceKey     = "help.opponent_piece"
	CaptureOwnPieceKey   = "help.capture_own_piece"
	SelfCheckKey         = "help.self_check"
	CannotMoveKey        = "help.cannot_move"
	NotInCapturesKey     = "help.not_in_captures"
	DropOccupiedKey      = "help.drop_occupied"
	PreviewInZoneKey     = "help.preview_in_zone"
	TwoPreviewsInFileKey = "help.two_previews_in_file"
	PreviewDropMateKey   = "help.preview_drop_mate"
	GameOverKey          = "help.game_over"
)

const helpRule = "-------------------------------------------------------------"

var reasonKeys = map[boxshogi.Reason]string{
	boxshogi.ReasonNoPiece:           NoPieceKey,
	boxshogi.ReasonOpponentPiece:     OpponentPieceKey,
	boxshogi.ReasonCaptureOwnPiece:   CaptureOwnPieceKey,
	boxshogi.ReasonSelfCheck:         SelfCheckKey,
	boxshogi.ReasonCannotMove:        CannotMoveKey,
	boxshogi.ReasonInvalidPromotion:  CannotMoveKey,
	boxshogi.ReasonNotInCaptures:     NotInCapturesKey,
	boxshogi.ReasonDropOccupied:      DropOccupiedKey,
	boxshogi.ReasonPreviewInZone:     PreviewInZoneKey,
	boxshogi.ReasonTwoPreviewsInFile: TwoPreviewsInFileKey,
	boxshogi.ReasonPreviewDropMate:   PreviewDropMateKey,
	boxshogi.ReasonGameOver:          GameOverKey,
}

var supportedTags = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Messages 按语言输出帮助文本
type Messages struct {
	tag     language.Tag
	printer *message.Printer
}

// NewMessages 不认识的 locale 回落到英文
func NewMessages(locale string) *Messages {
	tag := language.English
	if parsed, err := language.Parse(locale); err == nil {
		_, idx, _ := tagMatcher.Match(parsed)
		tag = supportedTags[idx]
	}
	return &Messages{tag: tag, printer: message.NewPrinter(tag)}
}

func (m *Messages) Tag() language.Tag { return m.tag }

func (m *Messages) text(key string) string {
	return m.printer.Sprintf(key)
}

// InvalidInput 输入无法解析时的格式说明
func (m *Messages) InvalidInput() string {
	return frame(m.text(InvalidInputKey))
}

// InCheck 被将军时只能从可选列表里走
func (m *Messages) InCheck() string {
	return frame(m.text(InCheckKey), m.text(ExitHintKey))
}

// Help 按错误原因给出提示；格式错误返回 InvalidInput
func (m *Messages) Help(err error) string {
	reason := boxshogi.ReasonOf(err)
	key, ok := reasonKeys[reason]
	if !ok {
		return m.InvalidInput()
	}
	retry := RetryKey
	if reason == boxshogi.ReasonNoPiece {
		retry = RetryValidKey
	}
	return frame(m.text(key), m.text(retry), m.text(ExitHintKey))
}

func frame(parts ...string) string {
	var sb strings.Builder
	sb.WriteString(helpRule)
	sb.WriteString("\n")
	sb.WriteString(strings.Join(parts, "\n\n"))
	sb.WriteString("\n")
	sb.WriteString(helpRule)
	return sb.String()
}
