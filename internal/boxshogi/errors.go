package boxshogi

import (
	"errors"
	"fmt"
)

// Kind 是拒绝原因的大类，errors.Is 按 Kind 匹配
type Kind int8

const (
	KindMalformedAction Kind = iota + 1
	KindIllegalMove
	KindIllegalDrop
	KindNotYourTurn
	KindGameAlreadyOver
)

func (k Kind) String() string {
	switch k {
	case KindMalformedAction:
		return "malformed action"
	case KindIllegalMove:
		return "illegal move"
	case KindIllegalDrop:
		return "illegal drop"
	case KindNotYourTurn:
		return "not your turn"
	case KindGameAlreadyOver:
		return "game already over"
	}
	return "unknown"
}

// Reason 细分原因，同时作为界面提示文本的 key
type Reason string

const (
	ReasonInvalidFormat     Reason = "INVALID_FORMAT"
	ReasonNoPiece           Reason = "NO_PIECE"
	ReasonOpponentPiece     Reason = "OPPONENT_PIECE"
	ReasonCaptureOwnPiece   Reason = "CAPTURE_OWN_PIECE"
	ReasonSelfCheck         Reason = "SELF_CHECK"
	ReasonCannotMove        Reason = "CANNOT_MOVE"
	ReasonInvalidPromotion  Reason = "INVALID_PROMOTION"
	ReasonNotInCaptures     Reason = "NOT_IN_CAPTURES"
	ReasonDropOccupied      Reason = "DROP_OCCUPIED"
	ReasonPreviewInZone     Reason = "PREVIEW_IN_PROMOTION_ZONE"
	ReasonTwoPreviewsInFile Reason = "TWO_PREVIEWS_IN_FILE"
	ReasonPreviewDropMate   Reason = "PREVIEW_DROP_MATE"
	ReasonGameOver          Reason = "GAME_OVER"
)

type Error struct {
	Kind    Kind
	Reason  Reason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is 同 Kind 即匹配；target 带 Reason 时还要求 Reason 相同
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

var (
	ErrMalformedAction = &Error{Kind: KindMalformedAction}
	ErrIllegalMove     = &Error{Kind: KindIllegalMove}
	ErrIllegalDrop     = &Error{Kind: KindIllegalDrop}
	ErrNotYourTurn     = &Error{Kind: KindNotYourTurn}
	ErrGameAlreadyOver = &Error{Kind: KindGameAlreadyOver}
)

func newError(kind Kind, reason Reason, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// ReasonOf 取出 *Error 的 Reason，其他错误返回空串
func ReasonOf(err error) Reason {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}
