package boxshogi

import (
	"go.uber.org/zap"
)

const DefaultMaxTurns = 400

type State int8

const (
	InProgress State = iota
	WonByLower
	WonByUpper
	Tie
)

func (s State) String() string {
	switch s {
	case WonByLower:
		return "won by lower"
	case WonByUpper:
		return "won by UPPER"
	case Tie:
		return "tie"
	}
	return "in progress"
}

// EndReason 终局原因，文本即界面输出
type EndReason string

const (
	EndIllegalMove   EndReason = "Illegal move."
	EndCheckmate     EndReason = "Checkmate."
	EndTooManyMoves  EndReason = "Too many moves."
	EndDriveCaptured EndReason = "Drive captured."
)

// Result 终局信息；平局时 Winner 为 NoSide
type Result struct {
	Winner Side
	Reason EndReason
}

type Status int8

const (
	// Applied 动作已执行（可能同时导致终局）
	Applied Status = iota
	// Rejected 输入格式错误或对局已结束，局面不变，不消耗回合
	Rejected
	// Forfeited 非法动作，行动方判负
	Forfeited
)

// Outcome 一次 Apply 的结果
type Outcome struct {
	Status Status
	Action Action
	Err    error
	State  State
	Result *Result
	// 以下为新的行棋方
	InCheck        bool
	AvailableMoves []Action
}

type EventKind int8

const (
	EventApplied EventKind = iota
	EventRejected
	EventIllegal
	EventCheck
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventApplied:
		return "applied"
	case EventRejected:
		return "rejected"
	case EventIllegal:
		return "illegal"
	case EventCheck:
		return "check"
	case EventGameOver:
		return "game over"
	}
	return "unknown"
}

// Event 对局日志的一条记录
type Event struct {
	Kind   EventKind
	Turn   int
	Side   Side
	Action Action
	Err    error
	Result *Result
	Hash   uint64
}

type options struct {
	maxTurns int
	logger   *zap.Logger
}

type Option func(*options)

// WithMaxTurns 设定和棋的半回合上限；n<=0 时忽略
func WithMaxTurns(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxTurns = n
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Session 一局对弈。非并发安全，由调用方串行调用。
type Session struct {
	pos      *Position
	turns    int
	state    State
	result   *Result
	inCheck  bool
	escapes  []Action
	events   []Event
	maxTurns int
	log      *zap.Logger
}

func NewSession(opts ...Option) *Session {
	return newSession(NewInitialPosition(), opts)
}

func NewSessionFromSetup(setup Setup, opts ...Option) (*Session, error) {
	pos, err := NewPositionFromSetup(setup)
	if err != nil {
		return nil, err
	}
	return newSession(pos, opts), nil
}

// NewSessionFromPosition 接管 pos，调用方之后不应再修改它
func NewSessionFromPosition(pos *Position, opts ...Option) *Session {
	return newSession(pos, opts)
}

func newSession(pos *Position, opts []Option) *Session {
	o := options{maxTurns: DefaultMaxTurns, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Session{pos: pos, maxTurns: o.maxTurns, log: o.logger}
	s.refresh()
	// 自定义局面可能一开始就被将死
	if s.inCheck && len(s.escapes) == 0 {
		s.finish(pos.SideToMove.Opponent(), EndCheckmate)
	}
	return s
}

func (s *Session) State() State        { return s.state }
func (s *Session) Result() *Result     { return s.result }
func (s *Session) SideToMove() Side    { return s.pos.SideToMove }
func (s *Session) InCheck() bool       { return s.inCheck }
func (s *Session) TurnCount() int      { return s.turns }
func (s *Session) MaxTurns() int       { return s.maxTurns }
func (s *Session) Over() bool          { return s.state != InProgress }
func (s *Session) Position() *Position { return s.pos.Clone() }

// AvailableMoves 行棋方被将时的解将列表，否则为空
func (s *Session) AvailableMoves() []Action {
	out := make([]Action, len(s.escapes))
	copy(out, s.escapes)
	return out
}

func (s *Session) Events() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Submit 解析文本后执行；格式错误返回 Rejected
func (s *Session) Submit(text string) Outcome {
	a, err := ParseAction(text)
	if err != nil {
		return s.reject(Action{}, err)
	}
	return s.Apply(a)
}

// Forfeit 行棋方直接判负（如文件模式下无法解析的输入）
func (s *Session) Forfeit() {
	if s.Over() {
		return
	}
	mover := s.pos.SideToMove
	s.turns++
	s.finish(mover.Opponent(), EndIllegalMove)
	s.record(Event{Kind: EventIllegal, Side: mover, Err: ErrMalformedAction})
}

// Apply 校验并执行一步。格式错误与对局已结束返回 Rejected；
// 其他任何违规都使行棋方判负。
func (s *Session) Apply(a Action) Outcome {
	if s.Over() {
		return s.reject(a, newError(KindGameAlreadyOver, ReasonGameOver, "game is %s", s.state))
	}
	if err := validateCoords(a); err != nil {
		return s.reject(a, err)
	}

	mover := s.pos.SideToMove
	captured, err := s.commit(a, mover)
	s.turns++
	if err != nil {
		s.finish(mover.Opponent(), EndIllegalMove)
		s.record(Event{Kind: EventIllegal, Side: mover, Action: a, Err: err})
		return s.outcome(Forfeited, a, err)
	}

	s.pos.SetSideToMove(mover.Opponent())
	s.record(Event{Kind: EventApplied, Side: mover, Action: a})
	s.log.Debug("action applied",
		zap.String("side", mover.String()),
		zap.String("action", a.String()),
		zap.Int("turn", s.turns),
		zap.Uint64("hash", s.pos.Hash),
	)

	if captured != nil && captured.Type == PieceDrive {
		s.finish(mover, EndDriveCaptured)
		return s.outcome(Applied, a, nil)
	}

	s.refresh()
	switch {
	case s.inCheck && len(s.escapes) == 0:
		s.finish(mover, EndCheckmate)
	case s.inCheck:
		s.record(Event{Kind: EventCheck, Side: s.pos.SideToMove})
	case s.turns >= s.maxTurns:
		s.finish(NoSide, EndTooManyMoves)
	}
	return s.outcome(Applied, a, nil)
}

// Validate 在局面副本上试走，返回 Apply 会给出的错误，不改变对局
func (s *Session) Validate(a Action) error {
	if s.Over() {
		return newError(KindGameAlreadyOver, ReasonGameOver, "game is %s", s.state)
	}
	if err := validateCoords(a); err != nil {
		return err
	}
	probe := &Session{pos: s.pos.Clone()}
	_, err := probe.commit(a, s.pos.SideToMove)
	return err
}

func validateCoords(a Action) error {
	if !a.To.OnBoard() || (a.Kind == ActionMove && !a.From.OnBoard()) {
		return newError(KindMalformedAction, ReasonInvalidFormat, "square off the board")
	}
	if a.Kind == ActionDrop && (a.Piece <= PieceNone || a.Piece > PiecePreview) {
		return newError(KindMalformedAction, ReasonInvalidFormat, "unknown piece to drop")
	}
	return nil
}

// commit 执行一步；失败时局面保持原样。返回被吃的棋子。
func (s *Session) commit(a Action, mover Side) (*Piece, error) {
	p := s.pos
	var u undoInfo
	var kind Kind

	if a.Kind == ActionDrop {
		if err := p.CheckDrop(a.Piece, mover, a.To); err != nil {
			return nil, err
		}
		u, _ = p.makeDrop(mover, a.Piece, a.To)
		kind = KindIllegalDrop
	} else {
		pc := p.Board.Get(a.From)
		switch {
		case pc == nil:
			return nil, newError(KindIllegalMove, ReasonNoPiece, "no piece at %s", a.From)
		case pc.Side != mover:
			return nil, newError(KindNotYourTurn, ReasonOpponentPiece, "piece at %s belongs to %s", a.From, pc.Side)
		case a.From == a.To:
			return nil, newError(KindIllegalMove, ReasonCannotMove, "%s cannot stay on %s", pc.Name(), a.From)
		}
		if target := p.Board.Get(a.To); target != nil && target.Side == mover {
			return nil, newError(KindIllegalMove, ReasonCaptureOwnPiece, "cannot capture own piece on %s", a.To)
		}
		if a.Promote && !canPromoteMove(pc, a.From, a.To, mover) {
			return nil, newError(KindIllegalMove, ReasonInvalidPromotion, "%s cannot promote on %s %s", pc.Name(), a.From, a.To)
		}
		if !p.IsMoveLegal(a.From, a.To, mover, a.Promote) {
			return nil, newError(KindIllegalMove, ReasonCannotMove, "%s cannot move from %s to %s", pc.Name(), a.From, a.To)
		}
		u, _ = p.makeMove(a.From, a.To, a.Promote)
		kind = KindIllegalMove
	}

	if p.InCheck(mover) {
		p.unmake(u)
		return nil, newError(kind, ReasonSelfCheck, "%s leaves %s drive in check", a, mover)
	}
	return u.captured, nil
}

// refresh 重新计算行棋方的将军状态与解将列表
func (s *Session) refresh() {
	side := s.pos.SideToMove
	s.inCheck = s.pos.InCheck(side)
	s.escapes = nil
	if s.inCheck {
		s.escapes = s.pos.EnumerateEscapes(side)
	}
}

func (s *Session) finish(winner Side, reason EndReason) {
	s.result = &Result{Winner: winner, Reason: reason}
	switch winner {
	case Lower:
		s.state = WonByLower
	case Upper:
		s.state = WonByUpper
	default:
		s.state = Tie
	}
	s.inCheck = false
	s.escapes = nil
	s.record(Event{Kind: EventGameOver, Result: s.result})
	s.log.Info("game over",
		zap.String("winner", winner.String()),
		zap.String("reason", string(reason)),
		zap.Int("turn", s.turns),
	)
}

func (s *Session) reject(a Action, err error) Outcome {
	s.record(Event{Kind: EventRejected, Side: s.pos.SideToMove, Action: a, Err: err})
	s.log.Debug("action rejected",
		zap.String("side", s.pos.SideToMove.String()),
		zap.Error(err),
	)
	return s.outcome(Rejected, a, err)
}

func (s *Session) record(e Event) {
	e.Turn = s.turns
	e.Hash = s.pos.Hash
	s.events = append(s.events, e)
}

func (s *Session) outcome(st Status, a Action, err error) Outcome {
	return Outcome{
		Status:         st,
		Action:         a,
		Err:            err,
		State:          s.state,
		Result:         s.result,
		InCheck:        s.inCheck,
		AvailableMoves: s.AvailableMoves(),
	}
}
