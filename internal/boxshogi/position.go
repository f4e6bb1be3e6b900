package boxshogi

// Position 棋盘 + 双方状态 + 轮到谁走。
// 所有落子、提子、持驹变化都经过 put/lift/addCapture 等方法，
// 棋盘、棋子索引与哈希三者同时更新。
type Position struct {
	Board      Board
	SideToMove Side
	Hash       uint64

	players [2]*PlayerState
}

func NewEmptyPosition() *Position {
	initZobrist()
	p := &Position{
		SideToMove: Lower,
		players:    [2]*PlayerState{newPlayerState(Lower), newPlayerState(Upper)},
	}
	p.Hash = p.CalculateHash()
	return p
}

// NewInitialPosition 标准开局
func NewInitialPosition() *Position {
	p := NewEmptyPosition()
	for _, e := range standardLayout {
		pc, err := ParsePieceName(e.name)
		if err != nil {
			panic(err)
		}
		at, err := ParseCoord(e.at)
		if err != nil {
			panic(err)
		}
		p.put(at, pc)
	}
	return p
}

func (p *Position) Player(side Side) *PlayerState {
	if side == Upper {
		return p.players[1]
	}
	return p.players[0]
}

// Clone 深拷贝，棋子对象也是新的
func (p *Position) Clone() *Position {
	np := NewEmptyPosition()
	for _, side := range []Side{Lower, Upper} {
		src := p.Player(side)
		for _, lp := range src.Pieces() {
			cp := *lp.Piece
			np.put(lp.At, &cp)
		}
		for _, pt := range src.captures {
			np.addCapture(side, pt)
		}
	}
	np.SetSideToMove(p.SideToMove)
	return np
}

func (p *Position) SetSideToMove(side Side) {
	if side != p.SideToMove {
		p.Hash ^= zobristSide
	}
	p.SideToMove = side
}

func (p *Position) put(at Coord, pc *Piece) {
	if old := p.Board.Get(at); old != nil {
		p.lift(at)
	}
	p.Board.Place(at, pc)
	p.Player(pc.Side).track(pc, at)
	p.Hash ^= pieceHashKey(pc, at)
}

func (p *Position) lift(at Coord) *Piece {
	pc := p.Board.Remove(at)
	if pc == nil {
		return nil
	}
	p.Player(pc.Side).untrack(pc)
	p.Hash ^= pieceHashKey(pc, at)
	return pc
}

func (p *Position) addCapture(side Side, pt PieceType) {
	ps := p.Player(side)
	p.Hash ^= handHashKey(side, pt, ps.captureCount(pt))
	ps.insertCapture(len(ps.captures), pt)
}

// popCapture 撤销最近一次 addCapture
func (p *Position) popCapture(side Side) {
	ps := p.Player(side)
	if len(ps.captures) == 0 {
		return
	}
	pt := ps.removeCaptureAt(len(ps.captures) - 1)
	p.Hash ^= handHashKey(side, pt, ps.captureCount(pt))
}

// takeCapture 取出一个 pt，返回其原下标以便撤销
func (p *Position) takeCapture(side Side, pt PieceType) (int, bool) {
	ps := p.Player(side)
	i := ps.captureIndex(pt)
	if i < 0 {
		return -1, false
	}
	ps.removeCaptureAt(i)
	p.Hash ^= handHashKey(side, pt, ps.captureCount(pt))
	return i, true
}

func (p *Position) restoreCapture(side Side, i int, pt PieceType) {
	ps := p.Player(side)
	p.Hash ^= handHashKey(side, pt, ps.captureCount(pt))
	ps.insertCapture(i, pt)
}

// undoInfo 记录一次变更，unmake 时精确还原（含持驹顺序与升变状态）
type undoInfo struct {
	kind           ActionKind
	side           Side
	from, to       Coord
	moved          *Piece
	captured       *Piece
	promotedBefore bool
	captureIdx     int
}

// makeMove 不做合法性检查。吃子入持驹（降级），
// 请求升变或 Preview 走到底线时升变。
func (p *Position) makeMove(from, to Coord, promote bool) (undoInfo, bool) {
	pc := p.Board.Get(from)
	if pc == nil || !to.OnBoard() {
		return undoInfo{}, false
	}
	p.lift(from)
	u := undoInfo{
		kind:           ActionMove,
		side:           pc.Side,
		from:           from,
		to:             to,
		moved:          pc,
		promotedBefore: pc.Promoted,
	}
	if victim := p.lift(to); victim != nil {
		u.captured = victim
		p.addCapture(pc.Side, victim.Type)
	}
	if pc.CanPromote() && (promote || mustPromote(pc, to)) {
		pc.Promoted = true
	}
	p.put(to, pc)
	return u, true
}

func (p *Position) makeDrop(side Side, pt PieceType, to Coord) (undoInfo, bool) {
	if !to.OnBoard() || !p.Board.IsEmpty(to) {
		return undoInfo{}, false
	}
	i, ok := p.takeCapture(side, pt)
	if !ok {
		return undoInfo{}, false
	}
	pc := NewPiece(pt, side)
	p.put(to, pc)
	return undoInfo{kind: ActionDrop, side: side, to: to, moved: pc, captureIdx: i}, true
}

func (p *Position) unmake(u undoInfo) {
	switch u.kind {
	case ActionMove:
		pc := p.lift(u.to)
		pc.Promoted = u.promotedBefore
		p.put(u.from, pc)
		if u.captured != nil {
			p.popCapture(u.side)
			p.put(u.to, u.captured)
		}
	case ActionDrop:
		p.lift(u.to)
		p.restoreCapture(u.side, u.captureIdx, u.moved.Type)
	}
}

// do 按 side 执行动作（不做规则检查）
func (p *Position) do(a Action, side Side) (undoInfo, bool) {
	if a.Kind == ActionDrop {
		return p.makeDrop(side, a.Piece, a.To)
	}
	return p.makeMove(a.From, a.To, a.Promote)
}

// simulate 临时执行 a，调用 fn 后必定还原
func (p *Position) simulate(a Action, side Side, fn func()) bool {
	u, ok := p.do(a, side)
	if !ok {
		return false
	}
	defer p.unmake(u)
	fn()
	return true
}

// mustPromote Preview 到达升变区必须升变
func mustPromote(pc *Piece, to Coord) bool {
	return pc.Type == PiecePreview && !pc.Promoted && to.Row == pc.Side.PromotionRow()
}
