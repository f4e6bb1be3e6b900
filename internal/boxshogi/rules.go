package boxshogi

// IsPathClear 判断 from 与 to 之间（不含两端）是否无子。
// 沿符号方向逐格前进，非直线/斜线的位移会一路走出棋盘为止。
func (p *Position) IsPathClear(from, to Coord) bool {
	dc, dr := sign(to.Col-from.Col), sign(to.Row-from.Row)
	cur := from
	for cur != to && cur.OnBoard() {
		if cur != from && p.Board.Get(cur) != nil {
			return false
		}
		cur = Coord{Col: cur.Col + dc, Row: cur.Row + dr}
	}
	return true
}

// canPromoteMove from 或 to 在 side 的升变区内，且棋子可升变
func canPromoteMove(pc *Piece, from, to Coord, side Side) bool {
	zone := side.PromotionRow()
	return pc.CanPromote() && (from.Row == zone || to.Row == zone)
}

// IsMoveLegal 只看几何与路径，不看目标格归属，也不看走后是否被将。
func (p *Position) IsMoveLegal(from, to Coord, side Side, promote bool) bool {
	if !from.OnBoard() || !to.OnBoard() {
		return false
	}
	pc := p.Board.Get(from)
	if pc == nil {
		return false
	}
	if promote && !canPromoteMove(pc, from, to, side) {
		return false
	}
	if !p.IsPathClear(from, to) {
		return false
	}
	return pc.MovementAllowed(to.Col-from.Col, to.Row-from.Row)
}

// IsInCheck 返回 side 的 Drive 是否被将，以及所有攻击者位置（按坐标顺序）。
// Drive 不在盘上时视为未被将。
func (p *Position) IsInCheck(side Side) (bool, []Coord) {
	drive, ok := p.Player(side).Drive()
	if !ok {
		return false, nil
	}
	var attackers []Coord
	for _, lp := range p.Player(side.Opponent()).Pieces() {
		if p.IsMoveLegal(lp.At, drive, side.Opponent(), false) {
			attackers = append(attackers, lp.At)
		}
	}
	return len(attackers) > 0, attackers
}

// InCheck 只关心是否被将
func (p *Position) InCheck(side Side) bool {
	in, _ := p.IsInCheck(side)
	return in
}

// leavesDriveSafe 模拟 a 后 side 是否不再被将；盘面必定还原
func (p *Position) leavesDriveSafe(a Action, side Side) bool {
	safe := false
	ok := p.simulate(a, side, func() {
		safe = !p.InCheck(side)
	})
	return ok && safe
}

// EnumerateEscapes 列出 side 被将时所有可解将的动作。
// 顺序：Drive 走一步；吃掉唯一攻击者；在攻击线上垫子（先走子后打入）。
// 双将只考虑 Drive 走一步。未被将时返回 nil。
func (p *Position) EnumerateEscapes(side Side) []Action {
	inCheck, attackers := p.IsInCheck(side)
	if !inCheck {
		return nil
	}
	drive, _ := p.Player(side).Drive()
	var out []Action

	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			to := Coord{Col: drive.Col + dc, Row: drive.Row + dr}
			if !to.OnBoard() {
				continue
			}
			if occ := p.Board.Get(to); occ != nil && occ.Side == side {
				continue
			}
			a := MoveAction(drive, to, false)
			if p.leavesDriveSafe(a, side) {
				out = append(out, a)
			}
		}
	}

	if len(attackers) != 1 {
		return out
	}
	attacker := attackers[0]
	own := p.Player(side).Pieces()

	for _, lp := range own {
		if lp.Piece.Type == PieceDrive {
			continue
		}
		if !p.IsMoveLegal(lp.At, attacker, side, false) {
			continue
		}
		a := MoveAction(lp.At, attacker, false)
		if p.leavesDriveSafe(a, side) {
			out = append(out, a)
		}
	}

	for _, sq := range between(attacker, drive) {
		for _, lp := range own {
			if lp.Piece.Type == PieceDrive || !p.IsMoveLegal(lp.At, sq, side, false) {
				continue
			}
			a := MoveAction(lp.At, sq, false)
			if p.leavesDriveSafe(a, side) {
				out = append(out, a)
			}
		}
		for _, pt := range p.Player(side).distinctCaptures() {
			if p.CheckDrop(pt, side, sq) != nil {
				continue
			}
			a := DropAction(pt, sq)
			if p.leavesDriveSafe(a, side) {
				out = append(out, a)
			}
		}
	}
	return out
}

// between 攻击者与 Drive 之间的格子，从攻击者一侧开始；不共线或相邻时为空
func between(from, to Coord) []Coord {
	dCol, dRow := to.Col-from.Col, to.Row-from.Row
	if dCol != 0 && dRow != 0 && abs(dCol) != abs(dRow) {
		return nil
	}
	dc, dr := sign(dCol), sign(dRow)
	var out []Coord
	cur := Coord{Col: from.Col + dc, Row: from.Row + dr}
	for cur != to && cur.OnBoard() {
		out = append(out, cur)
		cur = Coord{Col: cur.Col + dc, Row: cur.Row + dr}
	}
	return out
}

// hasUnpromotedPreviewInFile side 在 col 列是否已有未升变的 Preview
func (p *Position) hasUnpromotedPreviewInFile(side Side, col int) bool {
	for row := 0; row < BoardSize; row++ {
		pc := p.Board.Get(Coord{Col: col, Row: row})
		if pc != nil && pc.Side == side && pc.Type == PiecePreview && !pc.Promoted {
			return true
		}
	}
	return false
}

// CheckDrop 校验打入；合法返回 nil，否则返回带 Reason 的 *Error。
// 不检查打入后己方是否仍被将，那由调用方模拟判断。
func (p *Position) CheckDrop(pt PieceType, side Side, to Coord) error {
	if !to.OnBoard() {
		return newError(KindMalformedAction, ReasonInvalidFormat, "square %s is off the board", to)
	}
	if !p.Player(side).HasCapture(pt) {
		return newError(KindIllegalDrop, ReasonNotInCaptures, "%s has no %s in captures", side, pt)
	}
	if !p.Board.IsEmpty(to) {
		return newError(KindIllegalDrop, ReasonDropOccupied, "%s is occupied", to)
	}
	if pt != PiecePreview {
		return nil
	}
	if to.Row == side.PromotionRow() {
		return newError(KindIllegalDrop, ReasonPreviewInZone, "preview cannot be dropped into the promotion zone")
	}
	if p.hasUnpromotedPreviewInFile(side, to.Col) {
		return newError(KindIllegalDrop, ReasonTwoPreviewsInFile, "%s already has a preview in file %c", side, 'a'+to.Col)
	}
	opp := side.Opponent()
	mate := false
	p.simulate(DropAction(pt, to), side, func() {
		mate = p.InCheck(opp) && len(p.EnumerateEscapes(opp)) == 0
	})
	if mate {
		return newError(KindIllegalDrop, ReasonPreviewDropMate, "preview drop on %s gives immediate checkmate", to)
	}
	return nil
}

// IsDropLegal 是 CheckDrop 的布尔形式
func (p *Position) IsDropLegal(pt PieceType, side Side, to Coord) bool {
	return p.CheckDrop(pt, side, to) == nil
}
