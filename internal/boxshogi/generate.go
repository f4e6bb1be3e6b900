package boxshogi

// LegalActions 生成 side 的全部合法动作：走子（含可选升变）与打入，
// 均已排除走后己方被将的情况。被将时结果与 EnumerateEscapes 等价（顺序不同）。
func (p *Position) LegalActions(side Side) []Action {
	var out []Action
	for _, lp := range p.Player(side).Pieces() {
		for col := 0; col < BoardSize; col++ {
			for row := 0; row < BoardSize; row++ {
				to := Coord{Col: col, Row: row}
				if to == lp.At {
					continue
				}
				if occ := p.Board.Get(to); occ != nil && occ.Side == side {
					continue
				}
				if !p.IsMoveLegal(lp.At, to, side, false) {
					continue
				}
				a := MoveAction(lp.At, to, false)
				if p.leavesDriveSafe(a, side) {
					out = append(out, a)
					// Preview 到底线会被强制升变，无需单独列出
					if canPromoteMove(lp.Piece, lp.At, to, side) && !mustPromote(lp.Piece, to) {
						out = append(out, MoveAction(lp.At, to, true))
					}
				}
			}
		}
	}
	for _, pt := range p.Player(side).distinctCaptures() {
		for col := 0; col < BoardSize; col++ {
			for row := 0; row < BoardSize; row++ {
				to := Coord{Col: col, Row: row}
				if p.CheckDrop(pt, side, to) != nil {
					continue
				}
				a := DropAction(pt, to)
				if p.leavesDriveSafe(a, side) {
					out = append(out, a)
				}
			}
		}
	}
	return out
}
