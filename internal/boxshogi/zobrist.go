package boxshogi

import "sync"

const (
	zobristPieceTypes = 7 // PieceType 范围 [1..6]，0 保留
	zobristSquares    = BoardSize * BoardSize
	zobristMaxHand    = 12 // 单一类型持驹数上限；超出部分不计入哈希
)

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristPieceTypes][2][zobristSquares]uint64
	zobristHand   [2][zobristPieceTypes][zobristMaxHand]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := 1; pt < zobristPieceTypes; pt++ {
				for pr := 0; pr < 2; pr++ {
					for sq := 0; sq < zobristSquares; sq++ {
						zobristPieces[side][pt][pr][sq] = next()
					}
				}
				for n := 0; n < zobristMaxHand; n++ {
					zobristHand[side][pt][n] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func sideIndex(side Side) int {
	if side == Upper {
		return 1
	}
	return 0
}

func pieceHashKey(pc *Piece, at Coord) uint64 {
	if pc == nil || !at.OnBoard() {
		return 0
	}
	pt := int(pc.Type)
	if pt <= 0 || pt >= zobristPieceTypes {
		return 0
	}
	pr := 0
	if pc.Promoted {
		pr = 1
	}
	return zobristPieces[sideIndex(pc.Side)][pt][pr][at.Col*BoardSize+at.Row]
}

// handHashKey 第 n 枚（从 0 计）同类持驹的键；持有 c 枚即异或 0..c-1 的键
func handHashKey(side Side, pt PieceType, n int) uint64 {
	if pt <= 0 || int(pt) >= zobristPieceTypes || n < 0 || n >= zobristMaxHand {
		return 0
	}
	return zobristHand[sideIndex(side)][pt][n]
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希（棋盘、持驹、行棋方）。
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			at := Coord{Col: col, Row: row}
			h ^= pieceHashKey(p.Board.Get(at), at)
		}
	}
	for _, side := range []Side{Lower, Upper} {
		counts := make(map[PieceType]int)
		for _, pt := range p.Player(side).captures {
			h ^= handHashKey(side, pt, counts[pt])
			counts[pt]++
		}
	}
	if p.SideToMove == Upper {
		h ^= zobristSide
	}
	return h
}
