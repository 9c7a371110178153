package chess

// CastleSide selects the wing a King castles towards.
type CastleSide uint8

const (
	Kingside CastleSide = iota
	Queenside
)

func (side CastleSide) String() string {
	if side == Kingside {
		return "kingside"
	}
	return "queenside"
}

func (side CastleSide) rookFile() int {
	if side == Kingside {
		return 7
	}
	return 0
}

// transit lists the squares the King crosses or lands on.
func (side CastleSide) transit(rank int) []Square {
	if side == Kingside {
		return []Square{Sq(rank, 5), Sq(rank, 6)}
	}
	return []Square{Sq(rank, 3), Sq(rank, 2)}
}

const kingFile = 4

// CanCastle reports whether color c may castle on side given board. With
// strict unset the squares the King crosses are not tested for attacks;
// move shapes use that mode, legal filtering uses the strict one.
func (g *Game) CanCastle(c Color, side CastleSide, board *Board, strict bool) bool {
	if !g.rights[c][side] {
		return false
	}
	rank := c.homeRank()
	king := board.At(Sq(rank, kingFile))
	if !king.Is(King, c) || king.Moved {
		return false
	}
	rookFile := side.rookFile()
	rook := board.At(Sq(rank, rookFile))
	if !rook.Is(Rook, c) || rook.Moved {
		return false
	}
	lo, hi := rookFile, kingFile
	if lo > hi {
		lo, hi = hi, lo
	}
	for file := lo + 1; file < hi; file++ {
		if !board.At(Sq(rank, file)).Empty() {
			return false
		}
	}
	if IsInCheck(board, c) {
		return false
	}
	if strict {
		for _, sq := range side.transit(rank) {
			if IsSquareAttacked(board, sq, c.Opponent()) {
				return false
			}
		}
	}
	return true
}

// LegalMoves returns every move of color c that does not leave its own
// King attacked. Each candidate is played on a copy of the board. The en
// passant target only applies to the side to move.
func (g *Game) LegalMoves(c Color) []Move {
	enPassant := NoSquare
	if c == g.turn {
		enPassant = g.enPassant
	}
	castle := func(side CastleSide) bool {
		return g.CanCastle(c, side, &g.board, false)
	}
	var moves []Move
	g.board.squares(c, func(from Square, piece Piece) {
		for _, to := range g.board.pseudoMoves(from, enPassant, castle) {
			if piece.Kind == King && abs(to.File-from.File) == 2 {
				side := Kingside
				if to.File < from.File {
					side = Queenside
				}
				if !g.CanCastle(c, side, &g.board, true) {
					continue
				}
			}
			scratch := g.board
			scratch.Apply(from, to, Queen)
			if !IsInCheck(&scratch, c) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	})
	return moves
}

// LegalMovesFrom narrows LegalMoves for the side to move to one origin.
func (g *Game) LegalMovesFrom(from Square) []Move {
	var moves []Move
	for _, m := range g.LegalMoves(g.turn) {
		if m.From == from {
			moves = append(moves, m)
		}
	}
	return moves
}

// IsLegal reports whether from→to is a legal move for the side to move.
func (g *Game) IsLegal(from, to Square) bool {
	for _, m := range g.LegalMovesFrom(from) {
		if m.To == to {
			return true
		}
	}
	return false
}
