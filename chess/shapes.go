package chess

var (
	orthogonal  = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonal    = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	adjacent    = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightJumps = [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// castleCheck answers whether the side may castle on the given wing. Move
// shapes use it without intermediate-square attack checks.
type castleCheck func(side CastleSide) bool

// pseudoMoves lists the squares the piece on from could reach, ignoring
// whether its own King is left in check. enPassant is NoSquare when there is
// no target; castle may be nil to suppress castling shapes.
func (board *Board) pseudoMoves(from Square, enPassant Square, castle castleCheck) []Square {
	piece := board.At(from)
	switch piece.Kind {
	case Pawn:
		return board.movesForPawn(from, piece, enPassant)
	case Rook:
		return board.movesForRook(from, piece)
	case Knight:
		return board.movesForKnight(from, piece)
	case Bishop:
		return board.movesForBishop(from, piece)
	case Queen:
		return board.movesForQueen(from, piece)
	case King:
		return board.movesForKing(from, piece, castle)
	}
	return nil
}

func (board *Board) movesForPawn(from Square, piece Piece, enPassant Square) []Square {
	var moves []Square
	dir := piece.Color.forward()
	one := from.offset(dir, 0)
	if one.Valid() && board.At(one).Empty() {
		moves = append(moves, one)
		two := from.offset(2*dir, 0)
		if !piece.Moved && two.Valid() && board.At(two).Empty() {
			moves = append(moves, two)
		}
	}
	for _, side := range []int{-1, 1} {
		to := from.offset(dir, side)
		if !to.Valid() {
			continue
		}
		if target := board.At(to); !target.Empty() && target.Color != piece.Color {
			moves = append(moves, to)
		} else if enPassant.Valid() && to == enPassant && target.Empty() {
			moves = append(moves, to)
		}
	}
	return moves
}

// slide walks each ray until the edge, stopping before an own piece and on
// an enemy piece.
func (board *Board) slide(from Square, piece Piece, rays [][2]int) []Square {
	var moves []Square
	for _, ray := range rays {
		for to := from.offset(ray[0], ray[1]); to.Valid(); to = to.offset(ray[0], ray[1]) {
			target := board.At(to)
			if target.Empty() {
				moves = append(moves, to)
				continue
			}
			if target.Color != piece.Color {
				moves = append(moves, to)
			}
			break
		}
	}
	return moves
}

// step tries each fixed offset once, skipping cells held by own pieces.
func (board *Board) step(from Square, piece Piece, offsets [][2]int) []Square {
	var moves []Square
	for _, offset := range offsets {
		to := from.offset(offset[0], offset[1])
		if !to.Valid() {
			continue
		}
		if target := board.At(to); target.Empty() || target.Color != piece.Color {
			moves = append(moves, to)
		}
	}
	return moves
}

func (board *Board) movesForRook(from Square, piece Piece) []Square {
	return board.slide(from, piece, orthogonal)
}

func (board *Board) movesForBishop(from Square, piece Piece) []Square {
	return board.slide(from, piece, diagonal)
}

func (board *Board) movesForQueen(from Square, piece Piece) []Square {
	return append(board.movesForRook(from, piece), board.movesForBishop(from, piece)...)
}

func (board *Board) movesForKnight(from Square, piece Piece) []Square {
	return board.step(from, piece, knightJumps)
}

func (board *Board) movesForKing(from Square, piece Piece, castle castleCheck) []Square {
	moves := board.step(from, piece, adjacent)
	if castle == nil || piece.Moved {
		return moves
	}
	if castle(Kingside) {
		moves = append(moves, from.offset(0, 2))
	}
	if castle(Queenside) {
		moves = append(moves, from.offset(0, -2))
	}
	return moves
}
