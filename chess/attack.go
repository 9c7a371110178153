package chess

import "github.com/apex/log"

// IsSquareAttacked reports whether any piece of color by attacks sq.
// Pawns attack only their two forward diagonals and Kings only their
// adjacent cells, so castling shapes are never consulted here.
func IsSquareAttacked(board *Board, sq Square, by Color) bool {
	if !sq.Valid() {
		return false
	}
	attacked := false
	board.squares(by, func(from Square, piece Piece) {
		if attacked {
			return
		}
		switch piece.Kind {
		case Pawn:
			attacked = from.Rank+by.forward() == sq.Rank && abs(from.File-sq.File) == 1
		case King:
			attacked = from != sq && abs(from.Rank-sq.Rank) <= 1 && abs(from.File-sq.File) <= 1
		default:
			for _, to := range board.pseudoMoves(from, NoSquare, nil) {
				if to == sq {
					attacked = true
					break
				}
			}
		}
	})
	return attacked
}

// IsInCheck reports whether the King of color c is attacked. A board with
// no such King is corrupt; that is logged and reported as check.
func IsInCheck(board *Board, c Color) bool {
	king, ok := board.findKing(c)
	if !ok {
		log.WithField("color", c).Error("king not found during check detection")
		return true
	}
	return IsSquareAttacked(board, king, c.Opponent())
}
