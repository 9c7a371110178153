package chess

import "strings"

// Board is the 8×8 grid indexed [rank][file]. It is a value: assigning a
// Board copies every cell, which is what move simulation relies on.
type Board [8][8]Piece

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	var board Board
	for file, kind := range backRank {
		board[Black.homeRank()][file] = NewPiece(kind, Black)
		board[Black.homeRank()+Black.forward()][file] = NewPiece(Pawn, Black)
		board[White.homeRank()+White.forward()][file] = NewPiece(Pawn, White)
		board[White.homeRank()][file] = NewPiece(kind, White)
	}
	return board
}

// At returns the piece on sq; off-board squares read as empty.
func (board *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	return board[sq.Rank][sq.File]
}

// Put places p on sq. Off-board squares are ignored.
func (board *Board) Put(sq Square, p Piece) {
	if sq.Valid() {
		board[sq.Rank][sq.File] = p
	}
}

func (board *Board) remove(sq Square) Piece {
	p := board.At(sq)
	board.Put(sq, Piece{})
	return p
}

// findKing locates the King of color c.
func (board *Board) findKing(c Color) (Square, bool) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if board[rank][file].Is(King, c) {
				return Sq(rank, file), true
			}
		}
	}
	return NoSquare, false
}

// squares calls fn for every occupied square of color c, in grid order.
func (board *Board) squares(c Color, fn func(Square, Piece)) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if p := board[rank][file]; !p.Empty() && p.Color == c {
				fn(Sq(rank, file), p)
			}
		}
	}
}

// Effect describes what Apply did.
type Effect struct {
	Piece     Piece
	Captured  Piece
	PawnMove  bool
	Capture   bool
	Castle    bool
	EnPassant bool
	Promotion Kind
}

// Apply moves the piece on from to to with all mechanical side effects:
// castling rook relocation, en passant removal, promotion and the moved
// flag. The move must already be validated.
func (board *Board) Apply(from, to Square, promotion Kind) Effect {
	piece := board.At(from)
	effect := Effect{Piece: piece, PawnMove: piece.Kind == Pawn}
	if piece.Empty() {
		return effect
	}

	switch {
	case piece.Kind == King && abs(to.File-from.File) == 2:
		rookFile, step := 7, 1
		if to.File < from.File {
			rookFile, step = 0, -1
		}
		rook := board.remove(Sq(from.Rank, rookFile))
		if !rook.Empty() {
			rook.Moved = true
		}
		board.Put(Sq(from.Rank, from.File+step), rook)
		effect.Castle = true
	case piece.Kind == Pawn && abs(to.File-from.File) == 1 && board.At(to).Empty():
		effect.Captured = board.remove(Sq(from.Rank, to.File))
		effect.EnPassant = true
	}

	if target := board.remove(to); !target.Empty() {
		effect.Captured = target
	}
	board.remove(from)

	if piece.Kind == Pawn && to.Rank == piece.Color.promotionRank() {
		if !promotion.promotable() {
			promotion = Queen
		}
		piece = NewPiece(promotion, piece.Color)
		effect.Promotion = promotion
	}
	piece.Moved = true
	board.Put(to, piece)

	effect.Capture = !effect.Captured.Empty()
	return effect
}

// String renders the board with unicode glyphs, rank 8 first.
func (board Board) String() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		sb.WriteByte(byte('8' - rank))
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			sb.WriteRune(board[rank][file].Glyph())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
