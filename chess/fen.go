package chess

import (
	"strconv"
	"strings"
)

// InitialFEN is the FEN of the starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN serializes the position as a six-field FEN string.
func (g *Game) FEN() string {
	var sb strings.Builder
	writePlacement(&sb, &g.board)
	sb.WriteByte(' ')
	if g.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	g.writeCastling(&sb)
	sb.WriteByte(' ')
	sb.WriteString(g.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.fullmove))
	return sb.String()
}

// writePlacement emits ranks 8 to 1, run-length encoding empty cells.
func writePlacement(sb *strings.Builder, board *Board) {
	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := board[rank][file]
			if piece.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank < 7 {
			sb.WriteByte('/')
		}
	}
}

func (g *Game) writeCastling(sb *strings.Builder) {
	n := sb.Len()
	for _, c := range []Color{White, Black} {
		for _, side := range []CastleSide{Kingside, Queenside} {
			if g.rights[c][side] {
				sb.WriteByte(Piece{Kind: castleLetter[side], Color: c}.Letter())
			}
		}
	}
	if sb.Len() == n {
		sb.WriteByte('-')
	}
}

var castleLetter = [2]Kind{Kingside: King, Queenside: Queen}
