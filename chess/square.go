// Package chess implements the rules of chess: move generation, check
// detection, legal move filtering, castling, en passant, promotion and FEN
// output for a single game.
package chess

import (
	"errors"
	"fmt"
)

// ErrInvalidSquare is returned when algebraic square text cannot be parsed.
var ErrInvalidSquare = errors.New("invalid square")

// Square is a (rank, file) cell. Rank 0 is Black's back rank (the eighth
// rank), file 0 is the a-file.
type Square struct {
	Rank int
	File int
}

// NoSquare is the canonical out-of-board square.
var NoSquare = Square{Rank: -1, File: -1}

// Sq builds a square from rank and file indexes.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < 8 && s.File >= 0 && s.File < 8
}

func (s Square) offset(dRank, dFile int) Square {
	return Square{Rank: s.Rank + dRank, File: s.File + dFile}
}

// String returns the algebraic name ("e4"), or "-" off the board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, 8-s.Rank)
}

// ParseSquare converts algebraic text such as "e4" to a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	return Square{Rank: 8 - int(rank-'0'), File: int(file - 'a')}, nil
}

// MustSquare is ParseSquare for constant input; it panics on bad text.
func MustSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}
