package chess

import (
	"encoding/json"
	"errors"
	"fmt"

	. "gopkg.in/check.v1"
)

type MoveSuite struct{}

var _ = Suite(&MoveSuite{})

func (s *MoveSuite) TestSquares(c *C) {
	sq, err := ParseSquare("a8")
	c.Assert(err, IsNil)
	c.Assert(sq, Equals, Sq(0, 0))
	sq, err = ParseSquare("h1")
	c.Assert(err, IsNil)
	c.Assert(sq, Equals, Sq(7, 7))
	c.Assert(Sq(4, 4).String(), Equals, "e4")
	c.Assert(NoSquare.String(), Equals, "-")
	c.Assert(Sq(8, 0).Valid(), Equals, false)

	for _, text := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		_, err := ParseSquare(text)
		c.Assert(errors.Is(err, ErrInvalidSquare), Equals, true, Commentf("%q", text))
	}
}

func (s *MoveSuite) TestParseMove(c *C) {
	m, err := ParseMove("e2e4")
	c.Assert(err, IsNil)
	c.Assert(m, Equals, Move{From: MustSquare("e2"), To: MustSquare("e4")})
	c.Assert(m.String(), Equals, "e2e4")

	m, err = ParseMove("b7b8N")
	c.Assert(err, IsNil)
	c.Assert(m.Promotion, Equals, Knight)
	c.Assert(m.String(), Equals, "b7b8n")

	for _, text := range []string{"", "e2", "e2e9", "e7e8k", "e7e8x", "e2-e4"} {
		_, err := ParseMove(text)
		c.Assert(errors.Is(err, ErrInvalidMove), Equals, true, Commentf("%q", text))
	}
}

func (s *MoveSuite) TestScanMoves(c *C) {
	var first, second Move
	n, err := fmt.Sscan("g1f3 a7a8q", &first, &second)
	c.Assert(err, IsNil)
	c.Assert(n, Equals, 2)
	c.Assert(first.String(), Equals, "g1f3")
	c.Assert(second.Promotion, Equals, Queen)
}

func (s *MoveSuite) TestMoveJSON(c *C) {
	raw, err := json.Marshal([]Move{{From: MustSquare("e7"), To: MustSquare("e8"), Promotion: Rook}})
	c.Assert(err, IsNil)
	c.Assert(string(raw), Equals, `["e7e8r"]`)

	var moves []Move
	c.Assert(json.Unmarshal([]byte(`["d2d4","c7c5"]`), &moves), IsNil)
	c.Assert(moves, HasLen, 2)
	c.Assert(moves[1].From, Equals, MustSquare("c7"))

	var m Move
	c.Assert(json.Unmarshal([]byte(`12`), &m), NotNil)
	c.Assert(json.Unmarshal([]byte(`"zz"`), &m), NotNil)
}

func (s *MoveSuite) TestBoardString(c *C) {
	board := NewBoard()
	lines := board.String()
	c.Assert(lines[:len("8 ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜\n")], Equals, "8 ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜\n")
	c.Assert(NewPiece(Knight, Black).Letter(), Equals, byte('n'))
	c.Assert(Piece{}.Letter(), Equals, byte(0))
	c.Assert(KindFromLetter('Q'), Equals, Queen)
	c.Assert(KindFromLetter('x'), Equals, None)
}
