package chess

import (
	"math/rand"

	nchess "github.com/notnil/chess"
	. "gopkg.in/check.v1"
)

type LegalSuite struct{}

var _ = Suite(&LegalSuite{})

// perft counts leaf nodes of the legal move tree, promoting to queens only.
func perft(g *Game, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := g.LegalMoves(g.Turn())
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		next := g.Clone()
		m.Promotion = Queen
		if _, err := next.Play(m); err != nil {
			panic(err)
		}
		nodes += perft(next, depth-1)
	}
	return nodes
}

func (s *LegalSuite) TestPerftStartingPosition(c *C) {
	for depth, want := range []int{1, 20, 400, 8902} {
		c.Check(perft(NewGame(), depth), Equals, want, Commentf("depth %d", depth))
	}
}

// randomPlayout plays seeded random legal moves and calls check before each.
func randomPlayout(c *C, seed int64, plies int, check func(*Game)) {
	rng := rand.New(rand.NewSource(seed))
	g := NewGame()
	for ply := 0; ply < plies && !g.Over(); ply++ {
		check(g)
		moves := g.LegalMoves(g.Turn())
		c.Assert(moves, Not(HasLen), 0)
		m := moves[rng.Intn(len(moves))]
		m.Promotion = Queen
		result, err := g.Play(m)
		c.Assert(err, IsNil)
		c.Assert(result, Equals, MoveApplied)
	}
}

func (s *LegalSuite) TestLegalMovesNeverLeaveKingAttacked(c *C) {
	for seed := int64(1); seed <= 5; seed++ {
		randomPlayout(c, seed, 120, func(g *Game) {
			turn := g.Turn()
			for _, m := range g.LegalMoves(turn) {
				scratch := g.Board()
				scratch.Apply(m.From, m.To, Queen)
				c.Assert(IsInCheck(&scratch, turn), Equals, false, Commentf("%s after %s", m, g.FEN()))
			}
		})
	}
}

func (s *LegalSuite) TestSimulationDoesNotTouchBoard(c *C) {
	randomPlayout(c, 42, 60, func(g *Game) {
		before := g.Board()
		fen := g.FEN()
		g.LegalMoves(White)
		g.LegalMoves(Black)
		c.Assert(g.Board(), DeepEquals, before)
		c.Assert(g.FEN(), Equals, fen)
	})
}

func referenceMoves(c *C, fen string) map[string]bool {
	option, err := nchess.FEN(fen)
	c.Assert(err, IsNil)
	moves := make(map[string]bool)
	for _, m := range nchess.NewGame(option).ValidMoves() {
		moves[m.S1().String()+m.S2().String()] = true
	}
	return moves
}

func (s *LegalSuite) TestRandomPlayoutsMatchReference(c *C) {
	for seed := int64(100); seed < 110; seed++ {
		randomPlayout(c, seed, 100, func(g *Game) {
			got := make(map[string]bool)
			for _, m := range g.LegalMoves(g.Turn()) {
				got[m.From.String()+m.To.String()] = true
			}
			c.Assert(got, DeepEquals, referenceMoves(c, g.FEN()), Commentf("fen %s", g.FEN()))
		})
	}
}

func (s *LegalSuite) TestPseudoShapes(c *C) {
	var board Board
	board.Put(MustSquare("d4"), w(Queen))
	c.Assert(board.pseudoMoves(MustSquare("d4"), NoSquare, nil), HasLen, 27)

	board.Put(MustSquare("d6"), w(Pawn))
	board.Put(MustSquare("f6"), b(Pawn))
	moves := board.pseudoMoves(MustSquare("d4"), NoSquare, nil)
	c.Assert(moves, HasLen, 22)

	c.Assert(board.pseudoMoves(MustSquare("a1"), NoSquare, nil), HasLen, 0)

	board = Board{}
	board.Put(MustSquare("a1"), b(Knight))
	c.Assert(board.pseudoMoves(MustSquare("a1"), NoSquare, nil), HasLen, 2)
	board.Put(MustSquare("h8"), w(King))
	c.Assert(board.pseudoMoves(MustSquare("h8"), NoSquare, nil), HasLen, 3)
}

func (s *LegalSuite) TestPawnShapes(c *C) {
	g := NewGame()
	board := g.Board()
	moves := board.pseudoMoves(MustSquare("e2"), NoSquare, nil)
	c.Assert(moves, DeepEquals, []Square{MustSquare("e3"), MustSquare("e4")})

	board.Put(MustSquare("e3"), b(Knight))
	c.Assert(board.pseudoMoves(MustSquare("e2"), NoSquare, nil), HasLen, 0)
	c.Assert(board.pseudoMoves(MustSquare("d2"), NoSquare, nil), HasLen, 3)
	c.Assert(board.pseudoMoves(MustSquare("f2"), NoSquare, nil), HasLen, 3)
}

func (s *LegalSuite) TestAttacks(c *C) {
	board := NewBoard()
	c.Assert(IsSquareAttacked(&board, MustSquare("e3"), White), Equals, true)
	c.Assert(IsSquareAttacked(&board, MustSquare("e4"), White), Equals, false)
	c.Assert(IsSquareAttacked(&board, MustSquare("f6"), Black), Equals, true)
	c.Assert(IsSquareAttacked(&board, MustSquare("e5"), Black), Equals, false)
	c.Assert(IsSquareAttacked(&board, NoSquare, Black), Equals, false)

	board = Board{}
	board.Put(MustSquare("e1"), w(King))
	board.Put(MustSquare("a1"), w(Rook))
	c.Assert(IsSquareAttacked(&board, MustSquare("d2"), White), Equals, true)
	c.Assert(IsSquareAttacked(&board, MustSquare("e3"), White), Equals, false)
	c.Assert(IsSquareAttacked(&board, MustSquare("g1"), White), Equals, false)
	c.Assert(IsSquareAttacked(&board, MustSquare("a8"), White), Equals, true)
}
