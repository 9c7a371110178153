package chess

import (
	"errors"
	"fmt"

	"github.com/apex/log"
)

var (
	// ErrGameOver rejects any move after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")
	// ErrNoPiece is returned when the origin square is empty.
	ErrNoPiece = errors.New("no piece on square")
	// ErrNotYourTurn is returned when the origin holds the opponent's piece.
	ErrNotYourTurn = errors.New("not your turn")
	// ErrIllegalMove is returned for a destination outside the legal set.
	ErrIllegalMove = errors.New("illegal move")
)

// Status is the state of the side to move.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

var statusNames = [...]string{"playing", "check", "checkmate", "stalemate"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Over reports whether the status is terminal.
func (s Status) Over() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

// MoveResult is the outcome of ProcessMove.
type MoveResult uint8

const (
	MoveRejected MoveResult = iota
	MoveApplied
	PromotionRequired
)

func (r MoveResult) String() string {
	switch r {
	case MoveApplied:
		return "applied"
	case PromotionRequired:
		return "promotion required"
	}
	return "rejected"
}

// Record is one applied move in the game history.
type Record struct {
	Move
	Piece     Piece
	Captured  Piece
	Castle    bool
	EnPassant bool
}

// Game owns a board and the turn, castling, en passant and clock state
// around it. It is not safe for concurrent use.
type Game struct {
	board     Board
	turn      Color
	rights    [2][2]bool
	enPassant Square
	halfmove  int
	fullmove  int

	status          Status
	winner          Color
	statusMessage   string
	gameOverMessage string

	history []Record
}

// NewGame returns a game at the standard starting position, White to move.
func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset restores the starting position.
func (g *Game) Reset() {
	*g = Game{
		board:     NewBoard(),
		turn:      White,
		rights:    [2][2]bool{{true, true}, {true, true}},
		enPassant: NoSquare,
		fullmove:  1,
	}
	g.statusMessage = fmt.Sprintf("%s's turn.", g.turn)
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	clone := *g
	clone.history = append([]Record(nil), g.history...)
	return &clone
}

// Board returns a snapshot of the grid.
func (g *Game) Board() Board {
	return g.board
}

// Turn is the side to move.
func (g *Game) Turn() Color {
	return g.turn
}

// Status is the state of the side to move.
func (g *Game) Status() Status {
	return g.status
}

// Over reports whether the game reached checkmate or stalemate.
func (g *Game) Over() bool {
	return g.status.Over()
}

// Winner returns the mating side; ok is false unless the game ended in
// checkmate.
func (g *Game) Winner() (winner Color, ok bool) {
	return g.winner, g.status == StatusCheckmate
}

// CastlingRight reports the stored right, not whether castling is playable.
func (g *Game) CastlingRight(c Color, side CastleSide) bool {
	return g.rights[c][side]
}

// EnPassant returns the en passant target square, or NoSquare.
func (g *Game) EnPassant() Square {
	return g.enPassant
}

// HalfmoveClock counts plies since the last pawn move or capture.
func (g *Game) HalfmoveClock() int {
	return g.halfmove
}

// FullmoveNumber starts at 1 and increments after Black moves.
func (g *Game) FullmoveNumber() int {
	return g.fullmove
}

// StatusMessage is a human readable line describing the last event.
func (g *Game) StatusMessage() string {
	return g.statusMessage
}

// GameOverMessage is empty until the game ends.
func (g *Game) GameOverMessage() string {
	return g.gameOverMessage
}

// History returns a copy of the applied moves.
func (g *Game) History() []Record {
	return append([]Record(nil), g.history...)
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return IsInCheck(&g.board, g.turn)
}

// NeedsPromotion reports whether the piece on from is a pawn that would
// reach its last rank on to.
func (g *Game) NeedsPromotion(from, to Square) bool {
	piece := g.board.At(from)
	return piece.Kind == Pawn && to.Valid() && to.Rank == piece.Color.promotionRank()
}

// Play is ProcessMove for a Move value.
func (g *Game) Play(m Move) (MoveResult, error) {
	return g.ProcessMove(m.From, m.To, m.Promotion)
}

// ProcessMove validates and applies from→to for the side to move.
//
// A rejected move leaves the position untouched and returns MoveRejected
// with one of ErrGameOver, ErrNoPiece, ErrNotYourTurn or ErrIllegalMove. A
// pawn move onto the last rank without a promotion kind returns
// PromotionRequired, also without touching the position; resubmit with a
// kind. Kinds a pawn cannot become are treated as Queen.
func (g *Game) ProcessMove(from, to Square, promotion Kind) (MoveResult, error) {
	if g.status.Over() {
		g.statusMessage = g.gameOverMessage
		return MoveRejected, ErrGameOver
	}
	piece := g.board.At(from)
	if piece.Empty() {
		g.statusMessage = "Invalid selection or not your turn."
		return MoveRejected, fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	if piece.Color != g.turn {
		g.statusMessage = "Invalid selection or not your turn."
		return MoveRejected, fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.turn)
	}
	if !g.IsLegal(from, to) {
		g.statusMessage = "Illegal move."
		if g.InCheck() {
			g.statusMessage += fmt.Sprintf(" %s is in check!", g.turn)
		}
		return MoveRejected, fmt.Errorf("%w: %s%s", ErrIllegalMove, from, to)
	}
	if g.NeedsPromotion(from, to) && promotion == None {
		return PromotionRequired, nil
	}

	captured := g.board.At(to)
	effect := g.board.Apply(from, to, promotion)

	if effect.PawnMove || effect.Capture {
		g.halfmove = 0
	} else {
		g.halfmove++
	}
	g.updateCastlingRights(piece, from, captured, to)
	g.enPassant = NoSquare
	if piece.Kind == Pawn && abs(to.Rank-from.Rank) == 2 {
		g.enPassant = Sq((from.Rank+to.Rank)/2, from.File)
	}
	g.history = append(g.history, Record{
		Move:      Move{From: from, To: to, Promotion: effect.Promotion},
		Piece:     piece,
		Captured:  effect.Captured,
		Castle:    effect.Castle,
		EnPassant: effect.EnPassant,
	})

	if g.turn == Black {
		g.fullmove++
	}
	g.turn = g.turn.Opponent()
	g.evaluate()

	log.WithFields(log.Fields{
		"move":   g.history[len(g.history)-1].Move,
		"status": g.status,
		"fen":    g.FEN(),
	}).Debug("move applied")
	return MoveApplied, nil
}

func (g *Game) updateCastlingRights(piece Piece, from Square, captured Piece, to Square) {
	switch piece.Kind {
	case King:
		g.rights[piece.Color] = [2]bool{}
	case Rook:
		g.revokeRookRight(piece.Color, from)
	}
	if captured.Kind == Rook {
		g.revokeRookRight(captured.Color, to)
	}
}

// revokeRookRight clears the right tied to a rook home square.
func (g *Game) revokeRookRight(c Color, sq Square) {
	if sq.Rank != c.homeRank() {
		return
	}
	switch sq.File {
	case Queenside.rookFile():
		g.rights[c][Queenside] = false
	case Kingside.rookFile():
		g.rights[c][Kingside] = false
	}
}

// evaluate derives the status of the side to move.
func (g *Game) evaluate() {
	inCheck := g.InCheck()
	hasMoves := len(g.LegalMoves(g.turn)) > 0
	switch {
	case inCheck && !hasMoves:
		g.status = StatusCheckmate
		g.winner = g.turn.Opponent()
		g.gameOverMessage = fmt.Sprintf("Checkmate! %s wins.", g.winner)
		g.statusMessage = g.gameOverMessage
	case !hasMoves:
		g.status = StatusStalemate
		g.gameOverMessage = "Stalemate! It's a draw."
		g.statusMessage = g.gameOverMessage
	case inCheck:
		g.status = StatusCheck
		g.statusMessage = fmt.Sprintf("%s's turn. Check!", g.turn)
	default:
		g.status = StatusPlaying
		g.statusMessage = fmt.Sprintf("%s's turn.", g.turn)
	}
}
