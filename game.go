package main

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/maplefeline/knightrules/chess"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

const (
	seatUser  = "user"
	seatAgent = "agent"

	moveCapMessage = "Move limit reached! It's a draw."
)

// moveLog is stored as space separated long algebraic moves.
type moveLog []chess.Move

func (moves moveLog) Value() (driver.Value, error) {
	texts := make([]string, 0, len(moves))
	for _, m := range moves {
		texts = append(texts, m.String())
	}
	return strings.Join(texts, " "), nil
}

func (moves *moveLog) Scan(cell interface{}) error {
	var text string
	switch cell := cell.(type) {
	case string:
		text = cell
	case []byte:
		text = string(cell)
	case nil:
	default:
		return fmt.Errorf("invalid format scaning %#v", cell)
	}
	fields := strings.Fields(text)
	parsed := make(moveLog, 0, len(fields))
	for _, field := range fields {
		m, err := chess.ParseMove(field)
		if err != nil {
			return err
		}
		parsed = append(parsed, m)
	}
	*moves = parsed
	return nil
}

// Game game.
type Game struct {
	gorm.Model

	GameID    uuid.UUID `gorm:"<-:create;type:varchar;size:36;uniqueIndex"`
	White     string
	Black     string
	Moves     moveLog `gorm:"type:text;not null"`
	MoveCount int
	FEN       string
	Turn      string
	Status    string
	Message   string
	End       bool

	state  *chess.Game `gorm:"-"`
	loaded int         `gorm:"-"`
}

// AfterFind remembers the move count the record was read with; save
// refuses to write over a record that moved on since.
func (game *Game) AfterFind(tx *gorm.DB) error {
	game.loaded = game.MoveCount
	return nil
}

func validSeat(seat string) bool {
	return seat == seatUser || seat == seatAgent
}

func makeGame(games store, white, black string) (*Game, error) {
	if white == "" {
		white = seatUser
	}
	if black == "" {
		black = seatUser
	}
	if !validSeat(white) || !validSeat(black) {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unknown seat type")
	}
	game := &Game{GameID: uuid.NewV4(), White: white, Black: black, state: chess.NewGame()}
	game.sync()
	if err := games.create(game); err != nil {
		return nil, err
	}
	log.WithField("game", game.GameID).Info("game created")
	if err := game.pokeAgent(games); err != nil {
		return nil, err
	}
	return game, nil
}

// record returns a copy suitable for storing by value.
func (game *Game) record() Game {
	copied := *game
	copied.Moves = append(moveLog(nil), game.Moves...)
	copied.state = nil
	return copied
}

// restore rebuilds the rules state by replaying the move log.
func (game *Game) restore() (*chess.Game, error) {
	if game.state != nil {
		return game.state, nil
	}
	state := chess.NewGame()
	for i, m := range game.Moves {
		result, err := state.Play(m)
		if err != nil {
			return nil, fmt.Errorf("replay move %d %s: %w", i+1, m, err)
		}
		if result != chess.MoveApplied {
			return nil, fmt.Errorf("replay move %d %s: %s", i+1, m, result)
		}
	}
	game.state = state
	return state, nil
}

// sync copies the derived fields from the rules state.
func (game *Game) sync() {
	game.MoveCount = len(game.Moves)
	game.FEN = game.state.FEN()
	game.Turn = game.state.Turn().String()
	game.Status = game.state.Status().String()
	game.Message = game.state.StatusMessage()
	game.End = game.state.Over()
}

func (game *Game) seat(c chess.Color) string {
	if c == chess.White {
		return game.White
	}
	return game.Black
}

func moveError(err error) error {
	switch {
	case errors.Is(err, chess.ErrGameOver):
		return echo.NewHTTPError(http.StatusBadRequest, "game is over")
	case errors.Is(err, chess.ErrNoPiece),
		errors.Is(err, chess.ErrNotYourTurn),
		errors.Is(err, chess.ErrIllegalMove):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}

// apply plays m on the rules state and appends it to the log.
func (game *Game) apply(m chess.Move) error {
	state, err := game.restore()
	if err != nil {
		return err
	}
	result, err := state.Play(m)
	if err != nil {
		game.Message = state.StatusMessage()
		return moveError(err)
	}
	if result == chess.PromotionRequired {
		return echo.NewHTTPError(http.StatusNotAcceptable, "promotion choice required")
	}
	history := state.History()
	game.Moves = append(game.Moves, history[len(history)-1].Move)
	game.sync()
	return nil
}

// playRound handles a move submitted by a user, then lets an agent answer.
func (game *Game) playRound(games store, m *chess.Move) error {
	state, err := game.restore()
	if err != nil {
		return err
	}
	if state.Over() {
		return echo.NewHTTPError(http.StatusBadRequest, "game is over")
	}
	if game.seat(state.Turn()) != seatUser {
		return echo.NewHTTPError(http.StatusNotAcceptable, "not your turn")
	}
	if m == nil {
		return echo.NewHTTPError(http.StatusNotAcceptable, "player must provide move")
	}
	if err := game.apply(*m); err != nil {
		return err
	}
	if err := games.save(game); err != nil {
		return err
	}
	return game.pokeAgent(games)
}

// pokeAgent plays one agent move when an agent holds the side to move.
func (game *Game) pokeAgent(games store) error {
	state, err := game.restore()
	if err != nil {
		return err
	}
	if state.Over() || game.End || game.seat(state.Turn()) != seatAgent {
		return nil
	}
	if game.White == seatAgent && game.Black == seatAgent && game.MoveCount >= maxAgentPlies {
		game.End = true
		game.Message = moveCapMessage
		log.WithField("game", game.GameID).Info("agent move cap reached")
		return games.save(game)
	}
	m, err := decide(state)
	if err != nil {
		return err
	}
	if err := game.apply(m); err != nil {
		return err
	}
	log.WithFields(log.Fields{"game": game.GameID, "move": m}).Debug("agent moved")
	return games.save(game)
}

func (game *Game) reset(games store) error {
	game.Moves = nil
	game.state = chess.NewGame()
	game.sync()
	if err := games.save(game); err != nil {
		return err
	}
	return game.pokeAgent(games)
}

// board returns the grid as FEN letters, "" for empty cells.
func (game *Game) board() ([8][8]string, error) {
	var cells [8][8]string
	state, err := game.restore()
	if err != nil {
		return cells, err
	}
	board := state.Board()
	for rank := range board {
		for file, piece := range board[rank] {
			if !piece.Empty() {
				cells[rank][file] = string(piece.Letter())
			}
		}
	}
	return cells, nil
}
