package main

import (
	"errors"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/maplefeline/knightrules/chess"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type gameRequest struct {
	White string
	Black string
}

type playRequest struct {
	Move *chess.Move
}

type gameResponse struct {
	Href  string
	Game  Game
	Board [8][8]string
}

type gamesResponse struct {
	Href  string
	Games []Game
}

type playsResponse struct {
	Href  string
	Moves []chess.Move
}

func errToHTTP(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.ErrNotFound
	}
	if errors.Is(err, errStaleGame) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return err
}

func requestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func requestGame(c echo.Context, games store) (*Game, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	return games.get(id)
}

func gameHref(game *Game) string {
	return path.Join("/games", game.GameID.String())
}

func responseGame(game *Game) (gameResponse, error) {
	board, err := game.board()
	if err != nil {
		return gameResponse{}, err
	}
	return gameResponse{Game: game.record(), Board: board, Href: gameHref(game)}, nil
}

func responseGames(games []Game) gamesResponse {
	return gamesResponse{Games: games, Href: "/games"}
}

func responsePlays(game *Game, moves []chess.Move) playsResponse {
	if moves == nil {
		moves = []chess.Move{}
	}
	return playsResponse{Moves: moves, Href: path.Join(gameHref(game), "plays")}
}

func replyGame(c echo.Context, code int, game *Game) error {
	response, err := responseGame(game)
	if err != nil {
		return err
	}
	return c.JSON(code, response)
}

// legalPlays lists the legal moves of the side to move, optionally only
// those starting on the "from" query square.
func legalPlays(c echo.Context, game *Game) ([]chess.Move, error) {
	state, err := game.restore()
	if err != nil {
		return nil, err
	}
	from := c.QueryParam("from")
	if from == "" {
		return state.LegalMoves(state.Turn()), nil
	}
	sq, err := chess.ParseSquare(from)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return state.LegalMovesFrom(sq), nil
}

func apiHandler(games store) *echo.Echo {
	e := echo.New()

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, responseGames(nil))
	})
	e.GET("/games", func(c echo.Context) error {
		list, err := games.list()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGames(list))
	})
	e.POST("/games", func(c echo.Context) error {
		var message gameRequest
		if err := c.Bind(&message); err != nil {
			return err
		}
		game, err := makeGame(games, message.White, message.Black)
		if err != nil {
			return errToHTTP(err)
		}
		return replyGame(c, http.StatusCreated, game)
	})
	e.GET("/games/:id", func(c echo.Context) error {
		game, err := requestGame(c, games)
		if err != nil {
			return errToHTTP(err)
		}
		return replyGame(c, http.StatusOK, game)
	})
	e.PUT("/games/:id", func(c echo.Context) error {
		game, err := requestGame(c, games)
		if err != nil {
			return errToHTTP(err)
		}
		var request playRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		if err := game.playRound(games, request.Move); err != nil {
			return errToHTTP(err)
		}
		return replyGame(c, http.StatusOK, game)
	})
	e.POST("/games/:id/reset", func(c echo.Context) error {
		game, err := requestGame(c, games)
		if err != nil {
			return errToHTTP(err)
		}
		if err := game.reset(games); err != nil {
			return errToHTTP(err)
		}
		return replyGame(c, http.StatusOK, game)
	})
	e.GET("/games/:id/plays", func(c echo.Context) error {
		game, err := requestGame(c, games)
		if err != nil {
			return errToHTTP(err)
		}
		moves, err := legalPlays(c, game)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responsePlays(game, moves))
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}
