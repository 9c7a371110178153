package main

import (
	"crypto/rand"
	"errors"
	"math"
	"math/big"
	"time"

	"github.com/apex/log"
	"github.com/maplefeline/knightrules/chess"
	"github.com/montanaflynn/stats"
)

const (
	mateScore      = 1000
	maxAgentPlies  = 400
	agentIdleDelay = 2 * time.Second
)

var errNoMoves = errors.New("no moves available")

var pieceValues = map[chess.Kind]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
}

// material is the piece value balance from side's point of view.
func material(board chess.Board, side chess.Color) int {
	score := 0
	for _, row := range board {
		for _, piece := range row {
			if piece.Color == side {
				score += pieceValues[piece.Kind]
			} else {
				score -= pieceValues[piece.Kind]
			}
		}
	}
	return score
}

// scoreMove plays m on a copy of state and rates the result for the mover.
func scoreMove(state *chess.Game, m chess.Move) (int, error) {
	side := state.Turn()
	next := state.Clone()
	m.Promotion = chess.Queen
	if _, err := next.Play(m); err != nil {
		return 0, err
	}
	if winner, ok := next.Winner(); ok && winner == side {
		return mateScore, nil
	}
	score := material(next.Board(), side)
	if next.Status() == chess.StatusCheck {
		score++
	}
	return score, nil
}

// decide plays a mating move when there is one, otherwise picks a random
// move among those scoring at or above the 80th percentile, weighting
// better moves more heavily.
func decide(state *chess.Game) (chess.Move, error) {
	moves := state.LegalMoves(state.Turn())
	if len(moves) == 0 {
		return chess.Move{}, errNoMoves
	}
	scores := make([]int, 0, len(moves))
	for _, m := range moves {
		score, err := scoreMove(state, m)
		if err != nil {
			return chess.Move{}, err
		}
		if score >= mateScore {
			return m, nil
		}
		scores = append(scores, score)
	}
	percentile, err := stats.Percentile(stats.LoadRawData(scores), 80)
	if err != nil {
		return chess.Move{}, err
	}
	lowScore := int(math.Round(percentile))
	choices := make([]chess.Move, 0, len(moves)*len(moves))
	for i, m := range moves {
		if lowScore <= scores[i] {
			count := (scores[i] - lowScore) + 1
			if count > len(moves) {
				count = len(moves)
			}
			for j := 0; j < count; j++ {
				choices = append(choices, m)
			}
		}
	}
	if len(choices) == 0 {
		choices = moves
	}
	choice, err := rand.Int(rand.Reader, big.NewInt(int64(len(choices))))
	if err != nil {
		return chess.Move{}, err
	}
	m := choices[choice.Uint64()]
	if state.NeedsPromotion(m.From, m.To) {
		m.Promotion = chess.Queen
	}
	return m, nil
}

// agentIdle advances every unfinished game where an agent is to move.
func agentIdle(games store) error {
	list, err := games.list()
	if err != nil {
		return err
	}
	for i := range list {
		game := &list[i]
		if game.End {
			continue
		}
		err := game.pokeAgent(games)
		if errors.Is(err, errStaleGame) {
			log.WithField("game", game.GameID).Debug("game moved on, skipping agent turn")
			continue
		}
		if err != nil {
			log.WithError(err).WithField("game", game.GameID).Error("agent move failed")
		}
	}
	return nil
}
