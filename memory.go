package main

import (
	"sort"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

// memoryStore keeps records in a map; used with -memory and in tests.
type memoryStore struct {
	mu     sync.Mutex
	games  map[uuid.UUID]Game
	nextID uint
}

func newMemoryStore() *memoryStore {
	return &memoryStore{games: make(map[uuid.UUID]Game)}
}

func (s *memoryStore) create(game *Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	now := time.Now()
	game.ID = s.nextID
	game.CreatedAt = now
	game.UpdatedAt = now
	game.loaded = game.MoveCount
	s.games[game.GameID] = game.record()
	return nil
}

func (s *memoryStore) get(id uuid.UUID) (*Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	game.loaded = game.MoveCount
	return &game, nil
}

func (s *memoryStore) list() ([]Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	games := make([]Game, 0, len(s.games))
	for _, game := range s.games {
		game.loaded = game.MoveCount
		games = append(games, game)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

func (s *memoryStore) save(game *Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.games[game.GameID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if stored.MoveCount != game.loaded {
		return errStaleGame
	}
	game.UpdatedAt = time.Now()
	game.loaded = game.MoveCount
	s.games[game.GameID] = game.record()
	return nil
}

func (s *memoryStore) close() error {
	return nil
}
