package main

import (
	"errors"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/apex/log"
	uuid "github.com/satori/go.uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// errStaleGame rejects a save from a copy read before the latest move.
var errStaleGame = errors.New("game changed since it was read")

// store persists game records.
type store interface {
	create(game *Game) error
	get(id uuid.UUID) (*Game, error)
	list() ([]Game, error)
	save(game *Game) error
	close() error
}

type gormStore struct {
	db *gorm.DB
}

func postgresDSN() string {
	dbname, ok := os.LookupEnv("PGDATABASE")
	if !ok {
		dbname = "test"
	}
	return strings.Join([]string{"dbname", dbname}, "=")
}

func openPostgres(connStr string) (*gormStore, error) {
	database, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Silent),
		QueryFields: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}

	// SetMaxIdleConns sets the maximum number of connections in the idle connection pool.
	sqlDB.SetMaxIdleConns(10)
	// SetMaxOpenConns sets the maximum number of open connections to the database.
	sqlDB.SetMaxOpenConns(100)
	// SetConnMaxLifetime sets the maximum amount of time a connection may be reused.
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := database.AutoMigrate(&Game{}); err != nil {
		return nil, err
	}
	return &gormStore{db: database}, nil
}

func (s *gormStore) create(game *Game) error {
	if err := s.db.Create(game).Error; err != nil {
		return err
	}
	game.loaded = game.MoveCount
	return nil
}

func (s *gormStore) get(id uuid.UUID) (*Game, error) {
	var game Game
	if err := s.db.First(&game, Game{GameID: id}).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *gormStore) list() ([]Game, error) {
	var games []Game
	if err := s.db.Order("id").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *gormStore) save(game *Game) error {
	result := s.db.Model(game).Where("move_count = ?", game.loaded).Select("*").Updates(game)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errStaleGame
	}
	game.loaded = game.MoveCount
	return nil
}

func (s *gormStore) close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// openStore picks the in-memory store or postgres from PGDATABASE.
func openStore(memory bool) (store, error) {
	if memory {
		log.Info("using in-memory store")
		return newMemoryStore(), nil
	}
	connStr := postgresDSN()
	games, err := openPostgres(connStr)
	if err != nil {
		log.WithError(err).WithField("connStr", connStr).Error("failed to connect database")
		return nil, err
	}
	return games, nil
}

func logError(message string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if errors.Is(err, http.ErrServerClosed) {
		return
	}
	log.WithField("type", reflect.TypeOf(err)).WithError(err).Error(message)
}
