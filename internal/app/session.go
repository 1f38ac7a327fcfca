// Package app wires configuration, repositories, services and the undo
// history into a Session, and turns user intents into recorded operations.
package app

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"movierental/internal/config"
	"movierental/internal/domain"
	"movierental/internal/service"
	"movierental/internal/storage"
	"movierental/internal/undo"
)

// Session owns the services and the history for one run of the program.
type Session struct {
	ID      string
	Clients *service.ClientService
	Movies  *service.MovieService
	Rentals *service.RentalService
	Stats   service.Stats
	History *undo.History

	// Now returns the current time; tests replace it.
	Now func() time.Time

	badger *storage.BadgerStore
	log    logrus.FieldLogger
}

// Open builds a Session for cfg. File backed repositories use fs.
func Open(cfg config.Config, fs afero.Fs, logger logrus.FieldLogger) (*Session, error) {
	id := ulid.Make().String()
	log := logger.WithFields(logrus.Fields{"component": "session", "session_id": id})

	s := &Session{ID: id, Now: time.Now, log: log}
	repoLog := logger.WithField("session_id", id)

	var (
		clients storage.Repository[domain.Client]
		movies  storage.Repository[domain.Movie]
		rentals storage.Repository[domain.Rental]
	)
	switch cfg.RepoType {
	case config.RepoInMemory:
		clients = storage.NewMemory[domain.Client]()
		movies = storage.NewMemory[domain.Movie]()
		rentals = storage.NewMemory[domain.Rental]()
	case config.RepoFile:
		clients = storage.NewTextRepository[domain.Client](fs, cfg.ClientsFile, domain.ClientCodec{}, repoLog)
		movies = storage.NewTextRepository[domain.Movie](fs, cfg.MoviesFile, domain.MovieCodec{}, repoLog)
		rentals = storage.NewTextRepository[domain.Rental](fs, cfg.RentalsFile, domain.RentalCodec{}, repoLog)
	case config.RepoBinary:
		clients = storage.NewBinaryRepository[domain.Client](fs, cfg.ClientsFile, repoLog)
		movies = storage.NewBinaryRepository[domain.Movie](fs, cfg.MoviesFile, repoLog)
		rentals = storage.NewBinaryRepository[domain.Rental](fs, cfg.RentalsFile, repoLog)
	case config.RepoKV:
		db, err := storage.OpenBadger(cfg.BadgerDBPath, repoLog)
		if err != nil {
			return nil, err
		}
		s.badger = db
		clients = storage.NewBadgerRepository[domain.Client](db, "clients", repoLog)
		movies = storage.NewBadgerRepository[domain.Movie](db, "movies", repoLog)
		rentals = storage.NewBadgerRepository[domain.Rental](db, "rentals", repoLog)
	default:
		return nil, fmt.Errorf("unsupported repository type %q", cfg.RepoType)
	}

	s.Clients = service.NewClientService(clients, logger)
	s.Movies = service.NewMovieService(movies, logger)
	s.Rentals = service.NewRentalService(rentals, logger)
	s.Stats = service.Stats{Clients: s.Clients, Movies: s.Movies, Rentals: s.Rentals}
	s.History = undo.NewHistory(log)

	if cfg.Populate {
		rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		if err := service.Populate(rng, s.Clients, s.Movies, s.Rentals); err != nil {
			s.Close()
			return nil, err
		}
	}

	log.WithField("repo_type", cfg.RepoType).Info("Session opened")
	return s, nil
}

// Close releases the badger handle, if any.
func (s *Session) Close() error {
	if s.badger == nil {
		return nil
	}
	err := s.badger.Close()
	s.badger = nil
	return err
}

// Undo reverses the most recent operation. It reports false when there is
// nothing left to undo.
func (s *Session) Undo() (bool, error) { return s.History.Undo() }

// Redo reapplies the most recently undone operation. It reports false when
// there is nothing to redo.
func (s *Session) Redo() (bool, error) { return s.History.Redo() }
