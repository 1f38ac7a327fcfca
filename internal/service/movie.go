package service

import (
	"github.com/sirupsen/logrus"

	"movierental/internal/domain"
	"movierental/internal/storage"
)

// MovieService manages movies.
type MovieService struct {
	repo storage.Repository[domain.Movie]
	log  logrus.FieldLogger
}

func NewMovieService(repo storage.Repository[domain.Movie], logger logrus.FieldLogger) *MovieService {
	return &MovieService{repo: repo, log: logger.WithField("component", "movie_service")}
}

// Repository returns the repository the service writes to.
func (s *MovieService) Repository() storage.Repository[domain.Movie] { return s.repo }

// Add validates m and stores it as a new movie.
func (s *MovieService) Add(m domain.Movie) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := s.repo.Add(m); err != nil {
		return err
	}
	s.log.WithField("movie_id", m.ID).Debug("Movie added")
	return nil
}

// Update replaces the stored movie with the same ID.
func (s *MovieService) Update(m domain.Movie) error {
	if err := m.Validate(); err != nil {
		return err
	}
	return s.repo.Set(m.ID, m)
}

// Remove deletes the movie with the given ID.
func (s *MovieService) Remove(id string) error { return s.repo.Delete(id) }

// Has reports whether a movie with the given ID exists.
func (s *MovieService) Has(id string) (bool, error) { return s.repo.Has(id) }

// Get returns the movie with the given ID.
func (s *MovieService) Get(id string) (domain.Movie, error) { return s.repo.Get(id) }

// List renders every movie for display.
func (s *MovieService) List() (string, error) { return s.repo.Listing() }

// All returns every movie in insertion order.
func (s *MovieService) All() ([]domain.Movie, error) { return s.repo.Values() }

// SearchID returns movies whose ID contains q, ignoring case.
func (s *MovieService) SearchID(q string) ([]domain.Movie, error) {
	return s.search(func(m domain.Movie) bool { return containsFold(m.ID, q) })
}

// SearchTitle returns movies whose title contains q, ignoring case.
func (s *MovieService) SearchTitle(q string) ([]domain.Movie, error) {
	return s.search(func(m domain.Movie) bool { return containsFold(m.Title, q) })
}

// SearchDescription returns movies whose description contains q, ignoring case.
func (s *MovieService) SearchDescription(q string) ([]domain.Movie, error) {
	return s.search(func(m domain.Movie) bool { return containsFold(m.Description, q) })
}

// SearchGenre returns movies whose genre contains q, ignoring case.
func (s *MovieService) SearchGenre(q string) ([]domain.Movie, error) {
	return s.search(func(m domain.Movie) bool { return containsFold(m.Genre, q) })
}

func (s *MovieService) search(keep func(domain.Movie) bool) ([]domain.Movie, error) {
	all, err := s.repo.Values()
	if err != nil {
		return nil, err
	}
	return filter(all, keep), nil
}
