package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"movierental/internal/domain"
	"movierental/internal/storage"
)

// RentalService manages rentals.
type RentalService struct {
	repo storage.Repository[domain.Rental]
	log  logrus.FieldLogger
}

func NewRentalService(repo storage.Repository[domain.Rental], logger logrus.FieldLogger) *RentalService {
	return &RentalService{repo: repo, log: logger.WithField("component", "rental_service")}
}

// Repository returns the repository the service writes to.
func (s *RentalService) Repository() storage.Repository[domain.Rental] { return s.repo }

// Add validates r and stores it as a new rental.
func (s *RentalService) Add(r domain.Rental) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := s.repo.Add(r); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"rental_id": r.ID,
		"movie_id":  r.MovieID,
		"client_id": r.ClientID,
	}).Debug("Rental added")
	return nil
}

// Update replaces the stored rental with the same ID.
func (s *RentalService) Update(r domain.Rental) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return s.repo.Set(r.ID, r)
}

// Remove deletes the rental with the given ID.
func (s *RentalService) Remove(id string) error { return s.repo.Delete(id) }

// Has reports whether a rental with the given ID exists.
func (s *RentalService) Has(id string) (bool, error) { return s.repo.Has(id) }

// Get returns the rental with the given ID.
func (s *RentalService) Get(id string) (domain.Rental, error) { return s.repo.Get(id) }

// List renders every rental for display.
func (s *RentalService) List() (string, error) { return s.repo.Listing() }

// All returns every rental in insertion order.
func (s *RentalService) All() ([]domain.Rental, error) { return s.repo.Values() }

// Return marks the rental as returned on the day of now. A rental that is
// already returned keeps its date. It returns the stored rental.
func (s *RentalService) Return(id string, now time.Time) (domain.Rental, error) {
	r, err := s.repo.Get(id)
	if err != nil {
		return domain.Rental{}, err
	}
	if r.Returned() {
		return r, nil
	}
	y, m, d := now.Date()
	r.ReturnedDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if err := s.Update(r); err != nil {
		return domain.Rental{}, err
	}
	return r, nil
}

// ClientRentals returns every rental of the client.
func (s *RentalService) ClientRentals(clientID string) ([]domain.Rental, error) {
	return s.search(func(r domain.Rental) bool { return r.ClientID == clientID })
}

// MovieRentals returns every rental of the movie.
func (s *RentalService) MovieRentals(movieID string) ([]domain.Rental, error) {
	return s.search(func(r domain.Rental) bool { return r.MovieID == movieID })
}

// OverdueRentals returns the client's rentals that are pending past their due date.
func (s *RentalService) OverdueRentals(clientID string, now time.Time) ([]domain.Rental, error) {
	return s.search(func(r domain.Rental) bool { return r.ClientID == clientID && r.Overdue(now) })
}

// SearchID returns the rentals whose ID equals q, ignoring case.
func (s *RentalService) SearchID(q string) ([]domain.Rental, error) {
	return s.search(func(r domain.Rental) bool { return equalFold(r.ID, q) })
}

// SearchClientID returns the rentals whose client ID equals q, ignoring case.
func (s *RentalService) SearchClientID(q string) ([]domain.Rental, error) {
	return s.search(func(r domain.Rental) bool { return equalFold(r.ClientID, q) })
}

// SearchMovieID returns the rentals whose movie ID equals q, ignoring case.
func (s *RentalService) SearchMovieID(q string) ([]domain.Rental, error) {
	return s.search(func(r domain.Rental) bool { return equalFold(r.MovieID, q) })
}

func (s *RentalService) search(keep func(domain.Rental) bool) ([]domain.Rental, error) {
	all, err := s.repo.Values()
	if err != nil {
		return nil, err
	}
	return filter(all, keep), nil
}
