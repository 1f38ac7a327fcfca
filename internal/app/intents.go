package app

import (
	"errors"
	"fmt"

	"movierental/internal/domain"
	"movierental/internal/storage"
	"movierental/internal/undo"
)

var (
	// ErrUnknownClient is returned when a rental refers to a client that does not exist.
	ErrUnknownClient = errors.New("unknown client")

	// ErrUnknownMovie is returned when a rental refers to a movie that does not exist.
	ErrUnknownMovie = errors.New("unknown movie")

	// ErrClientOverdue is returned when a client with overdue rentals tries to rent again.
	ErrClientOverdue = errors.New("client has rented movies that passed their due date for return")
)

// addStep is the reversible pair for adding e to repo.
func addStep[T storage.Entity](repo storage.Repository[T], e T) *undo.Step {
	return undo.NewStep(undo.AddCall(undo.Target[T](repo), e.Key(), e), undo.DeleteCall(undo.Target[T](repo), e.Key()))
}

// removeStep is the reversible pair for removing old from repo.
func removeStep[T storage.Entity](repo storage.Repository[T], old T) *undo.Step {
	return undo.NewStep(undo.DeleteCall(undo.Target[T](repo), old.Key()), undo.AddCall(undo.Target[T](repo), old.Key(), old))
}

// updateStep is the reversible pair for replacing old with updated in repo.
func updateStep[T storage.Entity](repo storage.Repository[T], old, updated T) *undo.Step {
	return undo.NewStep(undo.SetCall(undo.Target[T](repo), updated.Key(), updated), undo.SetCall(undo.Target[T](repo), old.Key(), old))
}

func (s *Session) AddClient(c domain.Client) error {
	if err := s.Clients.Add(c); err != nil {
		return err
	}
	s.History.Record(addStep(s.Clients.Repository(), c))
	return nil
}

func (s *Session) UpdateClient(c domain.Client) error {
	old, err := s.Clients.Get(c.ID)
	if err != nil {
		return err
	}
	if err := s.Clients.Update(c); err != nil {
		return err
	}
	s.History.Record(updateStep(s.Clients.Repository(), old, c))
	return nil
}

// RemoveClient removes the client and every rental of that client as one
// undoable operation.
func (s *Session) RemoveClient(id string) error {
	old, err := s.Clients.Get(id)
	if err != nil {
		return err
	}
	rentals, err := s.Rentals.ClientRentals(id)
	if err != nil {
		return err
	}
	if err := s.Clients.Remove(id); err != nil {
		return err
	}
	return s.removeWithRentals(removeStep(s.Clients.Repository(), old), rentals)
}

func (s *Session) AddMovie(m domain.Movie) error {
	if err := s.Movies.Add(m); err != nil {
		return err
	}
	s.History.Record(addStep(s.Movies.Repository(), m))
	return nil
}

func (s *Session) UpdateMovie(m domain.Movie) error {
	old, err := s.Movies.Get(m.ID)
	if err != nil {
		return err
	}
	if err := s.Movies.Update(m); err != nil {
		return err
	}
	s.History.Record(updateStep(s.Movies.Repository(), old, m))
	return nil
}

// RemoveMovie removes the movie and every rental of that movie as one
// undoable operation.
func (s *Session) RemoveMovie(id string) error {
	old, err := s.Movies.Get(id)
	if err != nil {
		return err
	}
	rentals, err := s.Rentals.MovieRentals(id)
	if err != nil {
		return err
	}
	if err := s.Movies.Remove(id); err != nil {
		return err
	}
	return s.removeWithRentals(removeStep(s.Movies.Repository(), old), rentals)
}

// removeWithRentals removes the dependent rentals after parent has been
// applied and records everything as a cascade. Steps that succeeded are
// recorded even when a later rental fails to delete, so they stay undoable.
func (s *Session) removeWithRentals(parent *undo.Step, rentals []domain.Rental) error {
	cascade := &undo.Cascade{}
	cascade.Add(parent)
	defer func() { s.History.Record(cascade) }()

	for _, r := range rentals {
		if err := s.Rentals.Remove(r.ID); err != nil {
			return fmt.Errorf("remove rental %s: %w", r.ID, err)
		}
		cascade.Add(removeStep(s.Rentals.Repository(), r))
	}
	s.log.WithField("rentals", len(rentals)).Debug("Cascaded removal recorded")
	return nil
}

// checkRentalRefs verifies the movie and client of r exist.
func (s *Session) checkRentalRefs(r domain.Rental) error {
	ok, err := s.Movies.Has(r.MovieID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMovie, r.MovieID)
	}
	ok, err = s.Clients.Has(r.ClientID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownClient, r.ClientID)
	}
	return nil
}

// AddRental rents a movie. The movie and client must exist and the client
// must not have overdue rentals.
func (s *Session) AddRental(r domain.Rental) error {
	if err := s.checkRentalRefs(r); err != nil {
		return err
	}
	overdue, err := s.Rentals.OverdueRentals(r.ClientID, s.Now())
	if err != nil {
		return err
	}
	if len(overdue) > 0 {
		return ErrClientOverdue
	}
	if err := s.Rentals.Add(r); err != nil {
		return err
	}
	s.History.Record(addStep(s.Rentals.Repository(), r))
	return nil
}

func (s *Session) UpdateRental(r domain.Rental) error {
	if err := s.checkRentalRefs(r); err != nil {
		return err
	}
	old, err := s.Rentals.Get(r.ID)
	if err != nil {
		return err
	}
	if err := s.Rentals.Update(r); err != nil {
		return err
	}
	s.History.Record(updateStep(s.Rentals.Repository(), old, r))
	return nil
}

func (s *Session) RemoveRental(id string) error {
	old, err := s.Rentals.Get(id)
	if err != nil {
		return err
	}
	if err := s.Rentals.Remove(id); err != nil {
		return err
	}
	s.History.Record(removeStep(s.Rentals.Repository(), old))
	return nil
}

// ReturnMovie marks the rental as returned today. Returning a rental that is
// already returned changes nothing and records nothing.
func (s *Session) ReturnMovie(id string) (domain.Rental, error) {
	old, err := s.Rentals.Get(id)
	if err != nil {
		return domain.Rental{}, err
	}
	if old.Returned() {
		return old, nil
	}
	updated, err := s.Rentals.Return(id, s.Now())
	if err != nil {
		return domain.Rental{}, err
	}
	s.History.Record(updateStep(s.Rentals.Repository(), old, updated))
	return updated, nil
}
