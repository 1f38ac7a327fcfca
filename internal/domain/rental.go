package domain

import (
	"fmt"
	"strings"
	"time"
)

// Rental records a client renting a movie.
type Rental struct {
	ID       string `json:"id"`
	MovieID  string `json:"movie_id"`
	ClientID string `json:"client_id"`

	RentedDate time.Time `json:"rented_date"`
	DueDate    time.Time `json:"due_date"`

	// ReturnedDate is Pending while the movie is still out.
	ReturnedDate time.Time `json:"returned_date"`
}

// NewRental builds a validated Rental.
func NewRental(id, movieID, clientID string, rented, due, returned time.Time) (Rental, error) {
	r := Rental{
		ID:           id,
		MovieID:      movieID,
		ClientID:     clientID,
		RentedDate:   rented,
		DueDate:      due,
		ReturnedDate: returned,
	}
	if err := r.Validate(); err != nil {
		return Rental{}, err
	}
	return r, nil
}

// Key returns the rental ID.
func (r Rental) Key() string { return r.ID }

// Validate checks identifiers and date ordering.
func (r Rental) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"id", r.ID},
		{"movie id", r.MovieID},
		{"client id", r.ClientID},
	} {
		if err := checkField(f.name, f.value); err != nil {
			return err
		}
	}
	if IsPending(r.RentedDate) || IsPending(r.DueDate) {
		return fmt.Errorf("%w: rented and due dates are required", ErrInvalid)
	}
	if r.RentedDate.After(r.DueDate) {
		return fmt.Errorf("%w: rented date is after due date", ErrInvalid)
	}
	if r.Returned() && r.RentedDate.After(r.ReturnedDate) {
		return fmt.Errorf("%w: rented date is after returned date", ErrInvalid)
	}
	return nil
}

// Returned reports whether the movie was brought back.
func (r Rental) Returned() bool { return !IsPending(r.ReturnedDate) }

// RentedDays is the length of a finished rental, or for a pending one the
// number of days since the due date.
func (r Rental) RentedDays(now time.Time) int {
	if r.Returned() {
		return daysBetween(r.RentedDate, r.ReturnedDate)
	}
	return daysBetween(r.DueDate, truncateDay(now))
}

// Overdue reports whether the rental is pending past its due date.
func (r Rental) Overdue(now time.Time) bool {
	return !r.Returned() && r.DueDate.Before(truncateDay(now))
}

func (r Rental) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\n", r.ID)
	fmt.Fprintf(&b, "Client ID: %s\n", r.ClientID)
	fmt.Fprintf(&b, "Movie ID: %s\n", r.MovieID)
	fmt.Fprintf(&b, "Rented Date: %s\n", FormatDate(r.RentedDate))
	fmt.Fprintf(&b, "Due Date: %s\n", FormatDate(r.DueDate))
	fmt.Fprintf(&b, "Returned Date: %s", FormatDate(r.ReturnedDate))
	return b.String()
}
