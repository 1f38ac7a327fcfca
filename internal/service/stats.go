package service

import (
	"cmp"
	"slices"
	"time"

	"movierental/internal/domain"
)

// Ranking is one row of a rented-days statistic.
type Ranking struct {
	ID   string
	Name string
	Days int
}

// LateRental is a pending rental past its due date.
type LateRental struct {
	Rental domain.Rental
	Delay  int
}

// Stats computes reports across the three services.
type Stats struct {
	Clients *ClientService
	Movies  *MovieService
	Rentals *RentalService
}

// returnedDays sums the rented days of finished rentals per key.
func returnedDays(rentals []domain.Rental, key func(domain.Rental) string, now time.Time) map[string]int {
	out := make(map[string]int)
	for _, r := range rentals {
		if r.Returned() {
			out[key(r)] += r.RentedDays(now)
		}
	}
	return out
}

func sortRankings(rows []Ranking) {
	slices.SortStableFunc(rows, func(a, b Ranking) int { return cmp.Compare(b.Days, a.Days) })
}

// MostRentedMovies ranks movies by the total days they were rented out.
func (s Stats) MostRentedMovies(now time.Time) ([]Ranking, error) {
	movies, err := s.Movies.All()
	if err != nil {
		return nil, err
	}
	rentals, err := s.Rentals.All()
	if err != nil {
		return nil, err
	}
	days := returnedDays(rentals, func(r domain.Rental) string { return r.MovieID }, now)

	rows := make([]Ranking, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, Ranking{ID: m.ID, Name: m.Title, Days: days[m.ID]})
	}
	sortRankings(rows)
	return rows, nil
}

// MostActiveClients ranks clients by the total days they had movies rented.
func (s Stats) MostActiveClients(now time.Time) ([]Ranking, error) {
	clients, err := s.Clients.All()
	if err != nil {
		return nil, err
	}
	rentals, err := s.Rentals.All()
	if err != nil {
		return nil, err
	}
	days := returnedDays(rentals, func(r domain.Rental) string { return r.ClientID }, now)

	rows := make([]Ranking, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, Ranking{ID: c.ID, Name: c.Name, Days: days[c.ID]})
	}
	sortRankings(rows)
	return rows, nil
}

// LateRentals lists overdue rentals, longest delay first.
func (s Stats) LateRentals(now time.Time) ([]LateRental, error) {
	rentals, err := s.Rentals.All()
	if err != nil {
		return nil, err
	}
	var late []LateRental
	for _, r := range rentals {
		if r.Overdue(now) {
			late = append(late, LateRental{Rental: r, Delay: r.RentedDays(now)})
		}
	}
	slices.SortStableFunc(late, func(a, b LateRental) int { return cmp.Compare(b.Delay, a.Delay) })
	return late, nil
}
