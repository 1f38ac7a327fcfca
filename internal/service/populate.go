package service

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"movierental/internal/domain"
)

const populateCount = 20

var clientNames = []string{
	"Willard Baldry", "Ernst Potter", "Dalton Sherris", "Blair Barbary", "Pleasant Lite",
	"Walter Monaghan", "Lionel Suchet", "Tony Hill", "Turner Corney", "Josh Stevens",
	"Jane Hand", "Lenna Ming", "Filomena Heriot", "Arrie Delagney", "Hertha Lamb",
	"Inga Middlemiss", "Leola Ruth", "Mellie Baldry", "Winnie Fergusson", "Josephine Griffin",
}

var movieTitles = []string{
	"Invader Of Our Ship", "Invader Of Exploration", "Hunter In The News", "Boy Of The Orbit",
	"Clone Of War", "Men Of The Dead", "Spies In The News", "Defenders Of Our Ship",
	"Traitors Of The Stars", "Of The Past", "Spies And Pilots", "Leaders And Martians",
	"Defenders And Spies", "Aliens And", "Friends And Women", "Ruins Of Darkness",
	"Ruins Of Sunshine", "Star Of Society", "Carnage Of Darkness", "Revenge Of Our Culture",
	"Broken The Armies", "Failure Of A Nuclear War", "Anxious For The Secrets",
	"Puzzle Of", "Crazy Of The Troopers",
}

var movieGenres = []string{"action", "comedy", "sci-fi", "romance", "drama", "thriller", "horror"}

func day(d int, m time.Month, y int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var (
	rentDates   = []time.Time{day(1, 1, 2005), day(6, 2, 2005), day(7, 3, 2005), day(8, 4, 2005), day(9, 5, 2005)}
	dueDates    = []time.Time{day(1, 1, 2009), day(6, 2, 2009), day(7, 3, 2009), day(8, 4, 2009), day(9, 5, 2009)}
	returnDates = []time.Time{day(1, 1, 2008), day(6, 2, 2008), day(7, 3, 2008), day(8, 4, 2008), day(9, 5, 2008), domain.Pending}
)

// pick removes and returns a random element of pool.
func pick(rng *rand.Rand, pool []string) (string, []string) {
	i := rng.IntN(len(pool))
	v := pool[i]
	return v, append(pool[:i], pool[i+1:]...)
}

// Populate seeds each empty repository with sample data. Repositories that
// already hold records are left alone so restarts over durable stores do not
// collide with earlier runs.
func Populate(rng *rand.Rand, clients *ClientService, movies *MovieService, rentals *RentalService) error {
	if err := populateClients(rng, clients); err != nil {
		return fmt.Errorf("populate clients: %w", err)
	}
	if err := populateMovies(rng, movies); err != nil {
		return fmt.Errorf("populate movies: %w", err)
	}
	if err := populateRentals(rng, rentals); err != nil {
		return fmt.Errorf("populate rentals: %w", err)
	}
	return nil
}

func isEmpty[T any](all func() ([]T, error)) (bool, error) {
	items, err := all()
	if err != nil {
		return false, err
	}
	return len(items) == 0, nil
}

func populateClients(rng *rand.Rand, s *ClientService) error {
	empty, err := isEmpty(s.All)
	if err != nil || !empty {
		return err
	}
	pool := append([]string(nil), clientNames...)
	for i := 1; i <= populateCount; i++ {
		var name string
		name, pool = pick(rng, pool)
		if err := s.Add(domain.Client{ID: strconv.Itoa(i), Name: name}); err != nil {
			return err
		}
	}
	return nil
}

func populateMovies(rng *rand.Rand, s *MovieService) error {
	empty, err := isEmpty(s.All)
	if err != nil || !empty {
		return err
	}
	pool := append([]string(nil), movieTitles...)
	for i := 1; i <= populateCount; i++ {
		var title string
		title, pool = pick(rng, pool)
		m := domain.Movie{
			ID:          strconv.Itoa(i),
			Title:       title,
			Description: fmt.Sprintf("Generic Description %d", i),
			Genre:       movieGenres[rng.IntN(len(movieGenres))],
		}
		if err := s.Add(m); err != nil {
			return err
		}
	}
	return nil
}

func populateRentals(rng *rand.Rand, s *RentalService) error {
	empty, err := isEmpty(s.All)
	if err != nil || !empty {
		return err
	}
	for i := 1; i <= populateCount; i++ {
		r := domain.Rental{
			ID:           strconv.Itoa(i),
			MovieID:      strconv.Itoa(rng.IntN(populateCount) + 1),
			ClientID:     strconv.Itoa(rng.IntN(populateCount) + 1),
			RentedDate:   rentDates[rng.IntN(len(rentDates))],
			DueDate:      dueDates[rng.IntN(len(dueDates))],
			ReturnedDate: returnDates[rng.IntN(len(returnDates))],
		}
		if err := s.Add(r); err != nil {
			return err
		}
	}
	return nil
}
