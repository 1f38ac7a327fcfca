package service

import (
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"movierental/internal/domain"
	"movierental/internal/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	clients *ClientService
	movies  *MovieService
	rentals *RentalService
}

func newFixture() fixture {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return fixture{
		clients: NewClientService(storage.NewMemory[domain.Client](), l),
		movies:  NewMovieService(storage.NewMemory[domain.Movie](), l),
		rentals: NewRentalService(storage.NewMemory[domain.Rental](), l),
	}
}

func TestClientService_Search(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.clients.Add(domain.Client{ID: "1", Name: "Tony Hill"}))
	require.NoError(t, f.clients.Add(domain.Client{ID: "12", Name: "Hertha Lamb"}))
	require.NoError(t, f.clients.Add(domain.Client{ID: "3", Name: "Leola Ruth"}))

	got, err := f.clients.SearchName("HILL")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got, err = f.clients.SearchID("1")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = f.clients.SearchName("nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClientService_RejectsInvalid(t *testing.T) {
	f := newFixture()
	assert.ErrorIs(t, f.clients.Add(domain.Client{ID: "1"}), domain.ErrInvalid)
	assert.ErrorIs(t, f.clients.Update(domain.Client{ID: "1", Name: "a,b"}), domain.ErrInvalid)
}

func TestMovieService_Search(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.movies.Add(domain.Movie{ID: "1", Title: "Clone Of War", Description: "Generic Description 1", Genre: "sci-fi"}))
	require.NoError(t, f.movies.Add(domain.Movie{ID: "2", Title: "Ruins Of Sunshine", Description: "Something else", Genre: "drama"}))

	byTitle, err := f.movies.SearchTitle("of")
	require.NoError(t, err)
	assert.Len(t, byTitle, 2)

	byGenre, err := f.movies.SearchGenre("SCI")
	require.NoError(t, err)
	require.Len(t, byGenre, 1)
	assert.Equal(t, "1", byGenre[0].ID)

	byDesc, err := f.movies.SearchDescription("generic")
	require.NoError(t, err)
	assert.Len(t, byDesc, 1)
}

func rental(id, movie, client, rented, due, returned string) domain.Rental {
	parse := func(s string) time.Time {
		d, err := domain.ParseDate(s)
		if err != nil {
			panic(err)
		}
		return d
	}
	return domain.Rental{
		ID: id, MovieID: movie, ClientID: client,
		RentedDate: parse(rented), DueDate: parse(due), ReturnedDate: parse(returned),
	}
}

func TestRentalService_Return(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.rentals.Add(rental("1", "1", "1", "01/01/2020", "10/01/2020", "Pending")))

	now := time.Date(2020, time.January, 5, 15, 30, 0, 0, time.UTC)
	r, err := f.rentals.Return("1", now)
	require.NoError(t, err)
	assert.Equal(t, "05/01/2020", domain.FormatDate(r.ReturnedDate))

	stored, err := f.rentals.Get("1")
	require.NoError(t, err)
	assert.True(t, stored.Returned())

	again, err := f.rentals.Return("1", now.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, r.ReturnedDate, again.ReturnedDate, "returning twice keeps the first date")

	_, err = f.rentals.Return("missing", now)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRentalService_Queries(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.rentals.Add(rental("1", "m1", "c1", "01/01/2020", "10/01/2020", "Pending")))
	require.NoError(t, f.rentals.Add(rental("2", "m2", "c1", "01/01/2020", "10/02/2020", "Pending")))
	require.NoError(t, f.rentals.Add(rental("3", "m1", "c2", "01/01/2020", "10/01/2020", "05/01/2020")))

	now := time.Date(2020, time.January, 20, 0, 0, 0, 0, time.UTC)

	byClient, err := f.rentals.ClientRentals("c1")
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	byMovie, err := f.rentals.MovieRentals("m1")
	require.NoError(t, err)
	assert.Len(t, byMovie, 2)

	overdue, err := f.rentals.OverdueRentals("c1", now)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, "1", overdue[0].ID)

	exact, err := f.rentals.SearchMovieID("M1")
	require.NoError(t, err)
	assert.Len(t, exact, 2)

	none, err := f.rentals.SearchID("1x")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStats(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.clients.Add(domain.Client{ID: "c1", Name: "Jane Hand"}))
	require.NoError(t, f.clients.Add(domain.Client{ID: "c2", Name: "Lenna Ming"}))
	require.NoError(t, f.movies.Add(domain.Movie{ID: "m1", Title: "Puzzle Of", Description: "d", Genre: "drama"}))
	require.NoError(t, f.movies.Add(domain.Movie{ID: "m2", Title: "Aliens And", Description: "d", Genre: "sci-fi"}))

	require.NoError(t, f.rentals.Add(rental("1", "m1", "c1", "01/01/2020", "10/01/2020", "03/01/2020")))
	require.NoError(t, f.rentals.Add(rental("2", "m2", "c2", "01/01/2020", "10/01/2020", "09/01/2020")))
	require.NoError(t, f.rentals.Add(rental("3", "m1", "c1", "01/01/2020", "10/01/2020", "Pending")))

	now := time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC)
	stats := Stats{Clients: f.clients, Movies: f.movies, Rentals: f.rentals}

	movies, err := stats.MostRentedMovies(now)
	require.NoError(t, err)
	assert.Equal(t, []Ranking{{ID: "m2", Name: "Aliens And", Days: 8}, {ID: "m1", Name: "Puzzle Of", Days: 2}}, movies)

	clients, err := stats.MostActiveClients(now)
	require.NoError(t, err)
	assert.Equal(t, "Lenna Ming", clients[0].Name)

	late, err := stats.LateRentals(now)
	require.NoError(t, err)
	require.Len(t, late, 1)
	assert.Equal(t, "3", late[0].Rental.ID)
	assert.Equal(t, 5, late[0].Delay)
}

func TestPopulate(t *testing.T) {
	f := newFixture()
	rng := rand.New(rand.NewPCG(1, 2))

	require.NoError(t, Populate(rng, f.clients, f.movies, f.rentals))

	clients, err := f.clients.All()
	require.NoError(t, err)
	assert.Len(t, clients, 20)

	names := map[string]bool{}
	for _, c := range clients {
		names[c.Name] = true
	}
	assert.Len(t, names, 20, "client names are drawn without replacement")

	movies, err := f.movies.All()
	require.NoError(t, err)
	assert.Len(t, movies, 20)

	rentals, err := f.rentals.All()
	require.NoError(t, err)
	assert.Len(t, rentals, 20)

	require.NoError(t, Populate(rng, f.clients, f.movies, f.rentals), "non-empty stores are left alone")
	clients, err = f.clients.All()
	require.NoError(t, err)
	assert.Len(t, clients, 20)
}
