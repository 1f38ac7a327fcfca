package ui

import (
	"fmt"
	"strings"
	"time"

	"movierental/internal/domain"
)

func (m *Menu) readMovie(idLabel string) (domain.Movie, error) {
	f, err := m.prompts(idLabel, "Enter movie title", "Enter movie description", "Enter movie genre")
	if err != nil {
		return domain.Movie{}, err
	}
	return domain.NewMovie(f[0], f[1], f[2], f[3])
}

func (m *Menu) addMovie() error {
	mv, err := m.readMovie("Enter new movie ID")
	if err != nil {
		return err
	}
	return m.session.AddMovie(mv)
}

func (m *Menu) updateMovie() error {
	mv, err := m.readMovie("Enter the ID of the movie you want to update")
	if err != nil {
		return err
	}
	return m.session.UpdateMovie(mv)
}

func (m *Menu) removeMovie() error {
	id, err := m.prompt("Enter the ID of the movie you want to remove")
	if err != nil {
		return err
	}
	return m.session.RemoveMovie(id)
}

func (m *Menu) listMovies() error {
	out, err := m.session.Movies.List()
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, out)
	return nil
}

func (m *Menu) readClient(idLabel string) (domain.Client, error) {
	f, err := m.prompts(idLabel, "Enter client name")
	if err != nil {
		return domain.Client{}, err
	}
	return domain.NewClient(f[0], f[1])
}

func (m *Menu) addClient() error {
	c, err := m.readClient("Enter new client ID")
	if err != nil {
		return err
	}
	return m.session.AddClient(c)
}

func (m *Menu) updateClient() error {
	c, err := m.readClient("Enter the ID of the client you want to update")
	if err != nil {
		return err
	}
	return m.session.UpdateClient(c)
}

func (m *Menu) removeClient() error {
	id, err := m.prompt("Enter the ID of the client you want to remove")
	if err != nil {
		return err
	}
	return m.session.RemoveClient(id)
}

func (m *Menu) listClients() error {
	out, err := m.session.Clients.List()
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, out)
	return nil
}

func (m *Menu) readRental(idLabel string) (domain.Rental, error) {
	f, err := m.prompts(idLabel,
		"Enter rental movie ID",
		"Enter rental client ID",
		"Enter rented date (DD/MM/YYYY)",
		"Enter due date (DD/MM/YYYY)",
		"Enter returned date (DD/MM/YYYY) or 'Pending'",
	)
	if err != nil {
		return domain.Rental{}, err
	}
	var dates [3]time.Time
	for i, s := range f[3:] {
		if dates[i], err = domain.ParseDate(s); err != nil {
			return domain.Rental{}, err
		}
	}
	return domain.NewRental(f[0], f[1], f[2], dates[0], dates[1], dates[2])
}

func (m *Menu) addRental() error {
	r, err := m.readRental("Enter new rental ID")
	if err != nil {
		return err
	}
	return m.session.AddRental(r)
}

func (m *Menu) updateRental() error {
	r, err := m.readRental("Enter the ID of the rental you want to update")
	if err != nil {
		return err
	}
	return m.session.UpdateRental(r)
}

func (m *Menu) removeRental() error {
	id, err := m.prompt("Enter the ID of the rental you want to remove")
	if err != nil {
		return err
	}
	return m.session.RemoveRental(id)
}

func (m *Menu) listRentals() error {
	out, err := m.session.Rentals.List()
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, out)
	return nil
}

func (m *Menu) returnMovie() error {
	id, err := m.prompt("Enter the ID of the rental you want to return")
	if err != nil {
		return err
	}
	r, err := m.session.ReturnMovie(id)
	if err != nil {
		return err
	}
	m.notice("Rental %s returned on %s", r.ID, domain.FormatDate(r.ReturnedDate))
	return nil
}

// printBlocks writes each item followed by a blank line.
func printBlocks[T fmt.Stringer](m *Menu, items []T) {
	if len(items) == 0 {
		m.notice("No results")
		return
	}
	var b strings.Builder
	for _, it := range items {
		b.WriteString(it.String())
		b.WriteString("\n\n")
	}
	fmt.Fprint(m.out, b.String())
}

// search prompts for a query and prints what find returns.
func search[T fmt.Stringer](m *Menu, find func(string) ([]T, error)) error {
	q, err := m.prompt("Enter your query")
	if err != nil {
		return err
	}
	items, err := find(q)
	if err != nil {
		return err
	}
	printBlocks(m, items)
	return nil
}

func (m *Menu) searchClientsByID() error   { return search(m, m.session.Clients.SearchID) }
func (m *Menu) searchClientsByName() error { return search(m, m.session.Clients.SearchName) }
func (m *Menu) searchMoviesByID() error    { return search(m, m.session.Movies.SearchID) }
func (m *Menu) searchMoviesByTitle() error { return search(m, m.session.Movies.SearchTitle) }
func (m *Menu) searchMoviesByDescription() error {
	return search(m, m.session.Movies.SearchDescription)
}
func (m *Menu) searchMoviesByGenre() error   { return search(m, m.session.Movies.SearchGenre) }
func (m *Menu) searchRentalsByClient() error { return search(m, m.session.Rentals.SearchClientID) }
func (m *Menu) searchRentalsByMovie() error  { return search(m, m.session.Rentals.SearchMovieID) }

func (m *Menu) mostRentedMovies() error {
	rows, err := m.session.Stats.MostRentedMovies(m.session.Now())
	if err != nil {
		return err
	}
	for _, r := range rows {
		fmt.Fprintf(m.out, "Title: %s\nRented Days: %d\n\n", r.Name, r.Days)
	}
	return nil
}

func (m *Menu) mostActiveClients() error {
	rows, err := m.session.Stats.MostActiveClients(m.session.Now())
	if err != nil {
		return err
	}
	for _, r := range rows {
		fmt.Fprintf(m.out, "Name: %s\nRented Days: %d\n\n", r.Name, r.Days)
	}
	return nil
}

func (m *Menu) lateRentals() error {
	late, err := m.session.Stats.LateRentals(m.session.Now())
	if err != nil {
		return err
	}
	if len(late) == 0 {
		m.notice("No late rentals")
		return nil
	}
	for _, l := range late {
		r := l.Rental
		fmt.Fprintf(m.out, "ID: %s\nClient: %s\nMovie: %s\nRented Date: %s\nDue Date: %s\nDelay: %d\n\n",
			r.ID, r.ClientID, r.MovieID, domain.FormatDate(r.RentedDate), domain.FormatDate(r.DueDate), l.Delay)
	}
	return nil
}
