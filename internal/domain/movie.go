package domain

import "fmt"

// Movie is a title available for rent.
type Movie struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
}

// NewMovie builds a validated Movie.
func NewMovie(id, title, description, genre string) (Movie, error) {
	m := Movie{ID: id, Title: title, Description: description, Genre: genre}
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	return m, nil
}

// Key returns the movie ID.
func (m Movie) Key() string { return m.ID }

// Validate checks that every field can be stored.
func (m Movie) Validate() error {
	fields := []struct{ name, value string }{
		{"id", m.ID},
		{"title", m.Title},
		{"description", m.Description},
		{"genre", m.Genre},
	}
	for _, f := range fields {
		if err := checkField(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

func (m Movie) String() string {
	return fmt.Sprintf("ID: %s\nTitle: %s\nGenre: %s\nDescription: %s", m.ID, m.Title, m.Genre, m.Description)
}
