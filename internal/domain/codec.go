package domain

import (
	"fmt"
	"strings"
)

// splitLine trims the line and splits it into exactly n fields.
func splitLine(line string, n int) ([]string, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != n {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedLine, n, len(fields))
	}
	return fields, nil
}

// ClientCodec encodes clients as "id,name".
type ClientCodec struct{}

func (ClientCodec) Encode(c Client) string {
	return c.ID + "," + c.Name
}

func (ClientCodec) Decode(line string) (Client, error) {
	f, err := splitLine(line, 2)
	if err != nil {
		return Client{}, err
	}
	c, err := NewClient(f[0], f[1])
	if err != nil {
		return Client{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	return c, nil
}

// MovieCodec encodes movies as "id,title,description,genre".
type MovieCodec struct{}

func (MovieCodec) Encode(m Movie) string {
	return strings.Join([]string{m.ID, m.Title, m.Description, m.Genre}, ",")
}

func (MovieCodec) Decode(line string) (Movie, error) {
	f, err := splitLine(line, 4)
	if err != nil {
		return Movie{}, err
	}
	m, err := NewMovie(f[0], f[1], f[2], f[3])
	if err != nil {
		return Movie{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	return m, nil
}

// RentalCodec encodes rentals as "id,movie_id,client_id,rented,due,returned".
type RentalCodec struct{}

func (RentalCodec) Encode(r Rental) string {
	return strings.Join([]string{
		r.ID,
		r.MovieID,
		r.ClientID,
		FormatDate(r.RentedDate),
		FormatDate(r.DueDate),
		FormatDate(r.ReturnedDate),
	}, ",")
}

func (RentalCodec) Decode(line string) (Rental, error) {
	f, err := splitLine(line, 6)
	if err != nil {
		return Rental{}, err
	}
	rented, err := ParseDate(f[3])
	if err != nil {
		return Rental{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	due, err := ParseDate(f[4])
	if err != nil {
		return Rental{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	returned, err := ParseDate(f[5])
	if err != nil {
		return Rental{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	r, err := NewRental(f[0], f[1], f[2], rented, due, returned)
	if err != nil {
		return Rental{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	return r, nil
}
