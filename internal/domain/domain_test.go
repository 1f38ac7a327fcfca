package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNewClient_Validation(t *testing.T) {
	c, err := NewClient("2", "name")
	require.NoError(t, err)
	assert.Equal(t, "2", c.Key())
	assert.Equal(t, "ID: 2\nName: name", c.String())

	_, err = NewClient("3", "")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = NewClient("3", "Doe, John")
	assert.ErrorIs(t, err, ErrInvalid, "commas would break the line format")
}

func TestNewMovie_Validation(t *testing.T) {
	m, err := NewMovie("2", "Movie_title", "Movie_desc", "Genre")
	require.NoError(t, err)
	assert.Equal(t, "ID: 2\nTitle: Movie_title\nGenre: Genre\nDescription: Movie_desc", m.String())

	for _, bad := range []Movie{
		{ID: "1", Title: "", Description: "d", Genre: "g"},
		{ID: "1", Title: "t", Description: "", Genre: "g"},
		{ID: "1", Title: "t", Description: "d", Genre: ""},
		{ID: "", Title: "t", Description: "d", Genre: "g"},
	} {
		assert.ErrorIs(t, bad.Validate(), ErrInvalid, "%+v", bad)
	}
}

func TestNewRental_DateOrdering(t *testing.T) {
	rented := date(t, "01/01/2005")
	due := date(t, "01/01/2009")

	_, err := NewRental("1", "2", "3", due, rented, Pending)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = NewRental("1", "2", "3", due, due, rented)
	assert.ErrorIs(t, err, ErrInvalid)

	r, err := NewRental("1", "2", "3", rented, due, Pending)
	require.NoError(t, err)
	assert.False(t, r.Returned())
	assert.Contains(t, r.String(), "Returned Date: Pending")
}

func TestRental_RentedDaysAndOverdue(t *testing.T) {
	r := Rental{
		ID: "1", MovieID: "2", ClientID: "3",
		RentedDate:   date(t, "01/01/2020"),
		DueDate:      date(t, "11/01/2020"),
		ReturnedDate: date(t, "08/01/2020"),
	}
	now := date(t, "20/01/2020")
	assert.Equal(t, 7, r.RentedDays(now))
	assert.False(t, r.Overdue(now))

	r.ReturnedDate = Pending
	assert.Equal(t, 9, r.RentedDays(now))
	assert.True(t, r.Overdue(now))
	assert.False(t, r.Overdue(date(t, "11/01/2020")))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1/2/2008")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2008, time.February, 1, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "01/02/2008", FormatDate(d))

	p, err := ParseDate("pending")
	require.NoError(t, err)
	assert.True(t, IsPending(p))

	_, err = ParseDate("2008-02-01")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodecs_RoundTrip(t *testing.T) {
	c := Client{ID: "7", Name: "Tony Hill"}
	line := ClientCodec{}.Encode(c)
	assert.Equal(t, "7,Tony Hill", line)
	got, err := ClientCodec{}.Decode(line + "\n")
	require.NoError(t, err)
	assert.Equal(t, c, got)

	m := Movie{ID: "3", Title: "Clone Of War", Description: "Generic Description 3", Genre: "sci-fi"}
	line = MovieCodec{}.Encode(m)
	assert.Equal(t, "3,Clone Of War,Generic Description 3,sci-fi", line)
	gotMovie, err := MovieCodec{}.Decode(line)
	require.NoError(t, err)
	assert.Equal(t, m, gotMovie)
}

func TestRentalCodec_PendingSentinel(t *testing.T) {
	r := Rental{
		ID: "4", MovieID: "9", ClientID: "12",
		RentedDate:   date(t, "07/03/2005"),
		DueDate:      date(t, "08/04/2009"),
		ReturnedDate: Pending,
	}
	line := RentalCodec{}.Encode(r)
	assert.Equal(t, "4,9,12,07/03/2005,08/04/2009,Pending", line)

	got, err := RentalCodec{}.Decode(line)
	require.NoError(t, err)
	assert.True(t, IsPending(got.ReturnedDate))
	assert.Equal(t, r, got)
}

func TestCodecs_Malformed(t *testing.T) {
	_, err := ClientCodec{}.Decode("only-id")
	assert.ErrorIs(t, err, ErrMalformedLine)

	_, err = MovieCodec{}.Decode("1,title,,genre")
	assert.ErrorIs(t, err, ErrMalformedLine)

	_, err = RentalCodec{}.Decode("1,2,3,not-a-date,01/01/2009,Pending")
	assert.ErrorIs(t, err, ErrMalformedLine)
}
