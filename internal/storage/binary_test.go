package storage_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movierental/internal/domain"
	"movierental/internal/storage"
)

func TestBinaryRepository_EmptyFileIsEmptyStore(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "clients.bin", nil, 0o644))

	repo := storage.NewBinaryRepository[domain.Client](fs, "clients.bin", quietLogger())
	values, err := repo.Values()
	require.NoError(t, err)
	assert.Empty(t, values)

	require.NoError(t, repo.Add(domain.Client{ID: "1", Name: "A"}))
	ok, err := repo.Has("1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBinaryRepository_TruncatedBlobIsEmptyStore(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := storage.NewBinaryRepository[domain.Client](fs, "clients.bin", quietLogger())
	require.NoError(t, repo.Add(domain.Client{ID: "1", Name: "A"}))
	require.NoError(t, repo.Add(domain.Client{ID: "2", Name: "B"}))

	data, err := afero.ReadFile(fs, "clients.bin")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "clients.bin", data[:len(data)/2], 0o644))

	values, err := repo.Values()
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestBinaryRepository_RentalDatesSurvive(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := storage.NewBinaryRepository[domain.Rental](fs, "rentals.bin", quietLogger())

	rented, _ := domain.ParseDate("06/02/2005")
	due, _ := domain.ParseDate("06/02/2009")
	returned, _ := domain.ParseDate("09/05/2008")
	rentals := []domain.Rental{
		{ID: "1", MovieID: "1", ClientID: "1", RentedDate: rented, DueDate: due, ReturnedDate: domain.Pending},
		{ID: "2", MovieID: "2", ClientID: "1", RentedDate: rented, DueDate: due, ReturnedDate: returned},
	}
	for _, r := range rentals {
		require.NoError(t, repo.Add(r))
	}

	got, err := storage.NewBinaryRepository[domain.Rental](fs, "rentals.bin", quietLogger()).Values()
	require.NoError(t, err)
	assert.Equal(t, rentals, got)
	assert.True(t, domain.IsPending(got[0].ReturnedDate))
}
