package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDSN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"postgres://u:p@db/spectra", "postgres://u:p@db/spectra?sslmode=require"},
		{"postgresql://db/spectra?connect_timeout=5", "postgresql://db/spectra?connect_timeout=5&sslmode=require"},
		{"user=postgres dbname=spectra", "user=postgres dbname=spectra sslmode=require"},
		{"postgres://db/spectra?sslmode=disable", "postgres://db/spectra?sslmode=disable"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDSN(tt.in))
		})
	}
}

// Runs against a real database only when SPECTRA_TEST_DATABASE_URL is set.
func TestPostgresUserRepository(t *testing.T) {
	dsn := os.Getenv("SPECTRA_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("SPECTRA_TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	r := NewPostgresUserRepository(db)
	login := fmt.Sprintf("user-%d", time.Now().UnixNano())

	id, err := r.CreateUser(ctx, login, "u@example.com", "hash")
	require.NoError(t, err)

	gotID, hash, err := r.GetByLogin(ctx, login)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, "hash", hash)

	_, err = r.CreateUser(ctx, login, "u@example.com", "hash")
	assert.Error(t, err)

	_, _, err = r.GetByLogin(ctx, login+"-missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}
