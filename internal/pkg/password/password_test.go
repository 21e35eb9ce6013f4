//go:build unit

package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bikepacking-api/internal/pkg/password"
)

func TestHashAndCompare(t *testing.T) {
	password.Cost = bcrypt.MinCost

	hashed, err := password.HashPassword("gravel-grinder")
	require.NoError(t, err)
	assert.NotEqual(t, "gravel-grinder", hashed)

	assert.NoError(t, password.ComparePassword(hashed, "gravel-grinder"))
	assert.ErrorIs(t, password.ComparePassword(hashed, "road-bike"), password.ErrMismatch)
	assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrEmpty)
	assert.Error(t, password.ComparePassword("not-a-bcrypt-hash", "gravel-grinder"))

	_, err = password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrEmpty)
}
