package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/backend/internal/models"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	companyID := uint(7)
	user := &models.User{
		ID:        42,
		Role:      models.RoleCompanyAdmin,
		CompanyID: &companyID,
	}

	token, err := NewToken(testSecret, user)
	require.NoError(t, err)

	identity, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), identity.UserID)
	assert.Equal(t, models.RoleCompanyAdmin, identity.Role)
	require.NotNil(t, identity.CompanyID)
	assert.Equal(t, uint(7), *identity.CompanyID)
}

func TestTokenWithoutCompany(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleUser}

	token, err := NewToken(testSecret, user)
	require.NoError(t, err)

	identity, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, identity.Role)
	assert.Nil(t, identity.CompanyID)
}

func TestTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleUser}

	token, err := NewToken(testSecret, user)
	require.NoError(t, err)

	_, err = ParseToken("another-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpiry(t *testing.T) {
	// A token is good up to 24h after issuance and dead afterwards. Craft
	// the exp claim directly to simulate both sides of the boundary.
	issue := func(exp time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  float64(5),
			"role": models.RoleUser,
			"exp":  exp.Unix(),
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)
		return signed
	}

	stillValid := issue(time.Now().Add(time.Hour))
	identity, err := ParseToken(testSecret, stillValid)
	require.NoError(t, err)
	assert.Equal(t, uint(5), identity.UserID)

	expired := issue(time.Now().Add(-time.Minute))
	_, err = ParseToken(testSecret, expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsMissingClaims(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
