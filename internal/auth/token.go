package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobboard/backend/internal/models"
)

// TokenTTL is the absolute lifetime of an issued token. Expiry is not
// sliding; a token dies 24h after issuance no matter how often it is used.
const TokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the decoded caller attached to the request context by the
// auth middleware. CompanyID is nil for accounts without a company.
type Identity struct {
	UserID    uint
	Role      string
	CompanyID *uint
}

// NewToken signs an HS256 token for the given user carrying {sub, role,
// company_id, exp}. company_id is only included when the account has one.
func NewToken(secret string, user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": user.Role,
		"exp":  time.Now().Add(TokenTTL).Unix(),
	}
	if user.CompanyID != nil {
		claims["company_id"] = float64(*user.CompanyID)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the caller identity.
// Any failure collapses to ErrInvalidToken; callers never learn why a token
// was rejected.
func ParseToken(secret, tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	identity := &Identity{UserID: uint(sub), Role: role}
	if companyID, ok := claims["company_id"].(float64); ok {
		id := uint(companyID)
		identity.CompanyID = &id
	}
	return identity, nil
}
