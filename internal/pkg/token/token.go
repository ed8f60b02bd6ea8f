package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated user's identity inside a session token.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HS256 session tokens. The server keeps no
// per-session state; the token itself is the session.
type Manager struct {
	secret []byte
	expiry time.Duration
}

func NewManager(secret string, expireHours int) *Manager {
	return &Manager{
		secret: []byte(secret),
		expiry: time.Duration(expireHours) * time.Hour,
	}
}

// Generate signs a new token embedding the user ID with a fixed expiry.
func (m *Manager) Generate(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses and verifies a token string, rejecting anything not
// signed with this manager's secret using HMAC.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
