package api

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry extracts the expiry claim from a JWT without verifying its
// signature. Display only: the client never enforces expiry locally, that is
// the server's job.
func TokenExpiry(token string) (jwt.NumericDate, error) {
	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return jwt.NumericDate{}, err
	}
	if claims.ExpiresAt == nil {
		return jwt.NumericDate{}, errors.New("token has no expiry claim")
	}
	return *claims.ExpiresAt, nil
}
