package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const TokenTTL = 24 * time.Hour

// SignToken issues an HS256 token carrying the user id and provider flag.
func SignToken(secret string, userID uint, provider bool, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"id":       userID,
		"provider": provider,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
