package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"tycord/config"
	"tycord/pkg/errors"
)

type AuthClaims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateJWTToken mints an access token for the given user id. Expiry is
// config.JWT.ExpiredIn hours.
func GenerateJWTToken(userID uuid.UUID, cfg *config.Config) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JWT.ExpiredIn) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ValidateJWTToken implements verify(token) -> userId. Any parse or
// signature failure surfaces as Unauthenticated.
func ValidateJWTToken(tokenStr string, cfg *config.Config) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errors.Unauthorized("token could not be verified")
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || claims.UserID == uuid.Nil {
		return uuid.Nil, errors.Unauthorized("token could not be verified")
	}
	return claims.UserID, nil
}
