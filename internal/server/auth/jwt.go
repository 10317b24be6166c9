package auth

import (
	"errors"
	"time"

	"github.com/akondrashov/stash/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues a signed HS256 token with subject userID, issued at
// now and expiring at now+validityDuration.
func GenerateToken(userID string, secretKey []byte, now time.Time, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
	})

	return token.SignedString(secretKey)
}

// GetUserIDFromToken validates tokenString against secretKey as of now and
// returns the subject. The check is pure: signature and expiry only, no
// storage involved. A token is valid iff the signature verifies and now is
// before the encoded expiry.
//
// Failures are distinguishable with errors.Is: common.ErrTokenMalformed,
// common.ErrTokenSignature, common.ErrTokenExpired, common.ErrTokenNoSubject.
func GetUserIDFromToken(tokenString string, secretKey []byte, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		default:
			return "", common.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return "", common.ErrTokenSignature
	}

	if claims.Subject == "" {
		return "", common.ErrTokenNoSubject
	}

	return claims.Subject, nil
}
