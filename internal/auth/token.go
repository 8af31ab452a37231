package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const SessionTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid session token")

// SignToken issues the cookie token for a session. The session id travels
// as the jti claim and the user id as the subject, so the middleware can
// find the mirrored database row without an extra lookup table.
func SignToken(secret []byte, sessionID string, userID uint, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken verifies the signature and expiry and returns the session and
// user ids. Database-side session checks are the caller's job.
func ParseToken(secret []byte, raw string) (sessionID string, userID uint, err error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", 0, ErrInvalidToken
	}
	if claims.ID == "" {
		return "", 0, ErrInvalidToken
	}
	uid, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || uid == 0 {
		return "", 0, ErrInvalidToken
	}
	return claims.ID, uint(uid), nil
}
