package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSubject is returned when a token carries no usable user identifier.
var ErrNoSubject = errors.New("token has no subject")

// SessionClaims are the parts of a session token the client relies on.
type SessionClaims struct {
	UserID string
	// ExpiresAt is zero when the token has no exp claim.
	ExpiresAt time.Time
}

// ParseSessionClaims reads the user identifier and expiry from a JWT without
// verifying its signature. The client never holds the signing key; the
// server is the one that validates the token on every request.
//
// The user identifier is taken from "sub", falling back to "userId",
// "user_id" and "uid". Numeric identifiers are rendered in decimal.
//
// Example usage:
//
//	claims, err := utils.ParseSessionClaims(rawToken)
//	if err != nil {
//	    // token is malformed or anonymous
//	}
func ParseSessionClaims(tokenString string) (SessionClaims, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tokenString), "Bearer "))

	parser := jwt.NewParser(jwt.WithJSONNumber())
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return SessionClaims{}, fmt.Errorf("error occurred parsing session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, errors.New("invalid token claims")
	}

	var out SessionClaims
	for _, key := range []string{"sub", "userId", "user_id", "uid"} {
		if id := claimString(claims[key]); id != "" {
			out.UserID = id
			break
		}
	}
	if out.UserID == "" {
		return SessionClaims{}, ErrNoSubject
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return SessionClaims{}, fmt.Errorf("error occurred reading token expiry: %w", err)
	}
	if exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}

func claimString(v any) string {
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		return value.String()
	case float64:
		return strconv.FormatInt(int64(value), 10)
	default:
		return ""
	}
}
