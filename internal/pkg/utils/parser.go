package utils

import (
	"errors"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

var (
	errInvalidSigningMethod = errors.New("invalid token signing method")
	errInvalidToken         = errors.New("invalid token")
	errMissingSubject       = errors.New("token has no subject")
	errEmptySecret          = errors.New("token secret is not configured")
)

// IdentityClaims are the claims issued by the external identity provider.
type IdentityClaims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

func ParseIdentityJWT(tokenString, secret string) (*IdentityClaims, error) {
	if secret == "" {
		return nil, errEmptySecret
	}
	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidSigningMethod
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errInvalidToken
	}
	if claims.Subject == "" {
		return nil, errMissingSubject
	}
	return claims, nil
}

func IsMissingSubject(err error) bool {
	return errors.Is(err, errMissingSubject)
}

// ParseFloatList parses a comma separated list such as "0.5,1,1.5".
func ParseFloatList(raw string) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func ParseOptionalInt64(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func ParseCSV(raw string) []string {
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
