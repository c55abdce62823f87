package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims IdentityClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestParseIdentityJWT(t *testing.T) {
	t.Run("Valid Token", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), IdentityClaims{
			Roles:            []string{"provider"},
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		})

		claims, err := ParseIdentityJWT(token, testSecret)

		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, []string{"provider"}, claims.Roles)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte("other"), IdentityClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		})

		_, err := ParseIdentityJWT(token, testSecret)
		assert.Error(t, err)
		assert.False(t, IsMissingSubject(err))
	})

	t.Run("Expired", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), IdentityClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
		})

		_, err := ParseIdentityJWT(token, testSecret)
		assert.Error(t, err)
	})

	t.Run("Missing Subject", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), IdentityClaims{})

		_, err := ParseIdentityJWT(token, testSecret)
		assert.True(t, IsMissingSubject(err))
	})

	t.Run("Empty Secret", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(""), IdentityClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "victim"},
		})

		claims, err := ParseIdentityJWT(token, "")
		assert.ErrorIs(t, err, errEmptySecret)
		assert.Nil(t, claims)
	})

	t.Run("Unsigned Token", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, IdentityClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		})

		_, err := ParseIdentityJWT(token, testSecret)
		assert.Error(t, err)
	})
}

func TestParseFloatList(t *testing.T) {
	values, err := ParseFloatList(" 0.5, 1,1.5 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 1.5}, values)

	values, err = ParseFloatList("")
	assert.NoError(t, err)
	assert.Nil(t, values)

	_, err = ParseFloatList("1,two")
	assert.Error(t, err)
}

func TestParseOptionalInt64(t *testing.T) {
	value, err := ParseOptionalInt64("")
	assert.NoError(t, err)
	assert.Nil(t, value)

	value, err = ParseOptionalInt64("9000")
	require.NoError(t, err)
	assert.Equal(t, int64(9000), *value)

	_, err = ParseOptionalInt64("cheap")
	assert.Error(t, err)
}

func TestParseCSV(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseCSV(" a,,b , "))
	assert.Nil(t, ParseCSV(""))
}
