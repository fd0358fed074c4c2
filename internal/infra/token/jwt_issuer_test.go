package token_test

import (
	"testing"
	"time"

	"storefront/internal/infra/token"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-test-secret-test-secret"

func TestJWTIssuer_IssueAndParse(t *testing.T) {
	iss := token.NewJWTIssuer(secret, time.Hour)
	now := time.Now()

	raw, exp, err := iss.Issue("sess-1", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour).Unix(), exp.Unix())

	sid, err := iss.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sid)
}

func TestJWTIssuer_Parse_Expired(t *testing.T) {
	iss := token.NewJWTIssuer(secret, time.Minute)

	raw, _, err := iss.Issue("sess-1", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = iss.Parse(raw)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestJWTIssuer_Parse_WrongSecret(t *testing.T) {
	raw, _, err := token.NewJWTIssuer("other-secret-other-secret-other", time.Hour).Issue("sess-1", time.Now())
	require.NoError(t, err)

	_, err = token.NewJWTIssuer(secret, time.Hour).Parse(raw)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestJWTIssuer_Parse_Rejects(t *testing.T) {
	iss := token.NewJWTIssuer(secret, time.Hour)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "sess-1"}).SignedString([]byte(secret))
	require.NoError(t, err)

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "sess-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage": "tampered.jwt.token",
		"no exp":  noExp,
		"no sub":  noSub,
		"hs512":   hs512,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := iss.Parse(raw)
			assert.ErrorIs(t, err, token.ErrInvalidToken)
		})
	}
}
