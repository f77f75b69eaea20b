package jwtx_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/vos-crm/crm/pkg/jwtx"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewHS256RejectsShortSecret(t *testing.T) {
	_, err := jwtx.NewHS256([]byte("short"), "")
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestHS256RoundTrip(t *testing.T) {
	h, err := jwtx.NewHS256(testSecret, "vos-crm")
	require.NoError(t, err)
	require.Equal(t, "HS256", h.Alg())

	claims := jwtx.NewAccessClaims("user-1", "MEDEWERKER", "m@example.nl", time.Hour, "", time.Now().UTC())
	tok, err := h.Sign(claims)
	require.NoError(t, err)
	require.Len(t, strings.Split(tok, "."), 3)

	got, err := h.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "MEDEWERKER", got.Role)
	require.Equal(t, "vos-crm", got.Issuer)
}

func TestHS256VerifyFailures(t *testing.T) {
	h, err := jwtx.NewHS256(testSecret, "vos-crm")
	require.NoError(t, err)
	now := time.Now().UTC()

	t.Run("malformed", func(t *testing.T) {
		_, err := h.Verify("not.a.jwt")
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewHS256([]byte("ffffffffffffffffffffffffffffffff"), "vos-crm")
		require.NoError(t, err)
		tok, err := other.Sign(jwtx.NewAccessClaims("u", "KLANT", "", time.Hour, "", now))
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := h.Sign(jwtx.NewAccessClaims("u", "KLANT", "", time.Minute, "", now.Add(-time.Hour)))
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		tok, err := h.Sign(jwtx.NewAccessClaims("u", "KLANT", "", time.Hour, "someone-else", now))
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("missing role", func(t *testing.T) {
		tok, err := h.Sign(jwtx.NewAccessClaims("u", "", "", time.Hour, "", now))
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("algorithm swap", func(t *testing.T) {
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)
		tok, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA,
			jwtx.NewAccessClaims("u", "BEHEERDER", "", time.Hour, "vos-crm", now)).SignedString(priv)
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.Error(t, err)
	})
}
