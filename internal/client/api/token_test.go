package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
		"sub": "42",
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		tok  string
		want bool
	}{
		{
			name: "expired an hour ago",
			tok:  signedToken(t, now.Add(-time.Hour)),
			want: true,
		},
		{
			name: "expires within the skew window",
			tok:  signedToken(t, now.Add(10*time.Second)),
			want: true,
		},
		{
			name: "expires well in the future",
			tok:  signedToken(t, now.Add(time.Hour)),
			want: false,
		},
		{
			name: "opaque non-jwt token",
			tok:  "A1",
			want: false,
		},
		{
			name: "empty token",
			tok:  "",
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tokenExpired(tc.tok, now))
		})
	}
}

func TestTokenExpired_NoExpClaim(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42"})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	require.False(t, tokenExpired(s, time.Now()))
}
