package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// expirySkew makes a token count as expired slightly before its real
// deadline, so a request started just under the wire doesn't 401.
const expirySkew = 30 * time.Second

// tokenExpired reports whether raw is a JWT whose exp claim has passed
// (within expirySkew). Tokens that don't parse as JWTs, or carry no exp
// claim, are treated as non-expiring; their validity is discovered on the
// first 401.
func tokenExpired(raw string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.Add(expirySkew).After(exp.Time)
}
