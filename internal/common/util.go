package common

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MakeRandHexString generates a random hexadecimal string of 2*size
// characters (size random bytes, hex-encoded).
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// MakeDemoSessionID builds a unique identifier for a server-issued demo
// session: a UTC timestamp plus a random suffix, so concurrent demo logins
// from different clients cannot collide.
//
// Example: demo_user_20250131094512_3f9a1c0d
func MakeDemoSessionID() string {
	ts := time.Now().UTC().Format("20060102150405")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("demo_user_%s_%s", ts, suffix)
}

// WipeByteArray overwrites the contents of b with zeros. Used to remove
// passwords from memory after use. Nil slices are ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
