package utils // package utils provides helper functions for token creation and hashing

import (
	"crypto/rand"   // secure random number generation
	"encoding/hex"  // hex encoding of the random bytes
)

// NewSessionToken returns a 64-character opaque session token generated
// from 32 bytes of cryptographically secure random data.  The token is the
// only value placed in the client cookie; everything else lives in the
// session store.
func NewSessionToken() (string, error) {
	return randomHex(32)
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.  If the random number generator
// fails, an error is returned.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
