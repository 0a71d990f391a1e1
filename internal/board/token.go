package board

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	mathrand "math/rand"
	"os"
	"time"
)

// TokenLength is the exact size of a manage token in hex characters.
const TokenLength = 64

// TokenIssuer produces the secret that authorizes edit and delete.
// Uniqueness is enforced by the storage layer's unique index, not here.
type TokenIssuer interface {
	Issue() string
}

type tokenIssuer struct{}

// NewTokenIssuer returns the default issuer backed by crypto/rand.
func NewTokenIssuer() TokenIssuer {
	return tokenIssuer{}
}

// Issue returns a 64-char hex token. If the strong random source fails it
// degrades to a time/process-entropy token so post creation never blocks;
// the downgrade is logged.
func (tokenIssuer) Issue() string {
	buf := make([]byte, TokenLength/2)
	if _, err := rand.Read(buf); err != nil {
		log.Printf("token: crypto source unavailable, using fallback generator: %v", err)
		return fallbackToken()
	}
	return hex.EncodeToString(buf)
}

// fallbackToken trades unpredictability for availability. The sha256 keeps
// length and charset identical to the primary path.
func fallbackToken() string {
	seed := fmt.Sprintf("%d|%d|%d", time.Now().UnixNano(), os.Getpid(), mathrand.Int63())
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}
