// Package timetoken issues and checks the short-lived X-Time-Token that accompanies
// an X-API-Key header. Tokens are fernet messages signed with a key derived from the API key,
// so a captured token stops working once its TTL has passed.
package timetoken

import (
	"crypto/sha256"
	"errors"
	"time"

	"github.com/fernet/fernet-go"
)

// TTL is how long a generated token is accepted.
const TTL = 5 * time.Minute

const purpose = "portfolio-drafts"

// ErrInvalidToken is returned when a token fails verification or has expired.
var ErrInvalidToken = errors.New("time token is invalid or expired")

func keyFor(apiKey string) *fernet.Key {
	k := fernet.Key(sha256.Sum256([]byte(apiKey)))
	return &k
}

// Generate returns a fresh token for apiKey.
func Generate(apiKey string) (string, error) {
	tok, err := fernet.EncryptAndSign([]byte(purpose), keyFor(apiKey))
	if err != nil {
		return "", err
	}
	return string(tok), nil
}

// Verify checks that token was generated for apiKey within ttl.
func Verify(apiKey, token string, ttl time.Duration) error {
	msg := fernet.VerifyAndDecrypt([]byte(token), ttl, []*fernet.Key{keyFor(apiKey)})
	if msg == nil || string(msg) != purpose {
		return ErrInvalidToken
	}
	return nil
}
