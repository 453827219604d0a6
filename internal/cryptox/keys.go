package cryptox

import (
	"crypto/sha256"
	"fmt"

	"github.com/dmitrijs2005/gratitude/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	keyLen     = 32
	iterations = 100_000
)

// keySalt is the fixed application-wide salt. Changing it (or making it
// per-user) would orphan every payload encrypted so far, so it stays a
// constant; see the package comment for the trade-off.
var keySalt = []byte("gratitude-journal-v1-static-salt")

// DeriveKey derives the 256-bit entry-cipher key from the user identity.
// Deterministic: the same identity always yields the same key.
func DeriveKey(identity string) ([]byte, error) {
	if identity == "" {
		return nil, fmt.Errorf("%w: empty identity", common.ErrKeyDerivation)
	}
	return pbkdf2.Key([]byte(identity), keySalt, iterations, keyLen, sha256.New), nil
}
