package cryptox

import (
	"regexp"
	"strings"
)

// minCiphertextLen is the length threshold of the classifier. The shortest
// real payload (12-byte nonce + 1 byte + 16-byte tag, base64) is exactly 40
// characters, so the comparison below is inclusive.
const minCiphertextLen = 40

var base64Alphabet = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

// LooksEncrypted reports whether content is plausibly an EncryptText
// payload: at least minCiphertextLen characters after trimming and made up
// entirely of base64-alphabet characters. It is a heuristic for rendering mixed
// corpora where old entries predate encryption, not a guarantee: a long
// plain word of letters and digits is indistinguishable from ciphertext.
// A versioned payload prefix would classify exactly, but existing payloads
// carry no tag, so the heuristic stays.
func LooksEncrypted(content string) bool {
	trimmed := strings.TrimSpace(content)
	return len(trimmed) >= minCiphertextLen && base64Alphabet.MatchString(trimmed)
}
