package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/gratitude/internal/common"
)

const nonceSize = 12

// EncryptText encrypts plaintext under the key derived from identity and
// returns a self-contained payload: base64(nonce || ciphertext || tag).
// A fresh random nonce is generated on every call, so repeated encryption
// of the same text produces different payloads.
func EncryptText(plaintext, identity string) (string, error) {
	key, err := DeriveKey(identity)
	if err != nil {
		return "", err
	}
	return sealPayload(key, plaintext)
}

func sealPayload(key []byte, plaintext string) (string, error) {
	aead, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("cipher init error: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("nonce generation error: %w", err)
	}

	out := make([]byte, 0, nonceSize+len(plaintext)+aead.Overhead())
	out = append(out, nonce...)
	out = append(out, aead.Seal(nil, nonce, []byte(plaintext), nil)...)

	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptText reverses EncryptText. It fails with common.ErrDecryption when
// the payload is malformed, truncated, or was encrypted under a different
// identity; the GCM tag guarantees it never returns garbage text.
func DecryptText(payload, identity string) (string, error) {
	key, err := DeriveKey(identity)
	if err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64", common.ErrDecryption)
	}
	if len(raw) < nonceSize {
		return "", fmt.Errorf("%w: payload too short", common.ErrDecryption)
	}

	aead, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecryption, err)
	}

	nonce, ct := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: wrong identity or corrupted payload", common.ErrDecryption)
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
