// Package cryptox implements the client-side encryption subsystem of the
// gratitude journal: deterministic per-user key derivation, authenticated
// encryption of entry text, and a heuristic for telling ciphertext apart
// from legacy plaintext.
//
// # Key schedule
//
// A 256-bit AES key is derived from the stable user identity with
// PBKDF2-SHA256 over a fixed application-wide salt. The salt is shared by
// all users on purpose: the same identity must reproduce the same key on
// any device with no state to replicate. This trades away per-user salt
// hardening; the identity string is the only secret input. Keys live in
// memory for the duration of a single call and are never persisted.
//
// # Payload format
//
// EncryptText output is base64(nonce || ciphertext || tag) with a 12-byte
// random nonce, so encrypting the same text twice yields different
// payloads. DecryptText rejects anything the GCM tag does not verify:
// wrong identity, truncation and bit flips all fail with
// common.ErrDecryption, never with garbage plaintext.
package cryptox
