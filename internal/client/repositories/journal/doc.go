// Package journal implements the on-device system of record for the
// gratitude journal. Exactly three logical records exist (the profile, the
// ordered entry list and the streak record), each JSON-serialized into a
// sqlite key-value table. The store is authoritative when offline and
// encryption-agnostic: it persists whatever content string the caller hands
// it, plaintext or encrypted payload alike.
package journal
