package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashText creates a SHA256 hash of a text blob. Broadcast raw text and
// search queries are arbitrary multiline Unicode, so the hash doubles as a
// safe, consistent key for Redis and PostgreSQL.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
