package schedule

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// idLength is the number of hex characters kept from the digest
const idLength = 16

// StableID creates a deterministic short ID from an ordered tuple of fields.
// Each part is trimmed and lowercased, the parts are joined with a NUL byte
// so that adjacent fields cannot bleed into each other, and the first 16 hex
// characters of the SHA256 digest are returned. Field order is part of the
// identity: swapping two unequal parts yields a different ID.
func StableID(parts ...string) string {
	normalized := make([]string, len(parts))
	for i, p := range parts {
		normalized[i] = strings.ToLower(strings.TrimSpace(p))
	}
	sum := sha256.Sum256([]byte(strings.Join(normalized, "\x00")))
	return hex.EncodeToString(sum[:])[:idLength]
}
