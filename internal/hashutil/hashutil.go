// Package hashutil derives short, stable identifiers from arbitrary strings.
// Generated template destinations embed these digests so that the same source
// always maps to the same output file within a build.
package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// digestLen is the number of hex characters kept from the full digest.
const digestLen = 8

// Short returns a stable lowercase hex digest of s, truncated to eight
// characters. Equal inputs always produce equal digests.
func Short(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:digestLen]
}
