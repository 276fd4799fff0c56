package keys

import (
	"crypto/sha256"
	"fmt"
)

// Digest returns a fixed-size storage key for an encoded polyline. Encoded
// shapes run to thousands of bytes; hashing keeps provider keys short and
// uniform. 16 hex chars (64 bits) is plenty for cache-sized keyspaces.
func Digest(prefix, encoded string) string {
	sum := sha256.Sum256([]byte(encoded))
	return fmt.Sprintf("%s:%x", prefix, sum[:8])
}
