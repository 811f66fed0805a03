package artifact

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewID mints a random identifier for a new registry record. Identity lives
// in the ID; renames keep it stable.
func NewID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// Extremely unlikely; fall back to a timestamp-derived id.
		return fmt.Sprintf("t%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
