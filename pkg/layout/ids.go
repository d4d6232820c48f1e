package layout

import (
	"strings"

	"github.com/google/uuid"
)

// MintID returns a fresh structural component id. Ids are opaque, unique
// within a layout, and never reused.
func MintID() string {
	return uuid.NewString()
}

// MintFieldKey returns a fresh logical field key for a newly placed
// component. The type prefix keeps exported payloads legible; the random
// suffix keeps keys collision-free across prompts bound to one execution.
func MintFieldKey(t ComponentType) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return string(t) + "-" + suffix
}
