package packaging

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewSessionToken returns a human-facing session token of the form
// PKG-YYYYMMDD-XXXXXXXX, where the suffix is random uppercase hex.
func NewSessionToken(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "PKG-" + now.UTC().Format("20060102") + "-" + suffix
}
