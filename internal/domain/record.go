package domain

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// RecordStore persists raw simulation payloads. Write-only: nothing in this
// service reads records back.
type RecordStore interface {
	Save(ctx context.Context, key string, body []byte, contentType string) error
	Ping(ctx context.Context) error
}

// recordKeyTimeFormat is a compact, lexically sortable UTC timestamp.
const recordKeyTimeFormat = "20060102T150405Z"

// NewRecordKey generates a storage key of the form
// <prefix><timestamp>-<suffix>.json. The 8-character random suffix keeps
// keys unique when requests land within the same second.
func NewRecordKey(prefix string) string {
	ts := clock.Now().UTC().Format(recordKeyTimeFormat)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return prefix + ts + "-" + suffix + ".json"
}
