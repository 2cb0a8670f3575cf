package entities

import "time"

// IdempotencyRecord stores the serialized response of a prior mutating
// request, keyed by operation prefix + client-supplied idempotency key.
// A replayed request bearing the same key returns ResponseBody verbatim
// instead of re-executing the operation.
//
// Records are written once on success, read on every keyed request, and
// expire passively: lookups ignore rows past ExpiresAt and the cron
// entrypoint deletes them opportunistically.
type IdempotencyRecord struct {
	CacheKey     string    `gorm:"size:160;primaryKey" json:"cache_key"`
	ResponseBody []byte    `gorm:"type:blob" json:"response_body"`
	StatusCode   int       `json:"status_code"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `gorm:"index" json:"expires_at"`
}

// TableName implements the GORM tabler interface.
func (IdempotencyRecord) TableName() string { return "idempotency_records" }

// Expired reports whether the record is past its TTL at the given instant.
func (r IdempotencyRecord) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}
