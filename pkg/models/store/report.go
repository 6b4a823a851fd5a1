package store

import "time"

// ReportRecord is the persisted shape of a report: the identity plus the
// JSON-serialized report payload. The store never looks inside the payload.
type ReportRecord struct {
	ID        string
	Payload   []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}
