package models

import "time"

// AccessLog records one simulated asset access against a download link.
// Append-only; LinkID is a weak back-reference (links are never deleted, so
// no cascading cleanup exists or is needed).
type AccessLog struct {
	ID        string    `json:"id"`
	LinkID    string    `json:"link_id"`
	Resource  string    `json:"resource"`
	Timestamp time.Time `json:"timestamp"`
	IP        string    `json:"ip"`
	DeviceSig string    `json:"device_sig"`
}
