package model

import "time"

// AdvisoryLock is the edit-session lease on a shipment. It stops a second
// person opening the same document; it is independent of the row lock
// that serializes commits.
type AdvisoryLock struct {
	ShipmentID uint64    `json:"shipment_id"`
	StaffID    uint64    `json:"staff_id"`
	SessionID  string    `json:"session_id"`
	AcquiredAt time.Time `json:"acquired_at"`
}

type LockResponse struct {
	Success   bool      `json:"success"`
	SessionID string    `json:"session_id,omitempty"`
	LockedBy  uint64    `json:"locked_by,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Error     string    `json:"error,omitempty"`
}
