package model

import (
	"database/sql"
	"time"

	"github.com/cisretail/receiving/constant"
)

// ShipmentHeader is the receivable document row: a purchase order, stock
// transfer or juice transfer. The three kinds share one structure as far
// as receiving is concerned.
type ShipmentHeader struct {
	ID             uint64                  `db:"id"`
	Kind           constant.ShipmentKind   `db:"kind"`
	Status         constant.ShipmentStatus `db:"status"`
	SourceLocation string                  `db:"source_location"`
	DestLocation   string                  `db:"dest_location"`
	CounterpartyID string                  `db:"counterparty_id"`
	CompletedBy    sql.NullInt64           `db:"completed_by"`
	CompletedAt    sql.NullTime            `db:"completed_at"`
	PartialStaff   sql.NullInt64           `db:"partial_staff"`
	PartialAt      sql.NullTime            `db:"partial_at"`
	UnlockedBy     sql.NullInt64           `db:"unlocked_by"`
	UnlockedAt     sql.NullTime            `db:"unlocked_at"`
	ReceivedNotes  sql.NullString          `db:"received_notes"`
}

type CompleteShipmentTxItem struct {
	ShipmentID uint64
	StaffID    uint64
	At         time.Time
}

type PartialShipmentTxItem struct {
	ShipmentID uint64
	StaffID    uint64
	At         time.Time
}

type ShipmentEvent struct {
	EventType  string
	ShipmentID uint64
	StaffID    uint64
	Details    string
}

type ShipmentDetailResponse struct {
	ID             uint64                  `json:"id"`
	Kind           constant.ShipmentKind   `json:"kind"`
	Status         constant.ShipmentStatus `json:"status"`
	SourceLocation string                  `json:"source_location"`
	DestLocation   string                  `json:"dest_location"`
	ReceivedNotes  string                  `json:"received_notes,omitempty"`
	Lines          []LineDetail            `json:"lines"`
}
