package model

import (
	"database/sql"

	"github.com/cisretail/receiving/constant"
	"github.com/shopspring/decimal"
)

// Line is one product's quantity record within a shipment.
type Line struct {
	ShipmentID      uint64                   `db:"shipment_id"`
	ProductID       string                   `db:"product_id"`
	OrderedQty      int                      `db:"ordered_qty"`
	SlipQty         sql.NullInt64            `db:"slip_qty"`
	ReceivedQty     sql.NullInt64            `db:"received_qty"`
	DamagedQty      int                      `db:"damaged_qty"`
	DiscrepancyType constant.DiscrepancyType `db:"discrepancy_type"`
	UnitCostExGst   decimal.NullDecimal      `db:"unit_cost_ex_gst"`
	LineNote        sql.NullString           `db:"line_note"`
	SubstitutionID  sql.NullString           `db:"substitution_product_id"`
	Status          int                      `db:"status"`
}

// ActualReceived is the received-plus-damaged total used for delta
// computation. A never-submitted line counts as zero.
func (l *Line) ActualReceived() int {
	recv := 0
	if l.ReceivedQty.Valid {
		recv = int(l.ReceivedQty.Int64)
	}
	return recv + l.DamagedQty
}

// TotalOrdered sums ordered quantities over a set of lines.
func TotalOrdered(lines []Line) int {
	total := 0
	for i := range lines {
		total += lines[i].OrderedQty
	}
	return total
}

// TotalReceived sums received-plus-damaged totals over a set of lines.
func TotalReceived(lines []Line) int {
	total := 0
	for i := range lines {
		total += lines[i].ActualReceived()
	}
	return total
}

// LineUpdateTxItem carries one reconciled line to persistence.
type LineUpdateTxItem struct {
	ShipmentID      uint64
	ProductID       string
	ReceivedQty     int
	DamagedQty      int
	DiscrepancyType constant.DiscrepancyType
	UnitCostExGst   decimal.NullDecimal
	LineNote        string
	SubstitutionID  string
	OnHandSnapshot  int
}

type LineDetail struct {
	ProductID       string                   `json:"product_id"`
	OrderedQty      int                      `json:"ordered_qty"`
	SlipQty         *int                     `json:"slip_qty,omitempty"`
	ReceivedQty     *int                     `json:"received_qty,omitempty"`
	DamagedQty      int                      `json:"damaged_qty"`
	DiscrepancyType constant.DiscrepancyType `json:"discrepancy_type"`
}
