package model

import "github.com/cisretail/receiving/constant"

// DiscrepancyDelta is the classifier's verdict for one line. Positive
// delta is an overage, negative a shortage.
type DiscrepancyDelta struct {
	ProductID string
	CaseType  constant.DiscrepancyType
	DeltaQty  int
	Note      string
}

// ClaimLine is one product's entry on a supplier claim.
type ClaimLine struct {
	ClaimID   uint64 `db:"claim_id"`
	ProductID string `db:"product_id"`
	Reason    string `db:"reason"`
	Qty       int    `db:"qty"`
}

type Claim struct {
	ClaimID        uint64               `db:"claim_id"`
	ShipmentID     uint64               `db:"shipment_id"`
	CounterpartyID string               `db:"counterparty_id"`
	Status         constant.ClaimStatus `db:"status"`
	CreatedBy      uint64               `db:"created_by"`
}
