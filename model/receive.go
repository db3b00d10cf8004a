package model

// SubmittedLine is one row of a receive submission as it arrives from
// the client. Quantities come in as strings: an empty or non-numeric
// value means "not counted yet" and leaves the line pending.
type SubmittedLine struct {
	ProductID       string `json:"product_id" validate:"required"`
	ReceivedQty     string `json:"received_qty"`
	DamagedQty      string `json:"damaged_qty"`
	DiscrepancyType string `json:"discrepancy_type"`
	UnitCostExGst   string `json:"unit_cost_ex_gst"`
	LineNote        string `json:"line_note"`
	SubstitutionID  string `json:"substitution_product_id"`
	Readonly        bool   `json:"readonly"`
}

type ReceiveRequest struct {
	Lines                []SubmittedLine `json:"lines" validate:"required,dive"`
	Notes                string          `json:"notes"`
	AllowEmptySubmission bool            `json:"allow_empty_submission"`
}

// ReceiveStats mirrors the legacy stats block returned with every save.
type ReceiveStats struct {
	Lines    int `json:"lines"`
	Ordered  int `json:"ordered"`
	Slip     int `json:"slip"`
	Received int `json:"received"`
	Damaged  int `json:"damaged"`
	Issues   int `json:"issues"`
}

// ReceiveResponse preserves the field names the legacy front end reads.
type ReceiveResponse struct {
	Success    bool         `json:"success"`
	Updated    int          `json:"updated"`
	Pending    int          `json:"pending"`
	Complete   bool         `json:"complete"`
	Confidence int          `json:"confidence"`
	Stats      ReceiveStats `json:"stats"`
}

// InventorySyncItem is queued after commit for the POS side.
type InventorySyncItem struct {
	ProductID  string `json:"product_id"`
	LocationID string `json:"location_id"`
	NewQty     int    `json:"new_qty"`
	ReasonCode string `json:"reason_code"`
	ContextTag string `json:"context_tag"`
}
