package model

// PackedLine carries one product's packed quantity from the pack screen.
type PackedLine struct {
	ProductID string `json:"product_id" validate:"required"`
	SlipQty   int    `json:"slip_qty" validate:"gte=0"`
}

type PackRequest struct {
	Lines []PackedLine `json:"lines" validate:"required,min=1,dive"`
}

type PackResponse struct {
	Success bool `json:"success"`
	Updated int  `json:"updated"`
}
