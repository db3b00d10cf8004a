package constant

type contextKey string

// StaffIDKey carries the authenticated staff id through request contexts.
const StaffIDKey contextKey = "staff_id"

type ShipmentStatus int

const (
	ShipmentStatusDraft           ShipmentStatus = 0
	ShipmentStatusPartialReceived ShipmentStatus = 1
	ShipmentStatusComplete        ShipmentStatus = 2
	ShipmentStatusDeleted         ShipmentStatus = 4
)

type ShipmentKind string

const (
	ShipmentKindPurchaseOrder ShipmentKind = "purchase_order"
	ShipmentKindStockTransfer ShipmentKind = "stock_transfer"
	ShipmentKindJuiceTransfer ShipmentKind = "juice_transfer"
)

// LineStatusActive marks a line that still participates in receiving.
// Any other value is a soft delete; such lines are never loaded.
const LineStatusActive = 0

// DiscrepancyType is the staff-declared classification of why a line's
// received total differs from its ordered quantity. Values match the
// legacy discrepancy_type column verbatim.
type DiscrepancyType string

const (
	DiscrepancyOK           DiscrepancyType = "OK"
	DiscrepancySentLow      DiscrepancyType = "SENT_LOW"
	DiscrepancyMissing      DiscrepancyType = "MISSING"
	DiscrepancySentHigh     DiscrepancyType = "SENT_HIGH"
	DiscrepancyUnordered    DiscrepancyType = "UNORDERED"
	DiscrepancyDamaged      DiscrepancyType = "DAMAGED"
	DiscrepancySubstituted  DiscrepancyType = "SUBSTITUTED"
	DiscrepancyExpired      DiscrepancyType = "EXPIRED"
	DiscrepancyNotCompliant DiscrepancyType = "NOT_COMPLIANT"
)

// ValidDiscrepancyTypes gates what the transport layer accepts.
var ValidDiscrepancyTypes = map[DiscrepancyType]bool{
	DiscrepancyOK:           true,
	DiscrepancySentLow:      true,
	DiscrepancyMissing:      true,
	DiscrepancySentHigh:     true,
	DiscrepancyUnordered:    true,
	DiscrepancyDamaged:      true,
	DiscrepancySubstituted:  true,
	DiscrepancyExpired:      true,
	DiscrepancyNotCompliant: true,
}

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "PENDING"
	ClaimStatusResolved ClaimStatus = "RESOLVED"
)

// Inventory sync reason codes passed through to the POS queue.
const (
	SyncReasonReceived = "shipment_received"
	SyncReasonResync   = "shipment_resync"
	SyncContextReceive = "shipment_destination_update"
)

// Event log event types.
const (
	EventShipmentCompleted = "SHIPMENT_COMPLETED"
	EventShipmentPartial   = "SHIPMENT_PARTIAL_RECEIVED"
	EventShipmentUnlocked  = "SHIPMENT_UNLOCKED"
	EventShipmentPacked    = "SHIPMENT_PACKED"
)
