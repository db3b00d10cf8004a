package receiving

import (
	"errors"
	"strconv"
	"strings"

	"github.com/cisretail/receiving/constant"
	"github.com/cisretail/receiving/model"
)

var errNegativeQty = errors.New("negative quantity")

// parseQty parses a raw quantity field from the client. An empty or
// non-numeric value is not an error: the line simply has not been
// counted yet and stays pending. A negative value is a hard reject.
func parseQty(raw string) (qty int, present bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	n, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return 0, false, nil
	}
	if n < 0 {
		return 0, false, errNegativeQty
	}
	return n, true, nil
}

// Classify computes the signed quantity delta for one reconciled line
// and the claim line it gives rise to, if any.
//
// A declared type of OK yields no delta and no claim line even when the
// received total differs from the ordered quantity. This matches the
// legacy system exactly and is kept as a documented compatibility quirk:
// selecting OK suppresses all automatic over/under detection, pending
// product-owner clarification.
func Classify(productID string, declared constant.DiscrepancyType, ordered, received, damaged int, note string) (*model.DiscrepancyDelta, *model.ClaimLine) {
	if declared == constant.DiscrepancyOK {
		return nil, nil
	}

	actual := received + damaged

	var delta int
	switch declared {
	case constant.DiscrepancySentLow, constant.DiscrepancyMissing:
		delta = actual - ordered
	case constant.DiscrepancySentHigh, constant.DiscrepancyUnordered:
		delta = actual - ordered
	case constant.DiscrepancyDamaged:
		delta = -damaged
	case constant.DiscrepancySubstituted, constant.DiscrepancyExpired, constant.DiscrepancyNotCompliant:
		// Flagged for manual review, no automatic quantity adjustment.
		delta = 0
	}

	qty := delta
	if qty < 0 {
		qty = -qty
	}
	if declared == constant.DiscrepancyMissing && qty < 1 {
		// A missing-item claim always claims at least one unit.
		qty = 1
	}

	return &model.DiscrepancyDelta{
			ProductID: productID,
			CaseType:  declared,
			DeltaQty:  delta,
			Note:      note,
		}, &model.ClaimLine{
			ProductID: productID,
			Reason:    string(declared),
			Qty:       qty,
		}
}

// confidenceScore is the diagnostic accuracy figure shown to staff after
// a save: share of clean lines, minus four points per issue, clamped to
// 0..100. It carries no business meaning.
func confidenceScore(lines, issues int) int {
	if lines <= 0 {
		return 0
	}
	ok := lines - issues
	score := int(float64(ok)/float64(lines)*100+0.5) - issues*4
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
