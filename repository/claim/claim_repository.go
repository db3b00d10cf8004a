package claim

import (
	"context"
	"database/sql"

	"github.com/cisretail/receiving/constant"
	"github.com/cisretail/receiving/model"
	"github.com/jmoiron/sqlx"
)

type ClaimRepository interface {
	GetClaimIDTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64) (uint64, error)
	InsertClaimTx(ctx context.Context, tx *sqlx.Tx, claim *model.Claim) (uint64, error)
	ReopenClaimTx(ctx context.Context, tx *sqlx.Tx, claimID uint64) error
	ReplaceClaimLinesTx(ctx context.Context, tx *sqlx.Tx, claimID uint64, lines []model.ClaimLine) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewClaimRepository(conn *sqlx.DB) ClaimRepository {
	return &SQL{conn: conn}
}

// GetClaimIDTx returns the existing claim id for a shipment, or 0.
// At most one claim exists per shipment.
func (r *SQL) GetClaimIDTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64) (uint64, error) {
	var id uint64
	q := "SELECT claim_id FROM shipment_claims WHERE shipment_id = ? LIMIT 1"
	if err := tx.GetContext(ctx, &id, q, shipmentID); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return id, nil
}

func (r *SQL) InsertClaimTx(ctx context.Context, tx *sqlx.Tx, claim *model.Claim) (uint64, error) {
	q := `INSERT INTO shipment_claims (shipment_id, counterparty_id, status, created_by)
	      VALUES (?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, claim.ShipmentID, claim.CounterpartyID, claim.Status, claim.CreatedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) ReopenClaimTx(ctx context.Context, tx *sqlx.Tx, claimID uint64) error {
	q := "UPDATE shipment_claims SET status = ?, updated_at = NOW() WHERE claim_id = ? LIMIT 1"
	_, err := tx.ExecContext(ctx, q, constant.ClaimStatusPending, claimID)
	return err
}

// ReplaceClaimLinesTx deletes every line on the claim and re-inserts the
// given set. Running the same reconciliation twice leaves identical rows.
func (r *SQL) ReplaceClaimLinesTx(ctx context.Context, tx *sqlx.Tx, claimID uint64, lines []model.ClaimLine) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM shipment_claim_lines WHERE claim_id = ?", claimID); err != nil {
		return err
	}
	q := "INSERT INTO shipment_claim_lines (claim_id, product_id, reason, qty) VALUES (?, ?, ?, ?)"
	for _, ln := range lines {
		if _, err := tx.ExecContext(ctx, q, claimID, ln.ProductID, ln.Reason, ln.Qty); err != nil {
			return err
		}
	}
	return nil
}
