package line

import (
	"context"

	"github.com/cisretail/receiving/constant"
	"github.com/cisretail/receiving/model"
	"github.com/jmoiron/sqlx"
)

type LineRepository interface {
	GetActiveLines(ctx context.Context, shipmentID uint64) ([]model.Line, error)
	GetActiveLinesForUpdateTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64) ([]model.Line, error)
	UpdateReceivedTx(ctx context.Context, tx *sqlx.Tx, req *model.LineUpdateTxItem) error
	UpdateSlipQtyTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64, productID string, slipQty int) (int64, error)
	DeleteDiscrepancyCaseTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64, productID string) error
	InsertDiscrepancyCaseTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64, delta *model.DiscrepancyDelta) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewLineRepository(conn *sqlx.DB) LineRepository {
	return &SQL{conn: conn}
}

const lineColumns = `shipment_id, product_id, ordered_qty, slip_qty, received_qty, damaged_qty,
       discrepancy_type, unit_cost_ex_gst, line_note, substitution_product_id, status`

func (r *SQL) GetActiveLines(ctx context.Context, shipmentID uint64) ([]model.Line, error) {
	q := "SELECT " + lineColumns + " FROM shipment_lines WHERE shipment_id = ? AND status = ?"
	return r.scanLines(r.conn.QueryxContext(ctx, q, shipmentID, constant.LineStatusActive))
}

// GetActiveLinesForUpdateTx loads and locks every active line of the
// shipment so quantity writes in this round cannot interleave with a
// concurrent submission.
func (r *SQL) GetActiveLinesForUpdateTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64) ([]model.Line, error) {
	q := "SELECT " + lineColumns + " FROM shipment_lines WHERE shipment_id = ? AND status = ? FOR UPDATE"
	return r.scanLines(tx.QueryxContext(ctx, q, shipmentID, constant.LineStatusActive))
}

func (r *SQL) scanLines(rows *sqlx.Rows, err error) ([]model.Line, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]model.Line, 0)
	for rows.Next() {
		var l model.Line
		if err := rows.StructScan(&l); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *SQL) UpdateReceivedTx(ctx context.Context, tx *sqlx.Tx, req *model.LineUpdateTxItem) error {
	q := `UPDATE shipment_lines
	      SET received_qty = ?,
	          damaged_qty = ?,
	          discrepancy_type = ?,
	          unit_cost_ex_gst = ?,
	          line_note = NULLIF(?, ''),
	          substitution_product_id = NULLIF(?, ''),
	          on_hand_snapshot = ?
	      WHERE shipment_id = ? AND product_id = ?
	      LIMIT 1`
	_, err := tx.ExecContext(ctx, q,
		req.ReceivedQty, req.DamagedQty, req.DiscrepancyType, req.UnitCostExGst,
		req.LineNote, req.SubstitutionID, req.OnHandSnapshot,
		req.ShipmentID, req.ProductID)
	return err
}

func (r *SQL) UpdateSlipQtyTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64, productID string, slipQty int) (int64, error) {
	q := `UPDATE shipment_lines SET slip_qty = ? WHERE shipment_id = ? AND product_id = ? AND status = ? LIMIT 1`
	res, err := tx.ExecContext(ctx, q, slipQty, shipmentID, productID, constant.LineStatusActive)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) DeleteDiscrepancyCaseTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64, productID string) error {
	q := "DELETE FROM shipment_discrepancy_cases WHERE shipment_id = ? AND product_id = ?"
	_, err := tx.ExecContext(ctx, q, shipmentID, productID)
	return err
}

func (r *SQL) InsertDiscrepancyCaseTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64, delta *model.DiscrepancyDelta) error {
	q := `INSERT INTO shipment_discrepancy_cases (shipment_id, product_id, case_type, delta_qty, note)
	      VALUES (?, ?, ?, ?, NULLIF(?, ''))`
	_, err := tx.ExecContext(ctx, q, shipmentID, delta.ProductID, delta.CaseType, delta.DeltaQty, delta.Note)
	return err
}
