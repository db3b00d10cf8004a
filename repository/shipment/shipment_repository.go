package shipment

import (
	"context"
	"database/sql"

	"github.com/cisretail/receiving/constant"
	"github.com/cisretail/receiving/model"
	"github.com/jmoiron/sqlx"
)

type ShipmentRepository interface {
	GetHeader(ctx context.Context, shipmentID uint64) (*model.ShipmentHeader, error)
	GetHeaderForUpdateTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64) (*model.ShipmentHeader, error)
	MarkCompleteTx(ctx context.Context, tx *sqlx.Tx, req *model.CompleteShipmentTxItem) error
	MarkPartialTx(ctx context.Context, tx *sqlx.Tx, req *model.PartialShipmentTxItem) error
	UnlockTx(ctx context.Context, tx *sqlx.Tx, shipmentID, staffID uint64) error
	AppendReceivedNotesTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64, notes string) error
	InsertEventTx(ctx context.Context, tx *sqlx.Tx, event *model.ShipmentEvent) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewShipmentRepository(conn *sqlx.DB) ShipmentRepository {
	return &SQL{conn: conn}
}

const headerColumns = `id, kind, status, source_location, dest_location, counterparty_id,
       completed_by, completed_at, partial_staff, partial_at,
       unlocked_by, unlocked_at, received_notes`

func (r *SQL) GetHeader(ctx context.Context, shipmentID uint64) (*model.ShipmentHeader, error) {
	var hdr model.ShipmentHeader
	q := "SELECT " + headerColumns + " FROM shipments WHERE id = ?"
	if err := r.conn.GetContext(ctx, &hdr, q, shipmentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &hdr, nil
}

// GetHeaderForUpdateTx locks the shipment row for the duration of the
// transaction. Concurrent submissions for the same shipment serialize here.
func (r *SQL) GetHeaderForUpdateTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64) (*model.ShipmentHeader, error) {
	var hdr model.ShipmentHeader
	q := "SELECT " + headerColumns + " FROM shipments WHERE id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &hdr, q, shipmentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &hdr, nil
}

func (r *SQL) MarkCompleteTx(ctx context.Context, tx *sqlx.Tx, req *model.CompleteShipmentTxItem) error {
	q := `UPDATE shipments
	      SET status = ?, completed_by = ?, completed_at = ?,
	          partial_staff = NULL, partial_at = NULL
	      WHERE id = ? LIMIT 1`
	_, err := tx.ExecContext(ctx, q, constant.ShipmentStatusComplete, req.StaffID, req.At, req.ShipmentID)
	return err
}

func (r *SQL) MarkPartialTx(ctx context.Context, tx *sqlx.Tx, req *model.PartialShipmentTxItem) error {
	q := `UPDATE shipments
	      SET status = ?, partial_staff = ?, partial_at = ?
	      WHERE id = ? LIMIT 1`
	_, err := tx.ExecContext(ctx, q, constant.ShipmentStatusPartialReceived, req.StaffID, req.At, req.ShipmentID)
	return err
}

// UnlockTx reverts a completed shipment to draft. Line data is left
// untouched so the receive can be corrected, not re-counted from scratch.
func (r *SQL) UnlockTx(ctx context.Context, tx *sqlx.Tx, shipmentID, staffID uint64) error {
	q := `UPDATE shipments
	      SET status = ?,
	          completed_by = NULL, completed_at = NULL,
	          partial_staff = NULL, partial_at = NULL,
	          unlocked_by = ?, unlocked_at = NOW()
	      WHERE id = ? LIMIT 1`
	_, err := tx.ExecContext(ctx, q, constant.ShipmentStatusDraft, staffID, shipmentID)
	return err
}

func (r *SQL) AppendReceivedNotesTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64, notes string) error {
	q := `UPDATE shipments
	      SET received_notes = CONCAT(
	            COALESCE(received_notes, ''),
	            CASE WHEN COALESCE(received_notes, '') = '' THEN '' ELSE '\n' END,
	            ?)
	      WHERE id = ? LIMIT 1`
	_, err := tx.ExecContext(ctx, q, notes, shipmentID)
	return err
}

func (r *SQL) InsertEventTx(ctx context.Context, tx *sqlx.Tx, event *model.ShipmentEvent) error {
	q := `INSERT INTO system_event_log (event_type, table_name, record_id, staff_id, details, timestamp)
	      VALUES (?, 'shipments', ?, ?, ?, NOW())`
	_, err := tx.ExecContext(ctx, q, event.EventType, event.ShipmentID, event.StaffID, event.Details)
	return err
}
