package inventory

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type InventoryRepository interface {
	GetOnHandQty(ctx context.Context, productID, locationID string) (int, error)
	GetOnHandQtyTx(ctx context.Context, tx *sqlx.Tx, productID, locationID string) (int, error)
	SetOnHandQtyTx(ctx context.Context, tx *sqlx.Tx, productID, locationID string, qty int) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

// GetOnHandQty reads the current on-hand level outside any transaction.
// Used by the internal resync endpoint to republish committed levels.
func (r *SQL) GetOnHandQty(ctx context.Context, productID, locationID string) (int, error) {
	var qty sql.NullInt64
	q := "SELECT on_hand FROM inventory_levels WHERE product_id = ? AND location_id = ?"
	if err := r.conn.GetContext(ctx, &qty, q, productID, locationID); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	if !qty.Valid {
		return 0, nil
	}
	return int(qty.Int64), nil
}

// GetOnHandQtyTx reads the destination's on-hand level inside the
// receiving transaction, before the level is changed. A product with no
// inventory row counts as zero on hand.
func (r *SQL) GetOnHandQtyTx(ctx context.Context, tx *sqlx.Tx, productID, locationID string) (int, error) {
	var qty sql.NullInt64
	q := "SELECT on_hand FROM inventory_levels WHERE product_id = ? AND location_id = ?"
	if err := tx.GetContext(ctx, &qty, q, productID, locationID); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	if !qty.Valid {
		return 0, nil
	}
	return int(qty.Int64), nil
}

// SetOnHandQtyTx writes the absolute new level for a product at a
// location, creating the row if the product has never been stocked there.
func (r *SQL) SetOnHandQtyTx(ctx context.Context, tx *sqlx.Tx, productID, locationID string, qty int) error {
	q := `INSERT INTO inventory_levels (product_id, location_id, on_hand)
	      VALUES (?, ?, ?)
	      ON DUPLICATE KEY UPDATE on_hand = VALUES(on_hand)`
	_, err := tx.ExecContext(ctx, q, productID, locationID, qty)
	return err
}
