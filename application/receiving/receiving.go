package receiving

import (
	"context"
	"time"

	"github.com/cisretail/receiving/cmd/config"
	"github.com/cisretail/receiving/constant"
	"github.com/cisretail/receiving/model"
	claimrepo "github.com/cisretail/receiving/repository/claim"
	inventoryrepo "github.com/cisretail/receiving/repository/inventory"
	linerepo "github.com/cisretail/receiving/repository/line"
	lockrepo "github.com/cisretail/receiving/repository/lock"
	shipmentrepo "github.com/cisretail/receiving/repository/shipment"
	txrepo "github.com/cisretail/receiving/repository/tx"
	"github.com/cisretail/receiving/thirdparty/vend"
	"github.com/cisretail/receiving/utils/errors"
	"github.com/cisretail/receiving/utils/logger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ReceivingApp interface {
	GetShipment(ctx context.Context, shipmentID uint64) (*model.ShipmentDetailResponse, error)
	ReceiveShipment(ctx context.Context, shipmentID, staffID uint64, req *model.ReceiveRequest) (*model.ReceiveResponse, error)
	UnlockShipment(ctx context.Context, shipmentID, staffID uint64) error
	ResyncInventory(ctx context.Context, shipmentID uint64) (int, error)
	AcquireLock(ctx context.Context, shipmentID, staffID uint64) (*model.LockResponse, error)
	ExtendLock(ctx context.Context, shipmentID, staffID uint64, sessionID string) (bool, error)
	ReleaseLock(ctx context.Context, shipmentID, staffID uint64, sessionID string) error
}

type receivingAppImpl struct {
	config        *config.Config
	txRepo        txrepo.TxRepository
	shipmentRepo  shipmentrepo.ShipmentRepository
	lineRepo      linerepo.LineRepository
	claimRepo     claimrepo.ClaimRepository
	inventoryRepo inventoryrepo.InventoryRepository
	lockRepo      lockrepo.LockRepository
	publisher     *vend.Publisher
}

func NewReceivingApp(config *config.Config, txRepo txrepo.TxRepository, shipmentRepo shipmentrepo.ShipmentRepository, lineRepo linerepo.LineRepository, claimRepo claimrepo.ClaimRepository, inventoryRepo inventoryrepo.InventoryRepository, lockRepo lockrepo.LockRepository, publisher *vend.Publisher) ReceivingApp {
	return &receivingAppImpl{
		config:        config,
		txRepo:        txRepo,
		shipmentRepo:  shipmentRepo,
		lineRepo:      lineRepo,
		claimRepo:     claimRepo,
		inventoryRepo: inventoryRepo,
		lockRepo:      lockRepo,
		publisher:     publisher,
	}
}

// parsedLine is a SubmittedLine after boundary validation. Quantities
// are parsed exactly once here; nothing downstream re-interprets raw
// client strings.
type parsedLine struct {
	productID      string
	receivedQty    int
	present        bool
	damagedQty     int
	declared       constant.DiscrepancyType
	unitCost       decimal.NullDecimal
	lineNote       string
	substitutionID string
	readonly       bool
}

func parseSubmittedLines(lines []model.SubmittedLine) ([]parsedLine, error) {
	parsed := make([]parsedLine, 0, len(lines))
	for i := range lines {
		ln := &lines[i]

		recv, present, err := parseQty(ln.ReceivedQty)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrValidation)
		}
		dmg, dmgPresent, err := parseQty(ln.DamagedQty)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrValidation)
		}
		if !dmgPresent {
			dmg = 0
		}

		declared := constant.DiscrepancyOK
		if ln.DiscrepancyType != "" {
			declared = constant.DiscrepancyType(ln.DiscrepancyType)
			if !constant.ValidDiscrepancyTypes[declared] {
				return nil, errors.SetCustomError(constant.ErrValidation)
			}
		}

		var unitCost decimal.NullDecimal
		if ln.UnitCostExGst != "" {
			d, err := decimal.NewFromString(ln.UnitCostExGst)
			if err != nil || d.IsNegative() {
				return nil, errors.SetCustomError(constant.ErrValidation)
			}
			unitCost = decimal.NullDecimal{Decimal: d, Valid: true}
		}

		parsed = append(parsed, parsedLine{
			productID:      ln.ProductID,
			receivedQty:    recv,
			present:        present,
			damagedQty:     dmg,
			declared:       declared,
			unitCost:       unitCost,
			lineNote:       ln.LineNote,
			substitutionID: ln.SubstitutionID,
			readonly:       ln.Readonly,
		})
	}
	return parsed, nil
}

func (s *receivingAppImpl) GetShipment(ctx context.Context, shipmentID uint64) (*model.ShipmentDetailResponse, error) {
	hdr, err := s.shipmentRepo.GetHeader(ctx, shipmentID)
	if err != nil {
		logger.Error("[GetShipment] get header", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if hdr == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	lines, err := s.lineRepo.GetActiveLines(ctx, shipmentID)
	if err != nil {
		logger.Error("[GetShipment] get lines", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.ShipmentDetailResponse{
		ID:             hdr.ID,
		Kind:           hdr.Kind,
		Status:         hdr.Status,
		SourceLocation: hdr.SourceLocation,
		DestLocation:   hdr.DestLocation,
		ReceivedNotes:  hdr.ReceivedNotes.String,
		Lines:          make([]model.LineDetail, 0, len(lines)),
	}
	for i := range lines {
		ln := &lines[i]
		detail := model.LineDetail{
			ProductID:       ln.ProductID,
			OrderedQty:      ln.OrderedQty,
			DamagedQty:      ln.DamagedQty,
			DiscrepancyType: ln.DiscrepancyType,
		}
		if ln.SlipQty.Valid {
			v := int(ln.SlipQty.Int64)
			detail.SlipQty = &v
		}
		if ln.ReceivedQty.Valid {
			v := int(ln.ReceivedQty.Int64)
			detail.ReceivedQty = &v
		}
		resp.Lines = append(resp.Lines, detail)
	}
	return resp, nil
}

// ReceiveShipment reconciles one round of submitted quantities against
// the shipment's active lines. The whole round runs inside a single
// transaction with the header and line rows locked; on any error nothing
// is persisted. POS sync messages go out only after the commit.
func (s *receivingAppImpl) ReceiveShipment(ctx context.Context, shipmentID, staffID uint64, req *model.ReceiveRequest) (*model.ReceiveResponse, error) {
	if shipmentID == 0 || staffID == 0 || len(req.Lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// Validate the payload before touching any state.
	parsed, err := parseSubmittedLines(req.Lines)
	if err != nil {
		return nil, err
	}

	entered := 0
	for i := range parsed {
		if parsed[i].present {
			entered++
		}
	}
	if entered == 0 && !req.AllowEmptySubmission {
		return nil, errors.SetCustomError(constant.ErrNoQuantitiesEntered)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReceiveShipment] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// Lock header and validate state.
	hdr, err := s.shipmentRepo.GetHeaderForUpdateTx(ctx, tx, shipmentID)
	if err != nil {
		logger.Error("[ReceiveShipment] lock header", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		if isLockWaitTimeout(err) {
			return nil, errors.SetCustomError(constant.ErrLockTimeout)
		}
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if hdr == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if hdr.Status == constant.ShipmentStatusDeleted {
		return nil, errors.SetCustomError(constant.ErrShipmentGone)
	}
	if hdr.Status == constant.ShipmentStatusComplete {
		return nil, errors.SetCustomError(constant.ErrAlreadyComplete)
	}

	// Lock active lines; they are the source of truth for what must be
	// accounted for.
	lines, err := s.lineRepo.GetActiveLinesForUpdateTx(ctx, tx, shipmentID)
	if err != nil {
		logger.Error("[ReceiveShipment] lock lines", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		if isLockWaitTimeout(err) {
			return nil, errors.SetCustomError(constant.ErrLockTimeout)
		}
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrNoActiveItems)
	}

	activeMap := make(map[string]*model.Line, len(lines))
	for i := range lines {
		activeMap[lines[i].ProductID] = &lines[i]
	}

	// Completion counts a product at most once, and only products that
	// exist on the shipment. Unknown ids and duplicate rows never pad the
	// count; a readonly line still counts when it carries a value.
	accounted := 0
	counted := make(map[string]bool, len(parsed))
	for i := range parsed {
		ln := &parsed[i]
		if !ln.present || counted[ln.productID] {
			continue
		}
		if _, ok := activeMap[ln.productID]; !ok {
			continue
		}
		counted[ln.productID] = true
		accounted++
	}

	stats := model.ReceiveStats{}
	updated := 0
	claimLines := make([]model.ClaimLine, 0)
	syncItems := make([]model.InventorySyncItem, 0)

	for i := range parsed {
		ln := &parsed[i]
		if !ln.present {
			continue // pending, stays out of the completion count
		}
		if ln.readonly {
			// Finalized in an earlier round: counts toward accounted,
			// but this round must not rewrite it.
			continue
		}
		active, ok := activeMap[ln.productID]
		if !ok {
			continue // unknown product id
		}

		stats.Lines++
		stats.Ordered += active.OrderedQty
		if active.SlipQty.Valid {
			stats.Slip += int(active.SlipQty.Int64)
		}
		stats.Received += ln.receivedQty
		stats.Damaged += ln.damagedQty

		// Destination snapshot before the change.
		onHand, err := s.inventoryRepo.GetOnHandQtyTx(ctx, tx, ln.productID, hdr.DestLocation)
		if err != nil {
			logger.Error("[ReceiveShipment] on-hand snapshot", zap.String("product_id", ln.productID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		if err := s.lineRepo.UpdateReceivedTx(ctx, tx, &model.LineUpdateTxItem{
			ShipmentID:      shipmentID,
			ProductID:       ln.productID,
			ReceivedQty:     ln.receivedQty,
			DamagedQty:      ln.damagedQty,
			DiscrepancyType: ln.declared,
			UnitCostExGst:   ln.unitCost,
			LineNote:        ln.lineNote,
			SubstitutionID:  ln.substitutionID,
			OnHandSnapshot:  onHand,
		}); err != nil {
			logger.Error("[ReceiveShipment] update line", zap.String("product_id", ln.productID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		// Absolute destination level: snapshot plus good units. Damaged
		// units never enter sellable stock.
		newLevel := onHand + ln.receivedQty
		if err := s.inventoryRepo.SetOnHandQtyTx(ctx, tx, ln.productID, hdr.DestLocation, newLevel); err != nil {
			logger.Error("[ReceiveShipment] update inventory", zap.String("product_id", ln.productID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		syncItems = append(syncItems, model.InventorySyncItem{
			ProductID:  ln.productID,
			LocationID: hdr.DestLocation,
			NewQty:     newLevel,
			ReasonCode: constant.SyncReasonReceived,
			ContextTag: constant.SyncContextReceive,
		})

		// Discrepancy cases are rewritten per product on every round.
		if err := s.lineRepo.DeleteDiscrepancyCaseTx(ctx, tx, shipmentID, ln.productID); err != nil {
			logger.Error("[ReceiveShipment] clear discrepancy case", zap.String("product_id", ln.productID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		delta, claimLine := Classify(ln.productID, ln.declared, active.OrderedQty, ln.receivedQty, ln.damagedQty, ln.lineNote)
		if delta != nil {
			stats.Issues++
			if err := s.lineRepo.InsertDiscrepancyCaseTx(ctx, tx, shipmentID, delta); err != nil {
				logger.Error("[ReceiveShipment] insert discrepancy case", zap.String("product_id", ln.productID), zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			claimLines = append(claimLines, *claimLine)
		}

		updated++
	}

	itemsTotal := len(activeMap)
	pending := itemsTotal - accounted
	complete := accounted == itemsTotal

	if err := s.upsertClaimTx(ctx, tx, hdr, staffID, claimLines); err != nil {
		return nil, err
	}

	if req.Notes != "" {
		if err := s.shipmentRepo.AppendReceivedNotesTx(ctx, tx, shipmentID, req.Notes); err != nil {
			logger.Error("[ReceiveShipment] append notes", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	now := time.Now()
	if complete {
		if err := s.shipmentRepo.MarkCompleteTx(ctx, tx, &model.CompleteShipmentTxItem{ShipmentID: shipmentID, StaffID: staffID, At: now}); err != nil {
			logger.Error("[ReceiveShipment] mark complete", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.shipmentRepo.InsertEventTx(ctx, tx, &model.ShipmentEvent{
			EventType:  constant.EventShipmentCompleted,
			ShipmentID: shipmentID,
			StaffID:    staffID,
			Details:    "Shipment fully received",
		}); err != nil {
			logger.Error("[ReceiveShipment] event log", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	} else {
		if err := s.shipmentRepo.MarkPartialTx(ctx, tx, &model.PartialShipmentTxItem{ShipmentID: shipmentID, StaffID: staffID, At: now}); err != nil {
			logger.Error("[ReceiveShipment] mark partial", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.shipmentRepo.InsertEventTx(ctx, tx, &model.ShipmentEvent{
			EventType:  constant.EventShipmentPartial,
			ShipmentID: shipmentID,
			StaffID:    staffID,
			Details:    "Shipment partially received",
		}); err != nil {
			logger.Error("[ReceiveShipment] event log", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReceiveShipment] commit tx", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// POS sync is dispatched after commit, fire and forget. A failed
	// publish is logged and picked up by the async retry worker; it never
	// undoes the committed reconciliation.
	if s.publisher != nil {
		for _, item := range syncItems {
			if err := s.publisher.PublishQtyUpdate(item); err != nil {
				logger.Error("[ReceiveShipment] publish inventory sync",
					zap.Uint64("shipment_id", shipmentID),
					zap.String("product_id", item.ProductID),
					zap.String("error", err.Error()))
			}
		}
	}

	return &model.ReceiveResponse{
		Success:    true,
		Updated:    updated,
		Pending:    pending,
		Complete:   complete,
		Confidence: confidenceScore(stats.Lines, stats.Issues),
		Stats:      stats,
	}, nil
}

// upsertClaimTx keeps at most one claim per shipment and rewrites its
// lines from this round's discrepancies. A claim that ends up with zero
// lines is kept as an audit record, status unchanged from PENDING; it is
// never auto-resolved.
func (s *receivingAppImpl) upsertClaimTx(ctx context.Context, tx *sqlx.Tx, hdr *model.ShipmentHeader, staffID uint64, claimLines []model.ClaimLine) error {
	claimID, err := s.claimRepo.GetClaimIDTx(ctx, tx, hdr.ID)
	if err != nil {
		logger.Error("[ReceiveShipment] get claim", zap.Uint64("shipment_id", hdr.ID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if len(claimLines) == 0 {
		if claimID == 0 {
			return nil
		}
		if err := s.claimRepo.ReplaceClaimLinesTx(ctx, tx, claimID, nil); err != nil {
			logger.Error("[ReceiveShipment] clear claim lines", zap.Uint64("claim_id", claimID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	}

	if claimID == 0 {
		claimID, err = s.claimRepo.InsertClaimTx(ctx, tx, &model.Claim{
			ShipmentID:     hdr.ID,
			CounterpartyID: hdr.CounterpartyID,
			Status:         constant.ClaimStatusPending,
			CreatedBy:      staffID,
		})
		if err != nil {
			logger.Error("[ReceiveShipment] insert claim", zap.Uint64("shipment_id", hdr.ID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	} else {
		if err := s.claimRepo.ReopenClaimTx(ctx, tx, claimID); err != nil {
			logger.Error("[ReceiveShipment] reopen claim", zap.Uint64("claim_id", claimID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.claimRepo.ReplaceClaimLinesTx(ctx, tx, claimID, claimLines); err != nil {
		logger.Error("[ReceiveShipment] replace claim lines", zap.Uint64("claim_id", claimID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// UnlockShipment reverts a completed shipment to draft so its counts can
// be corrected. Line quantities are preserved; unlock is for correction,
// not erasure.
func (s *receivingAppImpl) UnlockShipment(ctx context.Context, shipmentID, staffID uint64) error {
	if shipmentID == 0 || staffID == 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UnlockShipment] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	hdr, err := s.shipmentRepo.GetHeaderForUpdateTx(ctx, tx, shipmentID)
	if err != nil {
		logger.Error("[UnlockShipment] lock header", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		if isLockWaitTimeout(err) {
			return errors.SetCustomError(constant.ErrLockTimeout)
		}
		return errors.SetCustomError(constant.ErrInternal)
	}
	if hdr == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if hdr.Status == constant.ShipmentStatusDeleted {
		return errors.SetCustomError(constant.ErrShipmentGone)
	}
	if hdr.Status != constant.ShipmentStatusComplete {
		return errors.SetCustomError(constant.ErrNotComplete)
	}

	if err := s.shipmentRepo.UnlockTx(ctx, tx, shipmentID, staffID); err != nil {
		logger.Error("[UnlockShipment] unlock", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.shipmentRepo.InsertEventTx(ctx, tx, &model.ShipmentEvent{
		EventType:  constant.EventShipmentUnlocked,
		ShipmentID: shipmentID,
		StaffID:    staffID,
		Details:    "Document unlocked for editing",
	}); err != nil {
		logger.Error("[UnlockShipment] event log", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UnlockShipment] commit tx", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// ResyncInventory republishes the committed on-hand level of every line
// already counted on a shipment. Called by the internal endpoint when
// the POS side missed the original post-commit messages.
func (s *receivingAppImpl) ResyncInventory(ctx context.Context, shipmentID uint64) (int, error) {
	if shipmentID == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	hdr, err := s.shipmentRepo.GetHeader(ctx, shipmentID)
	if err != nil {
		logger.Error("[ResyncInventory] get header", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if hdr == nil {
		return 0, errors.SetCustomError(constant.ErrNotFound)
	}

	lines, err := s.lineRepo.GetActiveLines(ctx, shipmentID)
	if err != nil {
		logger.Error("[ResyncInventory] get lines", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	published := 0
	for i := range lines {
		ln := &lines[i]
		if !ln.ReceivedQty.Valid {
			continue // never counted, nothing was synced
		}
		level, err := s.inventoryRepo.GetOnHandQty(ctx, ln.ProductID, hdr.DestLocation)
		if err != nil {
			logger.Error("[ResyncInventory] read level", zap.String("product_id", ln.ProductID), zap.String("error", err.Error()))
			return published, errors.SetCustomError(constant.ErrInternal)
		}
		if s.publisher == nil {
			continue
		}
		if err := s.publisher.PublishQtyUpdate(model.InventorySyncItem{
			ProductID:  ln.ProductID,
			LocationID: hdr.DestLocation,
			NewQty:     level,
			ReasonCode: constant.SyncReasonResync,
			ContextTag: constant.SyncContextReceive,
		}); err != nil {
			logger.Error("[ResyncInventory] publish", zap.String("product_id", ln.ProductID), zap.String("error", err.Error()))
			continue
		}
		published++
	}
	return published, nil
}

// AcquireLock takes (or refreshes) the advisory edit-session lease. A
// conflict is not a Go error: the response carries who holds the lease.
func (s *receivingAppImpl) AcquireLock(ctx context.Context, shipmentID, staffID uint64) (*model.LockResponse, error) {
	if shipmentID == 0 || staffID == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	ttl := s.config.Receiving.EditLockTTL

	current, err := s.lockRepo.Get(ctx, shipmentID)
	if err != nil {
		logger.Error("[AcquireLock] get lock", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if current != nil {
		if current.StaffID == staffID {
			if _, err := s.lockRepo.Extend(ctx, shipmentID, staffID, current.SessionID, ttl); err != nil {
				logger.Error("[AcquireLock] extend lock", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			return &model.LockResponse{
				Success:   true,
				SessionID: current.SessionID,
				ExpiresAt: time.Now().Add(ttl),
			}, nil
		}
		return s.lockConflict(ctx, shipmentID, current)
	}

	l := &model.AdvisoryLock{
		ShipmentID: shipmentID,
		StaffID:    staffID,
		SessionID:  uuid.NewString(),
		AcquiredAt: time.Now(),
	}
	ok, err := s.lockRepo.TryAcquire(ctx, l, ttl)
	if err != nil {
		logger.Error("[AcquireLock] acquire", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		// Lost the race; report whoever won it.
		current, err := s.lockRepo.Get(ctx, shipmentID)
		if err != nil {
			logger.Error("[AcquireLock] get lock after race", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		return s.lockConflict(ctx, shipmentID, current)
	}

	return &model.LockResponse{
		Success:   true,
		SessionID: l.SessionID,
		ExpiresAt: l.AcquiredAt.Add(ttl),
	}, nil
}

func (s *receivingAppImpl) lockConflict(ctx context.Context, shipmentID uint64, current *model.AdvisoryLock) (*model.LockResponse, error) {
	resp := &model.LockResponse{
		Success: false,
		Error:   errors.SetCustomError(constant.ErrShipmentLocked).Error(),
	}
	if current != nil {
		resp.LockedBy = current.StaffID
		if ttl, err := s.lockRepo.TTL(ctx, shipmentID); err == nil && ttl > 0 {
			resp.ExpiresAt = time.Now().Add(ttl)
		}
	}
	return resp, nil
}

func (s *receivingAppImpl) ExtendLock(ctx context.Context, shipmentID, staffID uint64, sessionID string) (bool, error) {
	if shipmentID == 0 || staffID == 0 || sessionID == "" {
		return false, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	ok, err := s.lockRepo.Extend(ctx, shipmentID, staffID, sessionID, s.config.Receiving.EditLockTTL)
	if err != nil {
		logger.Error("[ExtendLock] extend", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	return ok, nil
}

func (s *receivingAppImpl) ReleaseLock(ctx context.Context, shipmentID, staffID uint64, sessionID string) error {
	if shipmentID == 0 || staffID == 0 || sessionID == "" {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := s.lockRepo.Release(ctx, shipmentID, staffID, sessionID); err != nil {
		logger.Error("[ReleaseLock] release", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
