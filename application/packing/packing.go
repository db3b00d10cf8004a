package packing

import (
	"context"

	"github.com/cisretail/receiving/constant"
	"github.com/cisretail/receiving/model"
	linerepo "github.com/cisretail/receiving/repository/line"
	shipmentrepo "github.com/cisretail/receiving/repository/shipment"
	txrepo "github.com/cisretail/receiving/repository/tx"
	"github.com/cisretail/receiving/utils/errors"
	"github.com/cisretail/receiving/utils/logger"
	"go.uber.org/zap"
)

type PackingApp interface {
	SavePack(ctx context.Context, shipmentID, staffID uint64, req *model.PackRequest) (*model.PackResponse, error)
}

type packingAppImpl struct {
	txRepo       txrepo.TxRepository
	shipmentRepo shipmentrepo.ShipmentRepository
	lineRepo     linerepo.LineRepository
}

func NewPackingApp(txRepo txrepo.TxRepository, shipmentRepo shipmentrepo.ShipmentRepository, lineRepo linerepo.LineRepository) PackingApp {
	return &packingAppImpl{
		txRepo:       txRepo,
		shipmentRepo: shipmentRepo,
		lineRepo:     lineRepo,
	}
}

// SavePack records packed quantities on an outbound transfer's lines.
// Only draft shipments can be packed; once receiving has started the
// slip is frozen.
func (s *packingAppImpl) SavePack(ctx context.Context, shipmentID, staffID uint64, req *model.PackRequest) (*model.PackResponse, error) {
	if shipmentID == 0 || staffID == 0 || len(req.Lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	for i := range req.Lines {
		if req.Lines[i].SlipQty < 0 {
			return nil, errors.SetCustomError(constant.ErrValidation)
		}
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[SavePack] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	hdr, err := s.shipmentRepo.GetHeaderForUpdateTx(ctx, tx, shipmentID)
	if err != nil {
		logger.Error("[SavePack] lock header", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if hdr == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if hdr.Status == constant.ShipmentStatusDeleted {
		return nil, errors.SetCustomError(constant.ErrShipmentGone)
	}
	if hdr.Status != constant.ShipmentStatusDraft {
		return nil, errors.SetCustomError(constant.ErrNotDraft)
	}

	updated := 0
	for i := range req.Lines {
		ln := &req.Lines[i]
		affected, err := s.lineRepo.UpdateSlipQtyTx(ctx, tx, shipmentID, ln.ProductID, ln.SlipQty)
		if err != nil {
			logger.Error("[SavePack] update slip qty", zap.String("product_id", ln.ProductID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if affected > 0 {
			updated++
		}
	}

	if err := s.shipmentRepo.InsertEventTx(ctx, tx, &model.ShipmentEvent{
		EventType:  constant.EventShipmentPacked,
		ShipmentID: shipmentID,
		StaffID:    staffID,
		Details:    "Packed quantities saved",
	}); err != nil {
		logger.Error("[SavePack] event log", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[SavePack] commit tx", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.PackResponse{Success: true, Updated: updated}, nil
}
