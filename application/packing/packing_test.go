package packing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	apppacking "github.com/cisretail/receiving/application/packing"
	"github.com/cisretail/receiving/constant"
	linemocks "github.com/cisretail/receiving/mocks/repository/line"
	shipmentmocks "github.com/cisretail/receiving/mocks/repository/shipment"
	txmocks "github.com/cisretail/receiving/mocks/repository/tx"
	"github.com/cisretail/receiving/model"
	cerr "github.com/cisretail/receiving/utils/errors"
)

func TestPackingApp_SavePack(t *testing.T) {
	type fields struct {
		txRepo       *txmocks.TxRepository
		shipmentRepo *shipmentmocks.ShipmentRepository
		lineRepo     *linemocks.LineRepository
	}
	newFields := func(t *testing.T) fields {
		return fields{
			txRepo:       txmocks.NewTxRepository(t),
			shipmentRepo: shipmentmocks.NewShipmentRepository(t),
			lineRepo:     linemocks.NewLineRepository(t),
		}
	}
	header := func(status constant.ShipmentStatus) *model.ShipmentHeader {
		return &model.ShipmentHeader{
			ID:           200,
			Kind:         constant.ShipmentKindStockTransfer,
			Status:       status,
			DestLocation: "OUTLET-2",
		}
	}
	tests := []struct {
		name     string
		req      *model.PackRequest
		mockCall func(f fields)
		want     *model.PackResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: counts only lines that exist on the shipment",
			req: &model.PackRequest{
				Lines: []model.PackedLine{
					{ProductID: "P1", SlipQty: 12},
					{ProductID: "P9", SlipQty: 3},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(200)).Return(header(constant.ShipmentStatusDraft), nil).Once()
				f.lineRepo.On("UpdateSlipQtyTx", mock.Anything, tx, uint64(200), "P1", 12).Return(int64(1), nil).Once()
				f.lineRepo.On("UpdateSlipQtyTx", mock.Anything, tx, uint64(200), "P9", 3).Return(int64(0), nil).Once()
				f.shipmentRepo.On("InsertEventTx", mock.Anything, tx, mock.MatchedBy(func(ev *model.ShipmentEvent) bool {
					return ev.EventType == constant.EventShipmentPacked && ev.ShipmentID == 200
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.PackResponse{Success: true, Updated: 1},
		},
		{
			name: "error: receiving already started freezes the slip",
			req: &model.PackRequest{
				Lines: []model.PackedLine{{ProductID: "P1", SlipQty: 12}},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(200)).Return(header(constant.ShipmentStatusPartialReceived), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotDraft,
		},
		{
			name: "error: shipment not found",
			req: &model.PackRequest{
				Lines: []model.PackedLine{{ProductID: "P1", SlipQty: 12}},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(200)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: negative packed quantity",
			req: &model.PackRequest{
				Lines: []model.PackedLine{{ProductID: "P1", SlipQty: -1}},
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:    "error: empty request",
			req:     &model.PackRequest{},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: begin tx fails",
			req: &model.PackRequest{
				Lines: []model.PackedLine{{ProductID: "P1", SlipQty: 12}},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := apppacking.NewPackingApp(f.txRepo, f.shipmentRepo, f.lineRepo)

			got, err := app.SavePack(context.Background(), 200, 9, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SavePack() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.Updated != tt.want.Updated {
				t.Fatalf("Updated = %d, want %d", got.Updated, tt.want.Updated)
			}
		})
	}
}
