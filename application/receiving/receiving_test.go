package receiving_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	appreceiving "github.com/cisretail/receiving/application/receiving"
	"github.com/cisretail/receiving/cmd/config"
	"github.com/cisretail/receiving/constant"
	claimmocks "github.com/cisretail/receiving/mocks/repository/claim"
	inventorymocks "github.com/cisretail/receiving/mocks/repository/inventory"
	linemocks "github.com/cisretail/receiving/mocks/repository/line"
	lockmocks "github.com/cisretail/receiving/mocks/repository/lock"
	shipmentmocks "github.com/cisretail/receiving/mocks/repository/shipment"
	txmocks "github.com/cisretail/receiving/mocks/repository/tx"
	"github.com/cisretail/receiving/model"
	cerr "github.com/cisretail/receiving/utils/errors"
)

func testConfig() *config.Config {
	return &config.Config{
		Receiving: config.ReceivingConfig{
			EditLockTTL: 15 * time.Minute,
		},
	}
}

func draftHeader() *model.ShipmentHeader {
	return &model.ShipmentHeader{
		ID:             100,
		Kind:           constant.ShipmentKindStockTransfer,
		Status:         constant.ShipmentStatusDraft,
		SourceLocation: "WAREHOUSE",
		DestLocation:   "OUTLET-2",
		CounterpartyID: "SUP-1",
	}
}

func activeLine(productID string, ordered int) model.Line {
	return model.Line{
		ShipmentID: 100,
		ProductID:  productID,
		OrderedQty: ordered,
		Status:     constant.LineStatusActive,
	}
}

func TestReceivingApp_ReceiveShipment(t *testing.T) {
	type fields struct {
		config        *config.Config
		txRepo        *txmocks.TxRepository
		shipmentRepo  *shipmentmocks.ShipmentRepository
		lineRepo      *linemocks.LineRepository
		claimRepo     *claimmocks.ClaimRepository
		inventoryRepo *inventorymocks.InventoryRepository
		lockRepo      *lockmocks.LockRepository
	}
	newFields := func(t *testing.T) fields {
		return fields{
			config:        testConfig(),
			txRepo:        txmocks.NewTxRepository(t),
			shipmentRepo:  shipmentmocks.NewShipmentRepository(t),
			lineRepo:      linemocks.NewLineRepository(t),
			claimRepo:     claimmocks.NewClaimRepository(t),
			inventoryRepo: inventorymocks.NewInventoryRepository(t),
			lockRepo:      lockmocks.NewLockRepository(t),
		}
	}
	type args struct {
		shipmentID uint64
		staffID    uint64
		req        *model.ReceiveRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.ReceiveResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: partial round leaves uncounted line pending",
			args: args{
				shipmentID: 100,
				staffID:    9,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{
						{ProductID: "P1", ReceivedQty: "10", DiscrepancyType: "OK"},
						{ProductID: "P2", ReceivedQty: "5", DiscrepancyType: "OK"},
						{ProductID: "P3", ReceivedQty: ""},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(draftHeader(), nil).Once()
				f.lineRepo.On("GetActiveLinesForUpdateTx", mock.Anything, tx, uint64(100)).Return([]model.Line{
					activeLine("P1", 10), activeLine("P2", 5), activeLine("P3", 8),
				}, nil).Once()

				f.inventoryRepo.On("GetOnHandQtyTx", mock.Anything, tx, "P1", "OUTLET-2").Return(20, nil).Once()
				f.lineRepo.On("UpdateReceivedTx", mock.Anything, tx, mock.MatchedBy(func(req *model.LineUpdateTxItem) bool {
					return req.ProductID == "P1" && req.ReceivedQty == 10 && req.OnHandSnapshot == 20
				})).Return(nil).Once()
				f.inventoryRepo.On("SetOnHandQtyTx", mock.Anything, tx, "P1", "OUTLET-2", 30).Return(nil).Once()
				f.lineRepo.On("DeleteDiscrepancyCaseTx", mock.Anything, tx, uint64(100), "P1").Return(nil).Once()

				f.inventoryRepo.On("GetOnHandQtyTx", mock.Anything, tx, "P2", "OUTLET-2").Return(0, nil).Once()
				f.lineRepo.On("UpdateReceivedTx", mock.Anything, tx, mock.MatchedBy(func(req *model.LineUpdateTxItem) bool {
					return req.ProductID == "P2" && req.ReceivedQty == 5
				})).Return(nil).Once()
				f.inventoryRepo.On("SetOnHandQtyTx", mock.Anything, tx, "P2", "OUTLET-2", 5).Return(nil).Once()
				f.lineRepo.On("DeleteDiscrepancyCaseTx", mock.Anything, tx, uint64(100), "P2").Return(nil).Once()

				f.claimRepo.On("GetClaimIDTx", mock.Anything, tx, uint64(100)).Return(uint64(0), nil).Once()
				f.shipmentRepo.On("MarkPartialTx", mock.Anything, tx, mock.MatchedBy(func(req *model.PartialShipmentTxItem) bool {
					return req.ShipmentID == 100 && req.StaffID == 9
				})).Return(nil).Once()
				f.shipmentRepo.On("InsertEventTx", mock.Anything, tx, mock.MatchedBy(func(ev *model.ShipmentEvent) bool {
					return ev.EventType == constant.EventShipmentPartial
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.ReceiveResponse{Success: true, Updated: 2, Pending: 1, Complete: false, Confidence: 100},
		},
		{
			name: "success: completing round opens a claim and appends notes",
			args: args{
				shipmentID: 100,
				staffID:    9,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{
						{ProductID: "P1", ReceivedQty: "6", DiscrepancyType: "SENT_LOW"},
						{ProductID: "P2", ReceivedQty: "4", DiscrepancyType: "OK"},
					},
					Notes: "arrived damp",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(draftHeader(), nil).Once()
				f.lineRepo.On("GetActiveLinesForUpdateTx", mock.Anything, tx, uint64(100)).Return([]model.Line{
					activeLine("P1", 10), activeLine("P2", 4),
				}, nil).Once()

				f.inventoryRepo.On("GetOnHandQtyTx", mock.Anything, tx, "P1", "OUTLET-2").Return(0, nil).Once()
				f.lineRepo.On("UpdateReceivedTx", mock.Anything, tx, mock.MatchedBy(func(req *model.LineUpdateTxItem) bool {
					return req.ProductID == "P1" && req.DiscrepancyType == constant.DiscrepancySentLow
				})).Return(nil).Once()
				f.inventoryRepo.On("SetOnHandQtyTx", mock.Anything, tx, "P1", "OUTLET-2", 6).Return(nil).Once()
				f.lineRepo.On("DeleteDiscrepancyCaseTx", mock.Anything, tx, uint64(100), "P1").Return(nil).Once()
				f.lineRepo.On("InsertDiscrepancyCaseTx", mock.Anything, tx, uint64(100), mock.MatchedBy(func(d *model.DiscrepancyDelta) bool {
					return d.ProductID == "P1" && d.DeltaQty == -4
				})).Return(nil).Once()

				f.inventoryRepo.On("GetOnHandQtyTx", mock.Anything, tx, "P2", "OUTLET-2").Return(0, nil).Once()
				f.lineRepo.On("UpdateReceivedTx", mock.Anything, tx, mock.MatchedBy(func(req *model.LineUpdateTxItem) bool {
					return req.ProductID == "P2" && req.ReceivedQty == 4
				})).Return(nil).Once()
				f.inventoryRepo.On("SetOnHandQtyTx", mock.Anything, tx, "P2", "OUTLET-2", 4).Return(nil).Once()
				f.lineRepo.On("DeleteDiscrepancyCaseTx", mock.Anything, tx, uint64(100), "P2").Return(nil).Once()

				f.claimRepo.On("GetClaimIDTx", mock.Anything, tx, uint64(100)).Return(uint64(0), nil).Once()
				f.claimRepo.On("InsertClaimTx", mock.Anything, tx, mock.MatchedBy(func(c *model.Claim) bool {
					return c.ShipmentID == 100 && c.CounterpartyID == "SUP-1" && c.Status == constant.ClaimStatusPending && c.CreatedBy == 9
				})).Return(uint64(77), nil).Once()
				f.claimRepo.On("ReplaceClaimLinesTx", mock.Anything, tx, uint64(77), mock.MatchedBy(func(lines []model.ClaimLine) bool {
					return len(lines) == 1 && lines[0].ProductID == "P1" && lines[0].Qty == 4 && lines[0].Reason == "SENT_LOW"
				})).Return(nil).Once()

				f.shipmentRepo.On("AppendReceivedNotesTx", mock.Anything, tx, uint64(100), "arrived damp").Return(nil).Once()
				f.shipmentRepo.On("MarkCompleteTx", mock.Anything, tx, mock.MatchedBy(func(req *model.CompleteShipmentTxItem) bool {
					return req.ShipmentID == 100 && req.StaffID == 9
				})).Return(nil).Once()
				f.shipmentRepo.On("InsertEventTx", mock.Anything, tx, mock.MatchedBy(func(ev *model.ShipmentEvent) bool {
					return ev.EventType == constant.EventShipmentCompleted
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.ReceiveResponse{Success: true, Updated: 2, Pending: 0, Complete: true, Confidence: 46},
		},
		{
			name: "success: resubmission rewrites the existing claim",
			args: args{
				shipmentID: 100,
				staffID:    9,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{
						{ProductID: "P1", ReceivedQty: "2", DiscrepancyType: "MISSING"},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				hdr := draftHeader()
				hdr.Status = constant.ShipmentStatusPartialReceived
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(hdr, nil).Once()
				f.lineRepo.On("GetActiveLinesForUpdateTx", mock.Anything, tx, uint64(100)).Return([]model.Line{
					activeLine("P1", 10),
				}, nil).Once()

				f.inventoryRepo.On("GetOnHandQtyTx", mock.Anything, tx, "P1", "OUTLET-2").Return(0, nil).Once()
				f.lineRepo.On("UpdateReceivedTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.inventoryRepo.On("SetOnHandQtyTx", mock.Anything, tx, "P1", "OUTLET-2", 2).Return(nil).Once()
				f.lineRepo.On("DeleteDiscrepancyCaseTx", mock.Anything, tx, uint64(100), "P1").Return(nil).Once()
				f.lineRepo.On("InsertDiscrepancyCaseTx", mock.Anything, tx, uint64(100), mock.MatchedBy(func(d *model.DiscrepancyDelta) bool {
					return d.DeltaQty == -8
				})).Return(nil).Once()

				f.claimRepo.On("GetClaimIDTx", mock.Anything, tx, uint64(100)).Return(uint64(42), nil).Once()
				f.claimRepo.On("ReopenClaimTx", mock.Anything, tx, uint64(42)).Return(nil).Once()
				f.claimRepo.On("ReplaceClaimLinesTx", mock.Anything, tx, uint64(42), mock.MatchedBy(func(lines []model.ClaimLine) bool {
					return len(lines) == 1 && lines[0].Qty == 8
				})).Return(nil).Once()

				f.shipmentRepo.On("MarkCompleteTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.shipmentRepo.On("InsertEventTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.ReceiveResponse{Success: true, Updated: 1, Pending: 0, Complete: true, Confidence: 0},
		},
		{
			name: "success: explicitly allowed empty submission saves nothing",
			args: args{
				shipmentID: 100,
				staffID:    9,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{
						{ProductID: "P1"},
						{ProductID: "P2"},
					},
					AllowEmptySubmission: true,
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(draftHeader(), nil).Once()
				f.lineRepo.On("GetActiveLinesForUpdateTx", mock.Anything, tx, uint64(100)).Return([]model.Line{
					activeLine("P1", 10), activeLine("P2", 5),
				}, nil).Once()
				f.claimRepo.On("GetClaimIDTx", mock.Anything, tx, uint64(100)).Return(uint64(0), nil).Once()
				f.shipmentRepo.On("MarkPartialTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.shipmentRepo.On("InsertEventTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.ReceiveResponse{Success: true, Updated: 0, Pending: 2, Complete: false, Confidence: 0},
		},
		{
			// An unknown product id must not pad the completion count: the
			// blank active line keeps the shipment partial.
			name: "success: unknown product line does not count toward completion",
			args: args{
				shipmentID: 100,
				staffID:    9,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{
						{ProductID: "P1", ReceivedQty: "10", DiscrepancyType: "OK"},
						{ProductID: "PX", ReceivedQty: "3", DiscrepancyType: "OK"},
						{ProductID: "P2", ReceivedQty: ""},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(draftHeader(), nil).Once()
				f.lineRepo.On("GetActiveLinesForUpdateTx", mock.Anything, tx, uint64(100)).Return([]model.Line{
					activeLine("P1", 10), activeLine("P2", 5),
				}, nil).Once()

				f.inventoryRepo.On("GetOnHandQtyTx", mock.Anything, tx, "P1", "OUTLET-2").Return(0, nil).Once()
				f.lineRepo.On("UpdateReceivedTx", mock.Anything, tx, mock.MatchedBy(func(req *model.LineUpdateTxItem) bool {
					return req.ProductID == "P1" && req.ReceivedQty == 10
				})).Return(nil).Once()
				f.inventoryRepo.On("SetOnHandQtyTx", mock.Anything, tx, "P1", "OUTLET-2", 10).Return(nil).Once()
				f.lineRepo.On("DeleteDiscrepancyCaseTx", mock.Anything, tx, uint64(100), "P1").Return(nil).Once()

				f.claimRepo.On("GetClaimIDTx", mock.Anything, tx, uint64(100)).Return(uint64(0), nil).Once()
				f.shipmentRepo.On("MarkPartialTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.shipmentRepo.On("InsertEventTx", mock.Anything, tx, mock.MatchedBy(func(ev *model.ShipmentEvent) bool {
					return ev.EventType == constant.EventShipmentPartial
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.ReceiveResponse{Success: true, Updated: 1, Pending: 1, Complete: false, Confidence: 100},
		},
		{
			name: "success: duplicate lines count once toward completion",
			args: args{
				shipmentID: 100,
				staffID:    9,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{
						{ProductID: "P1", ReceivedQty: "4", DiscrepancyType: "OK"},
						{ProductID: "P1", ReceivedQty: "4", DiscrepancyType: "OK"},
						{ProductID: "P2", ReceivedQty: ""},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(draftHeader(), nil).Once()
				f.lineRepo.On("GetActiveLinesForUpdateTx", mock.Anything, tx, uint64(100)).Return([]model.Line{
					activeLine("P1", 10), activeLine("P2", 5),
				}, nil).Once()

				f.inventoryRepo.On("GetOnHandQtyTx", mock.Anything, tx, "P1", "OUTLET-2").Return(0, nil).Twice()
				f.lineRepo.On("UpdateReceivedTx", mock.Anything, tx, mock.MatchedBy(func(req *model.LineUpdateTxItem) bool {
					return req.ProductID == "P1" && req.ReceivedQty == 4
				})).Return(nil).Twice()
				f.inventoryRepo.On("SetOnHandQtyTx", mock.Anything, tx, "P1", "OUTLET-2", 4).Return(nil).Twice()
				f.lineRepo.On("DeleteDiscrepancyCaseTx", mock.Anything, tx, uint64(100), "P1").Return(nil).Twice()

				f.claimRepo.On("GetClaimIDTx", mock.Anything, tx, uint64(100)).Return(uint64(0), nil).Once()
				f.shipmentRepo.On("MarkPartialTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.shipmentRepo.On("InsertEventTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.ReceiveResponse{Success: true, Updated: 2, Pending: 1, Complete: false, Confidence: 100},
		},
		{
			name: "error: row lock wait timeout is reported as retryable",
			args: args{
				shipmentID: 100,
				staffID:    9,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{{ProductID: "P1", ReceivedQty: "3"}},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(nil, &mysql.MySQLError{
					Number:  1205,
					Message: "Lock wait timeout exceeded; try restarting transaction",
				}).Once()
			},
			wantErr: true,
			errCode: constant.ErrLockTimeout,
		},
		{
			name: "error: all blank without explicit allowance",
			args: args{
				shipmentID: 100,
				staffID:    9,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{{ProductID: "P1"}, {ProductID: "P2"}},
				},
			},
			wantErr: true,
			errCode: constant.ErrNoQuantitiesEntered,
		},
		{
			name: "error: negative quantity is rejected before any write",
			args: args{
				shipmentID: 100,
				staffID:    9,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{{ProductID: "P1", ReceivedQty: "-3"}},
				},
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: unknown discrepancy type",
			args: args{
				shipmentID: 100,
				staffID:    9,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{{ProductID: "P1", ReceivedQty: "3", DiscrepancyType: "BANANAS"}},
				},
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: missing staff id",
			args: args{
				shipmentID: 100,
				staffID:    0,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{{ProductID: "P1", ReceivedQty: "3"}},
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: shipment not found",
			args: args{
				shipmentID: 100,
				staffID:    9,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{{ProductID: "P1", ReceivedQty: "3"}},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: deleted shipment",
			args: args{
				shipmentID: 100,
				staffID:    9,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{{ProductID: "P1", ReceivedQty: "3"}},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				hdr := draftHeader()
				hdr.Status = constant.ShipmentStatusDeleted
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(hdr, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrShipmentGone,
		},
		{
			name: "error: already complete",
			args: args{
				shipmentID: 100,
				staffID:    9,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{{ProductID: "P1", ReceivedQty: "3"}},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				hdr := draftHeader()
				hdr.Status = constant.ShipmentStatusComplete
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(hdr, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAlreadyComplete,
		},
		{
			name: "error: no active lines",
			args: args{
				shipmentID: 100,
				staffID:    9,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{{ProductID: "P1", ReceivedQty: "3"}},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(draftHeader(), nil).Once()
				f.lineRepo.On("GetActiveLinesForUpdateTx", mock.Anything, tx, uint64(100)).Return([]model.Line{}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNoActiveItems,
		},
		{
			name: "error: mid-batch write failure rolls the round back",
			args: args{
				shipmentID: 100,
				staffID:    9,
				req: &model.ReceiveRequest{
					Lines: []model.SubmittedLine{
						{ProductID: "P1", ReceivedQty: "10", DiscrepancyType: "OK"},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(draftHeader(), nil).Once()
				f.lineRepo.On("GetActiveLinesForUpdateTx", mock.Anything, tx, uint64(100)).Return([]model.Line{
					activeLine("P1", 10),
				}, nil).Once()
				f.inventoryRepo.On("GetOnHandQtyTx", mock.Anything, tx, "P1", "OUTLET-2").Return(0, nil).Once()
				f.lineRepo.On("UpdateReceivedTx", mock.Anything, tx, mock.Anything).Return(errors.New("deadlock")).Once()
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
			app := appreceiving.NewReceivingApp(f.config, f.txRepo, f.shipmentRepo, f.lineRepo, f.claimRepo, f.inventoryRepo, f.lockRepo, nil)

			got, err := app.ReceiveShipment(context.Background(), tt.args.shipmentID, tt.args.staffID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReceiveShipment() error = %v, wantErr %v", err, tt.wantErr)
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
			if got.Pending != tt.want.Pending {
				t.Fatalf("Pending = %d, want %d", got.Pending, tt.want.Pending)
			}
			if got.Complete != tt.want.Complete {
				t.Fatalf("Complete = %v, want %v", got.Complete, tt.want.Complete)
			}
			if got.Confidence != tt.want.Confidence {
				t.Fatalf("Confidence = %d, want %d", got.Confidence, tt.want.Confidence)
			}
		})
	}
}

func TestReceivingApp_UnlockShipment(t *testing.T) {
	type fields struct {
		txRepo       *txmocks.TxRepository
		shipmentRepo *shipmentmocks.ShipmentRepository
	}
	newFields := func(t *testing.T) fields {
		return fields{
			txRepo:       txmocks.NewTxRepository(t),
			shipmentRepo: shipmentmocks.NewShipmentRepository(t),
		}
	}
	tests := []struct {
		name       string
		shipmentID uint64
		staffID    uint64
		mockCall   func(f fields)
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:       "success: completed shipment reverts to draft",
			shipmentID: 100,
			staffID:    9,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				hdr := draftHeader()
				hdr.Status = constant.ShipmentStatusComplete
				hdr.CompletedBy = sql.NullInt64{Int64: 4, Valid: true}
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(hdr, nil).Once()
				f.shipmentRepo.On("UnlockTx", mock.Anything, tx, uint64(100), uint64(9)).Return(nil).Once()
				f.shipmentRepo.On("InsertEventTx", mock.Anything, tx, mock.MatchedBy(func(ev *model.ShipmentEvent) bool {
					return ev.EventType == constant.EventShipmentUnlocked && ev.StaffID == 9
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name:       "error: only completed shipments can be unlocked",
			shipmentID: 100,
			staffID:    9,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(draftHeader(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotComplete,
		},
		{
			name:       "error: shipment not found",
			shipmentID: 100,
			staffID:    9,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:       "error: row lock wait timeout is reported as retryable",
			shipmentID: 100,
			staffID:    9,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.shipmentRepo.On("GetHeaderForUpdateTx", mock.Anything, tx, uint64(100)).Return(nil, &mysql.MySQLError{
					Number:  1205,
					Message: "Lock wait timeout exceeded; try restarting transaction",
				}).Once()
			},
			wantErr: true,
			errCode: constant.ErrLockTimeout,
		},
		{
			name:       "error: missing shipment id",
			shipmentID: 0,
			staffID:    9,
			wantErr:    true,
			errCode:    constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appreceiving.NewReceivingApp(testConfig(), f.txRepo, f.shipmentRepo, linemocks.NewLineRepository(t), claimmocks.NewClaimRepository(t), inventorymocks.NewInventoryRepository(t), lockmocks.NewLockRepository(t), nil)

			err := app.UnlockShipment(context.Background(), tt.shipmentID, tt.staffID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnlockShipment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestReceivingApp_AcquireLock(t *testing.T) {
	tests := []struct {
		name          string
		staffID       uint64
		mockCall      func(m *lockmocks.LockRepository)
		wantSuccess   bool
		wantSessionID string
		wantLockedBy  uint64
		wantErr       bool
		errCode       constant.ErrorType
	}{
		{
			name:    "success: free shipment is locked",
			staffID: 9,
			mockCall: func(m *lockmocks.LockRepository) {
				m.On("Get", mock.Anything, uint64(100)).Return(nil, nil).Once()
				m.On("TryAcquire", mock.Anything, mock.MatchedBy(func(l *model.AdvisoryLock) bool {
					return l.ShipmentID == 100 && l.StaffID == 9 && l.SessionID != ""
				}), 15*time.Minute).Return(true, nil).Once()
			},
			wantSuccess: true,
		},
		{
			name:    "success: same staff re-acquire extends the lease",
			staffID: 9,
			mockCall: func(m *lockmocks.LockRepository) {
				m.On("Get", mock.Anything, uint64(100)).Return(&model.AdvisoryLock{
					ShipmentID: 100, StaffID: 9, SessionID: "sess-1",
				}, nil).Once()
				m.On("Extend", mock.Anything, uint64(100), uint64(9), "sess-1", 15*time.Minute).Return(true, nil).Once()
			},
			wantSuccess:   true,
			wantSessionID: "sess-1",
		},
		{
			name:    "conflict: held by someone else is not an error",
			staffID: 9,
			mockCall: func(m *lockmocks.LockRepository) {
				m.On("Get", mock.Anything, uint64(100)).Return(&model.AdvisoryLock{
					ShipmentID: 100, StaffID: 7, SessionID: "sess-7",
				}, nil).Once()
				m.On("TTL", mock.Anything, uint64(100)).Return(10*time.Minute, nil).Once()
			},
			wantSuccess:  false,
			wantLockedBy: 7,
		},
		{
			name:    "conflict: lost the acquire race",
			staffID: 9,
			mockCall: func(m *lockmocks.LockRepository) {
				m.On("Get", mock.Anything, uint64(100)).Return(nil, nil).Once()
				m.On("TryAcquire", mock.Anything, mock.Anything, 15*time.Minute).Return(false, nil).Once()
				m.On("Get", mock.Anything, uint64(100)).Return(&model.AdvisoryLock{
					ShipmentID: 100, StaffID: 7, SessionID: "sess-7",
				}, nil).Once()
				m.On("TTL", mock.Anything, uint64(100)).Return(3*time.Minute, nil).Once()
			},
			wantSuccess:  false,
			wantLockedBy: 7,
		},
		{
			name:    "error: lock store unavailable",
			staffID: 9,
			mockCall: func(m *lockmocks.LockRepository) {
				m.On("Get", mock.Anything, uint64(100)).Return(nil, errors.New("connection refused")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name:    "error: missing staff id",
			staffID: 0,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			lockRepo := lockmocks.NewLockRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(lockRepo)
			}
			app := appreceiving.NewReceivingApp(testConfig(), txmocks.NewTxRepository(t), shipmentmocks.NewShipmentRepository(t), linemocks.NewLineRepository(t), claimmocks.NewClaimRepository(t), inventorymocks.NewInventoryRepository(t), lockRepo, nil)

			got, err := app.AcquireLock(context.Background(), 100, tt.staffID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AcquireLock() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Success != tt.wantSuccess {
				t.Fatalf("Success = %v, want %v", got.Success, tt.wantSuccess)
			}
			if tt.wantSuccess && got.SessionID == "" {
				t.Fatal("SessionID should not be empty on success")
			}
			if tt.wantSessionID != "" && got.SessionID != tt.wantSessionID {
				t.Fatalf("SessionID = %s, want %s", got.SessionID, tt.wantSessionID)
			}
			if got.LockedBy != tt.wantLockedBy {
				t.Fatalf("LockedBy = %d, want %d", got.LockedBy, tt.wantLockedBy)
			}
		})
	}
}

func TestReceivingApp_ExtendLock(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		mockCall  func(m *lockmocks.LockRepository)
		want      bool
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name:      "success: holder extends",
			sessionID: "sess-1",
			mockCall: func(m *lockmocks.LockRepository) {
				m.On("Extend", mock.Anything, uint64(100), uint64(9), "sess-1", 15*time.Minute).Return(true, nil).Once()
			},
			want: true,
		},
		{
			name:      "stale session cannot extend",
			sessionID: "sess-old",
			mockCall: func(m *lockmocks.LockRepository) {
				m.On("Extend", mock.Anything, uint64(100), uint64(9), "sess-old", 15*time.Minute).Return(false, nil).Once()
			},
			want: false,
		},
		{
			name:      "error: empty session id",
			sessionID: "",
			wantErr:   true,
			errCode:   constant.ErrInvalidRequest,
		},
		{
			name:      "error: lock store unavailable",
			sessionID: "sess-1",
			mockCall: func(m *lockmocks.LockRepository) {
				m.On("Extend", mock.Anything, uint64(100), uint64(9), "sess-1", 15*time.Minute).Return(false, errors.New("connection refused")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			lockRepo := lockmocks.NewLockRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(lockRepo)
			}
			app := appreceiving.NewReceivingApp(testConfig(), txmocks.NewTxRepository(t), shipmentmocks.NewShipmentRepository(t), linemocks.NewLineRepository(t), claimmocks.NewClaimRepository(t), inventorymocks.NewInventoryRepository(t), lockRepo, nil)

			got, err := app.ExtendLock(context.Background(), 100, 9, tt.sessionID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtendLock() error = %v, wantErr %v", err, tt.wantErr)
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
			if got != tt.want {
				t.Fatalf("ExtendLock() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReceivingApp_ResyncInventory(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(shipmentRepo *shipmentmocks.ShipmentRepository, lineRepo *linemocks.LineRepository, inventoryRepo *inventorymocks.InventoryRepository)
		want     int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			// With a nil publisher nothing is sent, but counted lines are
			// still walked and read back without error.
			name: "success: uncounted lines are skipped",
			mockCall: func(shipmentRepo *shipmentmocks.ShipmentRepository, lineRepo *linemocks.LineRepository, inventoryRepo *inventorymocks.InventoryRepository) {
				shipmentRepo.On("GetHeader", mock.Anything, uint64(100)).Return(draftHeader(), nil).Once()
				counted := activeLine("P1", 10)
				counted.ReceivedQty = sql.NullInt64{Int64: 10, Valid: true}
				lineRepo.On("GetActiveLines", mock.Anything, uint64(100)).Return([]model.Line{
					counted, activeLine("P2", 5),
				}, nil).Once()
				inventoryRepo.On("GetOnHandQty", mock.Anything, "P1", "OUTLET-2").Return(30, nil).Once()
			},
			want: 0,
		},
		{
			name: "error: shipment not found",
			mockCall: func(shipmentRepo *shipmentmocks.ShipmentRepository, lineRepo *linemocks.LineRepository, inventoryRepo *inventorymocks.InventoryRepository) {
				shipmentRepo.On("GetHeader", mock.Anything, uint64(100)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			shipmentRepo := shipmentmocks.NewShipmentRepository(t)
			lineRepo := linemocks.NewLineRepository(t)
			inventoryRepo := inventorymocks.NewInventoryRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(shipmentRepo, lineRepo, inventoryRepo)
			}
			app := appreceiving.NewReceivingApp(testConfig(), txmocks.NewTxRepository(t), shipmentRepo, lineRepo, claimmocks.NewClaimRepository(t), inventoryRepo, lockmocks.NewLockRepository(t), nil)

			got, err := app.ResyncInventory(context.Background(), 100)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResyncInventory() error = %v, wantErr %v", err, tt.wantErr)
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
			if got != tt.want {
				t.Fatalf("published = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReceivingApp_GetShipment(t *testing.T) {
	type fields struct {
		shipmentRepo *shipmentmocks.ShipmentRepository
		lineRepo     *linemocks.LineRepository
	}
	tests := []struct {
		name      string
		mockCall  func(f fields)
		wantLines int
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success",
			mockCall: func(f fields) {
				f.shipmentRepo.On("GetHeader", mock.Anything, uint64(100)).Return(draftHeader(), nil).Once()
				ln := activeLine("P1", 10)
				ln.ReceivedQty = sql.NullInt64{Int64: 4, Valid: true}
				f.lineRepo.On("GetActiveLines", mock.Anything, uint64(100)).Return([]model.Line{ln}, nil).Once()
			},
			wantLines: 1,
		},
		{
			name: "error: not found",
			mockCall: func(f fields) {
				f.shipmentRepo.On("GetHeader", mock.Anything, uint64(100)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				shipmentRepo: shipmentmocks.NewShipmentRepository(t),
				lineRepo:     linemocks.NewLineRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appreceiving.NewReceivingApp(testConfig(), txmocks.NewTxRepository(t), f.shipmentRepo, f.lineRepo, claimmocks.NewClaimRepository(t), inventorymocks.NewInventoryRepository(t), lockmocks.NewLockRepository(t), nil)

			got, err := app.GetShipment(context.Background(), 100)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetShipment() error = %v, wantErr %v", err, tt.wantErr)
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
			if len(got.Lines) != tt.wantLines {
				t.Fatalf("lines = %d, want %d", len(got.Lines), tt.wantLines)
			}
			if got.Lines[0].ReceivedQty == nil || *got.Lines[0].ReceivedQty != 4 {
				t.Fatal("received qty not carried through")
			}
		})
	}
}
