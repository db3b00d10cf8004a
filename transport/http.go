package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	packingapp "github.com/cisretail/receiving/application/packing"
	receivingapp "github.com/cisretail/receiving/application/receiving"
	"github.com/cisretail/receiving/constant"
	"github.com/cisretail/receiving/model"
	utilsContext "github.com/cisretail/receiving/utils/context"
	"github.com/cisretail/receiving/utils/errors"
	validatorx "github.com/cisretail/receiving/utils/validator"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	ReceivingApp receivingapp.ReceivingApp
	PackingApp   packingapp.PackingApp
}

func NewTransport(receivingApp receivingapp.ReceivingApp, packingApp packingapp.PackingApp, jwtSecret, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		ReceivingApp: receivingApp,
		PackingApp:   packingApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	mux.HandleFunc("/shipments/{id}", rh.GetShipment).Methods(http.MethodGet)
	mux.HandleFunc("/shipments/{id}/receive", rh.ReceiveShipment).Methods(http.MethodPost)
	mux.HandleFunc("/shipments/{id}/unlock", rh.UnlockShipment).Methods(http.MethodPost)
	mux.HandleFunc("/shipments/{id}/pack", rh.SavePack).Methods(http.MethodPost)
	mux.HandleFunc("/shipments/{id}/lock", rh.AcquireLock).Methods(http.MethodPost)
	mux.HandleFunc("/shipments/{id}/lock/extend", rh.ExtendLock).Methods(http.MethodPost)
	mux.HandleFunc("/shipments/{id}/lock", rh.ReleaseLock).Methods(http.MethodDelete)

	// internal endpoints are keyed, not JWT-authenticated
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/shipments/{id}/sync", rh.ResyncInventory).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(jwtSecret))

	return mux
}

func shipmentIDFromPath(r *http.Request) (uint64, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// GetShipment handler
// @Summary Get shipment
// @Description Shipment header plus its active lines
// @Tags Shipments
// @Produce json
// @Param id path int true "Shipment ID"
// @Success 200 {object} model.ShipmentDetailResponse
// @Failure 404 {object} errorResponse
// @Security BearerAuth
// @Router /shipments/{id} [get]
func (s *RestHandler) GetShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := shipmentIDFromPath(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReceivingApp.GetShipment(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ReceiveShipment handler
// @Summary Receive shipment
// @Description Reconcile one round of counted quantities against the shipment
// @Tags Receiving
// @Accept json
// @Produce json
// @Param id path int true "Shipment ID"
// @Param request body model.ReceiveRequest true "Receive Request"
// @Success 200 {object} model.ReceiveResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Security BearerAuth
// @Router /shipments/{id}/receive [post]
func (s *RestHandler) ReceiveShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := shipmentIDFromPath(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	staffID, ok := utilsContext.GetStaffID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ReceiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReceivingApp.ReceiveShipment(ctx, id, staffID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UnlockShipment handler
// @Summary Unlock shipment
// @Description Revert a completed shipment to draft for correction; line data is kept
// @Tags Receiving
// @Produce json
// @Param id path int true "Shipment ID"
// @Success 200 {object} map[string]bool
// @Failure 409 {object} errorResponse
// @Security BearerAuth
// @Router /shipments/{id}/unlock [post]
func (s *RestHandler) UnlockShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := shipmentIDFromPath(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	staffID, ok := utilsContext.GetStaffID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.ReceivingApp.UnlockShipment(ctx, id, staffID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"success": true})
}

// SavePack handler
// @Summary Save packed quantities
// @Description Record packed quantities on a draft outbound transfer
// @Tags Packing
// @Accept json
// @Produce json
// @Param id path int true "Shipment ID"
// @Param request body model.PackRequest true "Pack Request"
// @Success 200 {object} model.PackResponse
// @Failure 409 {object} errorResponse
// @Security BearerAuth
// @Router /shipments/{id}/pack [post]
func (s *RestHandler) SavePack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := shipmentIDFromPath(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	staffID, ok := utilsContext.GetStaffID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.PackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PackingApp.SavePack(ctx, id, staffID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AcquireLock handler
// @Summary Acquire edit lock
// @Description Take the advisory edit-session lease on a shipment
// @Tags Locks
// @Produce json
// @Param id path int true "Shipment ID"
// @Success 200 {object} model.LockResponse
// @Security BearerAuth
// @Router /shipments/{id}/lock [post]
func (s *RestHandler) AcquireLock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := shipmentIDFromPath(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	staffID, ok := utilsContext.GetStaffID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.ReceivingApp.AcquireLock(ctx, id, staffID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ResyncInventory handler
// @Summary Republish POS sync
// @Description Republish committed on-hand levels for a shipment's counted lines
// @Tags Internal
// @Produce json
// @Param id path int true "Shipment ID"
// @Success 200 {object} map[string]int
// @Failure 404 {object} errorResponse
// @Router /internal/shipments/{id}/sync [post]
func (s *RestHandler) ResyncInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := shipmentIDFromPath(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	published, err := s.ReceivingApp.ResyncInventory(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]int{"published": published})
}

type lockSessionRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// ExtendLock handler
// @Summary Extend edit lock
// @Description Refresh the advisory lease held by this session
// @Tags Locks
// @Accept json
// @Produce json
// @Param id path int true "Shipment ID"
// @Param request body lockSessionRequest true "Lock session"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /shipments/{id}/lock/extend [post]
func (s *RestHandler) ExtendLock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := shipmentIDFromPath(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	staffID, ok := utilsContext.GetStaffID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req lockSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	extended, err := s.ReceivingApp.ExtendLock(ctx, id, staffID, req.SessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"success": extended})
}

// ReleaseLock handler
// @Summary Release edit lock
// @Description Drop the advisory lease held by this session
// @Tags Locks
// @Accept json
// @Produce json
// @Param id path int true "Shipment ID"
// @Param request body lockSessionRequest true "Lock session"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /shipments/{id}/lock [delete]
func (s *RestHandler) ReleaseLock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := shipmentIDFromPath(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	staffID, ok := utilsContext.GetStaffID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req lockSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ReceivingApp.ReleaseLock(ctx, id, staffID, req.SessionID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"success": true})
}
