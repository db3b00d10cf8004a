package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrValidation
	ErrAlreadyComplete
	ErrShipmentGone
	ErrNoActiveItems
	ErrNoQuantitiesEntered
	ErrShipmentLocked
	ErrLockTimeout
	ErrNotComplete
	ErrNotDraft
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "operation failed, please retry",
	ErrNotFound:            "shipment not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrValidation:          "invalid quantity on one or more lines",
	ErrAlreadyComplete:     "shipment already completed, unlock it to re-edit",
	ErrShipmentGone:        "shipment has been deleted",
	ErrNoActiveItems:       "no active items on this shipment",
	ErrNoQuantitiesEntered: "no quantities entered",
	ErrShipmentLocked:      "shipment is being processed by another user",
	ErrLockTimeout:         "timed out waiting for shipment lock",
	ErrNotComplete:         "only completed shipments can be unlocked",
	ErrNotDraft:            "only draft shipments can be packed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrValidation:          http.StatusBadRequest,
	ErrAlreadyComplete:     http.StatusConflict,
	ErrShipmentGone:        http.StatusGone,
	ErrNoActiveItems:       http.StatusConflict,
	ErrNoQuantitiesEntered: http.StatusBadRequest,
	ErrShipmentLocked:      http.StatusConflict,
	ErrLockTimeout:         http.StatusConflict,
	ErrNotComplete:         http.StatusConflict,
	ErrNotDraft:            http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrValidation:          "0005",
	ErrAlreadyComplete:     "0006",
	ErrShipmentGone:        "0007",
	ErrNoActiveItems:       "0008",
	ErrNoQuantitiesEntered: "0009",
	ErrShipmentLocked:      "0010",
	ErrLockTimeout:         "0011",
	ErrNotComplete:         "0012",
	ErrNotDraft:            "0013",
}
