package transport

import (
	"encoding/json"
	"net/http"

	cerr "github.com/cisretail/receiving/utils/errors"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

func writeSuccess(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps CustomError onto the HTTP status and short message of
// its taxonomy entry. Anything else is reported as a generic failure;
// the real cause is already logged where it happened.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if ce, ok := err.(cerr.CustomError); ok {
		w.WriteHeader(ce.ErrorHTTPCode())
		_ = json.NewEncoder(w).Encode(errorResponse{
			Success: false,
			Error:   ce.Error(),
			Code:    ce.ErrorCode(),
		})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Success: false,
		Error:   "operation failed, please retry",
	})
}
