package transport

import (
	"net/http"
	"strings"

	"github.com/cisretail/receiving/constant"
	utilsContext "github.com/cisretail/receiving/utils/context"
	"github.com/cisretail/receiving/utils/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

// AuthMiddleware validates the staff JWT and embeds the staff id into the
// request context. Swagger and internal endpoints stay public.
func AuthMiddleware(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			tokenStr := strings.TrimPrefix(auth, "Bearer ")

			staffID, err := parseStaffToken(tokenStr, secret)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithStaffID(r.Context(), staffID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseStaffToken(tokenStr, secret string) (uint64, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, jwt.ErrTokenInvalidClaims
	}
	staffID, ok := claims["staff_id"].(float64)
	if !ok || staffID <= 0 {
		return 0, jwt.ErrTokenInvalidClaims
	}
	return uint64(staffID), nil
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	return strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/")
}
