package context

import (
	"context"

	"github.com/cisretail/receiving/constant"
)

func GetStaffID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.StaffIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func WithStaffID(ctx context.Context, staffID uint64) context.Context {
	return context.WithValue(ctx, constant.StaffIDKey, staffID)
}
