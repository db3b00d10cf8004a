package lock

import (
	"context"
	"testing"
	"time"

	"github.com/cisretail/receiving/model"
)

// Without an initialized Redis client every lease operation must refuse:
// a lock that silently succeeds for everyone is no lock at all.
func TestLockRepository_FailsClosedWithoutClient(t *testing.T) {
	repo := NewLockRepository()
	ctx := context.Background()

	ok, err := repo.TryAcquire(ctx, &model.AdvisoryLock{ShipmentID: 1, StaffID: 9, SessionID: "sess-1"}, time.Minute)
	if err == nil || ok {
		t.Fatalf("TryAcquire() = (%v, %v), want refusal with error", ok, err)
	}
	if _, err := repo.Get(ctx, 1); err == nil {
		t.Fatal("Get() should fail without a client")
	}
	ok, err = repo.Extend(ctx, 1, 9, "sess-1", time.Minute)
	if err == nil || ok {
		t.Fatalf("Extend() = (%v, %v), want refusal with error", ok, err)
	}
	if err := repo.Release(ctx, 1, 9, "sess-1"); err == nil {
		t.Fatal("Release() should fail without a client")
	}
	if _, err := repo.TTL(ctx, 1); err == nil {
		t.Fatal("TTL() should fail without a client")
	}
}
