package constant

import "testing"

// Status integers are wire values: they live in the shipments.status
// column and every client reads them. Pin them so an enum reorder cannot
// silently change what the database rows mean.
func TestShipmentStatusValues(t *testing.T) {
	tests := []struct {
		name   string
		status ShipmentStatus
		want   int
	}{
		{name: "draft", status: ShipmentStatusDraft, want: 0},
		{name: "partial received", status: ShipmentStatusPartialReceived, want: 1},
		{name: "complete", status: ShipmentStatusComplete, want: 2},
		{name: "deleted", status: ShipmentStatusDeleted, want: 4},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.status) != tt.want {
				t.Fatalf("%s = %d, want %d", tt.name, int(tt.status), tt.want)
			}
		})
	}
}
