package entity

import (
	"testing"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

func TestCoerceStepStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"completed", StepCompleted},
		{" confirmed ", StepConfirmed},
		{"in-progress", StepInProgress},
		{"pending", StepPending},
		{"done", StepPending},
		{"", StepPending},
	}
	for _, tc := range cases {
		if got := CoerceStepStatus(tc.in); got != tc.want {
			t.Errorf("CoerceStepStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDomesticFromRecordSynthesizedTimeline(t *testing.T) {
	item := DomesticFromRecord(sheetstore.Record{
		"id":               "DOM-1",
		"date":             "01/08/2025",
		"estimatedArrival": "05/08/2025",
		"actualArrival":    "06/08/2025",
	})

	if len(item.Timeline) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(item.Timeline))
	}
	if item.Timeline[0].ID != "created" || item.Timeline[0].Date != "01/08/2025" {
		t.Fatalf("created step: %+v", item.Timeline[0])
	}
	receive := item.Timeline[1]
	if receive.ID != "receive" || receive.Name != "Ngày nhận hàng" {
		t.Fatalf("receive step: %+v", receive)
	}
	if receive.EstimatedDate != "05/08/2025" || receive.Date != "06/08/2025" {
		t.Fatalf("receive dates: %+v", receive)
	}
	if receive.Status != StepCompleted {
		t.Fatalf("receive with actual date should be completed, got %q", receive.Status)
	}
}

func TestDomesticFromRecordPendingWithoutActual(t *testing.T) {
	item := DomesticFromRecord(sheetstore.Record{
		"id":               "DOM-2",
		"date":             "01/08/2025",
		"estimatedArrival": "05/08/2025",
	})
	if len(item.Timeline) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(item.Timeline))
	}
	if item.Timeline[1].Status != StepPending {
		t.Fatalf("receive without actual date should be pending, got %q", item.Timeline[1].Status)
	}
}

func TestDomesticFromRecordSkipsEmptySteps(t *testing.T) {
	item := DomesticFromRecord(sheetstore.Record{"id": "DOM-3"})
	if len(item.Timeline) != 0 {
		t.Fatalf("expected no steps without dates, got %+v", item.Timeline)
	}
}

func TestDomesticRecordRoundTrip(t *testing.T) {
	item := InboundItem{
		ID:               "DOM-4",
		Date:             "01/08/2025",
		Supplier:         "Xưởng Bình Dương",
		Product:          "Balo du lịch",
		EstimatedArrival: "05/08/2025",
		Packaging: []PackagingLine{
			{Type: "Bao", Quantity: "10", Description: "hàng nhẹ"},
		},
	}

	back := DomesticFromRecord(item.ToDomesticRecord())
	if back.Supplier != item.Supplier || back.Product != item.Product {
		t.Fatalf("round trip: %+v", back)
	}
	if back.EstimatedArrival != "05/08/2025" || back.ActualArrival != "" {
		t.Fatalf("arrival columns: est=%q act=%q", back.EstimatedArrival, back.ActualArrival)
	}
	if len(back.Packaging) != 1 || back.Packaging[0].Quantity != "10" {
		t.Fatalf("packaging: %+v", back.Packaging)
	}
}
