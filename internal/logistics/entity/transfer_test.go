package entity

import (
	"testing"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

func TestNextTransportStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{TransportStatusAwaitingPackages, TransportStatusAwaitingHandover},
		{TransportStatusAwaitingHandover, TransportStatusInTransit},
		{TransportStatusInTransit, TransportStatusDelivered},
		{TransportStatusDelivered, TransportStatusDelivered},
		{"gì đó khác", "gì đó khác"},
	}
	for _, tc := range cases {
		if got := NextTransportStatus(tc.in); got != tc.want {
			t.Errorf("NextTransportStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTransferNormalizeFillsTotals(t *testing.T) {
	tr := Transfer{PkgS: 2, PkgM: 3, PkgBagLarge: 1, VolS: 0.5, VolM: 1.25}
	tr.Normalize()
	if tr.TotalPackages != 6 {
		t.Fatalf("totalPackages = %v", tr.TotalPackages)
	}
	if tr.TotalVolume != 1.75 {
		t.Fatalf("totalVolume = %v", tr.TotalVolume)
	}

	// Explicit totals win over the per-size sums.
	tr = Transfer{PkgS: 2, TotalPackages: 9}
	tr.Normalize()
	if tr.TotalPackages != 9 {
		t.Fatalf("explicit total overwritten: %v", tr.TotalPackages)
	}
}

func TestTransferFromRecordCommaDecimals(t *testing.T) {
	tr := TransferFromRecord(sheetstore.Record{
		"transfer_id": "T-1",
		"totalVolume": "1,5",
		"pkgS":        "3",
	})
	if tr.TotalVolume != 1.5 {
		t.Fatalf("totalVolume = %v", tr.TotalVolume)
	}
	if tr.PkgS != 3 {
		t.Fatalf("pkgS = %v", tr.PkgS)
	}
}

func TestDeliveryAddress(t *testing.T) {
	tr := Transfer{
		Address:  "12 Lê Lợi",
		Ward:     "Phường Bến Nghé",
		District: "Quận 1",
		Province: "TP.HCM",
		Dest:     "Kho Q1",
	}
	want := "12 Lê Lợi Phường Bến Nghé Quận 1 TP.HCM"
	if got := tr.DeliveryAddress(); got != want {
		t.Fatalf("DeliveryAddress() = %q, want %q", got, want)
	}

	// Falls back to the raw destination when the structured fields are blank.
	tr = Transfer{Dest: "Kho Q1"}
	if got := tr.DeliveryAddress(); got != "Kho Q1" {
		t.Fatalf("fallback = %q", got)
	}

	// Gaps between partial fields collapse to single spaces.
	tr = Transfer{Address: "12 Lê Lợi", Province: "TP.HCM"}
	if got := tr.DeliveryAddress(); got != "12 Lê Lợi TP.HCM" {
		t.Fatalf("collapsed = %q", got)
	}
}
