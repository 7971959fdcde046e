package entity

import "testing"

func TestTransportRequestRoundTrip(t *testing.T) {
	tr := TransportRequest{
		RequestID:     "MSC-00000003",
		PickupAddress: "Kho Tân Bình",
		Status:        RequestStatusAwaitingConfirm,
		PricingMethod: "perTrip",
		Stops: []Stop{
			{
				Address:     "12 Lê Lợi Quận 1 TP.HCM",
				MN:          "LOC-1",
				Products:    "SO-01 - 5 kiện",
				VolumeM3:    1.2,
				Packages:    5,
				DistanceKm:  7.5,
				OrderCount:  1,
				TransferIDs: []string{"T-1", "T-9"},
			},
			{
				Address:    "Kho Biên Hòa",
				Products:   "SO-02 - 3 kiện",
				Packages:   3,
				OrderCount: 1,
			},
		},
		TotalPackages:   8,
		TotalDistance:   7.5,
		TotalOrderCount: 2,
	}

	record := tr.ToRecord()
	if record["stop1TransferIds"] != "T-1,T-9" {
		t.Fatalf("stop1TransferIds = %q", record["stop1TransferIds"])
	}
	// Unused slots are written as empty cells.
	if v, ok := record["stop3Address"]; !ok || v != "" {
		t.Fatalf("stop3Address = %q (present=%v)", v, ok)
	}

	back := TransportRequestFromRecord(record)
	if len(back.Stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(back.Stops))
	}
	if back.Stops[0].DistanceKm != 7.5 || back.Stops[0].Packages != 5 {
		t.Fatalf("stop1: %+v", back.Stops[0])
	}
	if len(back.Stops[0].TransferIDs) != 2 || back.Stops[0].TransferIDs[1] != "T-9" {
		t.Fatalf("transfer ids: %v", back.Stops[0].TransferIDs)
	}
	if back.TotalOrderCount != 2 || back.TotalPackages != 8 {
		t.Fatalf("totals: %+v", back)
	}
}

func TestTransportRequestShrinkClearsSlots(t *testing.T) {
	tr := TransportRequest{
		RequestID: "MSC-00000004",
		Stops: []Stop{
			{Address: "A", Packages: 1},
			{Address: "B", Packages: 2},
		},
	}
	wide := tr.ToRecord()
	if wide["stop2Address"] != "B" {
		t.Fatalf("stop2Address = %q", wide["stop2Address"])
	}

	tr.Stops = tr.Stops[:1]
	narrow := tr.ToRecord()
	if narrow["stop2Address"] != "" || narrow["stop2Packages"] != "0" {
		t.Fatalf("stop2 not cleared: address=%q packages=%q",
			narrow["stop2Address"], narrow["stop2Packages"])
	}

	back := TransportRequestFromRecord(narrow)
	if len(back.Stops) != 1 {
		t.Fatalf("expected 1 stop after shrink, got %d", len(back.Stops))
	}
}
