package service

import (
	"context"
	"testing"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/repository"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheets"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

func newTransferService(t *testing.T) (*TransferService, *repository.Repositories, *sheets.MemoryGrid) {
	t.Helper()
	grid := sheets.NewMemoryGrid()
	store := sheetstore.New(grid)
	repos := repository.NewRepositories(store)
	return NewTransferService(repos.Transfer, repos.Location), repos, grid
}

func TestTransferListEnrichesAddresses(t *testing.T) {
	svc, repos, _ := newTransferService(t)
	ctx := context.Background()

	err := repos.Location.Create(ctx, &entity.Location{
		ID:       "LOC-1",
		Name:     "Kho Quận 7",
		Address:  "102 Nguyễn Văn Linh",
		Ward:     "Phường Tân Phong",
		District: "Quận 7",
		Province: "TP.HCM",
		Status:   "active",
	})
	if err != nil {
		t.Fatalf("seed location: %v", err)
	}
	err = repos.Transfer.Create(ctx, &entity.Transfer{
		TransferID: "T-1",
		Dest:       "Kho Quận 7",
		DestID:     "LOC-1",
	})
	if err != nil {
		t.Fatalf("seed transfer: %v", err)
	}
	err = repos.Transfer.Create(ctx, &entity.Transfer{
		TransferID: "T-2",
		Dest:       "Kho lạ",
		DestID:     "LOC-404",
	})
	if err != nil {
		t.Fatalf("seed transfer: %v", err)
	}

	transfers, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(transfers) != 2 {
		t.Fatalf("expected 2 transfers, got %d", len(transfers))
	}
	if transfers[0].Address != "102 Nguyễn Văn Linh" || transfers[0].Province != "TP.HCM" {
		t.Fatalf("enriched transfer: %+v", transfers[0])
	}
	// Unknown dest_id stays unenriched and falls back to the raw destination.
	if transfers[1].Address != "" || transfers[1].DeliveryAddress() != "Kho lạ" {
		t.Fatalf("unenriched transfer: %+v", transfers[1])
	}
}

func TestTransferListSkipsInactiveLocations(t *testing.T) {
	svc, repos, _ := newTransferService(t)
	ctx := context.Background()

	err := repos.Location.Create(ctx, &entity.Location{
		ID:      "LOC-1",
		Name:    "Kho đóng cửa",
		Address: "1 Đường Cũ",
		Status:  "inactive",
	})
	if err != nil {
		t.Fatalf("seed location: %v", err)
	}
	err = repos.Transfer.Create(ctx, &entity.Transfer{
		TransferID: "T-1",
		DestID:     "LOC-1",
	})
	if err != nil {
		t.Fatalf("seed transfer: %v", err)
	}

	transfers, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if transfers[0].Address != "" {
		t.Fatalf("inactive location should not enrich: %+v", transfers[0])
	}
}

func TestTransferAdvanceStatus(t *testing.T) {
	svc, repos, _ := newTransferService(t)
	ctx := context.Background()

	err := repos.Transfer.Create(ctx, &entity.Transfer{
		TransferID:      "T-1",
		TransportStatus: entity.TransportStatusAwaitingPackages,
	})
	if err != nil {
		t.Fatalf("seed transfer: %v", err)
	}

	transfer, err := svc.AdvanceStatus(ctx, "T-1")
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if transfer.TransportStatus != entity.TransportStatusAwaitingHandover {
		t.Fatalf("status = %q", transfer.TransportStatus)
	}

	// Terminal status stays put.
	if _, err := repos.Transfer.Update(ctx, "T-1", sheetstore.Record{
		"transportStatus": entity.TransportStatusDelivered,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	transfer, err = svc.AdvanceStatus(ctx, "T-1")
	if err != nil {
		t.Fatalf("advance terminal: %v", err)
	}
	if transfer.TransportStatus != entity.TransportStatusDelivered {
		t.Fatalf("terminal status moved: %q", transfer.TransportStatus)
	}
}
