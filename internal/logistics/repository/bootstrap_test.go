package repository

import (
	"context"
	"testing"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheets"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

func TestInitializeSeedsCarriersOnce(t *testing.T) {
	store := sheetstore.New(sheets.NewMemoryGrid())
	repos := NewRepositories(store)
	ctx := context.Background()

	if err := repos.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	carriers, err := repos.Carrier.FindAll(ctx)
	if err != nil {
		t.Fatalf("find carriers: %v", err)
	}
	if len(carriers) != 2 {
		t.Fatalf("expected 2 seeded carriers, got %d", len(carriers))
	}
	if carriers[0].CarrierID != "CAR001" || !carriers[0].IsActive {
		t.Fatalf("first seed: %+v", carriers[0])
	}

	// A second run does not duplicate the seed rows.
	if err := repos.Initialize(ctx); err != nil {
		t.Fatalf("re-initialize: %v", err)
	}
	carriers, err = repos.Carrier.FindAll(ctx)
	if err != nil {
		t.Fatalf("find carriers: %v", err)
	}
	if len(carriers) != 2 {
		t.Fatalf("seed duplicated: %d carriers", len(carriers))
	}
}

func TestInitializeSkipsSeededSheet(t *testing.T) {
	store := sheetstore.New(sheets.NewMemoryGrid())
	repos := NewRepositories(store)
	ctx := context.Background()

	existing := &entity.Carrier{CarrierID: "CAR-900", Name: "Đã có sẵn"}
	if err := repos.Carrier.Create(ctx, existing); err != nil {
		t.Fatalf("seed carrier: %v", err)
	}

	if err := repos.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	carriers, err := repos.Carrier.FindAll(ctx)
	if err != nil {
		t.Fatalf("find carriers: %v", err)
	}
	if len(carriers) != 1 || carriers[0].CarrierID != "CAR-900" {
		t.Fatalf("sample rows added to a non-empty sheet: %+v", carriers)
	}
}
