package sheetstore

import (
	"context"
	"errors"
	"testing"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheets"
)

var testSchema = Schema{
	Sheet:     "Widgets",
	Columns:   []string{"id", "name", "qty", "note"},
	KeyColumn: "id",
}

func setupStore(t *testing.T) (*Store, *sheets.MemoryGrid) {
	t.Helper()
	grid := sheets.NewMemoryGrid()
	return New(grid), grid
}

func TestAppendAndGetRoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	in := Record{"id": "W-1", "name": "pallet", "qty": "12"}
	if err := store.Append(ctx, testSchema, in); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := store.Get(ctx, testSchema, "W-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got["name"] != "pallet" || got["qty"] != "12" {
		t.Fatalf("unexpected record: %v", got)
	}
	// Columns absent from the input come back empty, not missing.
	if _, ok := got["note"]; !ok {
		t.Fatalf("expected empty note column, record: %v", got)
	}
}

func TestListEmptySheet(t *testing.T) {
	store, _ := setupStore(t)

	records, err := store.List(context.Background(), testSchema)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestListSkipsBlankRows(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	if err := store.Append(ctx, testSchema, Record{"id": "W-1", "name": "a"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(ctx, testSchema, Record{"id": "W-2", "name": "b"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Delete(ctx, testSchema, "W-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	records, err := store.List(ctx, testSchema)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 || records[0]["id"] != "W-2" {
		t.Fatalf("expected only W-2, got %v", records)
	}
}

func TestUpdateMergesPartial(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	if err := store.Append(ctx, testSchema, Record{"id": "W-1", "name": "pallet", "qty": "12"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	merged, err := store.Update(ctx, testSchema, "W-1", Record{"qty": "20"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if merged["qty"] != "20" {
		t.Fatalf("qty not updated: %v", merged)
	}
	if merged["name"] != "pallet" {
		t.Fatalf("untouched column lost: %v", merged)
	}

	got, err := store.Get(ctx, testSchema, "W-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got["name"] != "pallet" || got["qty"] != "20" {
		t.Fatalf("stored row diverges from merge result: %v", got)
	}
}

func TestUpdateNotFound(t *testing.T) {
	store, _ := setupStore(t)

	_, err := store.Update(context.Background(), testSchema, "W-404", Record{"qty": "1"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteClearsWithoutShifting(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	for _, id := range []string{"W-1", "W-2", "W-3"} {
		if err := store.Append(ctx, testSchema, Record{"id": id}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}
	if err := store.Delete(ctx, testSchema, "W-2"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// W-3 stays on its original grid row; the cleared row is not compacted.
	rowIndex, err := store.FindRowIndex(ctx, testSchema, "W-3")
	if err != nil {
		t.Fatalf("find row: %v", err)
	}
	if rowIndex != 4 {
		t.Fatalf("expected W-3 on row 4, got %d", rowIndex)
	}

	if _, err := store.Get(ctx, testSchema, "W-2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected W-2 gone, got %v", err)
	}
}

func TestGenerateIDSequence(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	id, err := store.GenerateID(ctx, testSchema, "MSC", 8)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if id != "MSC-00000001" {
		t.Fatalf("expected first id MSC-00000001, got %s", id)
	}

	if err := store.Append(ctx, testSchema, Record{"id": id}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(ctx, testSchema, Record{"id": "MSC-00000007"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	// Foreign and malformed ids in the key column are skipped.
	if err := store.Append(ctx, testSchema, Record{"id": "CAR-99"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(ctx, testSchema, Record{"id": "MSC-abc"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	id, err = store.GenerateID(ctx, testSchema, "MSC", 8)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if id != "MSC-00000008" {
		t.Fatalf("expected MSC-00000008 after max 7, got %s", id)
	}
}

func TestAppendPlaceholderRowIndex(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	if err := store.Append(ctx, testSchema, Record{"id": "W-1"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	rowIndex, err := store.AppendPlaceholder(ctx, testSchema, Record{"id": "W-2"})
	if err != nil {
		t.Fatalf("placeholder: %v", err)
	}
	if rowIndex != 3 {
		t.Fatalf("expected placeholder on row 3, got %d", rowIndex)
	}

	found, err := store.FindRowIndex(ctx, testSchema, "W-2")
	if err != nil {
		t.Fatalf("find row: %v", err)
	}
	if found != rowIndex {
		t.Fatalf("reported row %d, stored row %d", rowIndex, found)
	}
}

func TestAppendReusesClearedTrailingRows(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	for _, id := range []string{"W-1", "W-2"} {
		if err := store.Append(ctx, testSchema, Record{"id": id}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}
	// Clearing the last data row shrinks the table, so the next append lands
	// on the freed row and the reported index matches the stored row.
	if err := store.Delete(ctx, testSchema, "W-2"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rowIndex, err := store.AppendPlaceholder(ctx, testSchema, Record{"id": "W-3"})
	if err != nil {
		t.Fatalf("placeholder: %v", err)
	}
	if rowIndex != 3 {
		t.Fatalf("expected placeholder on row 3, got %d", rowIndex)
	}

	found, err := store.FindRowIndex(ctx, testSchema, "W-3")
	if err != nil {
		t.Fatalf("find row: %v", err)
	}
	if found != rowIndex {
		t.Fatalf("reported row %d, stored row %d", rowIndex, found)
	}
}

func TestListPropagatesGridFailure(t *testing.T) {
	store, grid := setupStore(t)
	ctx := context.Background()

	if err := store.Append(ctx, testSchema, Record{"id": "W-1"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	grid.FailNext = errors.New("backend down")
	if _, err := store.List(ctx, testSchema); err == nil {
		t.Fatal("expected error from failing grid")
	}
}
