package repository

import (
	"context"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// TransferRepository reads and writes the Transfers sheet.
type TransferRepository struct {
	store *sheetstore.Store
}

func NewTransferRepository(store *sheetstore.Store) *TransferRepository {
	return &TransferRepository{store: store}
}

// FindAll returns every transfer ticket, normalized so the volume and package
// totals are consistent with the per-size columns.
func (r *TransferRepository) FindAll(ctx context.Context) ([]entity.Transfer, error) {
	records, err := r.store.List(ctx, entity.TransfersSchema)
	if err != nil {
		return nil, err
	}
	transfers := make([]entity.Transfer, 0, len(records))
	for _, record := range records {
		transfers = append(transfers, entity.TransferFromRecord(record))
	}
	return transfers, nil
}

// FindByID looks up one transfer by its ticket id.
func (r *TransferRepository) FindByID(ctx context.Context, id string) (*entity.Transfer, error) {
	record, err := r.store.Get(ctx, entity.TransfersSchema, id)
	if err != nil {
		return nil, err
	}
	transfer := entity.TransferFromRecord(record)
	return &transfer, nil
}

// Create appends a new transfer row.
func (r *TransferRepository) Create(ctx context.Context, transfer *entity.Transfer) error {
	return r.store.Append(ctx, entity.TransfersSchema, transfer.ToRecord())
}

// Update merges the given columns onto the stored row and returns the result.
func (r *TransferRepository) Update(ctx context.Context, id string, partial sheetstore.Record) (*entity.Transfer, error) {
	merged, err := r.store.Update(ctx, entity.TransfersSchema, id, partial)
	if err != nil {
		return nil, err
	}
	transfer := entity.TransferFromRecord(merged)
	return &transfer, nil
}

// UpdateStatus sets only the transport status column.
func (r *TransferRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.store.Update(ctx, entity.TransfersSchema, id, sheetstore.Record{
		"transportStatus": status,
	})
	return err
}

// Delete clears the transfer's row.
func (r *TransferRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, entity.TransfersSchema, id)
}
