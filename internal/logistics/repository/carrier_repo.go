package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// CarrierRepository reads and writes the Carriers sheet.
type CarrierRepository struct {
	store *sheetstore.Store
}

func NewCarrierRepository(store *sheetstore.Store) *CarrierRepository {
	return &CarrierRepository{store: store}
}

func (r *CarrierRepository) FindAll(ctx context.Context) ([]entity.Carrier, error) {
	records, err := r.store.List(ctx, entity.CarriersSchema)
	if err != nil {
		return nil, err
	}
	carriers := make([]entity.Carrier, 0, len(records))
	for _, record := range records {
		carriers = append(carriers, entity.CarrierFromRecord(record))
	}
	return carriers, nil
}

func (r *CarrierRepository) FindByID(ctx context.Context, id string) (*entity.Carrier, error) {
	record, err := r.store.Get(ctx, entity.CarriersSchema, id)
	if err != nil {
		return nil, err
	}
	carrier := entity.CarrierFromRecord(record)
	return &carrier, nil
}

// Create appends a carrier, minting a CAR-<unix-ms> id when none was supplied.
func (r *CarrierRepository) Create(ctx context.Context, carrier *entity.Carrier) error {
	if strings.TrimSpace(carrier.CarrierID) == "" {
		carrier.CarrierID = fmt.Sprintf("CAR-%d", time.Now().UnixMilli())
	}
	now := entity.Now()
	if carrier.CreatedAt == "" {
		carrier.CreatedAt = now
	}
	carrier.UpdatedAt = now
	return r.store.Append(ctx, entity.CarriersSchema, carrier.ToRecord())
}

func (r *CarrierRepository) Update(ctx context.Context, id string, partial sheetstore.Record) (*entity.Carrier, error) {
	partial["updatedAt"] = entity.Now()
	merged, err := r.store.Update(ctx, entity.CarriersSchema, id, partial)
	if err != nil {
		return nil, err
	}
	carrier := entity.CarrierFromRecord(merged)
	return &carrier, nil
}

func (r *CarrierRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, entity.CarriersSchema, id)
}
