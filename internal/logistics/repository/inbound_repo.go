package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// InboundRepository reads and writes both inbound sheets. International rows
// carry the full slot-column timeline; domestic rows only the arrival pair.
type InboundRepository struct {
	store *sheetstore.Store
}

func NewInboundRepository(store *sheetstore.Store) *InboundRepository {
	return &InboundRepository{store: store}
}

func (r *InboundRepository) FindInternational(ctx context.Context) ([]entity.InboundItem, error) {
	records, err := r.store.List(ctx, entity.InboundInternationalSchema)
	if err != nil {
		return nil, err
	}
	items := make([]entity.InboundItem, 0, len(records))
	for _, record := range records {
		items = append(items, entity.InternationalFromRecord(record))
	}
	return items, nil
}

func (r *InboundRepository) FindInternationalByID(ctx context.Context, id string) (*entity.InboundItem, error) {
	record, err := r.store.Get(ctx, entity.InboundInternationalSchema, id)
	if err != nil {
		return nil, err
	}
	item := entity.InternationalFromRecord(record)
	return &item, nil
}

// CreateInternational appends a shipment, minting an INTL-<unix-ms> id when
// none was supplied.
func (r *InboundRepository) CreateInternational(ctx context.Context, item *entity.InboundItem) error {
	stampInbound(item, "INTL")
	return r.store.Append(ctx, entity.InboundInternationalSchema, item.ToInternationalRecord())
}

// SaveInternational writes the full flattened row back in place, clearing slot
// columns for steps the caller removed.
func (r *InboundRepository) SaveInternational(ctx context.Context, item *entity.InboundItem) (*entity.InboundItem, error) {
	item.UpdatedAt = entity.Now()
	merged, err := r.store.Update(ctx, entity.InboundInternationalSchema, item.ID, item.ToInternationalRecord())
	if err != nil {
		return nil, err
	}
	updated := entity.InternationalFromRecord(merged)
	return &updated, nil
}

func (r *InboundRepository) DeleteInternational(ctx context.Context, id string) error {
	return r.store.Delete(ctx, entity.InboundInternationalSchema, id)
}

func (r *InboundRepository) FindDomestic(ctx context.Context) ([]entity.InboundItem, error) {
	records, err := r.store.List(ctx, entity.InboundDomesticSchema)
	if err != nil {
		return nil, err
	}
	items := make([]entity.InboundItem, 0, len(records))
	for _, record := range records {
		items = append(items, entity.DomesticFromRecord(record))
	}
	return items, nil
}

func (r *InboundRepository) FindDomesticByID(ctx context.Context, id string) (*entity.InboundItem, error) {
	record, err := r.store.Get(ctx, entity.InboundDomesticSchema, id)
	if err != nil {
		return nil, err
	}
	item := entity.DomesticFromRecord(record)
	return &item, nil
}

func (r *InboundRepository) CreateDomestic(ctx context.Context, item *entity.InboundItem) error {
	stampInbound(item, "DOM")
	return r.store.Append(ctx, entity.InboundDomesticSchema, item.ToDomesticRecord())
}

func (r *InboundRepository) UpdateDomestic(ctx context.Context, id string, partial sheetstore.Record) (*entity.InboundItem, error) {
	partial["updatedAt"] = entity.Now()
	merged, err := r.store.Update(ctx, entity.InboundDomesticSchema, id, partial)
	if err != nil {
		return nil, err
	}
	item := entity.DomesticFromRecord(merged)
	return &item, nil
}

func (r *InboundRepository) DeleteDomestic(ctx context.Context, id string) error {
	return r.store.Delete(ctx, entity.InboundDomesticSchema, id)
}

func stampInbound(item *entity.InboundItem, prefix string) {
	if item.ID == "" {
		item.ID = fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
	}
	now := entity.Now()
	if item.CreatedAt == "" {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
}
