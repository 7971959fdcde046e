package repository

import (
	"context"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// LocationRepository reads and writes the Locations sheet.
type LocationRepository struct {
	store *sheetstore.Store
}

func NewLocationRepository(store *sheetstore.Store) *LocationRepository {
	return &LocationRepository{store: store}
}

func (r *LocationRepository) FindAll(ctx context.Context) ([]entity.Location, error) {
	records, err := r.store.List(ctx, entity.LocationsSchema)
	if err != nil {
		return nil, err
	}
	locations := make([]entity.Location, 0, len(records))
	for _, record := range records {
		locations = append(locations, entity.LocationFromRecord(record))
	}
	return locations, nil
}

// FindActive keeps only locations whose status reads as active.
func (r *LocationRepository) FindActive(ctx context.Context) ([]entity.Location, error) {
	locations, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active := locations[:0]
	for _, loc := range locations {
		if loc.IsActive() {
			active = append(active, loc)
		}
	}
	return active, nil
}

// MapByID indexes active locations by id for address enrichment.
func (r *LocationRepository) MapByID(ctx context.Context) (map[string]entity.Location, error) {
	locations, err := r.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.Location, len(locations))
	for _, loc := range locations {
		byID[loc.ID] = loc
	}
	return byID, nil
}

func (r *LocationRepository) FindByID(ctx context.Context, id string) (*entity.Location, error) {
	record, err := r.store.Get(ctx, entity.LocationsSchema, id)
	if err != nil {
		return nil, err
	}
	location := entity.LocationFromRecord(record)
	return &location, nil
}

func (r *LocationRepository) Create(ctx context.Context, location *entity.Location) error {
	return r.store.Append(ctx, entity.LocationsSchema, location.ToRecord())
}

func (r *LocationRepository) Update(ctx context.Context, id string, partial sheetstore.Record) (*entity.Location, error) {
	merged, err := r.store.Update(ctx, entity.LocationsSchema, id, partial)
	if err != nil {
		return nil, err
	}
	location := entity.LocationFromRecord(merged)
	return &location, nil
}

func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, entity.LocationsSchema, id)
}
