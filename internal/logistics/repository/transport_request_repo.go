package repository

import (
	"context"
	"errors"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// TransportRequestRepository reads and writes the TransportRequests sheet.
type TransportRequestRepository struct {
	store *sheetstore.Store
}

func NewTransportRequestRepository(store *sheetstore.Store) *TransportRequestRepository {
	return &TransportRequestRepository{store: store}
}

func (r *TransportRequestRepository) FindAll(ctx context.Context) ([]entity.TransportRequest, error) {
	records, err := r.store.List(ctx, entity.TransportRequestsSchema)
	if err != nil {
		return nil, err
	}
	requests := make([]entity.TransportRequest, 0, len(records))
	for _, record := range records {
		requests = append(requests, entity.TransportRequestFromRecord(record))
	}
	return requests, nil
}

func (r *TransportRequestRepository) FindByID(ctx context.Context, id string) (*entity.TransportRequest, error) {
	record, err := r.store.Get(ctx, entity.TransportRequestsSchema, id)
	if err != nil {
		return nil, err
	}
	request := entity.TransportRequestFromRecord(record)
	return &request, nil
}

// GenerateID proposes the next sequential MSC id and immediately reserves a
// placeholder row carrying it, returning the id together with the reserved
// 1-based grid row.
func (r *TransportRequestRepository) GenerateID(ctx context.Context) (string, int, error) {
	id, err := r.store.GenerateID(ctx, entity.TransportRequestsSchema,
		entity.RequestIDPrefix, entity.RequestIDWidth)
	if err != nil {
		return "", 0, err
	}
	now := entity.Now()
	rowIndex, err := r.store.AppendPlaceholder(ctx, entity.TransportRequestsSchema, sheetstore.Record{
		"requestId": id,
		"createdAt": now,
		"updatedAt": now,
	})
	if err != nil {
		return "", 0, err
	}
	return id, rowIndex, nil
}

// Save writes the full request. If a row with the request id already exists
// (the reserved placeholder) it is updated in place, otherwise a new row is
// appended.
func (r *TransportRequestRepository) Save(ctx context.Context, request *entity.TransportRequest) error {
	record := request.ToRecord()
	_, err := r.store.Update(ctx, entity.TransportRequestsSchema, request.RequestID, record)
	if errors.Is(err, sheetstore.ErrNotFound) {
		return r.store.Append(ctx, entity.TransportRequestsSchema, record)
	}
	return err
}

func (r *TransportRequestRepository) Update(ctx context.Context, id string, partial sheetstore.Record) (*entity.TransportRequest, error) {
	partial["updatedAt"] = entity.Now()
	merged, err := r.store.Update(ctx, entity.TransportRequestsSchema, id, partial)
	if err != nil {
		return nil, err
	}
	request := entity.TransportRequestFromRecord(merged)
	return &request, nil
}

func (r *TransportRequestRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, entity.TransportRequestsSchema, id)
}
