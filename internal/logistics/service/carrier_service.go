package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/repository"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// CarrierService serves the Carriers sheet.
type CarrierService struct {
	carriers *repository.CarrierRepository
}

func NewCarrierService(carriers *repository.CarrierRepository) *CarrierService {
	return &CarrierService{carriers: carriers}
}

func (s *CarrierService) List(ctx context.Context) ([]entity.Carrier, error) {
	return s.carriers.FindAll(ctx)
}

// ListActive keeps only carriers flagged active, for the booking form.
func (s *CarrierService) ListActive(ctx context.Context) ([]entity.Carrier, error) {
	carriers, err := s.carriers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active := carriers[:0]
	for _, c := range carriers {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}

func (s *CarrierService) Get(ctx context.Context, id string) (*entity.Carrier, error) {
	return s.carriers.FindByID(ctx, id)
}

func (s *CarrierService) Create(ctx context.Context, carrier *entity.Carrier) (*entity.Carrier, error) {
	if strings.TrimSpace(carrier.Name) == "" {
		return nil, fmt.Errorf("carrier name is required")
	}
	if err := s.carriers.Create(ctx, carrier); err != nil {
		return nil, err
	}
	return carrier, nil
}

func (s *CarrierService) Update(ctx context.Context, id string, partial sheetstore.Record) (*entity.Carrier, error) {
	return s.carriers.Update(ctx, id, partial)
}

func (s *CarrierService) Delete(ctx context.Context, id string) error {
	return s.carriers.Delete(ctx, id)
}
