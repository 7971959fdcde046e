package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/repository"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// LocationService serves the Locations sheet.
type LocationService struct {
	locations *repository.LocationRepository
}

func NewLocationService(locations *repository.LocationRepository) *LocationService {
	return &LocationService{locations: locations}
}

func (s *LocationService) List(ctx context.Context) ([]entity.Location, error) {
	locations, err := s.locations.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	// Rows without an id or status still list; defaults keep them usable.
	for i := range locations {
		if locations[i].ID == "" {
			locations[i].ID = fmt.Sprintf("LOC-%d", i+1)
		}
		if locations[i].Status == "" {
			locations[i].Status = "active"
		}
	}
	return locations, nil
}

func (s *LocationService) Get(ctx context.Context, id string) (*entity.Location, error) {
	return s.locations.FindByID(ctx, id)
}

func (s *LocationService) Create(ctx context.Context, location *entity.Location) (*entity.Location, error) {
	if strings.TrimSpace(location.Name) == "" {
		return nil, fmt.Errorf("location name is required")
	}
	if strings.TrimSpace(location.ID) == "" {
		location.ID = fmt.Sprintf("LOC-%d", time.Now().UnixMilli())
	}
	if location.Status == "" {
		location.Status = "active"
	}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *LocationService) Update(ctx context.Context, id string, partial sheetstore.Record) (*entity.Location, error) {
	return s.locations.Update(ctx, id, partial)
}

func (s *LocationService) Delete(ctx context.Context, id string) error {
	return s.locations.Delete(ctx, id)
}
