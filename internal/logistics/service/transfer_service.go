package service

import (
	"context"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/repository"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// TransferService serves the Transfers sheet, enriching rows with structured
// addresses from the Locations sheet.
type TransferService struct {
	transfers *repository.TransferRepository
	locations *repository.LocationRepository
}

func NewTransferService(transfers *repository.TransferRepository, locations *repository.LocationRepository) *TransferService {
	return &TransferService{transfers: transfers, locations: locations}
}

// List returns every transfer with normalized totals and, where dest_id
// matches an active location, the location's structured address filled in.
// A failing Locations read degrades to unenriched rows.
func (s *TransferService) List(ctx context.Context) ([]entity.Transfer, error) {
	transfers, err := s.transfers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	byID, err := s.locations.MapByID(ctx)
	if err != nil {
		return transfers, nil
	}
	for i := range transfers {
		enrichTransfer(&transfers[i], byID)
	}
	return transfers, nil
}

func (s *TransferService) Get(ctx context.Context, id string) (*entity.Transfer, error) {
	transfer, err := s.transfers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if byID, lerr := s.locations.MapByID(ctx); lerr == nil {
		enrichTransfer(transfer, byID)
	}
	return transfer, nil
}

// Update merges the given columns over the stored row and returns the
// re-enriched result.
func (s *TransferService) Update(ctx context.Context, id string, partial sheetstore.Record) (*entity.Transfer, error) {
	transfer, err := s.transfers.Update(ctx, id, partial)
	if err != nil {
		return nil, err
	}
	if byID, lerr := s.locations.MapByID(ctx); lerr == nil {
		enrichTransfer(transfer, byID)
	}
	return transfer, nil
}

func (s *TransferService) Delete(ctx context.Context, id string) error {
	return s.transfers.Delete(ctx, id)
}

// AdvanceStatus moves the transfer's transportStatus one step forward.
func (s *TransferService) AdvanceStatus(ctx context.Context, id string) (*entity.Transfer, error) {
	transfer, err := s.transfers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := entity.NextTransportStatus(transfer.TransportStatus)
	if next == transfer.TransportStatus {
		return transfer, nil
	}
	if err := s.transfers.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	transfer.TransportStatus = next
	return transfer, nil
}

func enrichTransfer(t *entity.Transfer, locations map[string]entity.Location) {
	loc, ok := locations[t.DestID]
	if !ok {
		return
	}
	t.Address = loc.Address
	t.Ward = loc.Ward
	t.District = loc.District
	t.Province = loc.Province
}
