package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/repository"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// InboundService serves both inbound sheets through one surface.
type InboundService struct {
	inbound *repository.InboundRepository
}

func NewInboundService(inbound *repository.InboundRepository) *InboundService {
	return &InboundService{inbound: inbound}
}

func (s *InboundService) ListInternational(ctx context.Context) ([]entity.InboundItem, error) {
	return s.inbound.FindInternational(ctx)
}

func (s *InboundService) GetInternational(ctx context.Context, id string) (*entity.InboundItem, error) {
	return s.inbound.FindInternationalByID(ctx, id)
}

func (s *InboundService) CreateInternational(ctx context.Context, item *entity.InboundItem) (*entity.InboundItem, error) {
	if err := validateInbound(item); err != nil {
		return nil, err
	}
	if err := s.inbound.CreateInternational(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateInternational replaces the whole flattened row with the given item.
// Timeline and document steps the caller dropped get their slot columns
// cleared rather than merged around.
func (s *InboundService) UpdateInternational(ctx context.Context, id string, item *entity.InboundItem) (*entity.InboundItem, error) {
	item.ID = id
	return s.inbound.SaveInternational(ctx, item)
}

// AddStepDescription appends a note to one timeline or document step of an
// international shipment and persists the updated history.
func (s *InboundService) AddStepDescription(ctx context.Context, id, stepID, author, content string) (*entity.InboundItem, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("description content is required")
	}
	item, err := s.inbound.FindInternationalByID(ctx, id)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range item.Timeline {
		if item.Timeline[i].ID == stepID {
			item.Timeline[i].Descriptions = entity.AppendDescription(item.Timeline[i].Descriptions, author, content)
			found = true
		}
	}
	for i := range item.DocumentSteps {
		if item.DocumentSteps[i].ID == stepID {
			item.DocumentSteps[i].Descriptions = entity.AppendDescription(item.DocumentSteps[i].Descriptions, author, content)
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("unknown step %q", stepID)
	}
	return s.inbound.SaveInternational(ctx, item)
}

func (s *InboundService) DeleteInternational(ctx context.Context, id string) error {
	return s.inbound.DeleteInternational(ctx, id)
}

func (s *InboundService) ListDomestic(ctx context.Context) ([]entity.InboundItem, error) {
	return s.inbound.FindDomestic(ctx)
}

func (s *InboundService) GetDomestic(ctx context.Context, id string) (*entity.InboundItem, error) {
	return s.inbound.FindDomesticByID(ctx, id)
}

func (s *InboundService) CreateDomestic(ctx context.Context, item *entity.InboundItem) (*entity.InboundItem, error) {
	if err := validateInbound(item); err != nil {
		return nil, err
	}
	if err := s.inbound.CreateDomestic(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InboundService) UpdateDomestic(ctx context.Context, id string, partial sheetstore.Record) (*entity.InboundItem, error) {
	return s.inbound.UpdateDomestic(ctx, id, partial)
}

func (s *InboundService) DeleteDomestic(ctx context.Context, id string) error {
	return s.inbound.DeleteDomestic(ctx, id)
}

func validateInbound(item *entity.InboundItem) error {
	if strings.TrimSpace(item.Supplier) == "" {
		return fmt.Errorf("supplier is required")
	}
	if strings.TrimSpace(item.Product) == "" {
		return fmt.Errorf("product is required")
	}
	return nil
}
