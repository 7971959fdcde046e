package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/repository"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/shared/maps"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
	"go.uber.org/zap"
)

var (
	// ErrEmptySelection rejects a booking with no transfers selected.
	ErrEmptySelection = errors.New("no transfers selected")
	// ErrValidation rejects a booking form before any I/O happens.
	ErrValidation = errors.New("validation failed")
)

// TransportService consolidates pending transfers into multi-stop carrier
// dispatch requests.
type TransportService struct {
	requests  *repository.TransportRequestRepository
	transfers *repository.TransferRepository
	carriers  *repository.CarrierRepository
	distance  *maps.DistanceClient
	logger    *zap.Logger
}

func NewTransportService(
	requests *repository.TransportRequestRepository,
	transfers *repository.TransferRepository,
	carriers *repository.CarrierRepository,
	distance *maps.DistanceClient,
	logger *zap.Logger,
) *TransportService {
	return &TransportService{
		requests:  requests,
		transfers: transfers,
		carriers:  carriers,
		distance:  distance,
		logger:    logger,
	}
}

func (s *TransportService) List(ctx context.Context) ([]entity.TransportRequest, error) {
	return s.requests.FindAll(ctx)
}

func (s *TransportService) Get(ctx context.Context, id string) (*entity.TransportRequest, error) {
	return s.requests.FindByID(ctx, id)
}

// Update merges the given columns over the stored request row. Typically
// called with the full payload against the placeholder row reserved by
// GenerateRequestID.
func (s *TransportService) Update(ctx context.Context, id string, partial sheetstore.Record) (*entity.TransportRequest, error) {
	if partial["createdAt"] == "" {
		delete(partial, "createdAt")
	}
	return s.requests.Update(ctx, id, partial)
}

func (s *TransportService) Delete(ctx context.Context, id string) error {
	return s.requests.Delete(ctx, id)
}

// Selection is the outcome of picking transfers for one dispatch. At most
// MaxStops transfers are usable; Truncated flags that more were supplied.
type Selection struct {
	Transfers []entity.Transfer `json:"transfers"`
	Truncated bool              `json:"truncated"`
}

// BookingForm is the pre-filled order form derived from a selection. The
// operator supplies carrier and vehicle before submitting.
type BookingForm struct {
	PickupAddress string  `json:"pickupAddress"`
	Note          string  `json:"note"`
	TotalPackages float64 `json:"totalPackages"`
	TotalVolume   float64 `json:"totalVolume"`
	TotalProducts float64 `json:"totalProducts"`

	CarrierID   string `json:"carrierId"`
	CarrierName string `json:"carrierName"`
	VehicleType string `json:"vehicleType"`

	Transfers []entity.Transfer `json:"transfers"`
}

// SubmitResult reports a finished submission. The request itself is the
// durable artifact; status sync failures are counted, never rolled back.
type SubmitResult struct {
	RequestID           string                   `json:"requestId"`
	RowIndex            int                      `json:"rowIndex"`
	Request             *entity.TransportRequest `json:"request"`
	DistanceErrors      map[string]string        `json:"distanceErrors,omitempty"`
	FailedStatusUpdates int                      `json:"failedStatusUpdates"`
}

// SelectTransfers resolves the given transfer ids against the sheet, keeping
// input order. Unknown ids are skipped; selecting more than MaxStops keeps
// the first MaxStops and flags the selection as truncated.
func (s *TransportService) SelectTransfers(ctx context.Context, ids []string) (*Selection, error) {
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	all, err := s.transfers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.Transfer, len(all))
	for _, t := range all {
		byID[t.TransferID] = t
	}

	selection := &Selection{}
	for _, id := range ids {
		t, ok := byID[strings.TrimSpace(id)]
		if !ok {
			continue
		}
		if len(selection.Transfers) == entity.MaxStops {
			selection.Truncated = true
			break
		}
		selection.Transfers = append(selection.Transfers, t)
	}
	if len(selection.Transfers) == 0 {
		return nil, ErrEmptySelection
	}
	return selection, nil
}

// BuildForm pre-fills the order form: pickup is the first transfer's source
// warehouse, totals sum over the selection, and the note digests the order
// codes.
func (s *TransportService) BuildForm(selection *Selection) *BookingForm {
	form := &BookingForm{
		Transfers: selection.Transfers,
	}
	if len(selection.Transfers) > 0 {
		form.PickupAddress = selection.Transfers[0].Source
	}

	var codes []string
	for _, t := range selection.Transfers {
		form.TotalPackages += t.TotalPackages
		form.TotalVolume += t.TotalVolume
		form.TotalProducts += t.Quantity
		if t.OrderCode != "" {
			codes = append(codes, t.OrderCode)
		}
	}

	joined := strings.Join(codes, ", ")
	if len(selection.Transfers) == 1 {
		form.Note = fmt.Sprintf("Đặt xe cho phiếu: %s", joined)
	} else {
		form.Note = fmt.Sprintf("Đặt xe cho %d phiếu: %s", len(selection.Transfers), joined)
	}
	return form
}

// StopAddress is one distance-lookup input.
type StopAddress struct {
	Key     string `json:"key"`
	Address string `json:"address"`
}

// CalculateDistances resolves the road distance from pickup to each stop.
// Failures never abort the batch: a failing stop gets distance 0 and an entry
// in the errors map. Empty input yields empty maps.
func (s *TransportService) CalculateDistances(ctx context.Context, pickupAddress string, stops []StopAddress) (map[string]float64, map[string]string) {
	distances := make(map[string]float64, len(stops))
	lookupErrors := make(map[string]string)
	if strings.TrimSpace(pickupAddress) == "" || len(stops) == 0 {
		return distances, lookupErrors
	}

	for _, stop := range stops {
		key := strings.TrimSpace(stop.Key)
		address := strings.TrimSpace(stop.Address)
		if key == "" {
			continue
		}
		if address == "" {
			distances[key] = 0
			lookupErrors[key] = "invalid stop address"
			continue
		}
		km, err := s.distance.Distance(ctx, pickupAddress, address)
		if err != nil {
			s.logger.Warn("distance lookup failed",
				zap.String("stop", key),
				zap.String("destination", address),
				zap.Error(err))
			distances[key] = 0
			lookupErrors[key] = err.Error()
			continue
		}
		distances[key] = km
	}
	return distances, lookupErrors
}

// GenerateRequestID proposes the next MSC id and reserves its row.
func (s *TransportService) GenerateRequestID(ctx context.Context) (string, int, error) {
	return s.requests.GenerateID(ctx)
}

// Submit turns a booking form into one persisted transport request, then
// flips each contributing transfer to "Đang chuyển giao". The request is
// created even when distance lookups or status flips partially fail.
func (s *TransportService) Submit(ctx context.Context, form *BookingForm) (*SubmitResult, error) {
	if strings.TrimSpace(form.CarrierName) == "" || strings.TrimSpace(form.VehicleType) == "" {
		return nil, fmt.Errorf("%w: carrier and vehicle type are required", ErrValidation)
	}
	if len(form.Transfers) == 0 {
		return nil, ErrEmptySelection
	}

	requestID, rowIndex, err := s.requests.GenerateID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate request id: %w", err)
	}

	transfers := form.Transfers
	if len(transfers) > entity.MaxStops {
		transfers = transfers[:entity.MaxStops]
	}

	stopAddresses := make([]StopAddress, 0, len(transfers))
	for i, t := range transfers {
		stopAddresses = append(stopAddresses, StopAddress{
			Key:     fmt.Sprintf("stop%d", i+1),
			Address: t.DeliveryAddress(),
		})
	}
	distances, distanceErrors := s.CalculateDistances(ctx, form.PickupAddress, stopAddresses)

	request := s.buildRequest(requestID, form, transfers, distances)
	s.applyCarrier(ctx, request)
	if err := s.requests.Save(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to save transport request: %w", err)
	}

	failed := 0
	for _, t := range transfers {
		if err := s.transfers.UpdateStatus(ctx, t.TransferID, entity.TransportStatusInTransit); err != nil {
			s.logger.Warn("failed to update transfer status",
				zap.String("transfer", t.TransferID),
				zap.String("request", requestID),
				zap.Error(err))
			failed++
		}
	}

	return &SubmitResult{
		RequestID:           requestID,
		RowIndex:            rowIndex,
		Request:             request,
		DistanceErrors:      distanceErrors,
		FailedStatusUpdates: failed,
	}, nil
}

func (s *TransportService) buildRequest(requestID string, form *BookingForm, transfers []entity.Transfer, distances map[string]float64) *entity.TransportRequest {
	now := entity.Now()
	request := &entity.TransportRequest{
		RequestID:     requestID,
		CreatedAt:     now,
		UpdatedAt:     now,
		PickupAddress: form.PickupAddress,
		Status:        entity.RequestStatusAwaitingConfirm,
		Note:          form.Note,
		PricingMethod: "perTrip",
		CarrierID:     form.CarrierID,
		CarrierName:   form.CarrierName,
		VehicleType:   form.VehicleType,
		TotalPackages: form.TotalPackages,
		TotalVolumeM3: form.TotalVolume,
		TotalProducts: form.TotalProducts,
	}

	for i, t := range transfers {
		km := distances[fmt.Sprintf("stop%d", i+1)]
		stop := entity.Stop{
			Address:     t.DeliveryAddress(),
			MN:          t.DestID,
			Products:    fmt.Sprintf("%s - %.0f kiện", t.OrderCode, t.TotalPackages),
			VolumeM3:    t.TotalVolume,
			Packages:    t.TotalPackages,
			DistanceKm:  km,
			OrderCount:  1,
			TransferIDs: []string{t.TransferID},
		}
		request.Stops = append(request.Stops, stop)
		request.TotalDistance += km
		request.TotalOrderCount += stop.OrderCount
	}
	return request
}

// applyCarrier copies contact and rate columns from the Carriers sheet onto
// the request. Best-effort; an unknown or unreadable carrier leaves the
// operator-entered name as is.
func (s *TransportService) applyCarrier(ctx context.Context, request *entity.TransportRequest) {
	if request.CarrierID == "" {
		return
	}
	carrier, err := s.carriers.FindByID(ctx, request.CarrierID)
	if err != nil {
		s.logger.Warn("failed to load carrier for request",
			zap.String("carrier", request.CarrierID),
			zap.String("request", request.RequestID),
			zap.Error(err))
		return
	}
	request.CarrierName = carrier.Name
	request.CarrierContact = carrier.ContactPerson
	request.CarrierPhone = carrier.Phone
	request.CarrierEmail = carrier.Email
	request.PricePerKm = carrier.PerKmRate
	request.PricePerM3 = carrier.PerM3Rate
	request.PricePerTrip = carrier.PerTripRate
	request.FuelSurcharge = carrier.FuelSurcharge
	request.BaseRate = carrier.BaseRate
}
