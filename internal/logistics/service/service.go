package service

import (
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/repository"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/shared/maps"
	"go.uber.org/zap"
)

// Services bundles the logistics services.
type Services struct {
	Transfer  *TransferService
	Carrier   *CarrierService
	Location  *LocationService
	Inbound   *InboundService
	Transport *TransportService
}

func NewServices(repos *repository.Repositories, distance *maps.DistanceClient, logger *zap.Logger) *Services {
	return &Services{
		Transfer:  NewTransferService(repos.Transfer, repos.Location),
		Carrier:   NewCarrierService(repos.Carrier),
		Location:  NewLocationService(repos.Location),
		Inbound:   NewInboundService(repos.Inbound),
		Transport: NewTransportService(repos.TransportRequest, repos.Transfer, repos.Carrier, distance, logger),
	}
}
