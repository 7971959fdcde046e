package repository

import (
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// Repositories bundles the per-sheet repositories over one backing store.
type Repositories struct {
	Transfer         *TransferRepository
	Carrier          *CarrierRepository
	Location         *LocationRepository
	TransportRequest *TransportRequestRepository
	Inbound          *InboundRepository
}

func NewRepositories(store *sheetstore.Store) *Repositories {
	return &Repositories{
		Transfer:         NewTransferRepository(store),
		Carrier:          NewCarrierRepository(store),
		Location:         NewLocationRepository(store),
		TransportRequest: NewTransportRequestRepository(store),
		Inbound:          NewInboundRepository(store),
	}
}
