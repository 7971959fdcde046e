package repository

import (
	"context"
	"fmt"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
)

// sampleCarriers populate a freshly created Carriers sheet so the booking
// form has vendors to offer before any are entered by hand.
var sampleCarriers = []entity.Carrier{
	{
		CarrierID:      "CAR001",
		Name:           "Giao Hàng Nhanh Express",
		ContactPerson:  "Nguyễn Văn A",
		Email:          "contact@ghnexpress.com",
		Phone:          "0901234567",
		Address:        "Hà Nội",
		ServiceAreas:   "Toàn quốc",
		PricingMethod:  "PER_KM",
		BaseRate:       50000,
		PerKmRate:      5000,
		FuelSurcharge:  0.1,
		RemoteAreaFee:  20000,
		InsuranceRate:  0.005,
		VehicleTypes:   "Van,Truck",
		MaxWeight:      1000,
		MaxVolume:      10,
		OperatingHours: "06:00-22:00",
		Rating:         4.5,
		IsActive:       true,
	},
	{
		CarrierID:      "CAR002",
		Name:           "Viettel Post",
		ContactPerson:  "Trần Thị B",
		Email:          "business@viettelpost.vn",
		Phone:          "0987654321",
		Address:        "TP.HCM",
		ServiceAreas:   "Miền Nam",
		PricingMethod:  "PER_M3",
		BaseRate:       30000,
		PerM3Rate:      80000,
		FuelSurcharge:  0.08,
		RemoteAreaFee:  15000,
		InsuranceRate:  0.003,
		VehicleTypes:   "Motorbike,Van",
		MaxWeight:      500,
		MaxVolume:      5,
		OperatingHours: "07:00-21:00",
		Rating:         4.2,
		IsActive:       true,
	},
}

// Initialize writes the header row of every sheet that does not have one yet
// and seeds sample carriers when the Carriers sheet holds no data rows.
// Idempotent; meant to run once at startup.
func (r *Repositories) Initialize(ctx context.Context) error {
	schemas := []string{
		entity.TransfersSchema.Sheet,
		entity.CarriersSchema.Sheet,
		entity.LocationsSchema.Sheet,
		entity.TransportRequestsSchema.Sheet,
		entity.InboundInternationalSchema.Sheet,
		entity.InboundDomesticSchema.Sheet,
	}
	for _, sheet := range schemas {
		schema, ok := entity.SchemaForSheet(sheet)
		if !ok {
			return fmt.Errorf("unknown sheet %q", sheet)
		}
		if err := r.Carrier.store.EnsureHeaders(ctx, schema); err != nil {
			return fmt.Errorf("failed to initialize sheet %s: %w", sheet, err)
		}
	}

	carriers, err := r.Carrier.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check carriers sheet: %w", err)
	}
	if len(carriers) > 0 {
		return nil
	}
	for i := range sampleCarriers {
		carrier := sampleCarriers[i]
		if err := r.Carrier.Create(ctx, &carrier); err != nil {
			return fmt.Errorf("failed to seed carrier %s: %w", carrier.CarrierID, err)
		}
	}
	return nil
}
