// Package entity defines the typed records stored in the logistics
// spreadsheet and the codecs between their nested shapes and flat cells.
package entity

import (
	"fmt"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// Sheet header schemas. Column order is the wire format: these lists are
// written verbatim into row 1 on first use and must not be reordered.

var TransfersSchema = sheetstore.Schema{
	Sheet:     "Transfers",
	KeyColumn: "transfer_id",
	Columns: []string{
		"transfer_id", "orderCode", "hasVali", "date", "source", "dest",
		"quantity", "state", "transportStatus", "note",
		"pkgS", "pkgM", "pkgL", "pkgBagSmall", "pkgBagMedium", "pkgBagLarge",
		"pkgOther", "totalPackages",
		"volS", "volM", "volL", "volBagSmall", "volBagMedium", "volBagLarge",
		"volOther", "totalVolume",
		"dest_id", "source_id", "employee", "address", "ward", "district",
		"province",
	},
}

var CarriersSchema = sheetstore.Schema{
	Sheet:     "Carriers",
	KeyColumn: "carrierId",
	Columns: []string{
		"carrierId", "name", "avatarUrl", "contactPerson", "email", "phone",
		"address", "serviceAreas", "pricingMethod", "baseRate", "perKmRate",
		"perM3Rate", "perTripRate", "fuelSurcharge", "remoteAreaFee",
		"insuranceRate", "vehicleTypes", "maxWeight", "maxVolume",
		"operatingHours", "rating", "isActive", "createdAt", "updatedAt",
	},
}

var LocationsSchema = sheetstore.Schema{
	Sheet:     "Locations",
	KeyColumn: "id",
	Columns: []string{
		"id", "name", "address", "ward", "district", "province", "status",
	},
}

// MaxStops is the stop capacity of one transport request; the sheet carries a
// fixed column set per stop slot.
const MaxStops = 10

var TransportRequestsSchema = sheetstore.Schema{
	Sheet:     "TransportRequests",
	KeyColumn: "requestId",
	Columns:   transportRequestColumns(),
}

func transportRequestColumns() []string {
	columns := []string{"requestId", "createdAt", "updatedAt", "pickupAddress"}
	columns = append(columns, stopColumns("stop%dAddress")...)
	columns = append(columns, stopColumns("stop%dMN")...)
	columns = append(columns, stopColumns("stop%dProducts")...)
	columns = append(columns, stopColumns("stop%dVolumeM3")...)
	columns = append(columns, stopColumns("stop%dPackages")...)
	columns = append(columns,
		"totalProducts", "totalVolumeM3", "totalPackages", "pricingMethod",
		"carrierId", "carrierName", "carrierContact", "carrierPhone",
		"carrierEmail", "estimatedCost", "status", "note", "vehicleType",
	)
	columns = append(columns, stopColumns("distance%d")...)
	columns = append(columns, "totalDistance")
	columns = append(columns, stopColumns("stop%dOrderCount")...)
	columns = append(columns, "totalOrderCount")
	columns = append(columns, stopColumns("stop%dTransferIds")...)
	columns = append(columns,
		"driverId", "driverName", "driverPhone", "driverLicense",
		"loadingImages", "department", "serviceArea", "pricePerKm",
		"pricePerM3", "pricePerTrip", "fuelSurcharge", "tollFee",
		"insuranceFee", "baseRate",
	)
	return columns
}

func stopColumns(format string) []string {
	columns := make([]string, 0, MaxStops)
	for i := 1; i <= MaxStops; i++ {
		columns = append(columns, fmt.Sprintf(format, i))
	}
	return columns
}

var InboundInternationalSchema = sheetstore.Schema{
	Sheet:     "InboundInternational",
	KeyColumn: "id",
	Columns:   inboundInternationalColumns(),
}

func inboundInternationalColumns() []string {
	columns := []string{
		"id", "date", "pi", "supplier", "origin", "destination", "product",
		"category", "quantity", "container", "status", "carrier", "purpose",
		"receiveTime", "poNumbers",
		"packagingTypes", "packagingQuantities", "packagingDescriptions",
		"timeline_created_description",
	}
	for _, slot := range TimelineSlots {
		if slot.AlwaysInclude {
			continue // Created has only the description column above
		}
		prefix := slot.ColumnPrefix
		columns = append(columns,
			prefix+"_est", prefix+"_act", prefix+"_status", prefix+"_description")
	}
	for _, slot := range DocumentSlots {
		prefix := slot.ColumnPrefix
		columns = append(columns,
			prefix+"_est", prefix+"_act", prefix+"_status", prefix+"_description")
	}
	columns = append(columns, "notes", "createdAt", "updatedAt")
	return columns
}

var InboundDomesticSchema = sheetstore.Schema{
	Sheet:     "InboundDomestic",
	KeyColumn: "id",
	Columns: []string{
		"id", "date", "supplier", "origin", "destination", "product",
		"category", "quantity", "status", "carrier", "purpose", "receiveTime",
		"estimatedArrival", "actualArrival",
		"packagingTypes", "packagingQuantities", "packagingDescriptions",
		"notes", "createdAt", "updatedAt",
	},
}

// SchemaForSheet resolves a sheet name to its schema for the raw record
// endpoints. Returns false for unknown sheets.
func SchemaForSheet(name string) (sheetstore.Schema, bool) {
	switch name {
	case TransfersSchema.Sheet:
		return TransfersSchema, true
	case CarriersSchema.Sheet:
		return CarriersSchema, true
	case LocationsSchema.Sheet:
		return LocationsSchema, true
	case TransportRequestsSchema.Sheet:
		return TransportRequestsSchema, true
	case InboundInternationalSchema.Sheet:
		return InboundInternationalSchema, true
	case InboundDomesticSchema.Sheet:
		return InboundDomesticSchema, true
	}
	return sheetstore.Schema{}, false
}
