package entity

import (
	"fmt"
	"strings"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// Transport-request lifecycle statuses.
const (
	RequestStatusAwaitingConfirm = "Chờ xác nhận"
	RequestStatusConfirmed       = "Đã xác nhận"
	RequestStatusCompleted       = "Hoàn thành"
)

// RequestIDPrefix and RequestIDWidth define the sequential dispatch id shape:
// MSC-00000001.
const (
	RequestIDPrefix = "MSC"
	RequestIDWidth  = 8
)

// Stop is one delivery point of a consolidated dispatch. TransferIDs carries
// the contributing transfer tickets, comma-joined on the sheet.
type Stop struct {
	Address     string   `json:"address"`
	MN          string   `json:"mn"`
	Products    string   `json:"products"`
	VolumeM3    float64  `json:"volumeM3"`
	Packages    float64  `json:"packages"`
	DistanceKm  float64  `json:"distanceKm"`
	OrderCount  int      `json:"orderCount"`
	TransferIDs []string `json:"transferIds"`
}

// TransportRequest is one carrier dispatch covering up to MaxStops stops.
type TransportRequest struct {
	RequestID     string `json:"requestId"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
	PickupAddress string `json:"pickupAddress"`

	Stops []Stop `json:"stops"`

	TotalProducts   float64 `json:"totalProducts"`
	TotalVolumeM3   float64 `json:"totalVolumeM3"`
	TotalPackages   float64 `json:"totalPackages"`
	TotalDistance   float64 `json:"totalDistance"`
	TotalOrderCount int     `json:"totalOrderCount"`

	PricingMethod  string  `json:"pricingMethod"`
	CarrierID      string  `json:"carrierId"`
	CarrierName    string  `json:"carrierName"`
	CarrierContact string  `json:"carrierContact"`
	CarrierPhone   string  `json:"carrierPhone"`
	CarrierEmail   string  `json:"carrierEmail"`
	EstimatedCost  float64 `json:"estimatedCost"`
	Status         string  `json:"status"`
	Note           string  `json:"note"`
	VehicleType    string  `json:"vehicleType"`

	DriverID      string `json:"driverId"`
	DriverName    string `json:"driverName"`
	DriverPhone   string `json:"driverPhone"`
	DriverLicense string `json:"driverLicense"`
	LoadingImages string `json:"loadingImages"`
	Department    string `json:"department"`
	ServiceArea   string `json:"serviceArea"`

	PricePerKm    float64 `json:"pricePerKm"`
	PricePerM3    float64 `json:"pricePerM3"`
	PricePerTrip  float64 `json:"pricePerTrip"`
	FuelSurcharge float64 `json:"fuelSurcharge"`
	TollFee       float64 `json:"tollFee"`
	InsuranceFee  float64 `json:"insuranceFee"`
	BaseRate      float64 `json:"baseRate"`
}

// TransportRequestFromRecord rebuilds the nested request from flat stop
// columns. Stop slots are keyed by their numbered column names; a slot whose
// address, products and packages are all blank is omitted from Stops.
func TransportRequestFromRecord(record sheetstore.Record) TransportRequest {
	tr := TransportRequest{
		RequestID:     strings.TrimSpace(record["requestId"]),
		CreatedAt:     record["createdAt"],
		UpdatedAt:     record["updatedAt"],
		PickupAddress: record["pickupAddress"],

		TotalProducts:   parseFloat(record["totalProducts"]),
		TotalVolumeM3:   parseFloat(record["totalVolumeM3"]),
		TotalPackages:   parseFloat(record["totalPackages"]),
		TotalDistance:   parseFloat(record["totalDistance"]),
		TotalOrderCount: int(parseFloat(record["totalOrderCount"])),

		PricingMethod:  record["pricingMethod"],
		CarrierID:      record["carrierId"],
		CarrierName:    record["carrierName"],
		CarrierContact: record["carrierContact"],
		CarrierPhone:   record["carrierPhone"],
		CarrierEmail:   record["carrierEmail"],
		EstimatedCost:  parseFloat(record["estimatedCost"]),
		Status:         record["status"],
		Note:           record["note"],
		VehicleType:    record["vehicleType"],

		DriverID:      record["driverId"],
		DriverName:    record["driverName"],
		DriverPhone:   record["driverPhone"],
		DriverLicense: record["driverLicense"],
		LoadingImages: record["loadingImages"],
		Department:    record["department"],
		ServiceArea:   record["serviceArea"],

		PricePerKm:    parseFloat(record["pricePerKm"]),
		PricePerM3:    parseFloat(record["pricePerM3"]),
		PricePerTrip:  parseFloat(record["pricePerTrip"]),
		FuelSurcharge: parseFloat(record["fuelSurcharge"]),
		TollFee:       parseFloat(record["tollFee"]),
		InsuranceFee:  parseFloat(record["insuranceFee"]),
		BaseRate:      parseFloat(record["baseRate"]),
	}

	for i := 1; i <= MaxStops; i++ {
		stop := Stop{
			Address:    record[fmt.Sprintf("stop%dAddress", i)],
			MN:         record[fmt.Sprintf("stop%dMN", i)],
			Products:   record[fmt.Sprintf("stop%dProducts", i)],
			VolumeM3:   parseFloat(record[fmt.Sprintf("stop%dVolumeM3", i)]),
			Packages:   parseFloat(record[fmt.Sprintf("stop%dPackages", i)]),
			DistanceKm: parseFloat(record[fmt.Sprintf("distance%d", i)]),
			OrderCount: int(parseFloat(record[fmt.Sprintf("stop%dOrderCount", i)])),
		}
		if ids := strings.TrimSpace(record[fmt.Sprintf("stop%dTransferIds", i)]); ids != "" {
			stop.TransferIDs = strings.Split(ids, ",")
		}
		if stop.Address == "" && stop.Products == "" && stop.Packages == 0 {
			continue
		}
		tr.Stops = append(tr.Stops, stop)
	}
	return tr
}

// ToRecord flattens the request. All MaxStops slots are always emitted;
// unused slots write empty/zero cells so a shrinking stop list cannot leave
// stale data behind on an in-place update.
func (tr TransportRequest) ToRecord() sheetstore.Record {
	record := sheetstore.Record{
		"requestId":     tr.RequestID,
		"createdAt":     tr.CreatedAt,
		"updatedAt":     tr.UpdatedAt,
		"pickupAddress": tr.PickupAddress,

		"totalProducts":   formatFloat(tr.TotalProducts),
		"totalVolumeM3":   formatFloat(tr.TotalVolumeM3),
		"totalPackages":   formatFloat(tr.TotalPackages),
		"totalDistance":   formatFloat(tr.TotalDistance),
		"totalOrderCount": formatFloat(float64(tr.TotalOrderCount)),

		"pricingMethod":  tr.PricingMethod,
		"carrierId":      tr.CarrierID,
		"carrierName":    tr.CarrierName,
		"carrierContact": tr.CarrierContact,
		"carrierPhone":   tr.CarrierPhone,
		"carrierEmail":   tr.CarrierEmail,
		"estimatedCost":  formatFloat(tr.EstimatedCost),
		"status":         tr.Status,
		"note":           tr.Note,
		"vehicleType":    tr.VehicleType,

		"driverId":      tr.DriverID,
		"driverName":    tr.DriverName,
		"driverPhone":   tr.DriverPhone,
		"driverLicense": tr.DriverLicense,
		"loadingImages": tr.LoadingImages,
		"department":    tr.Department,
		"serviceArea":   tr.ServiceArea,

		"pricePerKm":    formatFloat(tr.PricePerKm),
		"pricePerM3":    formatFloat(tr.PricePerM3),
		"pricePerTrip":  formatFloat(tr.PricePerTrip),
		"fuelSurcharge": formatFloat(tr.FuelSurcharge),
		"tollFee":       formatFloat(tr.TollFee),
		"insuranceFee":  formatFloat(tr.InsuranceFee),
		"baseRate":      formatFloat(tr.BaseRate),
	}

	for i := 1; i <= MaxStops; i++ {
		var stop Stop
		if i-1 < len(tr.Stops) {
			stop = tr.Stops[i-1]
		}
		record[fmt.Sprintf("stop%dAddress", i)] = stop.Address
		record[fmt.Sprintf("stop%dMN", i)] = stop.MN
		record[fmt.Sprintf("stop%dProducts", i)] = stop.Products
		record[fmt.Sprintf("stop%dVolumeM3", i)] = formatFloat(stop.VolumeM3)
		record[fmt.Sprintf("stop%dPackages", i)] = formatFloat(stop.Packages)
		record[fmt.Sprintf("distance%d", i)] = formatFloat(stop.DistanceKm)
		record[fmt.Sprintf("stop%dOrderCount", i)] = formatFloat(float64(stop.OrderCount))
		record[fmt.Sprintf("stop%dTransferIds", i)] = strings.Join(stop.TransferIDs, ",")
	}
	return record
}
