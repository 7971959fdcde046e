package entity

import (
	"strings"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// Carrier is one transport vendor from the Carriers sheet.
type Carrier struct {
	CarrierID      string  `json:"carrierId"`
	Name           string  `json:"name"`
	AvatarURL      string  `json:"avatarUrl"`
	ContactPerson  string  `json:"contactPerson"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	ServiceAreas   string  `json:"serviceAreas"`
	PricingMethod  string  `json:"pricingMethod"`
	BaseRate       float64 `json:"baseRate"`
	PerKmRate      float64 `json:"perKmRate"`
	PerM3Rate      float64 `json:"perM3Rate"`
	PerTripRate    float64 `json:"perTripRate"`
	FuelSurcharge  float64 `json:"fuelSurcharge"`
	RemoteAreaFee  float64 `json:"remoteAreaFee"`
	InsuranceRate  float64 `json:"insuranceRate"`
	VehicleTypes   string  `json:"vehicleTypes"`
	MaxWeight      float64 `json:"maxWeight"`
	MaxVolume      float64 `json:"maxVolume"`
	OperatingHours string  `json:"operatingHours"`
	Rating         float64 `json:"rating"`
	IsActive       bool    `json:"isActive"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

func CarrierFromRecord(record sheetstore.Record) Carrier {
	return Carrier{
		CarrierID:      strings.TrimSpace(record["carrierId"]),
		Name:           record["name"],
		AvatarURL:      record["avatarUrl"],
		ContactPerson:  record["contactPerson"],
		Email:          record["email"],
		Phone:          record["phone"],
		Address:        record["address"],
		ServiceAreas:   record["serviceAreas"],
		PricingMethod:  record["pricingMethod"],
		BaseRate:       parseFloat(record["baseRate"]),
		PerKmRate:      parseFloat(record["perKmRate"]),
		PerM3Rate:      parseFloat(record["perM3Rate"]),
		PerTripRate:    parseFloat(record["perTripRate"]),
		FuelSurcharge:  parseFloat(record["fuelSurcharge"]),
		RemoteAreaFee:  parseFloat(record["remoteAreaFee"]),
		InsuranceRate:  parseFloat(record["insuranceRate"]),
		VehicleTypes:   record["vehicleTypes"],
		MaxWeight:      parseFloat(record["maxWeight"]),
		MaxVolume:      parseFloat(record["maxVolume"]),
		OperatingHours: record["operatingHours"],
		Rating:         parseFloat(record["rating"]),
		IsActive:       parseBool(record["isActive"]),
		CreatedAt:      record["createdAt"],
		UpdatedAt:      record["updatedAt"],
	}
}

func (c Carrier) ToRecord() sheetstore.Record {
	return sheetstore.Record{
		"carrierId":      c.CarrierID,
		"name":           c.Name,
		"avatarUrl":      c.AvatarURL,
		"contactPerson":  c.ContactPerson,
		"email":          c.Email,
		"phone":          c.Phone,
		"address":        c.Address,
		"serviceAreas":   c.ServiceAreas,
		"pricingMethod":  c.PricingMethod,
		"baseRate":       formatFloat(c.BaseRate),
		"perKmRate":      formatFloat(c.PerKmRate),
		"perM3Rate":      formatFloat(c.PerM3Rate),
		"perTripRate":    formatFloat(c.PerTripRate),
		"fuelSurcharge":  formatFloat(c.FuelSurcharge),
		"remoteAreaFee":  formatFloat(c.RemoteAreaFee),
		"insuranceRate":  formatFloat(c.InsuranceRate),
		"vehicleTypes":   c.VehicleTypes,
		"maxWeight":      formatFloat(c.MaxWeight),
		"maxVolume":      formatFloat(c.MaxVolume),
		"operatingHours": c.OperatingHours,
		"rating":         formatFloat(c.Rating),
		"isActive":       formatBool(c.IsActive),
		"createdAt":      c.CreatedAt,
		"updatedAt":      c.UpdatedAt,
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "active":
		return true
	}
	return false
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
