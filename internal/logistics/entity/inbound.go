package entity

import (
	"strings"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// Step statuses. Anything else read from a sheet is coerced to StepPending.
const (
	StepPending    = "pending"
	StepInProgress = "in-progress"
	StepConfirmed  = "confirmed"
	StepCompleted  = "completed"
)

// CoerceStepStatus maps free-form cell content onto the known step statuses.
func CoerceStepStatus(s string) string {
	switch strings.TrimSpace(s) {
	case StepInProgress:
		return StepInProgress
	case StepConfirmed:
		return StepConfirmed
	case StepCompleted:
		return StepCompleted
	default:
		return StepPending
	}
}

// TimelineStep is one milestone on an inbound shipment timeline. Descriptions
// is the per-step note history, newest entries appended.
type TimelineStep struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	EstimatedDate string             `json:"estimatedDate"`
	Date          string             `json:"date"`
	Status        string             `json:"status"`
	Descriptions  []DescriptionEntry `json:"descriptions,omitempty"`
}

// DocumentStep mirrors TimelineStep for the customs paperwork track.
type DocumentStep struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	EstimatedDate string             `json:"estimatedDate"`
	Date          string             `json:"date"`
	Status        string             `json:"status"`
	Descriptions  []DescriptionEntry `json:"descriptions,omitempty"`
}

// PackagingLine is one packaging row of an inbound item. The sheet stores the
// lines as three parallel semicolon-joined columns.
type PackagingLine struct {
	Type        string `json:"type"`
	Quantity    string `json:"quantity"`
	Description string `json:"description"`
}

// InboundItem is one inbound shipment, international or domestic. Domestic
// items carry no DocumentSteps and only a synthesized two-step timeline.
type InboundItem struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	PI          string `json:"pi,omitempty"`
	Supplier    string `json:"supplier"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Product     string `json:"product"`
	Category    string `json:"category"`
	Quantity    string `json:"quantity"`
	Container   string `json:"container,omitempty"`
	Status      string `json:"status"`
	Carrier     string `json:"carrier"`
	Purpose     string `json:"purpose"`
	ReceiveTime string `json:"receiveTime"`
	PONumbers   string `json:"poNumbers,omitempty"`

	EstimatedArrival string `json:"estimatedArrival,omitempty"`
	ActualArrival    string `json:"actualArrival,omitempty"`

	Packaging     []PackagingLine `json:"packaging"`
	Timeline      []TimelineStep  `json:"timeline"`
	DocumentSteps []DocumentStep  `json:"documentSteps,omitempty"`

	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// DomesticFromRecord reads an InboundDomestic row. The timeline is not stored
// for domestic rows; a two-step view is synthesized from the arrival columns.
func DomesticFromRecord(record sheetstore.Record) InboundItem {
	item := InboundItem{
		ID:               strings.TrimSpace(record["id"]),
		Date:             record["date"],
		Supplier:         record["supplier"],
		Origin:           record["origin"],
		Destination:      record["destination"],
		Product:          record["product"],
		Category:         record["category"],
		Quantity:         record["quantity"],
		Status:           record["status"],
		Carrier:          record["carrier"],
		Purpose:          record["purpose"],
		ReceiveTime:      record["receiveTime"],
		EstimatedArrival: record["estimatedArrival"],
		ActualArrival:    record["actualArrival"],
		Notes:            record["notes"],
		CreatedAt:        record["createdAt"],
		UpdatedAt:        record["updatedAt"],
	}
	item.Packaging = SplitPackaging(
		record["packagingTypes"],
		record["packagingQuantities"],
		record["packagingDescriptions"],
	)
	if item.Date != "" {
		item.Timeline = append(item.Timeline, TimelineStep{
			ID:     "created",
			Name:   "Ngày tạo phiếu",
			Date:   item.Date,
			Status: StepCompleted,
		})
	}
	if item.EstimatedArrival != "" || item.ActualArrival != "" {
		item.Timeline = append(item.Timeline, TimelineStep{
			ID:            "receive",
			Name:          "Ngày nhận hàng",
			EstimatedDate: item.EstimatedArrival,
			Date:          item.ActualArrival,
			Status:        arrivalStatus(item.ActualArrival),
		})
	}
	return item
}

func arrivalStatus(actual string) string {
	if strings.TrimSpace(actual) != "" {
		return StepCompleted
	}
	return StepPending
}

// ToDomesticRecord writes the InboundDomestic row. The synthesized timeline is
// not persisted; only the arrival columns are.
func (item InboundItem) ToDomesticRecord() sheetstore.Record {
	types, quantities, descriptions := JoinPackaging(item.Packaging)
	return sheetstore.Record{
		"id":                    item.ID,
		"date":                  item.Date,
		"supplier":              item.Supplier,
		"origin":                item.Origin,
		"destination":           item.Destination,
		"product":               item.Product,
		"category":              item.Category,
		"quantity":              item.Quantity,
		"status":                item.Status,
		"carrier":               item.Carrier,
		"purpose":               item.Purpose,
		"receiveTime":           item.ReceiveTime,
		"estimatedArrival":      item.EstimatedArrival,
		"actualArrival":         item.ActualArrival,
		"packagingTypes":        types,
		"packagingQuantities":   quantities,
		"packagingDescriptions": descriptions,
		"notes":                 item.Notes,
		"createdAt":             item.CreatedAt,
		"updatedAt":             item.UpdatedAt,
	}
}
