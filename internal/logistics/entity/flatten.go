package entity

import (
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// SlotDef binds a timeline or document step to its column group on the
// InboundInternational sheet. Each slot owns four columns,
// <ColumnPrefix>_est/_act/_status/_description, except the always-present
// created slot which stores only its description.
type SlotDef struct {
	Key           string
	Name          string
	ColumnPrefix  string
	AlwaysInclude bool
}

// TimelineSlots lists the international shipment milestones in display order.
var TimelineSlots = []SlotDef{
	{Key: "created", Name: "Ngày tạo phiếu", ColumnPrefix: "timeline_created", AlwaysInclude: true},
	{Key: "cargoReady", Name: "Cargo Ready", ColumnPrefix: "timeline_cargoReady"},
	{Key: "etd", Name: "ETD", ColumnPrefix: "timeline_etd"},
	{Key: "eta", Name: "ETA", ColumnPrefix: "timeline_eta"},
	{Key: "depart", Name: "Ngày hàng đi", ColumnPrefix: "timeline_depart"},
	{Key: "arrivalPort", Name: "Ngày hàng về cảng", ColumnPrefix: "timeline_arrivalPort"},
	{Key: "receive", Name: "Ngày nhận hàng", ColumnPrefix: "timeline_receive"},
}

// DocumentSlots lists the customs paperwork steps in display order.
var DocumentSlots = []SlotDef{
	{Key: "checkBill", Name: "Check bill", ColumnPrefix: "doc_checkBill"},
	{Key: "checkCO", Name: "Check CO", ColumnPrefix: "doc_checkCO"},
	{Key: "sendDocs", Name: "TQ Gửi chứng từ đi", ColumnPrefix: "doc_sendDocs"},
	{Key: "customs", Name: "Lên tờ khai hải quan", ColumnPrefix: "doc_customs"},
	{Key: "tax", Name: "Đóng thuế", ColumnPrefix: "doc_tax"},
}

// InternationalFromRecord reads an InboundInternational row, rebuilding the
// timeline and document tracks from the slot columns. A slot appears in the
// result only when its est or act cell is non-empty; the created slot is
// always first, completed, dated by the ticket date.
func InternationalFromRecord(record sheetstore.Record) InboundItem {
	item := InboundItem{
		ID:          record["id"],
		Date:        record["date"],
		PI:          record["pi"],
		Supplier:    record["supplier"],
		Origin:      record["origin"],
		Destination: record["destination"],
		Product:     record["product"],
		Category:    record["category"],
		Quantity:    record["quantity"],
		Container:   record["container"],
		Status:      record["status"],
		Carrier:     record["carrier"],
		Purpose:     record["purpose"],
		ReceiveTime: record["receiveTime"],
		PONumbers:   record["poNumbers"],
		Notes:       record["notes"],
		CreatedAt:   record["createdAt"],
		UpdatedAt:   record["updatedAt"],
	}
	item.Packaging = SplitPackaging(
		record["packagingTypes"],
		record["packagingQuantities"],
		record["packagingDescriptions"],
	)

	for _, slot := range TimelineSlots {
		if slot.AlwaysInclude {
			item.Timeline = append(item.Timeline, TimelineStep{
				ID:           slot.Key,
				Name:         slot.Name,
				Date:         item.Date,
				Status:       StepCompleted,
				Descriptions: ParseDescriptionHistory(record[slot.ColumnPrefix+"_description"]),
			})
			continue
		}
		est := record[slot.ColumnPrefix+"_est"]
		act := record[slot.ColumnPrefix+"_act"]
		if est == "" && act == "" {
			continue
		}
		item.Timeline = append(item.Timeline, TimelineStep{
			ID:            slot.Key,
			Name:          slot.Name,
			EstimatedDate: est,
			Date:          act,
			Status:        CoerceStepStatus(record[slot.ColumnPrefix+"_status"]),
			Descriptions:  ParseDescriptionHistory(record[slot.ColumnPrefix+"_description"]),
		})
	}

	// Arrival columns mirror the receive milestone for list views.
	for _, step := range item.Timeline {
		if step.ID == "receive" {
			item.EstimatedArrival = step.EstimatedDate
			item.ActualArrival = step.Date
		}
	}

	for _, slot := range DocumentSlots {
		est := record[slot.ColumnPrefix+"_est"]
		act := record[slot.ColumnPrefix+"_act"]
		if est == "" && act == "" {
			continue
		}
		item.DocumentSteps = append(item.DocumentSteps, DocumentStep{
			ID:            slot.Key,
			Name:          slot.Name,
			EstimatedDate: est,
			Date:          act,
			Status:        CoerceStepStatus(record[slot.ColumnPrefix+"_status"]),
			Descriptions:  ParseDescriptionHistory(record[slot.ColumnPrefix+"_description"]),
		})
	}
	return item
}

// ToInternationalRecord flattens the item onto the slot columns. Every slot
// column is written, absent slots as empty cells, so an in-place update clears
// steps that were removed.
func (item InboundItem) ToInternationalRecord() sheetstore.Record {
	types, quantities, descriptions := JoinPackaging(item.Packaging)
	record := sheetstore.Record{
		"id":                    item.ID,
		"date":                  item.Date,
		"pi":                    item.PI,
		"supplier":              item.Supplier,
		"origin":                item.Origin,
		"destination":           item.Destination,
		"product":               item.Product,
		"category":              item.Category,
		"quantity":              item.Quantity,
		"container":             item.Container,
		"status":                item.Status,
		"carrier":               item.Carrier,
		"purpose":               item.Purpose,
		"receiveTime":           item.ReceiveTime,
		"poNumbers":             item.PONumbers,
		"packagingTypes":        types,
		"packagingQuantities":   quantities,
		"packagingDescriptions": descriptions,
		"notes":                 item.Notes,
		"createdAt":             item.CreatedAt,
		"updatedAt":             item.UpdatedAt,
	}

	timeline := make(map[string]TimelineStep, len(item.Timeline))
	for _, step := range item.Timeline {
		timeline[step.ID] = step
	}
	for _, slot := range TimelineSlots {
		step, ok := timeline[slot.Key]
		if slot.AlwaysInclude {
			record[slot.ColumnPrefix+"_description"] = FormatDescriptionHistory(step.Descriptions)
			continue
		}
		if !ok {
			record[slot.ColumnPrefix+"_est"] = ""
			record[slot.ColumnPrefix+"_act"] = ""
			record[slot.ColumnPrefix+"_status"] = ""
			record[slot.ColumnPrefix+"_description"] = ""
			continue
		}
		record[slot.ColumnPrefix+"_est"] = step.EstimatedDate
		record[slot.ColumnPrefix+"_act"] = step.Date
		record[slot.ColumnPrefix+"_status"] = CoerceStepStatus(step.Status)
		record[slot.ColumnPrefix+"_description"] = FormatDescriptionHistory(step.Descriptions)
	}

	docs := make(map[string]DocumentStep, len(item.DocumentSteps))
	for _, step := range item.DocumentSteps {
		docs[step.ID] = step
	}
	for _, slot := range DocumentSlots {
		step, ok := docs[slot.Key]
		if !ok {
			record[slot.ColumnPrefix+"_est"] = ""
			record[slot.ColumnPrefix+"_act"] = ""
			record[slot.ColumnPrefix+"_status"] = ""
			record[slot.ColumnPrefix+"_description"] = ""
			continue
		}
		record[slot.ColumnPrefix+"_est"] = step.EstimatedDate
		record[slot.ColumnPrefix+"_act"] = step.Date
		record[slot.ColumnPrefix+"_status"] = CoerceStepStatus(step.Status)
		record[slot.ColumnPrefix+"_description"] = FormatDescriptionHistory(step.Descriptions)
	}
	return record
}
