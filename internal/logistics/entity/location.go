package entity

import (
	"strings"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// Location is one warehouse/store address from the Locations sheet. Only
// active locations participate in transfer address enrichment.
type Location struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Ward     string `json:"ward"`
	District string `json:"district"`
	Province string `json:"province"`
	Status   string `json:"status"`
}

func LocationFromRecord(record sheetstore.Record) Location {
	return Location{
		ID:       strings.TrimSpace(record["id"]),
		Name:     record["name"],
		Address:  record["address"],
		Ward:     record["ward"],
		District: record["district"],
		Province: record["province"],
		Status:   record["status"],
	}
}

func (l Location) ToRecord() sheetstore.Record {
	return sheetstore.Record{
		"id":       l.ID,
		"name":     l.Name,
		"address":  l.Address,
		"ward":     l.Ward,
		"district": l.District,
		"province": l.Province,
		"status":   l.Status,
	}
}

// IsActive reports whether the free-text status cell marks the location
// usable. Hand-edited sheets carry several spellings of "on".
func (l Location) IsActive() bool {
	switch strings.ToLower(strings.TrimSpace(l.Status)) {
	case "active", "true", "1", "yes":
		return true
	}
	return false
}
