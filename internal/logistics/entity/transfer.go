package entity

import (
	"strconv"
	"strings"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
)

// Transport statuses of a transfer, in lifecycle order. The warehouse system
// creates transfers; this service only ever moves transportStatus forward.
const (
	TransportStatusAwaitingPackages = "Chờ báo kiện"
	TransportStatusAwaitingHandover = "Chờ chuyển giao"
	TransportStatusInTransit        = "Đang chuyển giao"
	TransportStatusDelivered        = "Đã chuyển giao"
)

var transportStatusOrder = []string{
	TransportStatusAwaitingPackages,
	TransportStatusAwaitingHandover,
	TransportStatusInTransit,
	TransportStatusDelivered,
}

// NextTransportStatus returns the status following s, or s unchanged when s
// is terminal or unknown (free-text cells happen).
func NextTransportStatus(s string) string {
	for i, status := range transportStatusOrder {
		if status == strings.TrimSpace(s) && i+1 < len(transportStatusOrder) {
			return transportStatusOrder[i+1]
		}
	}
	return s
}

// Transfer is one warehouse move ticket from the Transfers sheet.
type Transfer struct {
	TransferID      string  `json:"transfer_id"`
	OrderCode       string  `json:"orderCode"`
	HasVali         string  `json:"hasVali"`
	Date            string  `json:"date"`
	Source          string  `json:"source"`
	Dest            string  `json:"dest"`
	Quantity        float64 `json:"quantity"`
	State           string  `json:"state"`
	TransportStatus string  `json:"transportStatus"`
	Note            string  `json:"note"`

	PkgS          float64 `json:"pkgS"`
	PkgM          float64 `json:"pkgM"`
	PkgL          float64 `json:"pkgL"`
	PkgBagSmall   float64 `json:"pkgBagSmall"`
	PkgBagMedium  float64 `json:"pkgBagMedium"`
	PkgBagLarge   float64 `json:"pkgBagLarge"`
	PkgOther      float64 `json:"pkgOther"`
	TotalPackages float64 `json:"totalPackages"`

	VolS         float64 `json:"volS"`
	VolM         float64 `json:"volM"`
	VolL         float64 `json:"volL"`
	VolBagSmall  float64 `json:"volBagSmall"`
	VolBagMedium float64 `json:"volBagMedium"`
	VolBagLarge  float64 `json:"volBagLarge"`
	VolOther     float64 `json:"volOther"`
	TotalVolume  float64 `json:"totalVolume"`

	DestID   string `json:"dest_id"`
	SourceID string `json:"source_id"`
	Employee string `json:"employee"`
	Address  string `json:"address"`
	Ward     string `json:"ward"`
	District string `json:"district"`
	Province string `json:"province"`
}

// TransferFromRecord decodes a sheet record, coercing the numeric columns and
// deriving totals when the cells are blank.
func TransferFromRecord(record sheetstore.Record) Transfer {
	t := Transfer{
		TransferID:      strings.TrimSpace(record["transfer_id"]),
		OrderCode:       record["orderCode"],
		HasVali:         record["hasVali"],
		Date:            record["date"],
		Source:          record["source"],
		Dest:            record["dest"],
		Quantity:        parseFloat(record["quantity"]),
		State:           record["state"],
		TransportStatus: record["transportStatus"],
		Note:            record["note"],

		PkgS:          parseFloat(record["pkgS"]),
		PkgM:          parseFloat(record["pkgM"]),
		PkgL:          parseFloat(record["pkgL"]),
		PkgBagSmall:   parseFloat(record["pkgBagSmall"]),
		PkgBagMedium:  parseFloat(record["pkgBagMedium"]),
		PkgBagLarge:   parseFloat(record["pkgBagLarge"]),
		PkgOther:      parseFloat(record["pkgOther"]),
		TotalPackages: parseFloat(record["totalPackages"]),

		VolS:         parseFloat(record["volS"]),
		VolM:         parseFloat(record["volM"]),
		VolL:         parseFloat(record["volL"]),
		VolBagSmall:  parseFloat(record["volBagSmall"]),
		VolBagMedium: parseFloat(record["volBagMedium"]),
		VolBagLarge:  parseFloat(record["volBagLarge"]),
		VolOther:     parseFloat(record["volOther"]),
		TotalVolume:  parseFloat(record["totalVolume"]),

		DestID:   strings.TrimSpace(record["dest_id"]),
		SourceID: strings.TrimSpace(record["source_id"]),
		Employee: record["employee"],
		Address:  record["address"],
		Ward:     record["ward"],
		District: record["district"],
		Province: record["province"],
	}
	t.Normalize()
	return t
}

// Normalize fills totalPackages/totalVolume from the per-size columns when
// the totals cells are blank or zero.
func (t *Transfer) Normalize() {
	if t.TotalPackages == 0 {
		t.TotalPackages = t.PkgS + t.PkgM + t.PkgL +
			t.PkgBagSmall + t.PkgBagMedium + t.PkgBagLarge + t.PkgOther
	}
	if t.TotalVolume == 0 {
		t.TotalVolume = t.VolS + t.VolM + t.VolL +
			t.VolBagSmall + t.VolBagMedium + t.VolBagLarge + t.VolOther
	}
}

// ToRecord encodes the transfer for the Transfers sheet.
func (t Transfer) ToRecord() sheetstore.Record {
	return sheetstore.Record{
		"transfer_id":     t.TransferID,
		"orderCode":       t.OrderCode,
		"hasVali":         t.HasVali,
		"date":            t.Date,
		"source":          t.Source,
		"dest":            t.Dest,
		"quantity":        formatFloat(t.Quantity),
		"state":           t.State,
		"transportStatus": t.TransportStatus,
		"note":            t.Note,

		"pkgS":          formatFloat(t.PkgS),
		"pkgM":          formatFloat(t.PkgM),
		"pkgL":          formatFloat(t.PkgL),
		"pkgBagSmall":   formatFloat(t.PkgBagSmall),
		"pkgBagMedium":  formatFloat(t.PkgBagMedium),
		"pkgBagLarge":   formatFloat(t.PkgBagLarge),
		"pkgOther":      formatFloat(t.PkgOther),
		"totalPackages": formatFloat(t.TotalPackages),

		"volS":         formatFloat(t.VolS),
		"volM":         formatFloat(t.VolM),
		"volL":         formatFloat(t.VolL),
		"volBagSmall":  formatFloat(t.VolBagSmall),
		"volBagMedium": formatFloat(t.VolBagMedium),
		"volBagLarge":  formatFloat(t.VolBagLarge),
		"volOther":     formatFloat(t.VolOther),
		"totalVolume":  formatFloat(t.TotalVolume),

		"dest_id":   t.DestID,
		"source_id": t.SourceID,
		"employee":  t.Employee,
		"address":   t.Address,
		"ward":      t.Ward,
		"district":  t.District,
		"province":  t.Province,
	}
}

// DeliveryAddress joins the structured address fields, falling back to the
// raw destination when they are all blank.
func (t Transfer) DeliveryAddress() string {
	joined := strings.TrimSpace(strings.Join([]string{
		t.Address, t.Ward, t.District, t.Province,
	}, " "))
	joined = strings.Join(strings.Fields(joined), " ")
	if joined != "" {
		return joined
	}
	return t.Dest
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Sheets in vi-VN locales sometimes carry comma decimals.
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatFloat(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
