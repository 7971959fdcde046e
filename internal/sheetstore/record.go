package sheetstore

// Record is one decoded row: column name to cell text. Numeric and boolean
// cells travel as strings; typed entities convert at their own boundary.
type Record map[string]string

func (r Record) Clone() Record {
	out := make(Record, len(r))
	for key, value := range r {
		out[key] = value
	}
	return out
}

// rowToRecord zips headers with cells. Rows shorter than the header (the API
// trims trailing empty cells) map missing cells to the empty string.
func rowToRecord(headers, row []string) Record {
	record := make(Record, len(headers))
	for i, header := range headers {
		if i < len(row) {
			record[header] = row[i]
		} else {
			record[header] = ""
		}
	}
	return record
}

// recordToRow emits cells in column order. Columns absent from the record
// become empty strings; record keys that are not declared columns are
// silently dropped so the grid's width never drifts.
func recordToRow(columns []string, record Record) []string {
	row := make([]string, len(columns))
	for i, column := range columns {
		row[i] = record[column]
	}
	return row
}
