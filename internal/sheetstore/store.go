// Package sheetstore turns a raw cell grid into a schema-enforced table:
// keyed CRUD over named columns, with row 1 reserved for the header.
package sheetstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheets"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Schema declares one table: its worksheet name, ordered column list, and the
// column holding the unique record id.
type Schema struct {
	Sheet     string
	Columns   []string
	KeyColumn string
}

func (s Schema) endColumn() string {
	return sheets.ColumnLetter(len(s.Columns))
}

// dataRange covers the header plus every data row.
func (s Schema) dataRange() string {
	return "A1:" + s.endColumn()
}

// Store exposes keyed CRUD over one grid. It holds no record state; every
// operation re-reads the authoritative rows before acting.
type Store struct {
	grid sheets.Grid
}

func New(grid sheets.Grid) *Store {
	return &Store{grid: grid}
}

// Grid exposes the underlying accessor for raw range endpoints.
func (st *Store) Grid() sheets.Grid {
	return st.grid
}

// EnsureHeaders writes the schema's column list into row 1 if the header row
// is empty. A non-empty header is left untouched, whatever it contains; this
// is create-if-missing, not migration.
func (st *Store) EnsureHeaders(ctx context.Context, schema Schema) error {
	existing, err := st.grid.GetRange(ctx, schema.Sheet, sheets.HeaderRange(len(schema.Columns)))
	if err != nil {
		return fmt.Errorf("failed to read header row: %w", err)
	}
	if len(existing) > 0 && len(existing[0]) > 0 {
		return nil
	}
	if err := st.grid.UpdateRange(ctx, schema.Sheet, "A1", [][]string{schema.Columns}); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	return nil
}

// List decodes every non-blank data row. A sheet with no header yet yields an
// empty slice, not an error.
func (st *Store) List(ctx context.Context, schema Schema) ([]Record, error) {
	if err := st.EnsureHeaders(ctx, schema); err != nil {
		return nil, err
	}
	rows, err := st.grid.GetRange(ctx, schema.Sheet, schema.dataRange())
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return []Record{}, nil
	}

	headers := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		records = append(records, rowToRecord(headers, row))
	}
	return records, nil
}

// Get returns the first record whose key column equals id.
func (st *Store) Get(ctx context.Context, schema Schema, id string) (Record, error) {
	records, err := st.List(ctx, schema)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if strings.TrimSpace(record[schema.KeyColumn]) == id {
			return record, nil
		}
	}
	return nil, ErrNotFound
}

// Append encodes the record under the schema and appends it as one new row.
// Columns absent from the record are written empty; keys outside the schema
// are dropped, keeping the grid's column count stable.
func (st *Store) Append(ctx context.Context, schema Schema, record Record) error {
	if err := st.EnsureHeaders(ctx, schema); err != nil {
		return err
	}
	row := recordToRow(schema.Columns, record)
	if err := st.grid.AppendRows(ctx, schema.Sheet, [][]string{row}); err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}
	return nil
}

// Update merges partial onto the stored record and writes the full row back
// in place. Columns not present in partial keep their stored values; a
// partial overwrite would otherwise blank them.
func (st *Store) Update(ctx context.Context, schema Schema, id string, partial Record) (Record, error) {
	if err := st.EnsureHeaders(ctx, schema); err != nil {
		return nil, err
	}
	existing, rowIndex, err := st.findRow(ctx, schema, id)
	if err != nil {
		return nil, err
	}

	merged := existing.Clone()
	for key, value := range partial {
		merged[key] = value
	}
	merged[schema.KeyColumn] = id

	row := recordToRow(schema.Columns, merged)
	target := sheets.RowRange(rowIndex, len(schema.Columns))
	if err := st.grid.UpdateRange(ctx, schema.Sheet, target, [][]string{row}); err != nil {
		return nil, fmt.Errorf("failed to write row %d: %w", rowIndex, err)
	}
	return merged, nil
}

// Delete clears the record's cell range. Rows are never shifted, so row
// indices held elsewhere during an operation stay valid.
func (st *Store) Delete(ctx context.Context, schema Schema, id string) error {
	_, rowIndex, err := st.findRow(ctx, schema, id)
	if err != nil {
		return err
	}
	target := sheets.RowRange(rowIndex, len(schema.Columns))
	if err := st.grid.ClearRange(ctx, schema.Sheet, target); err != nil {
		return fmt.Errorf("failed to clear row %d: %w", rowIndex, err)
	}
	return nil
}

// FindRowIndex returns the 1-based grid row holding id.
func (st *Store) FindRowIndex(ctx context.Context, schema Schema, id string) (int, error) {
	_, rowIndex, err := st.findRow(ctx, schema, id)
	return rowIndex, err
}

// findRow locates a record by key, returning its decoded form and its 1-based
// grid row (header is row 1, first data row is 2).
func (st *Store) findRow(ctx context.Context, schema Schema, id string) (Record, int, error) {
	rows, err := st.grid.GetRange(ctx, schema.Sheet, schema.dataRange())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, ErrNotFound
	}
	headers := rows[0]
	for i, row := range rows[1:] {
		record := rowToRecord(headers, row)
		if strings.TrimSpace(record[schema.KeyColumn]) == id {
			return record, i + 2, nil
		}
	}
	return nil, 0, ErrNotFound
}

// GenerateID scans the key column for ids of the form "<prefix>-<digits>" and
// returns prefix + "-" + zero-padded(max+1, width). Values that do not parse
// are skipped. The result is deterministic for the current table state; two
// concurrent callers can still propose the same id (see AppendPlaceholder).
func (st *Store) GenerateID(ctx context.Context, schema Schema, prefix string, width int) (string, error) {
	rows, err := st.grid.GetRange(ctx, schema.Sheet, "A:A")
	if err != nil {
		return "", fmt.Errorf("failed to read key column: %w", err)
	}

	maxNumber := 0
	marker := prefix + "-"
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		id := strings.TrimSpace(row[0])
		if !strings.HasPrefix(id, marker) {
			continue
		}
		n, err := strconv.Atoi(id[len(marker):])
		if err != nil {
			continue
		}
		if n > maxNumber {
			maxNumber = n
		}
	}
	return fmt.Sprintf("%s-%0*d", prefix, width, maxNumber+1), nil
}

// AppendPlaceholder appends a row carrying only the given columns and returns
// its 1-based grid row. Reserving the row immediately after GenerateID
// narrows (without closing) the window in which a concurrent caller could
// claim the same id.
func (st *Store) AppendPlaceholder(ctx context.Context, schema Schema, record Record) (int, error) {
	if err := st.EnsureHeaders(ctx, schema); err != nil {
		return 0, err
	}
	rows, err := st.grid.GetRange(ctx, schema.Sheet, "A:A")
	if err != nil {
		return 0, fmt.Errorf("failed to read key column: %w", err)
	}
	if err := st.Append(ctx, schema, record); err != nil {
		return 0, err
	}
	return len(rows) + 1, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
