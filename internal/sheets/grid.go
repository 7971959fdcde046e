// Package sheets provides the grid accessor: range-level reads and writes
// against a named worksheet of a backing tabular store. Everything above this
// package talks in records; everything below is raw cells.
package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Grid is the four-operation contract every backend implements. Ranges use A1
// notation without the sheet prefix ("A1:AG1", "A:A"); the sheet is passed
// separately so backends that are not spreadsheets can map it to a table name.
type Grid interface {
	// GetRange returns the cells of the range, row-major. Trailing empty
	// cells of a row may be omitted, as the Sheets API does.
	GetRange(ctx context.Context, sheet, a1Range string) ([][]string, error)

	// UpdateRange writes values starting at the range's top-left cell.
	UpdateRange(ctx context.Context, sheet, a1Range string, values [][]string) error

	// AppendRows appends rows after the last non-empty row of the sheet.
	AppendRows(ctx context.Context, sheet string, values [][]string) error

	// ClearRange blanks every cell in the range without shifting rows.
	ClearRange(ctx context.Context, sheet, a1Range string) error
}

// ColumnLetter converts a 1-based column number to its A1 letter ("A", "Z",
// "AA", ...).
func ColumnLetter(n int) string {
	letter := ""
	for n > 0 {
		n--
		letter = string(rune('A'+n%26)) + letter
		n /= 26
	}
	return letter
}

// RowRange builds the A1 range covering one full data row, e.g. RowRange(2, 5)
// -> "A2:E2".
func RowRange(row, columns int) string {
	return fmt.Sprintf("A%d:%s%d", row, ColumnLetter(columns), row)
}

// HeaderRange builds the A1 range covering row 1 for the given column count.
func HeaderRange(columns int) string {
	return fmt.Sprintf("A1:%s1", ColumnLetter(columns))
}

// parseA1 resolves an A1 range to zero-based start row/col and an exclusive
// end row/col. Open-ended ranges ("A:A", "A1:E") report end row -1 meaning
// "through the last row". Only the subset of A1 the store emits is supported.
func parseA1(a1 string) (startRow, startCol, endRow, endCol int, err error) {
	parts := strings.SplitN(a1, ":", 2)
	sc, sr, err := parseCellRef(parts[0])
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid range %q: %w", a1, err)
	}
	if len(parts) == 1 {
		return sr, sc, sr + 1, sc + 1, nil
	}
	ec, er, err := parseCellRef(parts[1])
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid range %q: %w", a1, err)
	}
	endRow = er + 1
	if er < 0 {
		endRow = -1 // open-ended, e.g. "A1:E"
	}
	if sr < 0 {
		sr = 0
	}
	return sr, sc, endRow, ec + 1, nil
}

// parseCellRef splits "AG12" into zero-based column 32 and row 11. A bare
// column ("A") reports row -1.
func parseCellRef(ref string) (col, row int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		i++
	}
	if i == 0 {
		return 0, 0, fmt.Errorf("missing column letters in %q", ref)
	}
	for _, ch := range ref[:i] {
		col = col*26 + int(ch-'A'+1)
	}
	col--
	if i == len(ref) {
		return col, -1, nil
	}
	n, err := strconv.Atoi(ref[i:])
	if err != nil || n < 1 {
		return 0, 0, fmt.Errorf("invalid row number in %q", ref)
	}
	return col, n - 1, nil
}
