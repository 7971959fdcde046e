package sheets

import (
	"context"
	"sync"
)

// MemoryGrid is an in-process Grid used by tests. It mirrors the Sheets API
// behaviors the store depends on: row-major cells, trailing empty cells
// trimmed on read, appends after the last non-empty row.
type MemoryGrid struct {
	mu     sync.Mutex
	sheets map[string][][]string

	// FailNext, when non-nil, is returned by the next grid call and then
	// cleared. Lets tests simulate backend outages.
	FailNext error
}

func NewMemoryGrid() *MemoryGrid {
	return &MemoryGrid{sheets: make(map[string][][]string)}
}

func (g *MemoryGrid) takeFailure() error {
	err := g.FailNext
	g.FailNext = nil
	return err
}

// GetRange implements Grid.
func (g *MemoryGrid) GetRange(_ context.Context, sheet, a1Range string) ([][]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.takeFailure(); err != nil {
		return nil, err
	}

	startRow, startCol, endRow, endCol, err := parseA1(a1Range)
	if err != nil {
		return nil, err
	}

	data := g.sheets[sheet]
	if endRow < 0 || endRow > len(data) {
		endRow = len(data)
	}

	var rows [][]string
	for r := startRow; r < endRow; r++ {
		row := data[r]
		var cells []string
		for col := startCol; col < endCol && col < len(row); col++ {
			cells = append(cells, row[col])
		}
		end := len(cells)
		for end > 0 && cells[end-1] == "" {
			end--
		}
		rows = append(rows, cells[:end])
	}
	// Trim fully empty trailing rows, as the API omits them.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// UpdateRange implements Grid.
func (g *MemoryGrid) UpdateRange(_ context.Context, sheet, a1Range string, values [][]string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.takeFailure(); err != nil {
		return err
	}

	startRow, startCol, _, _, err := parseA1(a1Range)
	if err != nil {
		return err
	}
	g.write(sheet, startRow, startCol, values)
	return nil
}

// AppendRows implements Grid. Trailing rows whose cells were all cleared are
// not part of the table, so appends land on them, as the API does.
func (g *MemoryGrid) AppendRows(_ context.Context, sheet string, values [][]string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.takeFailure(); err != nil {
		return err
	}
	data := g.sheets[sheet]
	start := len(data)
	for start > 0 && rowEmpty(data[start-1]) {
		start--
	}
	g.write(sheet, start, 0, values)
	return nil
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// ClearRange implements Grid.
func (g *MemoryGrid) ClearRange(_ context.Context, sheet, a1Range string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.takeFailure(); err != nil {
		return err
	}

	startRow, startCol, endRow, endCol, err := parseA1(a1Range)
	if err != nil {
		return err
	}
	data := g.sheets[sheet]
	if endRow < 0 || endRow > len(data) {
		endRow = len(data)
	}
	for r := startRow; r < endRow && r < len(data); r++ {
		for col := startCol; col < endCol && col < len(data[r]); col++ {
			data[r][col] = ""
		}
	}
	return nil
}

func (g *MemoryGrid) write(sheet string, startRow, startCol int, values [][]string) {
	data := g.sheets[sheet]
	for i, row := range values {
		r := startRow + i
		for r >= len(data) {
			data = append(data, nil)
		}
		for j, value := range row {
			col := startCol + j
			for col >= len(data[r]) {
				data[r] = append(data[r], "")
			}
			data[r][col] = value
		}
	}
	g.sheets[sheet] = data
}
