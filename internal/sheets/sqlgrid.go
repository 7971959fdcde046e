package sheets

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Cell is one grid cell persisted by the SQL backend. Rows and columns are
// zero-based; absent cells are empty.
type Cell struct {
	Sheet string `gorm:"primaryKey;size:64"`
	Row   int    `gorm:"primaryKey"`
	Col   int    `gorm:"primaryKey"`
	Value string
}

func (Cell) TableName() string {
	return "grid_cells"
}

// SQLGrid stores the grid in a SQLite cell table. It exists so the service
// can run without Google credentials (local development, CI); semantics match
// the Sheets client, including trailing-empty-cell trimming on reads.
type SQLGrid struct {
	db *gorm.DB
}

// NewSQLGrid opens (and migrates) the cell store at path. Use ":memory:" for
// an ephemeral grid.
func NewSQLGrid(path string) (*SQLGrid, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open grid database: %w", err)
	}
	if err := db.AutoMigrate(&Cell{}); err != nil {
		return nil, fmt.Errorf("failed to migrate grid schema: %w", err)
	}
	return &SQLGrid{db: db}, nil
}

// GetRange implements Grid.
func (g *SQLGrid) GetRange(ctx context.Context, sheet, a1Range string) ([][]string, error) {
	startRow, startCol, endRow, endCol, err := parseA1(a1Range)
	if err != nil {
		return nil, err
	}

	query := g.db.WithContext(ctx).
		Where("sheet = ? AND row >= ? AND col >= ? AND col < ?", sheet, startRow, startCol, endCol)
	if endRow >= 0 {
		query = query.Where("row < ?", endRow)
	}

	var cells []Cell
	if err := query.Order("row, col").Find(&cells).Error; err != nil {
		return nil, fmt.Errorf("failed to read range: %w", err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	lastRow := cells[len(cells)-1].Row
	rows := make([][]string, lastRow-startRow+1)
	width := endCol - startCol
	for i := range rows {
		rows[i] = make([]string, width)
	}
	for _, cell := range cells {
		rows[cell.Row-startRow][cell.Col-startCol] = cell.Value
	}

	// Trim trailing empty cells per row, like the Sheets API.
	for i, row := range rows {
		end := len(row)
		for end > 0 && row[end-1] == "" {
			end--
		}
		rows[i] = row[:end]
	}
	return rows, nil
}

// UpdateRange implements Grid.
func (g *SQLGrid) UpdateRange(ctx context.Context, sheet, a1Range string, values [][]string) error {
	startRow, startCol, _, _, err := parseA1(a1Range)
	if err != nil {
		return err
	}

	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, row := range values {
			for j, value := range row {
				cell := Cell{Sheet: sheet, Row: startRow + i, Col: startCol + j, Value: value}
				if value == "" {
					if err := tx.Delete(&Cell{}, "sheet = ? AND row = ? AND col = ?",
						sheet, cell.Row, cell.Col).Error; err != nil {
						return err
					}
					continue
				}
				if err := tx.Save(&cell).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// AppendRows implements Grid.
func (g *SQLGrid) AppendRows(ctx context.Context, sheet string, values [][]string) error {
	var maxRow struct {
		Max *int
	}
	err := g.db.WithContext(ctx).Model(&Cell{}).
		Select("MAX(row) AS max").
		Where("sheet = ?", sheet).
		Scan(&maxRow).Error
	if err != nil {
		return fmt.Errorf("failed to find last row: %w", err)
	}

	next := 0
	if maxRow.Max != nil {
		next = *maxRow.Max + 1
	}
	return g.UpdateRange(ctx, sheet, fmt.Sprintf("A%d", next+1), values)
}

// ClearRange implements Grid.
func (g *SQLGrid) ClearRange(ctx context.Context, sheet, a1Range string) error {
	startRow, startCol, endRow, endCol, err := parseA1(a1Range)
	if err != nil {
		return err
	}

	query := g.db.WithContext(ctx).
		Where("sheet = ? AND row >= ? AND col >= ? AND col < ?", sheet, startRow, startCol, endCol)
	if endRow >= 0 {
		query = query.Where("row < ?", endRow)
	}
	if err := query.Delete(&Cell{}).Error; err != nil {
		return fmt.Errorf("failed to clear range: %w", err)
	}
	return nil
}
