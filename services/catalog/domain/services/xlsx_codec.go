package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	catalogdomain "github.com/ghuser/porcelarte/services/catalog/domain"
	"github.com/ghuser/porcelarte/services/catalog/domain/models"
)

// FloorSheetName is the worksheet holding the exported floor products.
const FloorSheetName = "pisos"

// EncodeFloorXLSX writes the same columns as EncodeFloorCSV to a workbook.
// Numeric columns are written as numbers so spreadsheets can sum them.
func EncodeFloorXLSX(w io.Writer, products []*models.FloorProduct) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName("Sheet1", FloorSheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range strings.Split(catalogdomain.FloorCSVHeader, ",") {
		if err := setCell(f, col+1, 1, h); err != nil {
			return err
		}
	}

	for i, p := range products {
		row := i + 2
		values := []any{
			p.SKU,
			p.Name,
			p.SideACm.InexactFloat64(),
			p.SideBCm.InexactFloat64(),
			p.PiecesPerBox,
			p.PricePerM2.InexactFloat64(),
			p.Finish.CSV(),
			p.CollectionColor,
			p.StockBoxes,
			p.MinStockBoxes,
			p.Active,
		}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(FloorSheetName, cell, v); err != nil {
		return fmt.Errorf("set %s: %w", cell, err)
	}
	return nil
}
