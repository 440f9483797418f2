package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"furniture-backend/internal/storage"
)

type CardProvider interface {
	ProductCards(ctx context.Context) ([]storage.ProductCard, error)
}

type ExcelService struct {
	cards CardProvider
}

func NewExcelService(cards CardProvider) *ExcelService {
	return &ExcelService{cards: cards}
}

// GenerateExcel строит xlsx-отчёт по карточкам продукции с временем
// изготовления и возвращает готовый файл как байты.
func (g *ExcelService) GenerateExcel(ctx context.Context) ([]byte, error) {
	cards, err := g.cards.ProductCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch data: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Продукция"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{"ID", "Тип продукции", "Наименование", "Артикул", "Мин. стоимость", "Материал", "Время изготовления, ч"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for rowIdx, c := range cards {
		rowNum := rowIdx + 2
		f.SetCellValue(sheet, cellName(1, rowNum), c.ID)
		f.SetCellValue(sheet, cellName(2, rowNum), c.ProductType)
		f.SetCellValue(sheet, cellName(3, rowNum), c.Name)
		f.SetCellValue(sheet, cellName(4, rowNum), c.Article)
		f.SetCellValue(sheet, cellName(5, rowNum), c.MinPartnerPrice.StringFixed(2))
		f.SetCellValue(sheet, cellName(6, rowNum), c.MaterialType)
		f.SetCellValue(sheet, cellName(7, rowNum), c.ProductionTimeHours)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write buffer: %w", err)
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
