package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"furniture-backend/internal/config"
	"furniture-backend/internal/storage"
	"furniture-backend/internal/storage/mysql"
)

// Загрузка исходных данных из таблиц выгрузки (xlsx) в БД. Повторный запуск
// безопасен: строки обновляются по уникальным ключам.
func main() {
	dataDir := flag.String("data", "./data", "каталог с xlsx-файлами выгрузки")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := config.MustConfig()

	storage, err := mysql.New(*cfg)
	if err != nil {
		log.Error("failed to open db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	if err := storage.Migrate(); err != nil {
		log.Error("migrations failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	steps := []struct {
		file   string
		runner func(ctx context.Context, rows []map[string]string) error
	}{
		{"Product_type_import.xlsx", func(ctx context.Context, rows []map[string]string) error {
			return importProductTypes(ctx, storage, rows)
		}},
		{"Material_type_import.xlsx", func(ctx context.Context, rows []map[string]string) error {
			return importMaterialTypes(ctx, storage, rows)
		}},
		{"Workshops_import.xlsx", func(ctx context.Context, rows []map[string]string) error {
			return importWorkshops(ctx, storage, rows)
		}},
		{"Products_import.xlsx", func(ctx context.Context, rows []map[string]string) error {
			return importProducts(ctx, storage, rows)
		}},
		{"Product_workshops_import.xlsx", func(ctx context.Context, rows []map[string]string) error {
			return importRouteSteps(ctx, storage, rows)
		}},
	}

	for _, step := range steps {
		path := filepath.Join(*dataDir, step.file)
		rows, err := readRows(path)
		if err != nil {
			log.Error("failed to read file", slog.String("file", step.file), slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := step.runner(ctx, rows); err != nil {
			log.Error("import failed", slog.String("file", step.file), slog.String("error", err.Error()))
			os.Exit(1)
		}
		log.Info("imported", slog.String("file", step.file), slog.Int("rows", len(rows)))
	}

	log.Info("import finished")
}

func importProductTypes(ctx context.Context, s *mysql.Storage, rows []map[string]string) error {
	for _, row := range rows {
		coeff, err := toDecimalRU(row["Коэффициент типа продукции"])
		if err != nil {
			return fmt.Errorf("коэффициент: %w", err)
		}
		name := strings.TrimSpace(row["Тип продукции"])
		if err := s.UpsertProductType(ctx, name, coeff); err != nil {
			return err
		}
	}
	return nil
}

func importMaterialTypes(ctx context.Context, s *mysql.Storage, rows []map[string]string) error {
	for _, row := range rows {
		// Процент в файле хранится как 5, в БД — как доля 0.05
		loss, err := toDecimalRU(row["Процент потерь сырья"])
		if err != nil {
			return fmt.Errorf("процент потерь: %w", err)
		}
		loss = loss.Div(decimal.NewFromInt(100))
		name := strings.TrimSpace(row["Тип материала"])
		if err := s.UpsertMaterialType(ctx, name, loss); err != nil {
			return err
		}
	}
	return nil
}

func importWorkshops(ctx context.Context, s *mysql.Storage, rows []map[string]string) error {
	for _, row := range rows {
		typeName := strings.TrimSpace(row["Тип цеха"])
		typeID, err := s.UpsertWorkshopType(ctx, typeName)
		if err != nil {
			return fmt.Errorf("тип цеха %q: %w", typeName, err)
		}

		workers, err := strconv.Atoi(strings.TrimSpace(row["Количество человек для производства"]))
		if err != nil {
			return fmt.Errorf("количество человек: %w", err)
		}

		err = s.UpsertWorkshop(ctx, storage.SaveWorkshop{
			Name:            strings.TrimSpace(row["Название цеха"]),
			WorkshopTypeID:  typeID,
			WorkersRequired: workers,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func importProducts(ctx context.Context, s *mysql.Storage, rows []map[string]string) error {
	for _, row := range rows {
		price, err := toDecimalRU(row["Минимальная стоимость для партнера"])
		if err != nil {
			return fmt.Errorf("минимальная стоимость: %w", err)
		}
		err = s.UpsertProduct(ctx,
			strings.TrimSpace(row["Наименование продукции"]),
			strings.TrimSpace(row["Артикул"]),
			strings.TrimSpace(row["Тип продукции"]),
			strings.TrimSpace(row["Основной материал"]),
			price,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func importRouteSteps(ctx context.Context, s *mysql.Storage, rows []map[string]string) error {
	for _, row := range rows {
		hours, err := toDecimalRU(row["Время изготовления, ч"])
		if err != nil {
			return fmt.Errorf("время изготовления: %w", err)
		}
		err = s.UpsertRouteStep(ctx,
			strings.TrimSpace(row["Наименование продукции"]),
			strings.TrimSpace(row["Название цеха"]),
			hours,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// readRows читает первый лист xlsx и возвращает строки как отображение
// "заголовок колонки -> значение".
func readRows(path string) ([]map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(raw) < 2 {
		return nil, nil
	}

	headers := raw[0]
	rows := make([]map[string]string, 0, len(raw)-1)
	for _, line := range raw[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(line) {
				row[strings.TrimSpace(h)] = line[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// toDecimalRU парсит число из выгрузки: пробелы и знак процента
// отбрасываются, запятая считается десятичным разделителем.
func toDecimalRU(value string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("%", "", " ", "", " ", "", ",", ".").Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("пустое значение")
	}
	return decimal.NewFromString(cleaned)
}
