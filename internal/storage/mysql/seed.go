package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"furniture-backend/internal/storage"
)

// Upsert-методы для первичной загрузки данных из Excel (cmd/seed).
// Повторный прогон того же файла обновляет существующие строки по
// уникальному ключу вместо падения на дубле.

func (s *Storage) UpsertProductType(ctx context.Context, name string, coefficient decimal.Decimal) error {
	const op = "storage.mysql.UpsertProductType"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO product_type (name, coefficient) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE coefficient = VALUES(coefficient)`,
		name, coefficient)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateError(err))
	}

	return nil
}

func (s *Storage) UpsertMaterialType(ctx context.Context, name string, lossPercent decimal.Decimal) error {
	const op = "storage.mysql.UpsertMaterialType"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO material_type (name, loss_percent) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE loss_percent = VALUES(loss_percent)`,
		name, lossPercent)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateError(err))
	}

	return nil
}

func (s *Storage) UpsertWorkshopType(ctx context.Context, name string) (int64, error) {
	const op = "storage.mysql.UpsertWorkshopType"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO workshop_type (name) VALUES (?)
		 ON DUPLICATE KEY UPDATE name = VALUES(name)`, name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, translateError(err))
	}

	var id int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM workshop_type WHERE name = ?`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpsertWorkshop(ctx context.Context, req storage.SaveWorkshop) error {
	const op = "storage.mysql.UpsertWorkshop"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO workshop (name, workshop_type_id, workers_required) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE workshop_type_id = VALUES(workshop_type_id),
		                         workers_required = VALUES(workers_required)`,
		req.Name, req.WorkshopTypeID, req.WorkersRequired)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateError(err))
	}

	return nil
}

// UpsertProduct обновляет продукт по артикулу, справочники заданы именами
// как в исходных таблицах выгрузки.
func (s *Storage) UpsertProduct(ctx context.Context, name, article, productType, materialType string, minPrice decimal.Decimal) error {
	const op = "storage.mysql.UpsertProduct"

	ptID, err := s.idByName(ctx, "product_type", productType)
	if err != nil {
		return fmt.Errorf("%s: product type %q: %w", op, productType, err)
	}
	mtID, err := s.idByName(ctx, "material_type", materialType)
	if err != nil {
		return fmt.Errorf("%s: material type %q: %w", op, materialType, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO product (name, article, product_type_id, material_type_id, min_partner_price)
		 VALUES (?, ?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE name = VALUES(name),
		                         product_type_id = VALUES(product_type_id),
		                         material_type_id = VALUES(material_type_id),
		                         min_partner_price = VALUES(min_partner_price)`,
		name, article, ptID, mtID, minPrice)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateError(err))
	}

	return nil
}

func (s *Storage) UpsertRouteStep(ctx context.Context, productName, workshopName string, hours decimal.Decimal) error {
	const op = "storage.mysql.UpsertRouteStep"

	pID, err := s.idByName(ctx, "product", productName)
	if err != nil {
		return fmt.Errorf("%s: product %q: %w", op, productName, err)
	}
	wID, err := s.idByName(ctx, "workshop", workshopName)
	if err != nil {
		return fmt.Errorf("%s: workshop %q: %w", op, workshopName, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO product_workshop (product_id, workshop_id, production_time_hours)
		 VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE production_time_hours = VALUES(production_time_hours)`,
		pID, wID, hours)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateError(err))
	}

	return nil
}

func (s *Storage) idByName(ctx context.Context, table, name string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT id FROM %s WHERE name = ?`, table), name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, storage.ErrNotFound
	}
	return id, err
}
