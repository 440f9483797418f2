package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"furniture-backend/internal/storage"
)

func (s *Storage) GetProductTypes(ctx context.Context) ([]storage.ProductType, error) {
	const op = "storage.mysql.GetProductTypes"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, coefficient FROM product_type ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	types := make([]storage.ProductType, 0)
	for rows.Next() {
		var t storage.ProductType
		if err := rows.Scan(&t.ID, &t.Name, &t.Coefficient); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

func (s *Storage) GetMaterialTypes(ctx context.Context) ([]storage.MaterialType, error) {
	const op = "storage.mysql.GetMaterialTypes"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, loss_percent FROM material_type ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	types := make([]storage.MaterialType, 0)
	for rows.Next() {
		var t storage.MaterialType
		if err := rows.Scan(&t.ID, &t.Name, &t.LossPercent); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

func (s *Storage) GetWorkshopTypes(ctx context.Context) ([]storage.WorkshopType, error) {
	const op = "storage.mysql.GetWorkshopTypes"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name FROM workshop_type ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	types := make([]storage.WorkshopType, 0)
	for rows.Next() {
		var t storage.WorkshopType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

func (s *Storage) GetProductType(ctx context.Context, id int64) (*storage.ProductType, error) {
	const op = "storage.mysql.GetProductType"

	var t storage.ProductType
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, coefficient FROM product_type WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.Coefficient)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &t, nil
}

func (s *Storage) GetMaterialType(ctx context.Context, id int64) (*storage.MaterialType, error) {
	const op = "storage.mysql.GetMaterialType"

	var t storage.MaterialType
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, loss_percent FROM material_type WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.LossPercent)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &t, nil
}
