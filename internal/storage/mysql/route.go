package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"furniture-backend/internal/storage"
)

// GetRouteSteps возвращает маршрут продукта, отсортированный по id цеха,
// чтобы повторные чтения без изменений давали одинаковый порядок.
func (s *Storage) GetRouteSteps(ctx context.Context, productID int64) ([]storage.RouteStep, error) {
	const op = "storage.mysql.GetRouteSteps"

	if err := s.productExists(ctx, productID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, product_id, workshop_id, production_time_hours
		 FROM product_workshop WHERE product_id = ? ORDER BY workshop_id`, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	steps := make([]storage.RouteStep, 0)
	for rows.Next() {
		var st storage.RouteStep
		if err := rows.Scan(&st.ID, &st.ProductID, &st.WorkshopID, &st.Hours); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		steps = append(steps, st)
	}

	return steps, rows.Err()
}

// SaveRouteStep добавляет ребро маршрута. Существование продукта и цеха
// проверяется до вставки, дубль пары ловит уникальный индекс.
func (s *Storage) SaveRouteStep(ctx context.Context, productID int64, req storage.SaveRouteStep) (int64, error) {
	const op = "storage.mysql.SaveRouteStep"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var exists int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM product WHERE id = ?`, productID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%s: product: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	err = tx.QueryRowContext(ctx, `SELECT id FROM workshop WHERE id = ?`, req.WorkshopID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%s: workshop: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO product_workshop (product_id, workshop_id, production_time_hours)
		 VALUES (?, ?, ?)`,
		productID, req.WorkshopID, req.Hours)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, translateError(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return id, nil
}

// UpdateRouteStep атомарно заменяет часы у существующего ребра пары
// (productID, workshopID).
func (s *Storage) UpdateRouteStep(ctx context.Context, productID, workshopID int64, req storage.UpdateRouteStep) error {
	const op = "storage.mysql.UpdateRouteStep"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM product_workshop WHERE product_id = ? AND workshop_id = ? FOR UPDATE`,
		productID, workshopID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE product_workshop SET production_time_hours = ? WHERE id = ?`, req.Hours, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateError(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteRouteStep(ctx context.Context, productID, workshopID int64) error {
	const op = "storage.mysql.DeleteRouteStep"

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM product_workshop WHERE product_id = ? AND workshop_id = ?`,
		productID, workshopID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (s *Storage) productExists(ctx context.Context, id int64) error {
	var found int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM product WHERE id = ?`, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	return err
}
