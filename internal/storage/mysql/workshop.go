package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"furniture-backend/internal/storage"
)

func (s *Storage) GetWorkshops(ctx context.Context) ([]storage.Workshop, error) {
	const op = "storage.mysql.GetWorkshops"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, workshop_type_id, workers_required FROM workshop ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	workshops := make([]storage.Workshop, 0)
	for rows.Next() {
		var w storage.Workshop
		if err := rows.Scan(&w.ID, &w.Name, &w.WorkshopTypeID, &w.WorkersRequired); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		workshops = append(workshops, w)
	}

	return workshops, rows.Err()
}

func (s *Storage) GetWorkshop(ctx context.Context, id int64) (*storage.Workshop, error) {
	const op = "storage.mysql.GetWorkshop"

	var w storage.Workshop
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, workshop_type_id, workers_required FROM workshop WHERE id = ?`, id).
		Scan(&w.ID, &w.Name, &w.WorkshopTypeID, &w.WorkersRequired)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &w, nil
}

// SaveWorkshop вставляет цех; уникальность имени и существование типа цеха
// проверяет сама БД, нарушения переводятся в классифицированные ошибки.
func (s *Storage) SaveWorkshop(ctx context.Context, req storage.SaveWorkshop) (int64, error) {
	const op = "storage.mysql.SaveWorkshop"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO workshop (name, workshop_type_id, workers_required) VALUES (?, ?, ?)`,
		req.Name, req.WorkshopTypeID, req.WorkersRequired)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, translateError(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateWorkshop(ctx context.Context, id int64, req storage.UpdateWorkshop) error {
	const op = "storage.mysql.UpdateWorkshop"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var exists int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM workshop WHERE id = ? FOR UPDATE`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	set := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	if req.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *req.Name)
	}
	if req.WorkshopTypeID != nil {
		set = append(set, "workshop_type_id = ?")
		args = append(args, *req.WorkshopTypeID)
	}
	if req.WorkersRequired != nil {
		set = append(set, "workers_required = ?")
		args = append(args, *req.WorkersRequired)
	}

	if len(set) > 0 {
		args = append(args, id)
		query := "UPDATE workshop SET " + strings.Join(set, ", ") + " WHERE id = ?"
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%s: %w", op, translateError(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

// DeleteWorkshop блокируется внешним ключом из product_workshop, пока на цех
// ссылается хоть один маршрут.
func (s *Storage) DeleteWorkshop(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteWorkshop"

	res, err := s.db.ExecContext(ctx, `DELETE FROM workshop WHERE id = ?`, id)
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
