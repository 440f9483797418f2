package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"furniture-backend/internal/storage"
)

func (s *Storage) GetProducts(ctx context.Context) ([]storage.Product, error) {
	const op = "storage.mysql.GetProducts"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, article, product_type_id, material_type_id, min_partner_price
		 FROM product ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	products := make([]storage.Product, 0)
	for rows.Next() {
		var p storage.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Article, &p.ProductTypeID, &p.MaterialTypeID, &p.MinPartnerPrice)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (s *Storage) GetProduct(ctx context.Context, id int64) (*storage.Product, error) {
	const op = "storage.mysql.GetProduct"

	var p storage.Product
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, article, product_type_id, material_type_id, min_partner_price
		 FROM product WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Article, &p.ProductTypeID, &p.MaterialTypeID, &p.MinPartnerPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &p, nil
}

func (s *Storage) SaveProduct(ctx context.Context, req storage.SaveProduct) (int64, error) {
	const op = "storage.mysql.SaveProduct"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO product (name, article, product_type_id, material_type_id, min_partner_price)
		 VALUES (?, ?, ?, ?, ?)`,
		req.Name, req.Article, req.ProductTypeID, req.MaterialTypeID, req.MinPartnerPrice)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, translateError(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateProduct(ctx context.Context, id int64, req storage.UpdateProduct) error {
	const op = "storage.mysql.UpdateProduct"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var exists int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM product WHERE id = ? FOR UPDATE`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	set := make([]string, 0, 5)
	args := make([]interface{}, 0, 6)
	if req.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Article != nil {
		set = append(set, "article = ?")
		args = append(args, *req.Article)
	}
	if req.ProductTypeID != nil {
		set = append(set, "product_type_id = ?")
		args = append(args, *req.ProductTypeID)
	}
	if req.MaterialTypeID != nil {
		set = append(set, "material_type_id = ?")
		args = append(args, *req.MaterialTypeID)
	}
	if req.MinPartnerPrice != nil {
		set = append(set, "min_partner_price = ?")
		args = append(args, *req.MinPartnerPrice)
	}

	if len(set) > 0 {
		args = append(args, id)
		query := "UPDATE product SET " + strings.Join(set, ", ") + " WHERE id = ?"
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%s: %w", op, translateError(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

// DeleteProduct удаляет продукт, маршруты уходят каскадом по внешнему ключу.
func (s *Storage) DeleteProduct(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteProduct"

	res, err := s.db.ExecContext(ctx, `DELETE FROM product WHERE id = ?`, id)
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
