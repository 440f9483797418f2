package mysql

import (
	"context"
	"fmt"

	"furniture-backend/internal/storage"
)

// GetProductCardRows — агрегирующий запрос карточек: продукт со своими
// справочниками и точной десятичной суммой часов по всем цехам маршрута.
// SUM по DECIMAL в MySQL считается без плавающей точки, продукт без
// маршрута получает 0 через COALESCE.
func (s *Storage) GetProductCardRows(ctx context.Context) ([]storage.CardRow, error) {
	const op = "storage.mysql.GetProductCardRows"

	query := `
        SELECT p.id,
               pt.name,
               p.name,
               p.article,
               p.min_partner_price,
               mt.name,
               COALESCE(SUM(pw.production_time_hours), 0)
        FROM product p
        JOIN product_type pt ON p.product_type_id = pt.id
        JOIN material_type mt ON p.material_type_id = mt.id
        LEFT JOIN product_workshop pw ON pw.product_id = p.id
        GROUP BY p.id, pt.name, p.name, p.article, p.min_partner_price, mt.name
        ORDER BY pt.name, p.name
    `

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	cards := make([]storage.CardRow, 0)
	for rows.Next() {
		var c storage.CardRow
		err := rows.Scan(&c.ID, &c.ProductType, &c.Name, &c.Article, &c.MinPartnerPrice, &c.MaterialType, &c.TotalHours)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		cards = append(cards, c)
	}

	return cards, rows.Err()
}
