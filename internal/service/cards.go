package service

import (
	"context"
	"fmt"

	"furniture-backend/internal/storage"
)

type CardStorage interface {
	GetProductCardRows(ctx context.Context) ([]storage.CardRow, error)
}

type CardService struct {
	storage CardStorage
}

func NewCardService(storage CardStorage) *CardService {
	return &CardService{storage: storage}
}

// ProductCards собирает карточки: точная сумма часов по маршруту каждого
// продукта округляется вверх до целого часа. 3.00 -> 3, 3.01 -> 4, пустой
// маршрут -> 0. Значение считается заново при каждом вызове.
func (s *CardService) ProductCards(ctx context.Context) ([]storage.ProductCard, error) {
	const op = "service.cards.ProductCards"

	rows, err := s.storage.GetProductCardRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cards := make([]storage.ProductCard, 0, len(rows))
	for _, r := range rows {
		cards = append(cards, storage.ProductCard{
			ID:                  r.ID,
			ProductType:         r.ProductType,
			Name:                r.Name,
			Article:             r.Article,
			MinPartnerPrice:     r.MinPartnerPrice,
			MaterialType:        r.MaterialType,
			ProductionTimeHours: r.TotalHours.Ceil().IntPart(),
		})
	}

	return cards, nil
}
