package storage

import "github.com/shopspring/decimal"

// CardRow — строка агрегирующего запроса по продукту до округления:
// точная десятичная сумма часов по всем цехам (0 при пустом маршруте).
type CardRow struct {
	ID              int64
	ProductType     string
	Name            string
	Article         string
	MinPartnerPrice decimal.Decimal
	MaterialType    string
	TotalHours      decimal.Decimal
}

// ProductCard — карточка продукции для выдачи наружу. Время изготовления
// всегда пересчитывается из текущих маршрутов, нигде не хранится.
type ProductCard struct {
	ID                  int64           `json:"id"`
	ProductType         string          `json:"product_type"`
	Name                string          `json:"name"`
	Article             string          `json:"article"`
	MinPartnerPrice     decimal.Decimal `json:"min_partner_price"`
	MaterialType        string          `json:"material_type"`
	ProductionTimeHours int64           `json:"production_time_hours"`
}
