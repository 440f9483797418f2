package storage

import "github.com/shopspring/decimal"

type ProductType struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Coefficient decimal.Decimal `json:"coefficient"`
}

type MaterialType struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	LossPercent decimal.Decimal `json:"loss_percent"`
}

type WorkshopType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
