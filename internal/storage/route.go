package storage

import "github.com/shopspring/decimal"

// RouteStep — ребро маршрута изготовления: сколько часов изделие проводит
// в конкретном цехе. Пара (product_id, workshop_id) уникальна.
type RouteStep struct {
	ID         int64           `json:"id"`
	ProductID  int64           `json:"product_id"`
	WorkshopID int64           `json:"workshop_id"`
	Hours      decimal.Decimal `json:"production_time_hours"`
}

type SaveRouteStep struct {
	WorkshopID int64           `json:"workshop_id"`
	Hours      decimal.Decimal `json:"production_time_hours"`
}

type UpdateRouteStep struct {
	Hours decimal.Decimal `json:"production_time_hours"`
}
