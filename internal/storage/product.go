package storage

import "github.com/shopspring/decimal"

type Product struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Article         string          `json:"article"`
	ProductTypeID   int64           `json:"product_type_id"`
	MaterialTypeID  int64           `json:"material_type_id"`
	MinPartnerPrice decimal.Decimal `json:"min_partner_price"`
}

type SaveProduct struct {
	Name            string          `json:"name"`
	Article         string          `json:"article"`
	ProductTypeID   int64           `json:"product_type_id"`
	MaterialTypeID  int64           `json:"material_type_id"`
	MinPartnerPrice decimal.Decimal `json:"min_partner_price"`
}

type UpdateProduct struct {
	Name            *string          `json:"name,omitempty"`
	Article         *string          `json:"article,omitempty"`
	ProductTypeID   *int64           `json:"product_type_id,omitempty"`
	MaterialTypeID  *int64           `json:"material_type_id,omitempty"`
	MinPartnerPrice *decimal.Decimal `json:"min_partner_price,omitempty"`
}
