package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"furniture-backend/internal/storage"
)

type RawMaterialStorage interface {
	GetProductType(ctx context.Context, id int64) (*storage.ProductType, error)
	GetMaterialType(ctx context.Context, id int64) (*storage.MaterialType, error)
}

type RawMaterialService struct {
	storage RawMaterialStorage
}

func NewRawMaterialService(storage RawMaterialStorage) *RawMaterialService {
	return &RawMaterialService{storage: storage}
}

type RawMaterialRequest struct {
	ProductTypeID  int64   `json:"product_type_id"`
	MaterialTypeID int64   `json:"material_type_id"`
	Quantity       int64   `json:"quantity"`
	Param1         float64 `json:"param1"`
	Param2         float64 `json:"param2"`
}

// Calculate считает целое количество сырья на партию продукции:
// на единицу уходит param1 * param2 * коэффициент типа продукции, партия
// умножается на количество, потери материала добавляются множителем
// (1 + loss_percent), итог округляется вверх до целого.
func (s *RawMaterialService) Calculate(ctx context.Context, req RawMaterialRequest) (int64, error) {
	const op = "service.rawmaterial.Calculate"

	if req.Quantity <= 0 {
		return 0, storage.Validationf("quantity must be positive")
	}

	p1 := decimal.NewFromFloat(req.Param1)
	p2 := decimal.NewFromFloat(req.Param2)
	if !p1.IsPositive() || !p2.IsPositive() {
		return 0, storage.Validationf("params must be positive")
	}

	var (
		productType  *storage.ProductType
		materialType *storage.MaterialType
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		productType, err = s.storage.GetProductType(gCtx, req.ProductTypeID)
		if err != nil {
			return fmt.Errorf("product type: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		materialType, err = s.storage.GetMaterialType(gCtx, req.MaterialTypeID)
		if err != nil {
			return fmt.Errorf("material type: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	coeff := productType.Coefficient
	loss := materialType.LossPercent
	if !coeff.IsPositive() || loss.IsNegative() {
		return 0, storage.Validationf("catalog values out of range")
	}

	perUnit := p1.Mul(p2).Mul(coeff)
	total := perUnit.Mul(decimal.NewFromInt(req.Quantity))
	withLosses := total.Mul(decimal.NewFromInt(1).Add(loss))
	if !withLosses.IsPositive() {
		return 0, storage.Validationf("calculated amount is not positive")
	}

	return withLosses.Ceil().IntPart(), nil
}
