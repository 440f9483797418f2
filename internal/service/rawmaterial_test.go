package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"furniture-backend/internal/storage"
)

// MockRawMaterialStorage реализует интерфейс RawMaterialStorage для тестов
type MockRawMaterialStorage struct {
	mock.Mock
}

func (m *MockRawMaterialStorage) GetProductType(ctx context.Context, id int64) (*storage.ProductType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.ProductType), args.Error(1)
}

func (m *MockRawMaterialStorage) GetMaterialType(ctx context.Context, id int64) (*storage.MaterialType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.MaterialType), args.Error(1)
}

func rawStorage(coefficient, loss string) *MockRawMaterialStorage {
	m := new(MockRawMaterialStorage)
	m.On("GetProductType", mock.Anything, int64(1)).Return(&storage.ProductType{
		ID:          1,
		Name:        "Столы",
		Coefficient: decimal.RequireFromString(coefficient),
	}, nil)
	m.On("GetMaterialType", mock.Anything, int64(2)).Return(&storage.MaterialType{
		ID:          2,
		Name:        "Дерево",
		LossPercent: decimal.RequireFromString(loss),
	}, nil)
	return m
}

// Тест: расчёт количества сырья с учётом потерь
func TestCalculate_Success(t *testing.T) {
	svc := NewRawMaterialService(rawStorage("2.00", "0.05"))

	// на единицу: 1.5 * 2 * 2.00 = 6; партия 10 = 60; с потерями 60 * 1.05 = 63
	result, err := svc.Calculate(context.Background(), RawMaterialRequest{
		ProductTypeID:  1,
		MaterialTypeID: 2,
		Quantity:       10,
		Param1:         1.5,
		Param2:         2,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(63), result)
}

// Тест: дробный итог округляется вверх
func TestCalculate_CeilsFractionalResult(t *testing.T) {
	svc := NewRawMaterialService(rawStorage("1.95", "0"))

	result, err := svc.Calculate(context.Background(), RawMaterialRequest{
		ProductTypeID:  1,
		MaterialTypeID: 2,
		Quantity:       1,
		Param1:         1,
		Param2:         1,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), result)
}

// Тест: некорректные входные данные
func TestCalculate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  RawMaterialRequest
	}{
		{"нулевое количество", RawMaterialRequest{ProductTypeID: 1, MaterialTypeID: 2, Quantity: 0, Param1: 1, Param2: 1}},
		{"отрицательное количество", RawMaterialRequest{ProductTypeID: 1, MaterialTypeID: 2, Quantity: -5, Param1: 1, Param2: 1}},
		{"нулевой параметр", RawMaterialRequest{ProductTypeID: 1, MaterialTypeID: 2, Quantity: 1, Param1: 0, Param2: 1}},
		{"отрицательный параметр", RawMaterialRequest{ProductTypeID: 1, MaterialTypeID: 2, Quantity: 1, Param1: 1, Param2: -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := new(MockRawMaterialStorage)
			svc := NewRawMaterialService(mockStorage)

			_, err := svc.Calculate(context.Background(), tt.req)

			assert.ErrorIs(t, err, storage.ErrValidation)
			// до хранилища дело не дошло
			mockStorage.AssertNotCalled(t, "GetProductType")
			mockStorage.AssertNotCalled(t, "GetMaterialType")
		})
	}
}

// Тест: несуществующий справочник
func TestCalculate_UnknownProductType(t *testing.T) {
	m := new(MockRawMaterialStorage)
	m.On("GetProductType", mock.Anything, int64(99)).Return(nil, storage.ErrNotFound)
	m.On("GetMaterialType", mock.Anything, int64(2)).Return(&storage.MaterialType{
		ID:          2,
		Name:        "Дерево",
		LossPercent: decimal.RequireFromString("0.05"),
	}, nil).Maybe()

	svc := NewRawMaterialService(m)

	_, err := svc.Calculate(context.Background(), RawMaterialRequest{
		ProductTypeID:  99,
		MaterialTypeID: 2,
		Quantity:       1,
		Param1:         1,
		Param2:         1,
	})

	assert.ErrorIs(t, err, storage.ErrNotFound)
}

// Тест: некорректные значения в справочнике
func TestCalculate_BadCatalogValues(t *testing.T) {
	svc := NewRawMaterialService(rawStorage("0", "0.05"))

	_, err := svc.Calculate(context.Background(), RawMaterialRequest{
		ProductTypeID:  1,
		MaterialTypeID: 2,
		Quantity:       1,
		Param1:         1,
		Param2:         1,
	})

	assert.ErrorIs(t, err, storage.ErrValidation)
}
