package get

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"furniture-backend/internal/storage"
)

type MockCards struct {
	mock.Mock
}

func (m *MockCards) ProductCards(ctx context.Context) ([]storage.ProductCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ProductCard), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetProductCards_Success(t *testing.T) {
	cards := new(MockCards)
	cards.On("ProductCards", mock.Anything).Return([]storage.ProductCard{
		{
			ID:                  1,
			Name:                "Кресло Ампир",
			Article:             "KR-001",
			ProductType:         "Кресла",
			MaterialType:        "Дерево",
			MinPartnerPrice:     decimal.RequireFromString("5100.00"),
			ProductionTimeHours: 4,
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/product-cards", nil)
	rr := httptest.NewRecorder()

	GetProductCards(discardLogger(), cards).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got []storage.ProductCard
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Кресло Ампир", got[0].Name)
	assert.Equal(t, int64(4), got[0].ProductionTimeHours)

	cards.AssertExpectations(t)
}

func TestGetProductCards_Empty(t *testing.T) {
	cards := new(MockCards)
	cards.On("ProductCards", mock.Anything).Return([]storage.ProductCard{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/product-cards", nil)
	rr := httptest.NewRecorder()

	GetProductCards(discardLogger(), cards).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetProductCards_StorageError(t *testing.T) {
	cards := new(MockCards)
	cards.On("ProductCards", mock.Anything).Return(nil, errors.New("db down"))

	req := httptest.NewRequest(http.MethodGet, "/api/product-cards", nil)
	rr := httptest.NewRecorder()

	GetProductCards(discardLogger(), cards).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "db down")
}
