package calculate_raw

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"furniture-backend/internal/service"
	"furniture-backend/internal/storage"
)

type MockCalculator struct {
	mock.Mock
}

func (m *MockCalculator) Calculate(ctx context.Context, req service.RawMaterialRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCalculateRawMaterial_Success(t *testing.T) {
	calc := new(MockCalculator)
	calc.On("Calculate", mock.Anything, service.RawMaterialRequest{
		ProductTypeID:  1,
		MaterialTypeID: 2,
		Quantity:       10,
		Param1:         1.5,
		Param2:         2,
	}).Return(int64(63), nil)

	body := `{"product_type_id":1,"material_type_id":2,"quantity":10,"param1":1.5,"param2":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculate-raw-material", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	CalculateRawMaterial(discardLogger(), calc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"result":63}`, rr.Body.String())

	calc.AssertExpectations(t)
}

// Неподходящие входные данные и несуществующие справочники не являются
// ошибкой HTTP: контракт расчёта — 200 с result: -1.
func TestCalculateRawMaterial_MinusOneContract(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"невалидные параметры", storage.Validationf("quantity must be positive")},
		{"нет такого типа продукции", storage.ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			calc := new(MockCalculator)
			calc.On("Calculate", mock.Anything, mock.Anything).Return(int64(0), tc.err)

			body := `{"product_type_id":99,"material_type_id":2,"quantity":0,"param1":1,"param2":1}`
			req := httptest.NewRequest(http.MethodPost, "/api/calculate-raw-material", bytes.NewBufferString(body))
			rr := httptest.NewRecorder()

			CalculateRawMaterial(discardLogger(), calc).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"result":-1}`, rr.Body.String())
		})
	}
}

func TestCalculateRawMaterial_BadJSON(t *testing.T) {
	calc := new(MockCalculator)

	req := httptest.NewRequest(http.MethodPost, "/api/calculate-raw-material", bytes.NewBufferString(`{"quantity":`))
	rr := httptest.NewRecorder()

	CalculateRawMaterial(discardLogger(), calc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	calc.AssertNotCalled(t, "Calculate")
}

func TestCalculateRawMaterial_StorageError(t *testing.T) {
	calc := new(MockCalculator)
	calc.On("Calculate", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

	body := `{"product_type_id":1,"material_type_id":2,"quantity":1,"param1":1,"param2":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculate-raw-material", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	CalculateRawMaterial(discardLogger(), calc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
