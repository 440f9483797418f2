package update

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"furniture-backend/internal/storage"
)

type MockRouteStepUpdater struct {
	mock.Mock
}

func (m *MockRouteStepUpdater) UpdateRouteStep(ctx context.Context, productID, workshopID int64, req storage.UpdateRouteStep) error {
	args := m.Called(ctx, productID, workshopID, req)
	return args.Error(0)
}

func newTestRouter(updater RouteStepUpdater) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	r.Put("/api/products/{id}/workshops/{workshopID}", UpdateRouteStep(log, updater))
	return r
}

func TestUpdateRouteStep_Success(t *testing.T) {
	updater := new(MockRouteStepUpdater)
	updater.On("UpdateRouteStep", mock.Anything, int64(3), int64(5),
		mock.MatchedBy(func(req storage.UpdateRouteStep) bool {
			return req.Hours.String() == "4.25"
		})).Return(nil)

	body := `{"production_time_hours":4.25}`
	req := httptest.NewRequest(http.MethodPut, "/api/products/3/workshops/5", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	newTestRouter(updater).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got storage.RouteStep
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(3), got.ProductID)
	assert.Equal(t, int64(5), got.WorkshopID)
	assert.Equal(t, "4.25", got.Hours.String())

	updater.AssertExpectations(t)
}

func TestUpdateRouteStep_MissingPair(t *testing.T) {
	updater := new(MockRouteStepUpdater)
	updater.On("UpdateRouteStep", mock.Anything, int64(3), int64(99), mock.Anything).
		Return(storage.ErrNotFound)

	body := `{"production_time_hours":4.25}`
	req := httptest.NewRequest(http.MethodPut, "/api/products/3/workshops/99", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	newTestRouter(updater).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateRouteStep_NonPositiveHours(t *testing.T) {
	updater := new(MockRouteStepUpdater)

	body := `{"production_time_hours":0}`
	req := httptest.NewRequest(http.MethodPut, "/api/products/3/workshops/5", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	newTestRouter(updater).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	updater.AssertNotCalled(t, "UpdateRouteStep")
}
