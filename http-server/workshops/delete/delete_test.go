package delete

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"furniture-backend/internal/storage"
)

type MockWorkshopDeleter struct {
	mock.Mock
}

func (m *MockWorkshopDeleter) DeleteWorkshop(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestRouter(deleter WorkshopDeleter) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	r.Delete("/api/workshops/{id}", DeleteWorkshop(log, deleter))
	return r
}

func TestDeleteWorkshop_Success(t *testing.T) {
	deleter := new(MockWorkshopDeleter)
	deleter.On("DeleteWorkshop", mock.Anything, int64(7)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/workshops/7", nil)
	rr := httptest.NewRecorder()

	newTestRouter(deleter).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	deleter.AssertExpectations(t)
}

func TestDeleteWorkshop_ReferencedByRoute(t *testing.T) {
	deleter := new(MockWorkshopDeleter)
	deleter.On("DeleteWorkshop", mock.Anything, int64(7)).Return(storage.ErrDependentRows)

	req := httptest.NewRequest(http.MethodDelete, "/api/workshops/7", nil)
	rr := httptest.NewRecorder()

	newTestRouter(deleter).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestDeleteWorkshop_NotFound(t *testing.T) {
	deleter := new(MockWorkshopDeleter)
	deleter.On("DeleteWorkshop", mock.Anything, int64(404)).Return(storage.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/workshops/404", nil)
	rr := httptest.NewRecorder()

	newTestRouter(deleter).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteWorkshop_BadID(t *testing.T) {
	deleter := new(MockWorkshopDeleter)

	req := httptest.NewRequest(http.MethodDelete, "/api/workshops/abc", nil)
	rr := httptest.NewRecorder()

	newTestRouter(deleter).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	deleter.AssertNotCalled(t, "DeleteWorkshop")
}
