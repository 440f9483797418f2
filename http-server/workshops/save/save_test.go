package save

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"furniture-backend/http-server/api"
	"furniture-backend/internal/storage"
)

type MockWorkshopSaver struct {
	mock.Mock
}

func (m *MockWorkshopSaver) SaveWorkshop(ctx context.Context, req storage.SaveWorkshop) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSaveWorkshop_Success(t *testing.T) {
	saver := new(MockWorkshopSaver)
	saver.On("SaveWorkshop", mock.Anything, storage.SaveWorkshop{
		Name:            "Сборочный цех",
		WorkshopTypeID:  2,
		WorkersRequired: 7,
	}).Return(int64(15), nil)

	body := `{"name":"Сборочный цех","workshop_type_id":2,"workers_required":7}`
	req := httptest.NewRequest(http.MethodPost, "/api/workshops", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	SaveWorkshop(discardLogger(), saver).ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var got storage.Workshop
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(15), got.ID)
	assert.Equal(t, "Сборочный цех", got.Name)
	assert.Equal(t, 7, got.WorkersRequired)

	saver.AssertExpectations(t)
}

func TestSaveWorkshop_TrimsName(t *testing.T) {
	saver := new(MockWorkshopSaver)
	saver.On("SaveWorkshop", mock.Anything, storage.SaveWorkshop{
		Name:            "Цех",
		WorkshopTypeID:  1,
		WorkersRequired: 1,
	}).Return(int64(1), nil)

	body := `{"name":"  Цех  ","workshop_type_id":1,"workers_required":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/workshops", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	SaveWorkshop(discardLogger(), saver).ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	saver.AssertExpectations(t)
}

func TestSaveWorkshop_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"пустое имя", `{"name":"   ","workshop_type_id":1,"workers_required":3}`},
		{"нет типа цеха", `{"name":"Цех","workers_required":3}`},
		{"ноль рабочих", `{"name":"Цех","workshop_type_id":1,"workers_required":0}`},
		{"битый JSON", `{"name":`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			saver := new(MockWorkshopSaver)

			req := httptest.NewRequest(http.MethodPost, "/api/workshops", bytes.NewBufferString(tc.body))
			rr := httptest.NewRecorder()

			SaveWorkshop(discardLogger(), saver).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			saver.AssertNotCalled(t, "SaveWorkshop")
		})
	}
}

func TestSaveWorkshop_DuplicateName(t *testing.T) {
	saver := new(MockWorkshopSaver)
	saver.On("SaveWorkshop", mock.Anything, mock.Anything).
		Return(int64(0), &storage.ConflictError{Field: "name"})

	body := `{"name":"Цех","workshop_type_id":1,"workers_required":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/workshops", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	SaveWorkshop(discardLogger(), saver).ServeHTTP(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)

	var resp api.ErrResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "name", resp.Field)
}

func TestSaveWorkshop_UnknownWorkshopType(t *testing.T) {
	saver := new(MockWorkshopSaver)
	saver.On("SaveWorkshop", mock.Anything, mock.Anything).
		Return(int64(0), storage.ErrRefNotFound)

	body := `{"name":"Цех","workshop_type_id":99,"workers_required":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/workshops", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	SaveWorkshop(discardLogger(), saver).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
