package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"furniture-backend/internal/storage"
)

type ErrResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
}

// Error переводит классифицированную ошибку в HTTP-ответ: Validation -> 400,
// NotFound -> 404, Conflict и блокировка по зависимым строкам -> 409,
// всё неклассифицированное -> 500 без деталей наружу.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var conflict *storage.ConflictError
	var validation *storage.ValidationError

	switch {
	case errors.As(err, &conflict):
		write(w, r, http.StatusConflict, ErrResponse{
			Status: "error",
			Error:  conflict.Error(),
			Field:  conflict.Field,
		})
	case errors.Is(err, storage.ErrDependentRows):
		write(w, r, http.StatusConflict, ErrResponse{
			Status: "error",
			Error:  "entity is referenced by other rows",
		})
	case errors.As(err, &validation):
		write(w, r, http.StatusBadRequest, ErrResponse{
			Status: "error",
			Error:  validation.Msg,
		})
	case errors.Is(err, storage.ErrValidation):
		write(w, r, http.StatusBadRequest, ErrResponse{
			Status: "error",
			Error:  "validation failed",
		})
	case errors.Is(err, storage.ErrRefNotFound):
		write(w, r, http.StatusNotFound, ErrResponse{
			Status: "error",
			Error:  "referenced entity not found",
		})
	case errors.Is(err, storage.ErrNotFound):
		write(w, r, http.StatusNotFound, ErrResponse{
			Status: "error",
			Error:  "not found",
		})
	default:
		write(w, r, http.StatusInternalServerError, ErrResponse{
			Status: "error",
			Error:  "internal server error",
		})
	}
}

// BadRequest — ошибка входных данных, найденная ещё до обращения к хранилищу.
func BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	write(w, r, http.StatusBadRequest, ErrResponse{Status: "error", Error: msg})
}

func write(w http.ResponseWriter, r *http.Request, code int, resp ErrResponse) {
	render.Status(r, code)
	render.JSON(w, r, resp)
}
