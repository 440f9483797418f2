package delete

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"furniture-backend/http-server/api"
)

type WorkshopDeleter interface {
	DeleteWorkshop(ctx context.Context, id int64) error
}

// DeleteWorkshop отказывает с конфликтом, пока на цех ссылается хоть одно
// ребро маршрута — осиротевших маршрутов быть не должно.
func DeleteWorkshop(log *slog.Logger, deleter WorkshopDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workshops.delete.DeleteWorkshop"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			api.BadRequest(w, r, "invalid workshop id")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteWorkshop(ctx, id); err != nil {
			log.Error("Ошибка удаления цеха", slog.String("op", op), slog.Int64("id", id), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		log.Info("workshop deleted", slog.Int64("id", id))

		w.WriteHeader(http.StatusNoContent)
	}
}
