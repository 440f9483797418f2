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

type ProductDeleter interface {
	DeleteProduct(ctx context.Context, id int64) error
}

// DeleteProduct удаляет продукт вместе со всем его маршрутом: рёбра
// принадлежат продукту и уходят каскадом.
func DeleteProduct(log *slog.Logger, deleter ProductDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.products.delete.DeleteProduct"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			api.BadRequest(w, r, "invalid product id")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteProduct(ctx, id); err != nil {
			log.Error("Ошибка удаления продукта", slog.String("op", op), slog.Int64("id", id), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		log.Info("product deleted", slog.Int64("id", id))

		w.WriteHeader(http.StatusNoContent)
	}
}
