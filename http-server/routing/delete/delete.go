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

type RouteStepDeleter interface {
	DeleteRouteStep(ctx context.Context, productID, workshopID int64) error
}

func DeleteRouteStep(log *slog.Logger, deleter RouteStepDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.routing.delete.DeleteRouteStep"

		productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			api.BadRequest(w, r, "invalid product id")
			return
		}
		workshopID, err := strconv.ParseInt(chi.URLParam(r, "workshopID"), 10, 64)
		if err != nil {
			api.BadRequest(w, r, "invalid workshop id")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteRouteStep(ctx, productID, workshopID); err != nil {
			log.Error("Ошибка удаления ребра маршрута", slog.String("op", op),
				slog.Int64("product_id", productID), slog.Int64("workshop_id", workshopID),
				slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
