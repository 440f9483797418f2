package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"furniture-backend/http-server/api"
	"furniture-backend/internal/storage"
)

type RouteSteps interface {
	GetRouteSteps(ctx context.Context, productID int64) ([]storage.RouteStep, error)
}

func GetRouteSteps(log *slog.Logger, steps RouteSteps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.routing.get.GetRouteSteps"

		productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			api.BadRequest(w, r, "invalid product id")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := steps.GetRouteSteps(ctx, productID)
		if err != nil {
			log.Error("Ошибка получения маршрута продукта", slog.String("op", op), slog.Int64("product_id", productID), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		render.JSON(w, r, list)
	}
}
