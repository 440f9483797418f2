package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"furniture-backend/http-server/api"
	"furniture-backend/internal/storage"
)

type RouteStepUpdater interface {
	UpdateRouteStep(ctx context.Context, productID, workshopID int64, req storage.UpdateRouteStep) error
}

func UpdateRouteStep(log *slog.Logger, updater RouteStepUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.routing.update.UpdateRouteStep"

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

		var req storage.UpdateRouteStep
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			api.BadRequest(w, r, "invalid JSON")
			return
		}

		if !req.Hours.IsPositive() {
			api.BadRequest(w, r, "production_time_hours must be positive")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateRouteStep(ctx, productID, workshopID, req); err != nil {
			log.Error("Ошибка обновления ребра маршрута", slog.String("op", op),
				slog.Int64("product_id", productID), slog.Int64("workshop_id", workshopID),
				slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		render.JSON(w, r, storage.RouteStep{
			ProductID:  productID,
			WorkshopID: workshopID,
			Hours:      req.Hours,
		})
	}
}
