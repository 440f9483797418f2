package save

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

type RouteStepSaver interface {
	SaveRouteStep(ctx context.Context, productID int64, req storage.SaveRouteStep) (int64, error)
}

// SaveRouteStep добавляет цех в маршрут продукта. Повторная привязка того же
// цеха — конфликт: для изменения часов есть PUT.
func SaveRouteStep(log *slog.Logger, saver RouteStepSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.routing.save.SaveRouteStep"

		productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			api.BadRequest(w, r, "invalid product id")
			return
		}

		var req storage.SaveRouteStep
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			api.BadRequest(w, r, "invalid JSON")
			return
		}

		if req.WorkshopID <= 0 {
			api.BadRequest(w, r, "workshop_id is required")
			return
		}
		if !req.Hours.IsPositive() {
			api.BadRequest(w, r, "production_time_hours must be positive")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.SaveRouteStep(ctx, productID, req)
		if err != nil {
			log.Error("Ошибка добавления ребра маршрута", slog.String("op", op),
				slog.Int64("product_id", productID), slog.Int64("workshop_id", req.WorkshopID),
				slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		log.Info("route step created",
			slog.Int64("product_id", productID), slog.Int64("workshop_id", req.WorkshopID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, storage.RouteStep{
			ID:         id,
			ProductID:  productID,
			WorkshopID: req.WorkshopID,
			Hours:      req.Hours,
		})
	}
}
