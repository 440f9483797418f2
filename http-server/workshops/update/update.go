package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"furniture-backend/http-server/api"
	"furniture-backend/internal/storage"
)

type WorkshopUpdater interface {
	UpdateWorkshop(ctx context.Context, id int64, req storage.UpdateWorkshop) error
	GetWorkshop(ctx context.Context, id int64) (*storage.Workshop, error)
}

func UpdateWorkshop(log *slog.Logger, updater WorkshopUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workshops.update.UpdateWorkshop"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			api.BadRequest(w, r, "invalid workshop id")
			return
		}

		var req storage.UpdateWorkshop
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			api.BadRequest(w, r, "invalid JSON")
			return
		}

		if req.Name != nil {
			trimmed := strings.TrimSpace(*req.Name)
			if trimmed == "" {
				api.BadRequest(w, r, "name must not be empty")
				return
			}
			req.Name = &trimmed
		}
		if req.WorkshopTypeID != nil && *req.WorkshopTypeID <= 0 {
			api.BadRequest(w, r, "workshop_type_id must be positive")
			return
		}
		if req.WorkersRequired != nil && *req.WorkersRequired <= 0 {
			api.BadRequest(w, r, "workers_required must be positive")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateWorkshop(ctx, id, req); err != nil {
			log.Error("Ошибка обновления цеха", slog.String("op", op), slog.Int64("id", id), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		workshop, err := updater.GetWorkshop(ctx, id)
		if err != nil {
			log.Error("Ошибка чтения цеха после обновления", slog.String("op", op), slog.Int64("id", id), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		render.JSON(w, r, workshop)
	}
}
