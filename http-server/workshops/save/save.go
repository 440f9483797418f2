package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"furniture-backend/http-server/api"
	"furniture-backend/internal/storage"
)

type WorkshopSaver interface {
	SaveWorkshop(ctx context.Context, req storage.SaveWorkshop) (int64, error)
}

func SaveWorkshop(log *slog.Logger, saver WorkshopSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workshops.save.SaveWorkshop"

		var req storage.SaveWorkshop
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			api.BadRequest(w, r, "invalid JSON")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			api.BadRequest(w, r, "name is required")
			return
		}
		if req.WorkshopTypeID <= 0 {
			api.BadRequest(w, r, "workshop_type_id is required")
			return
		}
		if req.WorkersRequired <= 0 {
			api.BadRequest(w, r, "workers_required must be positive")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.SaveWorkshop(ctx, req)
		if err != nil {
			log.Error("Ошибка сохранения цеха", slog.String("op", op), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		log.Info("workshop created", slog.Int64("id", id), slog.String("name", req.Name))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, storage.Workshop{
			ID:              id,
			Name:            req.Name,
			WorkshopTypeID:  req.WorkshopTypeID,
			WorkersRequired: req.WorkersRequired,
		})
	}
}
