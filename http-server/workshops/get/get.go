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

type Workshops interface {
	GetWorkshops(ctx context.Context) ([]storage.Workshop, error)
	GetWorkshop(ctx context.Context, id int64) (*storage.Workshop, error)
}

func GetWorkshops(log *slog.Logger, workshops Workshops) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workshops.get.GetWorkshops"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := workshops.GetWorkshops(ctx)
		if err != nil {
			log.Error("Ошибка получения списка цехов", slog.String("op", op), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		render.JSON(w, r, list)
	}
}

func GetWorkshop(log *slog.Logger, workshops Workshops) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workshops.get.GetWorkshop"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			api.BadRequest(w, r, "invalid workshop id")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		workshop, err := workshops.GetWorkshop(ctx, id)
		if err != nil {
			log.Error("Ошибка получения цеха", slog.String("op", op), slog.Int64("id", id), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		render.JSON(w, r, workshop)
	}
}
