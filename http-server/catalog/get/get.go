package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"furniture-backend/http-server/api"
	"furniture-backend/internal/storage"
)

type Catalogs interface {
	GetProductTypes(ctx context.Context) ([]storage.ProductType, error)
	GetMaterialTypes(ctx context.Context) ([]storage.MaterialType, error)
	GetWorkshopTypes(ctx context.Context) ([]storage.WorkshopType, error)
}

func GetProductTypes(log *slog.Logger, catalogs Catalogs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.get.GetProductTypes"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		types, err := catalogs.GetProductTypes(ctx)
		if err != nil {
			log.Error("Ошибка получения типов продукции", slog.String("op", op), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		render.JSON(w, r, types)
	}
}

func GetMaterialTypes(log *slog.Logger, catalogs Catalogs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.get.GetMaterialTypes"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		types, err := catalogs.GetMaterialTypes(ctx)
		if err != nil {
			log.Error("Ошибка получения типов материалов", slog.String("op", op), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		render.JSON(w, r, types)
	}
}

func GetWorkshopTypes(log *slog.Logger, catalogs Catalogs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.get.GetWorkshopTypes"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		types, err := catalogs.GetWorkshopTypes(ctx)
		if err != nil {
			log.Error("Ошибка получения типов цехов", slog.String("op", op), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		render.JSON(w, r, types)
	}
}
