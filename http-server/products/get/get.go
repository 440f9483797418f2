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

type Products interface {
	GetProducts(ctx context.Context) ([]storage.Product, error)
	GetProduct(ctx context.Context, id int64) (*storage.Product, error)
}

func GetProducts(log *slog.Logger, products Products) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.products.get.GetProducts"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := products.GetProducts(ctx)
		if err != nil {
			log.Error("Ошибка получения списка продукции", slog.String("op", op), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		render.JSON(w, r, list)
	}
}

func GetProduct(log *slog.Logger, products Products) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.products.get.GetProduct"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			api.BadRequest(w, r, "invalid product id")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		product, err := products.GetProduct(ctx, id)
		if err != nil {
			log.Error("Ошибка получения продукта", slog.String("op", op), slog.Int64("id", id), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		render.JSON(w, r, product)
	}
}
