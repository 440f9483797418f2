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

type ProductUpdater interface {
	UpdateProduct(ctx context.Context, id int64, req storage.UpdateProduct) error
	GetProduct(ctx context.Context, id int64) (*storage.Product, error)
}

func UpdateProduct(log *slog.Logger, updater ProductUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.products.update.UpdateProduct"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			api.BadRequest(w, r, "invalid product id")
			return
		}

		var req storage.UpdateProduct
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
		if req.Article != nil {
			trimmed := strings.TrimSpace(*req.Article)
			if trimmed == "" {
				api.BadRequest(w, r, "article must not be empty")
				return
			}
			req.Article = &trimmed
		}
		if req.ProductTypeID != nil && *req.ProductTypeID <= 0 {
			api.BadRequest(w, r, "product_type_id must be positive")
			return
		}
		if req.MaterialTypeID != nil && *req.MaterialTypeID <= 0 {
			api.BadRequest(w, r, "material_type_id must be positive")
			return
		}
		if req.MinPartnerPrice != nil && req.MinPartnerPrice.IsNegative() {
			api.BadRequest(w, r, "min_partner_price must not be negative")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateProduct(ctx, id, req); err != nil {
			log.Error("Ошибка обновления продукта", slog.String("op", op), slog.Int64("id", id), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		product, err := updater.GetProduct(ctx, id)
		if err != nil {
			log.Error("Ошибка чтения продукта после обновления", slog.String("op", op), slog.Int64("id", id), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		render.JSON(w, r, product)
	}
}
