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

type ProductSaver interface {
	SaveProduct(ctx context.Context, req storage.SaveProduct) (int64, error)
}

func SaveProduct(log *slog.Logger, saver ProductSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.products.save.SaveProduct"

		var req storage.SaveProduct
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			api.BadRequest(w, r, "invalid JSON")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Article = strings.TrimSpace(req.Article)
		if req.Name == "" {
			api.BadRequest(w, r, "name is required")
			return
		}
		if req.Article == "" {
			api.BadRequest(w, r, "article is required")
			return
		}
		if req.ProductTypeID <= 0 {
			api.BadRequest(w, r, "product_type_id is required")
			return
		}
		if req.MaterialTypeID <= 0 {
			api.BadRequest(w, r, "material_type_id is required")
			return
		}
		if req.MinPartnerPrice.IsNegative() {
			api.BadRequest(w, r, "min_partner_price must not be negative")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.SaveProduct(ctx, req)
		if err != nil {
			log.Error("Ошибка сохранения продукта", slog.String("op", op), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		log.Info("product created", slog.Int64("id", id), slog.String("article", req.Article))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, storage.Product{
			ID:              id,
			Name:            req.Name,
			Article:         req.Article,
			ProductTypeID:   req.ProductTypeID,
			MaterialTypeID:  req.MaterialTypeID,
			MinPartnerPrice: req.MinPartnerPrice,
		})
	}
}
