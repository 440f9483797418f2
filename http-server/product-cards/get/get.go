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

type Cards interface {
	ProductCards(ctx context.Context) ([]storage.ProductCard, error)
}

func GetProductCards(log *slog.Logger, cards Cards) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.product-cards.get.GetProductCards"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := cards.ProductCards(ctx)
		if err != nil {
			log.Error("Ошибка получения карточек продукции", slog.String("op", op), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		render.JSON(w, r, list)
	}
}
