package calculate_raw

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"furniture-backend/http-server/api"
	"furniture-backend/internal/service"
	"furniture-backend/internal/storage"
)

type Calculator interface {
	Calculate(ctx context.Context, req service.RawMaterialRequest) (int64, error)
}

type calcResponse struct {
	Result int64 `json:"result"`
}

// CalculateRawMaterial — обёртка над сервисным расчётом количества сырья.
// Неподходящие данные и несуществующие справочники отдаются как result: -1,
// этот контракт ожидают внешние потребители расчёта.
func CalculateRawMaterial(log *slog.Logger, calc Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculate-raw.CalculateRawMaterial"

		var req service.RawMaterialRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			api.BadRequest(w, r, "invalid JSON")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := calc.Calculate(ctx, req)
		if err != nil {
			if errors.Is(err, storage.ErrValidation) || errors.Is(err, storage.ErrNotFound) {
				render.JSON(w, r, calcResponse{Result: -1})
				return
			}
			log.Error("Ошибка расчёта количества сырья", slog.String("op", op), slog.String("error", err.Error()))
			api.Error(w, r, err)
			return
		}

		render.JSON(w, r, calcResponse{Result: result})
	}
}
