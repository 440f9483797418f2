package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	calculateraw "furniture-backend/http-server/calculate-raw"
	getcatalog "furniture-backend/http-server/catalog/get"
	generate_excel "furniture-backend/http-server/generate-report/generate-excel"
	getcards "furniture-backend/http-server/product-cards/get"
	delproducts "furniture-backend/http-server/products/delete"
	getproducts "furniture-backend/http-server/products/get"
	saveproducts "furniture-backend/http-server/products/save"
	upproducts "furniture-backend/http-server/products/update"
	delrouting "furniture-backend/http-server/routing/delete"
	getrouting "furniture-backend/http-server/routing/get"
	saverouting "furniture-backend/http-server/routing/save"
	uprouting "furniture-backend/http-server/routing/update"
	delworkshops "furniture-backend/http-server/workshops/delete"
	getworkshops "furniture-backend/http-server/workshops/get"
	saveworkshops "furniture-backend/http-server/workshops/save"
	upworkshops "furniture-backend/http-server/workshops/update"
	"furniture-backend/internal/config"
	"furniture-backend/internal/metrics"
	"furniture-backend/internal/service"
	"furniture-backend/internal/service/report"
	"furniture-backend/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage,
	cardService *service.CardService, rawService *service.RawMaterialService,
	reportService *report.ExcelService) *chi.Mux {

	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(metrics.Middleware)

	// Справочники
	router.Get("/api/product-types", getcatalog.GetProductTypes(log, storage))
	router.Get("/api/material-types", getcatalog.GetMaterialTypes(log, storage))
	router.Get("/api/workshop-types", getcatalog.GetWorkshopTypes(log, storage))

	// Цеха
	router.Get("/api/workshops", getworkshops.GetWorkshops(log, storage))
	router.Get("/api/workshops/{id}", getworkshops.GetWorkshop(log, storage))
	router.Post("/api/workshops", saveworkshops.SaveWorkshop(log, storage))
	router.Put("/api/workshops/{id}", upworkshops.UpdateWorkshop(log, storage))
	router.Delete("/api/workshops/{id}", delworkshops.DeleteWorkshop(log, storage))

	// Продукция
	router.Get("/api/products", getproducts.GetProducts(log, storage))
	router.Get("/api/products/{id}", getproducts.GetProduct(log, storage))
	router.Post("/api/products", saveproducts.SaveProduct(log, storage))
	router.Put("/api/products/{id}", upproducts.UpdateProduct(log, storage))
	router.Delete("/api/products/{id}", delproducts.DeleteProduct(log, storage))

	// Маршрут изготовления (продукт-цех)
	router.Get("/api/products/{id}/workshops", getrouting.GetRouteSteps(log, storage))
	router.Post("/api/products/{id}/workshops", saverouting.SaveRouteStep(log, storage))
	router.Put("/api/products/{id}/workshops/{workshopID}", uprouting.UpdateRouteStep(log, storage))
	router.Delete("/api/products/{id}/workshops/{workshopID}", delrouting.DeleteRouteStep(log, storage))

	// Карточки продукции с расчётом времени
	router.Get("/api/product-cards", getcards.GetProductCards(log, cardService))

	// Расчёт количества сырья
	router.Post("/api/calculate-raw-material", calculateraw.CalculateRawMaterial(log, rawService))

	// Генерация excel-отчёта
	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, reportService))

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if cfg.MetricsEnabled {
		router.Handle("/metrics", promhttp.Handler())
	}

	return router
}
