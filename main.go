package main

import (
	"net/http"
	"os"
	"time"

	"campustimetable/config"
	"campustimetable/internal/adapters/chart"
	"campustimetable/internal/adapters/cru"
	"campustimetable/internal/adapters/ical"
	httpdelivery "campustimetable/internal/delivery/http"
	"campustimetable/internal/delivery/http/middleware"
	"campustimetable/internal/services"
)

// @title Campus Timetable API
// @version 1.0
// @description Scheduling queries over a parsed weekly timetable: room capacity and availability, free rooms, double-booking audit, capacity ranking, occupancy rates and calendar export.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	dataset, err := cru.LoadFile(cfg.DatasetPath)
	if err != nil {
		logger.Error("failed to load dataset", "path", cfg.DatasetPath, "err", err)
		os.Exit(1)
	}
	logger.Info("dataset loaded", "path", cfg.DatasetPath, "courses", len(dataset))

	analytics := services.NewAnalyticsService(dataset)
	timetable := services.NewTimetableService(dataset)

	timetableController := httpdelivery.NewTimetableController(logger, analytics, timetable)
	if cfg.ChartDataPath != "" {
		timetableController.ChartWriter = chart.NewOccupancyWriter()
		timetableController.ChartDataPath = cfg.ChartDataPath
	}
	exportController := httpdelivery.NewExportController(logger, ical.NewGenerator(), dataset)

	mux := httpdelivery.NewRouter(timetableController, exportController)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
