//GET  /api/v1/health          # Liveness probe (public)
//GET  /api/v1/records/{data}  # Decode a share link into a snapshot (public)
//POST /api/v1/tips            # Travel tips (disabled capability)
//POST /api/v1/analysis        # Family history analysis (disabled capability)
//POST /api/v1/chat            # Family history chat (disabled capability)
//GET  /view/{data}            # Read-only HTML render of a share link (public)

package api

import (
	healthAPI "healthsync/internal/app/server/api/http/health"
	"healthsync/internal/app/server/api/http/middleware"
	"healthsync/internal/app/server/api/http/middleware/logger"
	recordsAPI "healthsync/internal/app/server/api/http/records"
	tipsAPI "healthsync/internal/app/server/api/http/tips"
	"healthsync/internal/app/server/api/http/view"
	"healthsync/internal/domain/tips"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Records *recordsAPI.Handler
	Tips    *tipsAPI.Handler
}

// New builds a *chi.Mux with every JSON operation registered through huma,
// plus the plain HTML share view mounted directly on the mux.
func New(log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("HealthSync API", "1.0.0")

	API := humachi.New(mux, config)

	h := handlers(log)
	h.Health.SetupRoutes(API)
	h.Records.SetupRoutes(API)
	h.Tips.SetupRoutes(API)

	mux.Get("/view/{data}", view.Handler(log))

	return mux
}

func handlers(log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	recordsHandler := recordsAPI.NewHandler(log, middlewares.GetAllAndClear())

	tipsService := tips.NewService(log)
	middlewares.Add(loggerMW.Middleware())
	tipsHandler := tipsAPI.NewHandler(tipsService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Records: recordsHandler,
		Tips:    tipsHandler,
	}
}
