package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	validator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/vegshop/internal/catalog"
	"github.com/noah-isme/vegshop/internal/checkout"
	"github.com/noah-isme/vegshop/internal/common"
	"github.com/noah-isme/vegshop/internal/config"
	"github.com/noah-isme/vegshop/internal/health"
	"github.com/noah-isme/vegshop/internal/obs"
	"github.com/noah-isme/vegshop/internal/security"
)

func main() {
	cfg := config.MustLoad()
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	obs.MustRegisterDomainMetrics(cfg.MetricsNamespace, nil)
	httpMetrics := obs.NewHTTPMetrics(cfg.MetricsNamespace, nil)

	repo := catalog.NewFileRepository(cfg.ProductsFile)
	svc, err := checkout.NewService(repo, nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("wire checkout service")
	}
	checkoutHandler := &checkout.Handler{
		Svc:      svc,
		Validate: validator.New(),
		Logger:   logger,
	}
	healthHandler := health.Handler{Checker: repo}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(security.Headers{Enable: true}.Middleware)
	r.Use(security.BodyLimit{Max: 1 << 20}.Middleware)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))
	}
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Use(httpMetrics.Middleware)

	r.Get("/healthz/live", healthHandler.Live)
	r.Get("/healthz/ready", healthHandler.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog/products", listProducts(repo))
		r.Post("/checkout/quote", checkoutHandler.Quote)
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	health.SetReady(false)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown http server")
	}
	logger.Info().Msg("server stopped")
}

type productList struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func listProducts(repo *catalog.FileRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := repo.All(r.Context())
		if err != nil {
			common.JSONError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "failed to load catalog", nil)
			return
		}
		out := make([]productList, 0, len(products))
		for _, p := range products {
			out = append(out, productList{Name: p.Name(), Price: p.Price()})
		}
		common.Data(w, http.StatusOK, out)
	}
}
