package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"Spectra/internal/auth"
	"Spectra/internal/calc/asce7"
	"Spectra/internal/calc/batch"
	"Spectra/internal/calc/codes"
	"Spectra/internal/calc/compare"
	"Spectra/internal/calc/gb50011"
	"Spectra/internal/calc/report"
	"Spectra/internal/calc/sheet"
	"Spectra/internal/calc/wind"
	"Spectra/internal/observability"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessChecker reports whether backing services can take traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

type Deps struct {
	Logger  *slog.Logger
	Metrics *observability.Metrics
	// Auth is nil when no user database is configured; tools are then public.
	Auth    *auth.Authenv
	Limiter *auth.IPRateLimiter
	Ready   ReadinessChecker
	Clock   clockwork.Clock
	// Gatherer backs /metrics. Nil means the default registry.
	Gatherer      prometheus.Gatherer
	BatchMaxItems int
}

type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

func NewServer(addr string, d Deps) *Server {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(d),
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger: d.Logger,
	}
}

// Start listens with TLS when both files are given. Returns
// http.ErrServerClosed on graceful shutdown.
func (s *Server) Start(certFile, keyFile string) error {
	if certFile != "" && keyFile != "" {
		s.logger.Info("https server starting", "addr", s.httpServer.Addr)
		return s.httpServer.ListenAndServeTLS(certFile, keyFile)
	}
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// NewRouter builds the full route table wrapped in CORS.
func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/readyz", handleReady(d.Ready)).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	if d.Limiter != nil {
		api.Use(d.Limiter.LimitMiddleware)
	}
	api.HandleFunc("/options", handleOptions).Methods(http.MethodGet)

	tools := api.PathPrefix("/tools").Subrouter()
	if d.Auth != nil {
		api.HandleFunc("/login", d.Auth.LoginHandler).Methods(http.MethodPost)
		api.HandleFunc("/register", d.Auth.RegisterHandler).Methods(http.MethodPost)
		tools.Use(d.Auth.AuthMiddleware)
		api.Handle("/me", d.Auth.AuthMiddleware(http.HandlerFunc(d.Auth.MeHandler))).Methods(http.MethodGet)
	}

	gbH := &gb50011.Handler{Logger: d.Logger, Metrics: d.Metrics}
	usH := &asce7.Handler{Logger: d.Logger, Metrics: d.Metrics}
	compareH := &compare.Handler{Logger: d.Logger, Metrics: d.Metrics}
	windH := &wind.Handler{Logger: d.Logger, Metrics: d.Metrics}
	batchH := &batch.Handler{MaxItems: d.BatchMaxItems, Logger: d.Logger, Metrics: d.Metrics}
	sheetH := &sheet.Handler{Logger: d.Logger, Metrics: d.Metrics}
	reportH := &report.Handler{Generator: report.NewGenerator(d.Clock), Logger: d.Logger, Metrics: d.Metrics}

	tools.HandleFunc("/gb50011/calc", gbH.Calc).Methods(http.MethodPost)
	tools.HandleFunc("/gb50011/lookup", gbH.Lookup).Methods(http.MethodGet)
	tools.HandleFunc("/asce7/calc", usH.Calc).Methods(http.MethodPost)
	tools.HandleFunc("/asce7/site-coefficients", usH.SiteCoefficients).Methods(http.MethodGet)
	tools.HandleFunc("/compare/calc", compareH.Calc).Methods(http.MethodPost)
	tools.HandleFunc("/compare/defaults", compareH.Defaults).Methods(http.MethodGet)
	tools.HandleFunc("/compare/xlsx", sheetH.ExportCompare).Methods(http.MethodPost)
	tools.HandleFunc("/wind/calc", windH.Calc).Methods(http.MethodPost)
	tools.HandleFunc("/wind/batch", batchH.Wind).Methods(http.MethodPost)
	tools.HandleFunc("/wind/import", sheetH.ImportWind).Methods(http.MethodPost)
	tools.HandleFunc("/report/pdf", reportH.Generate).Methods(http.MethodPost)

	return CORS(accessLog(d.Logger, r))
}

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func accessLog(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker == nil {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func handleOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, codes.AllOptions())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
