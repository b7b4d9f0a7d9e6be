package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/catalog"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/character"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/database"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/economy"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/handler"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/logger"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/metrics"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/user"
)

// Options configures the HTTP surface.
type Options struct {
	Addr           string
	APIKey         string
	Version        string
	TrustedProxies []string
	MaxBodyBytes   int64
	Detector       DetectorConfig
}

// Services are the application services the routes call into.
type Services struct {
	DB         database.Pool
	Users      user.Service
	Characters character.Service
	Economy    economy.Service
	Catalog    catalog.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              opts.Addr,
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the full middleware stack and route table.
func NewRouter(opts Options, svc Services) http.Handler {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.Detector)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DB))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", handler.HandleRegisterUser(svc.Users))

		r.Route("/characters", func(r chi.Router) {
			r.Post("/", handler.HandleCreateCharacter(svc.Characters))

			r.Route("/{characterID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetCharacter(svc.Characters))
				r.Delete("/", handler.HandleDeleteCharacter(svc.Characters))

				r.Get("/inventory", handler.HandleGetInventory(svc.Economy))
				r.Get("/items", handler.HandleGetEquipped(svc.Economy))

				r.Post("/purchase", handler.HandlePurchase(svc.Economy))
				r.Post("/sell", handler.HandleSell(svc.Economy))
				r.Post("/equip", handler.HandleEquip(svc.Economy))
				r.Post("/unequip", handler.HandleUnequip(svc.Economy))
				r.Post("/earn-money", handler.HandleEarnMoney(svc.Economy))
			})
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(svc.Catalog))
			r.Post("/", handler.HandleCreateItem(svc.Catalog))
			r.Get("/{itemCode}", handler.HandleGetItem(svc.Catalog))
			r.Put("/{itemCode}", handler.HandleUpdateItem(svc.Catalog))
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// requestID reuses a caller-supplied id when it is short and printable.
func requestID(r *http.Request) string {
	id := r.Header.Get(HeaderRequestID)
	if id == "" || len(id) > MaxRequestIDLength {
		return logger.GenerateRequestID()
	}
	for _, c := range id {
		if c < 0x21 || c > 0x7e {
			return logger.GenerateRequestID()
		}
	}
	return id
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		id := requestID(r)
		w.Header().Set(HeaderRequestID, id)

		ctx := logger.WithRequestID(r.Context(), id)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		if log.Enabled(ctx, slog.LevelDebug) {
			sanitized := make(http.Header, len(r.Header))
			for k, v := range r.Header {
				if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
					sanitized[k] = []string{RedactedValue}
				} else {
					sanitized[k] = v
				}
			}
			log.Debug(LogMsgRequestHeaders, "headers", sanitized)
		}

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called. It returns http.ErrServerClosed after
// a graceful stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
