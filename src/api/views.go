package api

import (
	"net/http"
	"time"

	handlers "lmsconnector/src/api/handlers"
	"lmsconnector/src/config"
	"lmsconnector/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
	Logger  logrus.FieldLogger
}

func NewServer(handler *handlers.Handler, logger logrus.FieldLogger) *Server {
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handler,
		Logger:  logger,
	}
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(middleware.RequestID)
	s.Router.Use(RequestLogger(s.Logger))
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(cors.AllowAll().Handler)

	s.Router.Get("/health", s.Handler.Healthcheck)

	s.Router.Route("/sync", func(r chi.Router) {
		r.Get("/", s.Handler.Sync)
		r.Get("/logs", s.Handler.GetSyncLogs)
		r.Get("/logs/{id}", s.Handler.GetSyncLogByID)
	})

	s.Router.Post("/students", s.Handler.CreateStudent)
	s.Router.Post("/connections", s.Handler.CreateConnection)
}

func NewHTTPServer(server *Server, cfg config.ServiceConfig) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Handler:      server,
	}
	return httpServer
}

// RequestLogger stores a request-scoped logger in the request context and
// logs every completed request.
func RequestLogger(logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			entry := logger.WithFields(logrus.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
			})
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(utils.WithLogger(r.Context(), entry)))

			entry.WithFields(logrus.Fields{
				"status":   ww.Status(),
				"duration": time.Since(start).String(),
			}).Info("request completed")
		})
	}
}
