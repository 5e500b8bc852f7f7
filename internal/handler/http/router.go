package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/interntrack/interntrack-backend-go/internal/handler/http/middleware"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	timeLogHandler TimeLogHandler,
	profileHandler ProfileHandler,
	exportHandler ExportHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "interntrack"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/logs", func(r chi.Router) {
				r.Post("/", timeLogHandler.Create)
				r.Get("/", timeLogHandler.List)
				r.Get("/progress", timeLogHandler.Progress)
				r.Post("/refresh", timeLogHandler.Refresh)
				r.Put("/{key}", timeLogHandler.Update)
				r.Delete("/{key}", timeLogHandler.Delete)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.Get)
				r.Put("/", profileHandler.Update)
				r.Put("/goal", profileHandler.UpdateGoal)
			})

			r.Route("/exports", func(r chi.Router) {
				r.Get("/csv", exportHandler.DownloadCSV)
				r.Post("/csv/archive", exportHandler.ArchiveCSV)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Post("/assemble", reportHandler.Assemble)
				r.Get("/draft", reportHandler.GetDraft)
				r.Put("/draft", reportHandler.SaveDraft)
				r.Post("/draft/flush", reportHandler.FlushDraft)
				r.Post("/submit", reportHandler.Submit)
			})
		})
	})

	return r
}
