package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/config"
	appHTTP "github.com/interntrack/interntrack-backend-go/internal/handler/http"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/database"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/jwt"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/storage"
	"github.com/interntrack/interntrack-backend-go/internal/repository/postgresql"
	exportService "github.com/interntrack/interntrack-backend-go/internal/service/export"
	profileService "github.com/interntrack/interntrack-backend-go/internal/service/profile"
	reportService "github.com/interntrack/interntrack-backend-go/internal/service/report"
	timelogService "github.com/interntrack/interntrack-backend-go/internal/service/timelog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	timeLogRepo := postgresql.NewTimeLogRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	draftRepo := postgresql.NewDraftRepository(db)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	logService := timelogService.NewLogService(timeLogRepo, profileRepo, cfg.Goal.RequiredHours)
	profileSvc := profileService.NewProfileService(profileRepo)
	exportSvc := exportService.NewExportService(logService, profileRepo, fileStorage)
	reportSvc := reportService.NewReportService(logService, draftRepo, cfg.Draft.SaveDebounce)

	timeLogHandler := appHTTP.NewTimeLogHandler(logService)
	profileHandler := appHTTP.NewProfileHandler(profileSvc)
	exportHandler := appHTTP.NewExportHandler(exportSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtService,
		timeLogHandler,
		profileHandler,
		exportHandler,
		reportHandler,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error:", err)
		}
	}()

	<-ctx.Done()

	// Pending report drafts go to the cache before the listener dies.
	reportSvc.FlushAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
