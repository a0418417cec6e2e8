// Package bootstrap builds the application dependency graph.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/resumes"
	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/server"
	"jobboard-backend/internal/shared/storage/db"
	"jobboard-backend/internal/shared/storage/object"
	localstore "jobboard-backend/internal/shared/storage/object/local"
	s3store "jobboard-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	ResumesRepo      resumes.Repo
	JobsRepo         jobs.JobsRepo
	ApplicationsRepo jobs.ApplicationsRepo

	ResumesService *resumes.Service
	JobsService    *jobs.Service

	ResumesHandler *resumes.Handler
	JobsHandler    *jobs.Handler
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	buildServices(app)

	if app.DB == nil && isDevLike(cfg.Env) {
		seedJobs(ctx, app.JobsRepo)
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		ResumesHandler: app.ResumesHandler,
		JobsHandler:    app.JobsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.JobsRepo = &jobs.PGJobsRepo{DB: app.DB}
		app.ApplicationsRepo = &jobs.PGApplicationsRepo{DB: app.DB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.JobsRepo = jobs.NewMemoryJobsRepo()
		app.ApplicationsRepo = jobs.NewMemoryApplicationsRepo()
	}

	app.ResumesService = &resumes.Service{
		Repo:  app.ResumesRepo,
		Store: app.Store,
	}
	app.JobsService = &jobs.Service{
		Jobs:         app.JobsRepo,
		Applications: app.ApplicationsRepo,
		Resumes:      app.ResumesRepo,
	}

	app.ResumesHandler = resumes.NewHandler(app.ResumesService)
	app.JobsHandler = jobs.NewHandler(app.JobsService)
}

// seedJobs populates sample listings so a fresh dev instance has
// something to browse and apply to.
func seedJobs(ctx context.Context, repo jobs.JobsRepo) {
	now := time.Now().UTC()
	samples := []jobs.Job{
		{
			Title:       "Backend Engineer",
			Company:     "Initech",
			Location:    "Remote",
			Description: "Build and operate Go services backed by Postgres.",
		},
		{
			Title:       "Data Engineer",
			Company:     "Hooli",
			Location:    "Austin, TX",
			Description: "Own ingestion pipelines in Python and SQL.",
		},
		{
			Title:       "Machine Learning Engineer",
			Company:     "Pied Piper",
			Location:    "San Francisco, CA",
			Description: "Ship ML-backed ranking features end to end.",
		},
	}

	for i, job := range samples {
		job.ID = uuid.NewString()
		job.Status = jobs.StatusOpen
		job.CreatedAt = now.Add(time.Duration(i) * time.Second)
		if err := repo.Create(ctx, job); err != nil {
			log.Printf("bootstrap: seed job %q failed: %v", job.Title, err)
		}
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
