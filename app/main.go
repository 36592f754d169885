package main

import (
	"html/template"
	"log/slog"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/caiofernandes/blogo/internal/common"
	"github.com/caiofernandes/blogo/internal/postservice"
)

type application struct {
	config        *Config
	logger        *slog.Logger
	postService   *postservice.PostService
	templateCache map[string]*template.Template
}

func main() {
	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the database
	db, err := common.NewDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	// Parse the view templates once at startup
	templateCache, err := newTemplateCache()
	if err != nil {
		logger.Error("failed to build the template cache", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app := &application{
		config:        cfg,
		logger:        logger,
		postService:   postservice.NewPostService(db),
		templateCache: templateCache,
	}

	// Start the HTTP server
	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
