package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/solenne-labs/profilechat/internal/api/handlers"
	"github.com/solenne-labs/profilechat/internal/config"
	"github.com/solenne-labs/profilechat/internal/jobs"
	"github.com/solenne-labs/profilechat/internal/server"
	"github.com/solenne-labs/profilechat/internal/telemetry"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the chat API server",
		Long:  "Start the profile chat API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	cmd.Flags().Bool("no-migrate", false, "Skip automatic database migrations on startup")
	cmd.Flags().Bool("reindex", false, "Rebuild the embedding store before serving")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.SentryDSN != "" {
		// Default to 10% sampling outside development
		sampleRate := 0.1
		if cfg.SentryEnvironment == "development" {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: sampleRate,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	applyPortFlag(cmd, cfg)

	noMigrate, _ := cmd.Flags().GetBool("no-migrate")
	if cfg.HasPostgres() && !noMigrate {
		if err := runMigrations(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	a, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if reindex, _ := cmd.Flags().GetBool("reindex"); reindex {
		count, err := a.indexer.Run(ctx)
		if err != nil {
			return fmt.Errorf("failed to reindex on startup: %w", err)
		}
		log.Printf("startup reindex complete: %d chunks", count)
	}

	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()

	var watcher *jobs.Watcher
	if cfg.WatchProfile && !cfg.HasS3Profile() {
		watcher = jobs.NewWatcher(a.indexer, cfg.ProfilePath)
		go func() {
			if err := watcher.Start(watchCtx); err != nil {
				log.Printf("profile watcher failed: %v", err)
			}
		}()
		log.Println("profile watcher started")
	}

	router := server.NewRouter(server.RouterConfig{
		ChatHandler:      handlers.NewChatHandler(a.chat),
		RetrievalHandler: handlers.NewRetrievalHandler(a.retrieval, a.indexer),
		AdminToken:       cfg.AdminToken,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	cancelWatch()

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}

// applyPortFlag overrides the configured port only when the flag was set on
// the command line, so an explicit -p 8080 wins over PROFILECHAT_PORT.
func applyPortFlag(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetString("port")
	}
}

func runMigrations(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if err == migrate.ErrNilVersion {
		log.Println("migrations: database is up to date (no migrations applied)")
	} else if dirty {
		return fmt.Errorf("migration version %d is dirty - manual intervention required", version)
	} else {
		log.Printf("migrations: applied successfully (version %d)", version)
	}

	return nil
}
