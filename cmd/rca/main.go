// RCA orchestrator server — provides the HTTP API, manages queue workers,
// and drives turn investigations.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vibemonitor/rca/pkg/agent"
	"github.com/vibemonitor/rca/pkg/api"
	"github.com/vibemonitor/rca/pkg/cleanup"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/database"
	"github.com/vibemonitor/rca/pkg/events"
	"github.com/vibemonitor/rca/pkg/guard"
	"github.com/vibemonitor/rca/pkg/llm"
	"github.com/vibemonitor/rca/pkg/providers"
	"github.com/vibemonitor/rca/pkg/providers/credentials"
	"github.com/vibemonitor/rca/pkg/queue"
	"github.com/vibemonitor/rca/pkg/services"
	"github.com/vibemonitor/rca/pkg/tools"
	"github.com/vibemonitor/rca/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting RCA orchestrator",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Credential cipher and domain services
	cipher, err := credentials.FromEnv(cfg.Credentials.KeyEnv)
	if err != nil {
		slog.Error("Failed to load credential encryption key",
			"env", cfg.Credentials.KeyEnv, "error", err)
		os.Exit(1)
	}

	integrationService := services.NewIntegrationService(dbClient.Client, cipher, cfg.LLM)
	sessionService := services.NewSessionService(dbClient.Client)
	turnService := services.NewTurnService(dbClient.Client)
	jobService := services.NewJobService(dbClient.Client)
	quotaService := services.NewQuotaService(dbClient.Client, dbClient.DB(), cfg.Quota)
	securityService := services.NewSecurityService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. LLM gateway and prompt guard
	gateway := llm.NewGateway(cfg.LLM, integrationService)
	promptGuard := guard.New(cfg.Guard, gateway, securityService)

	// 5. Streaming infrastructure: step publisher, in-process bus, and the
	// dedicated LISTEN connection feeding it
	publisher := events.NewPublisher(dbClient.DB())
	bus := events.NewBus()

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), bus)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	bus.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 6. Tool layer and investigation engine
	registry := providers.NewRegistry(integrationService)
	toolBuilder := tools.NewBuilder(registry, cfg.Agent)
	engine := agent.NewEngine(cfg.Agent, publisher)
	runner := queue.NewRunner(turnService, gateway, toolBuilder, engine)

	// 7. Retention sweeper
	retention := cleanup.NewService(cfg.Retention, sessionService)
	retention.Start(ctx)
	defer retention.Stop()

	// 8. Worker pool (before HTTP server, so claims start immediately)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, runner, jobService, turnService, publisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. HTTP server
	apiServer := api.NewServer(api.Deps{
		Config:       cfg,
		DB:           dbClient,
		Sessions:     sessionService,
		Turns:        turnService,
		Jobs:         jobService,
		Quota:        quotaService,
		Integrations: integrationService,
		Guard:        promptGuard,
		Registry:     registry,
		Publisher:    publisher,
		Bus:          bus,
		Listener:     notifyListener,
		Pool:         workerPool,
	})

	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("RCA orchestrator started",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop admitting, drain workers, then close the
	// stream connections.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — unfinished jobs will be requeued by orphan recovery")
	}

	slog.Info("Shutdown complete")
}
