// filepath: internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"miocouple/internal/api"
	"miocouple/internal/api/handlers"
	"miocouple/internal/audit"
	"miocouple/internal/config"
	"miocouple/internal/logging"
	"miocouple/internal/repository"
	"miocouple/internal/services"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile       string
	port          int
	logLevel      string
	dbPath        string
	uploadsRoot   string
	maxUploadSize string
	auditEnabled  bool
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "miocouple",
	Short: "Mio Couple API Server",
	Long:  `REST API backend for the Mio Couple web app: memory photos, feedback board, couple goals and love messages over a local SQLite store.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	StartTime = time.Now()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: MIO_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: MIO_LOG_LEVEL)")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database file. (Env: MIO_DATABASE_PATH)")

	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: MIO_PORT)")
	RootCmd.Flags().StringVar(&uploadsRoot, "uploads-root", "", "Directory for uploaded images. (Env: MIO_UPLOADS_ROOT)")
	RootCmd.Flags().StringVar(&maxUploadSize, "max-upload", "", "Max upload size (e.g. '10MB'). (Env: MIO_MAX_UPLOAD)")
	RootCmd.Flags().BoolVar(&auditEnabled, "audit-enabled", false, "Mirror audit events to the application log. (Env: MIO_AUDIT_ENABLED=true)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// Check environment variable for config path first
	if envPath := os.Getenv("MIO_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	applyOverrides(cfg, cmd)

	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	// --- 1. Environment Variables ---
	if v := os.Getenv("MIO_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("MIO_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MIO_AUDIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.AuditEnabled = b
		}
	}
	if v := os.Getenv("MIO_DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("MIO_UPLOADS_ROOT"); v != "" {
		c.Database.UploadsRoot = v
	}
	if v := os.Getenv("MIO_MAX_UPLOAD"); v != "" {
		c.Upload.MaxUploadSize = v
	}

	// --- 2. CLI Flags (Take precedence) ---
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
	if uploadsRoot != "" {
		c.Database.UploadsRoot = uploadsRoot
	}
	if maxUploadSize != "" {
		c.Upload.MaxUploadSize = maxUploadSize
	}
	if cmd.Flags().Changed("audit-enabled") {
		c.Logging.AuditEnabled = auditEnabled
	}

	// --- 3. Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 3001
	}
	if c.Database.Path == "" {
		c.Database.Path = "mio_couple.db"
	}
	if c.Database.UploadsRoot == "" {
		c.Database.UploadsRoot = "uploads"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	// A failed schema bootstrap aborts startup; serving requests against a
	// missing schema is never correct.
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return err
	}

	storageService := services.NewStorageService(cfg)
	if err := storageService.EnsureRoot(); err != nil {
		return fmt.Errorf("failed to create uploads directory: %w", err)
	}

	// Service Initialization
	infoService := services.NewInfoService(Version, StartTime)
	photoService := services.NewPhotoService(repo, storageService, cfg)
	feedbackService := services.NewFeedbackService(repo)
	goalService := services.NewGoalService(repo)
	messageService := services.NewMessageService(repo)
	weatherService := services.NewWeatherService(repo)

	// Auditor Initialization
	loggerAuditor := audit.NewLoggerAuditor(cfg.Logging.AuditEnabled)

	h := handlers.NewHandlers(
		infoService,
		photoService,
		feedbackService,
		goalService,
		messageService,
		weatherService,
		loggerAuditor,
		cfg,
	)

	r := api.SetupRouter(h, cfg.Database.UploadsRoot)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.Log.Infof("Mio Couple API Server running on %s (Max Upload: %s)", serverAddr, cfg.Upload.MaxUploadSize)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-stop
	logging.Log.Info("Shutting down server...")

	// Deadline for existing requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exited gracefully")
	return nil
}
