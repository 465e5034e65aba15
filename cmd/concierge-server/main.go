package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/luxestay/concierge/internal/booking"
	"github.com/luxestay/concierge/internal/chat"
	"github.com/luxestay/concierge/internal/config"
	"github.com/luxestay/concierge/internal/notify"
	"github.com/luxestay/concierge/internal/oracle"
)

// AppState holds all application services
type AppState struct {
	Store  *chat.PostgresStore
	Chat   chat.ChatManager
	Mailer *notify.Mailer
	Logger *zap.Logger
	Config *config.Config
}

func main() {
	// Load .env before configuration so env overrides see its values
	_ = godotenv.Load()

	config.Load()

	// Initialize logger with config
	logger := initLogger()

	logEnvSummary(logger)

	if err := config.Get().Validate(); err != nil {
		logger.Fatal("Missing required configuration. Please check your .env file.", zap.Error(err))
	}

	// Initialize application state
	as, err := newAppState(logger)
	if err != nil {
		logger.Fatal("Failed to initialize application state", zap.Error(err))
	}

	// Prepare the conversation store schema
	ctx := context.Background()
	db := chat.OpenDB(config.Postgres().DSN(), config.Postgres().MaxOpenConnections)
	if err := chat.CreateTables(ctx, db); err != nil {
		logger.Fatal("Failed to create tables", zap.Error(err))
	}
	if err := chat.CreateIndexes(ctx, db); err != nil {
		logger.Fatal("Failed to create indexes", zap.Error(err))
	}
	as.Store = chat.NewPostgresStore(db)
	as.Chat = newChatService(as, logger)

	// Confirm the SMTP server is reachable; booking confirmations degrade
	// gracefully if it is not, so this does not block startup.
	if err := as.Mailer.Verify(ctx); err != nil {
		logger.Error("SMTP connection error", zap.Error(err))
	} else {
		logger.Info("SMTP server is ready to take our messages")
	}

	// Create HTTP server
	router := setupRouter(as)

	addr := fmt.Sprintf("%s:%d", config.Http().Host, config.Http().Port)

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Setup graceful shutdown
	done := setupSignalHandler(server, logger)

	// Start server
	logger.Info("Starting concierge server", zap.String("address", addr))

	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", zap.Error(err))
	}

	<-done
	logger.Info("Server shutdown complete")
}

// newAppState creates the application state with every external client
// constructed exactly once. The store and chat service are attached in main
// after migrations run.
func newAppState(logger *zap.Logger) (*AppState, error) {
	smtpCfg := config.Smtp()
	mailer, err := notify.NewMailer(notify.MailerConfig{
		Host:      smtpCfg.Host,
		Port:      smtpCfg.Port,
		User:      smtpCfg.User,
		Password:  smtpCfg.Password,
		Secure:    smtpCfg.Secure,
		FromEmail: smtpCfg.FromEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}

	return &AppState{
		Mailer: mailer,
		Logger: logger,
		Config: config.Get(),
	}, nil
}

// newChatService wires the chat orchestration with its injected collaborators
func newChatService(as *AppState, logger *zap.Logger) *chat.Service {
	oracleClient := oracle.NewOpenAIClient(config.OpenAI().APIKey, config.OpenAI().Model)

	bookingCfg := config.Booking()
	bookingClient := booking.NewClient(
		bookingCfg.RoomsURL,
		bookingCfg.BookingURL,
		time.Duration(bookingCfg.TimeoutSeconds)*time.Second,
	)

	notifier := notify.NewRetryingNotifier(as.Mailer, logger)

	return chat.NewService(as.Store, oracleClient, bookingClient, notifier, logger)
}

func initLogger() *zap.Logger {
	logConfig := config.Logger()

	var cfg zap.Config
	if logConfig.Format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	// Set log level
	switch logConfig.Level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	return logger
}

// logEnvSummary reports which deployment variables are present. Secrets are
// masked as SET/NOT SET.
func logEnvSummary(logger *zap.Logger) {
	logger.Info("Environment variables",
		zap.String("SMTP_HOST", os.Getenv("SMTP_HOST")),
		zap.String("SMTP_PORT", os.Getenv("SMTP_PORT")),
		zap.String("SMTP_USER", os.Getenv("SMTP_USER")),
		zap.String("SMTP_PASS", maskSecret(os.Getenv("SMTP_PASS"))),
		zap.String("FROM_EMAIL", os.Getenv("FROM_EMAIL")),
		zap.String("OPENAI_API_KEY", maskSecret(os.Getenv("OPENAI_API_KEY"))),
		zap.String("SERVER_PORT", os.Getenv("SERVER_PORT")))
}

func maskSecret(value string) string {
	if value == "" {
		return "NOT SET"
	}
	return "SET"
}

func setupRouter(as *AppState) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Add CORS middleware
	router.Use(cors.Default())

	// Add logging middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Health endpoint
	router.GET("/health", healthCheck(as))

	router.POST("/chat", postChat(as))

	return router
}

func setupSignalHandler(server *http.Server, logger *zap.Logger) chan struct{} {
	done := make(chan struct{}, 1)

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signalCh

		logger.Info("Shutting down server...")

		// Create context with timeout for graceful shutdown
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Shutdown server
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Error during server shutdown", zap.Error(err))
		}

		done <- struct{}{}
	}()

	return done
}

// postChat handles one inbound chat turn
func postChat(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chat.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if req.SessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
			return
		}

		reply, err := as.Chat.HandleTurn(c.Request.Context(), req.SessionID, req.Message)
		if err != nil {
			as.Logger.Error("Failed to handle chat turn",
				zap.String("session_id", req.SessionID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred"})
			return
		}

		c.JSON(http.StatusOK, chat.ChatResponse{Message: reply})
	}
}

// healthCheck reports store connectivity
func healthCheck(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := as.Store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"timestamp": time.Now().Format(time.RFC3339),
				"error":     err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"services": gin.H{
				"database": "healthy",
			},
		})
	}
}
