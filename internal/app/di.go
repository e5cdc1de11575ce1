// Package app provides the dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/mottuflow/fleetflow/internal/auth/http"
	authService "github.com/mottuflow/fleetflow/internal/auth/service"
	authUsecase "github.com/mottuflow/fleetflow/internal/auth/usecase"
	"github.com/mottuflow/fleetflow/internal/config"
	"github.com/mottuflow/fleetflow/internal/database"
	fleetHTTP "github.com/mottuflow/fleetflow/internal/fleet/http"
	fleetRepository "github.com/mottuflow/fleetflow/internal/fleet/repository"
	fleetUsecase "github.com/mottuflow/fleetflow/internal/fleet/usecase"
	"github.com/mottuflow/fleetflow/internal/http"
	maintenanceHTTP "github.com/mottuflow/fleetflow/internal/maintenance/http"
	maintenanceService "github.com/mottuflow/fleetflow/internal/maintenance/service"
	"github.com/mottuflow/fleetflow/internal/metrics"
	staffHTTP "github.com/mottuflow/fleetflow/internal/staff/http"
	staffRepository "github.com/mottuflow/fleetflow/internal/staff/repository"
	staffUsecase "github.com/mottuflow/fleetflow/internal/staff/usecase"
)

// fleetUseCases groups the fleet business logic components.
type fleetUseCases struct {
	yard       fleetUsecase.YardUseCase
	motorcycle fleetUsecase.MotorcycleUseCase
	camera     fleetUsecase.CameraUseCase
	arucoTag   fleetUsecase.ArucoTagUseCase
	location   fleetUsecase.LocationRecordUseCase
	status     fleetUsecase.StatusRecordUseCase
}

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Managers
	txManager database.TxManager

	// Services
	secretService authService.SecretService
	tokenCodec    authService.TokenCodec
	predictor     *maintenanceService.Predictor

	// Use Cases
	staffUseCase staffUsecase.UseCase
	authUseCase  authUsecase.AuthUseCase
	fleet        *fleetUseCases

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	txManagerInit       sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	secretServiceInit   sync.Once
	tokenCodecInit      sync.Once
	predictorInit       sync.Once
	staffUseCaseInit    sync.Once
	authUseCaseInit     sync.Once
	fleetInit           sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := c.initDB()
		if err != nil {
			c.initErrors["db"] = err
			return
		}
		c.db = db
	})
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["txManager"] = fmt.Errorf("failed to get database for tx manager: %w", err)
			return
		}
		c.txManager = database.NewTxManager(db)
	})
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the Prometheus metrics provider.
// It returns nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = fmt.Errorf("failed to create metrics provider: %w", err)
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// It returns a no-op recorder when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = fmt.Errorf("failed to create business metrics: %w", err)
			return
		}
		c.businessMetrics = bm
	})
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// SecretService returns the password hashing service.
func (c *Container) SecretService() authService.SecretService {
	c.secretServiceInit.Do(func() {
		c.secretService = authService.NewSecretService()
	})
	return c.secretService
}

// TokenCodec returns the token encode/decode service.
func (c *Container) TokenCodec() authService.TokenCodec {
	c.tokenCodecInit.Do(func() {
		c.tokenCodec = authService.NewJWTCodec(
			[]byte(c.config.JWTSigningKey),
			c.config.JWTIssuer,
			c.config.JWTAudience,
			c.config.JWTExpiration,
		)
	})
	return c.tokenCodec
}

// Predictor returns the maintenance prediction service.
func (c *Container) Predictor() *maintenanceService.Predictor {
	c.predictorInit.Do(func() {
		c.predictor = maintenanceService.NewPredictor()
	})
	return c.predictor
}

// StaffUseCase returns the staff use case instance, instrumented with metrics.
func (c *Container) StaffUseCase() (staffUsecase.UseCase, error) {
	c.staffUseCaseInit.Do(func() {
		useCase, err := c.initStaffUseCase()
		if err != nil {
			c.initErrors["staffUseCase"] = err
			return
		}
		c.staffUseCase = useCase
	})
	if storedErr, exists := c.initErrors["staffUseCase"]; exists {
		return nil, storedErr
	}
	return c.staffUseCase, nil
}

// AuthUseCase returns the credential verifier instance, instrumented with metrics.
func (c *Container) AuthUseCase() (authUsecase.AuthUseCase, error) {
	c.authUseCaseInit.Do(func() {
		useCase, err := c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
			return
		}
		c.authUseCase = useCase
	})
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// FleetUseCases returns the fleet use case instances.
func (c *Container) FleetUseCases() (*fleetUseCases, error) {
	c.fleetInit.Do(func() {
		useCases, err := c.initFleetUseCases()
		if err != nil {
			c.initErrors["fleet"] = err
			return
		}
		c.fleet = useCases
	})
	if storedErr, exists := c.initErrors["fleet"]; exists {
		return nil, storedErr
	}
	return c.fleet, nil
}

// HTTPServer returns the HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus metrics server instance.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
// The repositories are PostgreSQL-specific, so other drivers are rejected here.
func (c *Container) initDB() (*sql.DB, error) {
	if c.config.DBDriver != "postgres" {
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initStaffUseCase creates the staff use case with all its dependencies.
func (c *Container) initStaffUseCase() (staffUsecase.UseCase, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for staff use case: %w", err)
	}

	useCase, err := staffUsecase.NewStaffUseCase(staffRepository.NewPostgreSQLStaffRepository(db))
	if err != nil {
		return nil, fmt.Errorf("failed to create staff use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}

	return staffUsecase.NewStaffUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initAuthUseCase creates the credential verifier with all its dependencies.
func (c *Container) initAuthUseCase() (authUsecase.AuthUseCase, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for auth use case: %w", err)
	}

	useCase, err := authUsecase.NewAuthUseCase(
		staffRepository.NewPostgreSQLStaffRepository(db),
		c.SecretService(),
		c.TokenCodec(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}

	return authUsecase.NewAuthUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initFleetUseCases creates the fleet use cases with their repositories.
func (c *Container) initFleetUseCases() (*fleetUseCases, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for fleet use cases: %w", err)
	}

	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for fleet use cases: %w", err)
	}

	tagRepo := fleetRepository.NewPostgreSQLArucoTagRepository(db)

	return &fleetUseCases{
		yard:       fleetUsecase.NewYardUseCase(fleetRepository.NewPostgreSQLYardRepository(db)),
		motorcycle: fleetUsecase.NewMotorcycleUseCase(txManager, fleetRepository.NewPostgreSQLMotorcycleRepository(db), tagRepo),
		camera:     fleetUsecase.NewCameraUseCase(fleetRepository.NewPostgreSQLCameraRepository(db)),
		arucoTag:   fleetUsecase.NewArucoTagUseCase(tagRepo),
		location:   fleetUsecase.NewLocationRecordUseCase(fleetRepository.NewPostgreSQLLocationRecordRepository(db)),
		status:     fleetUsecase.NewStatusRecordUseCase(fleetRepository.NewPostgreSQLStatusRecordRepository(db)),
	}, nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	staffUseCase, err := c.StaffUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get staff use case for http server: %w", err)
	}

	authUseCase, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for http server: %w", err)
	}

	fleet, err := c.FleetUseCases()
	if err != nil {
		return nil, fmt.Errorf("failed to get fleet use cases for http server: %w", err)
	}

	var globalMiddleware []gin.HandlerFunc
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider != nil {
		globalMiddleware = append(globalMiddleware, metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace))
	}

	var loginRateLimit gin.HandlerFunc
	if c.config.RateLimitLoginEnabled {
		loginRateLimit = authHTTP.LoginRateLimitMiddleware(
			c.config.RateLimitLoginRequestsPerSec,
			c.config.RateLimitLoginBurst,
			logger,
		)
	}

	server := http.NewServer(
		http.Config{
			Host:             c.config.ServerHost,
			Port:             c.config.ServerPort,
			GinMode:          c.config.GetGinMode(),
			CORSEnabled:      c.config.CORSEnabled,
			CORSAllowOrigins: c.config.CORSAllowOrigins,
		},
		logger,
		authHTTP.RequireAuthMiddleware(c.TokenCodec(), logger),
		authHTTP.OptionalAuthMiddleware(c.TokenCodec(), logger),
		db.PingContext,
		globalMiddleware...,
	)

	var routes []http.Route
	routes = append(routes, authHTTP.NewAuthHandler(authUseCase, loginRateLimit, logger).Routes()...)
	routes = append(routes, staffHTTP.NewStaffHandler(staffUseCase, logger).Routes()...)
	routes = append(routes, fleetHTTP.NewYardHandler(fleet.yard, logger).Routes()...)
	routes = append(routes, fleetHTTP.NewMotorcycleHandler(fleet.motorcycle, logger).Routes()...)
	routes = append(routes, fleetHTTP.NewCameraHandler(fleet.camera, logger).Routes()...)
	routes = append(routes, fleetHTTP.NewArucoTagHandler(fleet.arucoTag, logger).Routes()...)
	routes = append(routes, fleetHTTP.NewLocationRecordHandler(fleet.location, logger).Routes()...)
	routes = append(routes, fleetHTTP.NewStatusRecordHandler(fleet.status, logger).Routes()...)
	routes = append(routes, maintenanceHTTP.NewMaintenanceHandler(c.Predictor(), logger).Routes()...)
	server.RegisterRoutes(routes)

	return server, nil
}
