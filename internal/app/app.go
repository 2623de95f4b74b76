package app

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/ronniefr/Weather-web-app/docs"
	"github.com/ronniefr/Weather-web-app/internal/config"
	"github.com/ronniefr/Weather-web-app/internal/handlers/health"
	handlerWeather "github.com/ronniefr/Weather-web-app/internal/handlers/weather"
	"github.com/ronniefr/Weather-web-app/internal/middleware"
	loggerT "github.com/ronniefr/Weather-web-app/internal/services/logger"
	metricsSvc "github.com/ronniefr/Weather-web-app/internal/services/metrics"
	serviceWeather "github.com/ronniefr/Weather-web-app/internal/services/weather"
	fLogger "github.com/ronniefr/Weather-web-app/pkg/logger"
)

const timeoutDuration = 5 * time.Second

// ServiceContainer holds initialized dependencies for the HTTP server.
type ServiceContainer struct {
	WeatherService *serviceWeather.Simulator

	Router       *gin.Engine
	Srv          *http.Server
	accessLogger *zap.Logger
}

// App ties together config, logger, and metrics for startup/shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
	m   *metricsSvc.Metrics
}

// New prepares a new App with given config, zerolog logger, and metrics.
func New(cfg config.Config, logger zerolog.Logger, met *metricsSvc.Metrics) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		m:   met,
	}
}

// Init sets up the weather simulator, access logging, and the HTTP server
// without starting it.
func (a *App) Init() (ServiceContainer, error) {
	a.l.Info().Msgf("initializing weather service with config: %+v", a.cfg)

	gin.SetMode(a.cfg.Server.Mode)

	accessLogger, err := fLogger.NewFileLogger(a.cfg.AccessLogPath)
	if err != nil {
		return ServiceContainer{}, err
	}

	weatherService := serviceWeather.NewSimulator(a.l, a.cfg.Weather.SimulatedLatency)

	router := gin.New()
	router.Use(gin.Recovery())

	httpServer := &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	return ServiceContainer{
		WeatherService: weatherService,
		Router:         router,
		Srv:            httpServer,
		accessLogger:   accessLogger,
	}, nil
}

// Start initializes services, applies logging & metrics middleware, mounts
// all routes, and serves until the context is cancelled.
func (a *App) Start(ctx context.Context) error {
	srvContainer, err := a.Init()
	if err != nil {
		a.l.Error().Err(err).Msg("failed to initialize application")
		return err
	}

	srvContainer.Router.Use(
		middleware.RequestID(),
		middleware.CORS(a.cfg.Client.AllowedOrigin),
		a.m.HTTPMiddleware(),
		loggerT.AccessLog(srvContainer.accessLogger),
	)

	// Weather API
	weatherHandler := handlerWeather.NewHandler(srvContainer.WeatherService)
	srvContainer.Router.GET("/weather/:city", weatherHandler.GetWeather)

	// Display page and assets
	srvContainer.Router.StaticFile("/", filepath.Join(a.cfg.Client.StaticDir, "index.html"))
	srvContainer.Router.Static("/static", a.cfg.Client.StaticDir)

	// Operational endpoints
	healthHandler := health.NewHandler()
	srvContainer.Router.GET("/healthz", healthHandler.Check)
	srvContainer.Router.GET("/metrics", gin.WrapH(a.m.Handler()))
	srvContainer.Router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))

	go func() {
		a.l.Info().Str("address", a.cfg.ServerAddress()).Msg("HTTP server listening")
		if serveErr := srvContainer.Srv.ListenAndServe(); serveErr != nil &&
			!errors.Is(serveErr, http.ErrServerClosed) {
			a.l.Error().Err(serveErr).Msg("HTTP server error")
		}
	}()

	a.l.Info().Msg("weather service started successfully")

	<-ctx.Done()
	a.l.Info().Msg("shutdown signal received, stopping weather service")

	if err := a.Stop(srvContainer); err != nil {
		a.l.Error().Err(err).Msg("failed to shutdown application")
		return err
	}
	a.l.Info().Msg("application shutdown successfully")
	return nil
}

// Stop performs graceful HTTP shutdown and syncs the access logger.
func (a *App) Stop(srvContainer ServiceContainer) error {
	a.l.Info().Msg("stopping weather service")

	defer func(logger *zap.Logger) {
		if err := logger.Sync(); err != nil {
			a.l.Error().Err(err).Msg("failed to sync access logger")
		} else {
			a.l.Info().Msg("access logger synced successfully")
		}
	}(srvContainer.accessLogger)

	ctx, cancel := context.WithTimeout(context.Background(), timeoutDuration)
	defer cancel()

	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		a.l.Error().Err(err).Msg("HTTP shutdown error")
		return err
	}

	a.l.Info().Msg("shutdown complete")
	return nil
}
