package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/flynow/api"
	"github.com/Domenick1991/flynow/config"
	"github.com/Domenick1991/flynow/internal/metrics"
	"github.com/Domenick1991/flynow/internal/service/auth"
	"github.com/Domenick1991/flynow/internal/service/flights"
	"github.com/Domenick1991/flynow/internal/service/passengers"
	"github.com/Domenick1991/flynow/pkg/logger"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, log logger.Logger, authSvc auth.AuthUseCase, flightSvc flights.FlightUseCase, passengerSvc passengers.PassengerUseCase) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewEngine(cfg, authSvc, flightSvc, passengerSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("http server started", "address", cfg.HTTP.Address)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewEngine assembles the gin engine: versioned API routes behind the token
// gate, the scrape endpoint and swagger docs.
func NewEngine(cfg *config.Config, authSvc auth.AuthUseCase, flightSvc flights.FlightUseCase, passengerSvc passengers.PassengerUseCase) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), metrics.Middleware())

	v1 := engine.Group("/api/v1")
	api.NewAuthHandler(authSvc).Register(v1)

	protected := v1.Group("", api.TokenAuth(authSvc))
	api.NewFlightHandler(flightSvc).Register(protected)
	api.NewPassengerHandler(passengerSvc).Register(protected)

	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.HTTP.SwaggerDir != "" {
		engine.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		engine.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/api.swagger.json"),
		)))
	}

	return engine
}
