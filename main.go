package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/imobcrm/imobcrm_end/config"
	"github.com/imobcrm/imobcrm_end/middleware"
	"github.com/imobcrm/imobcrm_end/repository"
	"github.com/imobcrm/imobcrm_end/routes"
	"github.com/imobcrm/imobcrm_end/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// init logging
	utils.InitLogger()

	// load configuration
	cfg := config.LoadConfig()

	// gin mode
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// database
	if err := repository.InitMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		utils.Logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	defer repository.CloseMongoDB()

	router := gin.New()

	// middleware chain
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	routes.RegisterRoutes(router)

	// seed system data, retrying on transient database errors
	utils.Logger.Info().Msg("Starting system initialization...")
	if _, err := repository.ExecuteDbOperation(func() (interface{}, error) {
		return nil, repository.InitializeCollections()
	}, 3); err != nil {
		utils.Logger.Error().Err(err).Msg("Failed to initialize database collections")
	}
	if _, err := repository.ExecuteDbOperation(func() (interface{}, error) {
		return nil, repository.InitializeAdminAccount()
	}, 3); err != nil {
		utils.Logger.Error().Err(err).Msg("Failed to initialize admin account")
	}
	utils.Logger.Info().Msg("System initialization finished")

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.Logger.Info().Msgf("Server listening on port %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatal().Err(err).Msg("Server shutdown error")
	}

	utils.Logger.Info().Msg("Server exited gracefully")
}
