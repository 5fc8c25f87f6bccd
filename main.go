package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ordereat-api/config"
	"ordereat-api/events"
	"ordereat-api/handlers"
	"ordereat-api/middleware"
	"ordereat-api/routes"
	"ordereat-api/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	cfg.SetupLogger()
	gin.SetMode(cfg.GinMode)

	db, err := config.OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	if err := config.SeedRoles(db); err != nil {
		logrus.WithError(err).Fatal("failed to seed roles")
	}
	if err := config.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logrus.WithError(err).Fatal("failed to seed admin")
	}

	var publisher services.OrderEventPublisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		writer := events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer writer.Close()
		publisher = events.NewKafkaPublisher(writer)
		logrus.WithFields(logrus.Fields{"brokers": cfg.KafkaBrokers, "topic": cfg.KafkaTopic}).Info("publishing order events to kafka")
	}

	if err := handlers.RegisterValidators(); err != nil {
		logrus.WithError(err).Fatal("failed to register validators")
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())
	routes.SetupRoutes(r, handlers.New(db, publisher, cfg.JWTSecret, cfg.JWTTTL))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders: []string{"Location", middleware.RequestIDHeader},
	})
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("server running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
