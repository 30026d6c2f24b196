// Command server starts the SmartKitchen HTTP API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LucasSMartins/SmartKitchen/internal/config"
	"github.com/LucasSMartins/SmartKitchen/internal/logging"
	"github.com/LucasSMartins/SmartKitchen/internal/repository"
	httpserver "github.com/LucasSMartins/SmartKitchen/internal/server/http"
	"github.com/LucasSMartins/SmartKitchen/internal/service"
	"github.com/LucasSMartins/SmartKitchen/internal/storage/mongodb"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	log.WithField("uri", cfg.MongoURI).Info("connecting to mongodb")
	client, err := mongodb.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("mongodb connect failed")
	}
	defer func() {
		if err := mongodb.Disconnect(context.Background(), client); err != nil {
			log.WithError(err).Error("mongodb disconnect failed")
		}
	}()

	db := client.Database(cfg.DBName)
	usersRepo := repository.NewUsers(mongodb.NewCollection(db, "users"))
	pantryRepo := repository.NewInventory(mongodb.NewCollection(db, repository.PantryKind.Collection), repository.PantryKind)
	cartRepo := repository.NewInventory(mongodb.NewCollection(db, repository.CartKind.Collection), repository.CartKind)
	userSvc := service.NewUsers(usersRepo, pantryRepo, cartRepo, log)

	server := httpserver.New(log, []byte(cfg.JWTSecret), userSvc, usersRepo, pantryRepo, cartRepo)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.Router(cfg.CORSOrigins),
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown failed")
	}
}
