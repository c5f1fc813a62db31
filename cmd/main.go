package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	serverapi "github.com/RoyceAzure/lab/artmarket/api"
	"github.com/RoyceAzure/lab/artmarket/internal/api/handler"
	"github.com/RoyceAzure/lab/artmarket/internal/api/router"
	"github.com/RoyceAzure/lab/artmarket/internal/appcontext"
	"github.com/RoyceAzure/lab/artmarket/internal/config"
	"github.com/rs/zerolog"
)

func main() {
	cf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	app, err := appcontext.NewApplicationContext(cf)
	if err != nil {
		log.Fatal(err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// 初始化 handler
	userHandler := handler.NewUserHandler(app.UserService, app.TokenMaker, app.Cf)
	artistHandler := handler.NewArtistHandler(app.ArtistService)
	buyerHandler := handler.NewBuyerHandler(app.BuyerService, app.ArtistService)
	paymentHandler := handler.NewPaymentHandler(app.PaymentService)
	adminHandler := handler.NewAdminHandler(app.AdminService)

	server := serverapi.NewServer(userHandler, artistHandler, buyerHandler, paymentHandler, adminHandler)

	// 設置路由
	r := router.SetupRouter(server, app.TokenMaker, &logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", app.Cf.ServerPort),
		Handler: r,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDownCompleted := make(chan struct{}, 1)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Printf("Application shutdown error: %v", err)
		}

		shutDownCompleted <- struct{}{}
	}()

	log.Printf("Server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal(err)
	}
	<-shutDownCompleted
	log.Printf("closed completed")
}
