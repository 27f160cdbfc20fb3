package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"verdanta/config"
	"verdanta/database"
	contentRepo "verdanta/database/repository/content"
	messagesRepo "verdanta/database/repository/messages"
	"verdanta/handlers"
	"verdanta/middleware"
	"verdanta/routes"
	"verdanta/services/contact"
	"verdanta/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	siteRepo := contentRepo.NewMongoContentRepo()
	inboxRepo := messagesRepo.NewMongoMessageRepo()

	// services.
	cooldownTTL := time.Duration(config.AppConfig.ContactCooldownSeconds) * time.Second
	contactService := &contact.DefaultContactService{
		Repo:     inboxRepo,
		Cooldown: contact.NewRedisCooldown(utils.GetRedisClient(), cooldownTTL),
	}

	// handlers.
	pageHandler := handlers.NewPageHandler(siteRepo)
	contactHandler := handlers.NewContactHandler(contactService)
	adminHandler := handlers.NewAdminHandler(inboxRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		HomePageHandler:       pageHandler.HomePageHandler,
		AboutPageHandler:      pageHandler.AboutPageHandler,
		ProductsPageHandler:   pageHandler.ProductsPageHandler,
		CareersPageHandler:    pageHandler.CareersPageHandler,
		TeamPageHandler:       pageHandler.TeamPageHandler,
		EcovillagePageHandler: pageHandler.EcovillagePageHandler,
		InvestorsPageHandler:  pageHandler.InvestorsPageHandler,
		ContactPageHandler:    pageHandler.ContactPageHandler,
		FooterHandler:         pageHandler.FooterHandler,

		SubmitMessageHandler: contactHandler.SubmitMessageHandler,

		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetRedisClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
