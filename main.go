package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grindsphere/config"
	"grindsphere/cron"
	"grindsphere/database"
	bookingRepoPkg "grindsphere/database/repository/booking"
	catalogRepoPkg "grindsphere/database/repository/catalog"
	chatRepoPkg "grindsphere/database/repository/chat"
	reviewRepoPkg "grindsphere/database/repository/review"
	userRepoPkg "grindsphere/database/repository/user"
	"grindsphere/handlers"
	"grindsphere/middleware"
	"grindsphere/routes"
	"grindsphere/services/booking"
	"grindsphere/services/catalog"
	"grindsphere/services/chat"
	"grindsphere/services/notification"
	"grindsphere/services/review"
	"grindsphere/services/storage"
	"grindsphere/services/tasks"
	"grindsphere/services/user"
	"grindsphere/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageService, err := storage.New()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	serviceRepo := catalogRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	pushEnqueuer := tasks.NewEnqueuer()
	defer pushEnqueuer.Close()

	userService := &user.DefaultUserService{
		Repo:    userRepo,
		Storage: storageService,
		Cache:   utils.GetCacheClient(),
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:    serviceRepo,
		Users:   userRepo,
		Reviews: reviewRepo,
		Storage: storageService,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Services: serviceRepo,
		Users:    userRepo,
		Pusher:   pushEnqueuer,
	}
	chatService := &chat.DefaultChatService{
		Repo:   chatRepo,
		Users:  userRepo,
		Redis:  utils.GetCacheClient(),
		Pusher: pushEnqueuer,
	}
	reviewService := &review.DefaultReviewService{
		Repo:     reviewRepo,
		Services: serviceRepo,
		Users:    userRepo,
	}
	notificationService := &notification.DefaultNotificationService{
		Repo: userRepo,
		FCM:  utils.FCMClient,
	}

	// handlers.
	authHandler := &handlers.AuthHandler{UserSvc: userService}
	userHandler := &handlers.UserHandler{UserSvc: userService}
	catalogHandler := &handlers.CatalogHandler{CatalogSvc: catalogService}
	bookingHandler := &handlers.BookingHandler{BookingSvc: bookingService}
	chatHandler := &handlers.ChatHandler{ChatSvc: chatService}
	reviewHandler := &handlers.ReviewHandler{ReviewSvc: reviewService}
	storageHandler := &handlers.StorageHandler{StorageSvc: storageService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		SignupHandler:  authHandler.SignupHandler,
		LoginHandler:   authHandler.LoginHandler,
		SignOutHandler: authHandler.SignOutHandler,

		GetProfileHandler:       userHandler.GetProfileHandler,
		UploadProfilePicHandler: userHandler.UploadProfilePicHandler,
		UpdateFCMTokenHandler:   userHandler.UpdateFCMTokenHandler,

		ToggleFavoriteHandler:      userHandler.ToggleFavoriteHandler,
		ListFavoritesHandler:       catalogHandler.ListFavoritesHandler,
		SetBrowseCategoryHandler:   userHandler.SetBrowseCategoryHandler,
		GetBrowseCategoryHandler:   userHandler.GetBrowseCategoryHandler,
		ClearBrowseCategoryHandler: userHandler.ClearBrowseCategoryHandler,

		ListServicesHandler:  catalogHandler.ListServicesHandler,
		TopServicesHandler:   catalogHandler.TopServicesHandler,
		GetServiceHandler:    catalogHandler.GetServiceHandler,
		MyServicesHandler:    catalogHandler.MyServicesHandler,
		SaveServiceHandler:   catalogHandler.SaveServiceHandler,
		DeleteServiceHandler: catalogHandler.DeleteServiceHandler,
		DashboardHandler:     catalogHandler.DashboardHandler,

		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,

		SendMessageHandler: chatHandler.SendMessageHandler,
		InboxHandler:       chatHandler.InboxHandler,
		HistoryHandler:     chatHandler.HistoryHandler,
		StreamHandler:      chatHandler.StreamHandler,

		AddReviewHandler:   reviewHandler.AddReviewHandler,
		ListReviewsHandler: reviewHandler.ListReviewsHandler,

		UploadFileHandler: storageHandler.UploadFileHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// background workers.
	cron.InitPushWorker(notificationService)
	ratingCron := cron.InitRatingReconciler(reviewService)
	defer ratingCron.Stop()

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
}
