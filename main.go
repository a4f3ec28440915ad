package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorlink/config"
	"tutorlink/database"
	sessionRepoPkg "tutorlink/database/repository/session"
	studentRepoPkg "tutorlink/database/repository/student"
	tutorRepoPkg "tutorlink/database/repository/tutor"
	userRepoPkg "tutorlink/database/repository/user"
	"tutorlink/handlers"
	"tutorlink/routes"
	"tutorlink/services/availability"
	"tutorlink/services/booking"
	"tutorlink/services/user"
	"tutorlink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	tutorRepo := tutorRepoPkg.NewMongoTutorRepo()
	studentRepo := studentRepoPkg.NewMongoStudentRepo()
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()

	cacheTTL := time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	availabilityService := &availability.DefaultService{
		Repo:      tutorRepo,
		Cache:     utils.GetCacheClient(),
		CacheTTL:  cacheTTL,
		DebugMode: config.AppConfig.DebugMode,
	}
	bookingService := &booking.DefaultService{
		TutorRepo:   tutorRepo,
		StudentRepo: studentRepo,
		SessionRepo: sessionRepo,
		Cache:       utils.GetCacheClient(),
		CacheTTL:    cacheTTL,
	}

	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		Auth:         handlers.NewAuthHandler(userService),
		User:         handlers.NewUserHandler(userService),
		Tutor:        handlers.NewTutorHandler(tutorRepo),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Booking:      handlers.NewBookingHandler(bookingService, studentRepo, tutorRepo),
		Session:      handlers.NewSessionHandler(sessionRepo, studentRepo),
		Student:      handlers.NewStudentHandler(studentRepo),
		Admin:        handlers.NewAdminHandler(userService, tutorRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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
