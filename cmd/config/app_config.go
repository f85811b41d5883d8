package config

import (
	"SaveNServe-Backend/internal/api/handlers"
	"SaveNServe-Backend/internal/api/routes"
	"SaveNServe-Backend/internal/cache"
	"SaveNServe-Backend/internal/middleware"
	"SaveNServe-Backend/internal/utils"
	"SaveNServe-Backend/internal/utils/storage"
	"SaveNServe-Backend/pkg/banner"
	"SaveNServe-Backend/pkg/cart"
	"SaveNServe-Backend/pkg/catalog"
	"SaveNServe-Backend/pkg/checkout"
	"SaveNServe-Backend/pkg/jwt"
	"SaveNServe-Backend/pkg/like"
	"SaveNServe-Backend/pkg/notify"
	"SaveNServe-Backend/pkg/pricing"
	"SaveNServe-Backend/pkg/user"
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	redisClient := redis.NewClient(&redis.Options{
		Addr:     utils.GetConfig("REDIS_ADDR"),
		Password: utils.GetConfig("REDIS_PASSWORD"),
	})
	cartCache := cache.NewRedisCache(redisClient)

	// Repository
	userRepository := user.NewUserRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)
	cartRepository := cart.NewCartRepository(db)
	likeRepository := like.NewLikeRepository(db)
	bannerRepository := banner.NewBannerRepository(db)
	checkoutRepository := checkout.NewCheckoutRepository(db)
	pricingRepository := pricing.NewPricingRepository(db)
	notifyRepository := notify.NewNotifyRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	catalogService := catalog.NewCatalogService(catalogRepository, s3)
	cartService := cart.NewCartService(cartRepository, cartCache)
	likeService := like.NewLikeService(likeRepository)
	bannerService := banner.NewBannerService(bannerRepository, s3)
	checkoutService := checkout.NewCheckoutService(
		checkoutRepository,
		cartRepository,
		userRepository,
		cartCache,
	)
	pricingService := pricing.NewPricingService(pricingRepository)
	notifyService := notify.NewNotifyService(notifyRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	likeHandler := handlers.NewLikeHandler(likeService, validator)
	bannerHandler := handlers.NewBannerHandler(bannerService, validator)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, validator)

	// background jobs
	repriceEvery := utils.GetConfigInt("REPRICE_INTERVAL_MINUTES", 60)
	notifyEvery := utils.GetConfigInt("NOTIFY_INTERVAL_HOURS", 24)
	notifyWindow := utils.GetConfigInt("NOTIFY_WINDOW_DAYS", 5)
	pricingService.StartRepriceLoop(
		context.Background(),
		time.Duration(repriceEvery)*time.Minute,
	)
	notifyService.StartNotifyLoop(
		context.Background(),
		time.Duration(notifyEvery)*time.Hour,
		notifyWindow,
	)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		CatalogHandler:  catalogHandler,
		CartHandler:     cartHandler,
		BannerHandler:   bannerHandler,
		LikeHandler:     likeHandler,
		CheckoutHandler: checkoutHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
