package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"expofloor/internal/database"
	"expofloor/internal/events"
	"expofloor/internal/middleware"
	"expofloor/internal/modules/auth"
	"expofloor/internal/modules/booking"
	"expofloor/internal/modules/catalog"
	"expofloor/internal/modules/floor"
	"expofloor/internal/modules/layout"
	"expofloor/internal/pkg/holds"
	jwtsvc "expofloor/internal/pkg/jwt"
	"expofloor/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	exhibitionRepo := repository.NewExhibitionRepository(db)
	hallRepo := repository.NewHallRepository(db)
	stallRepo := repository.NewStallRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	userRepo := repository.NewUserRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	publisher := events.NewPublisher(os.Getenv("RABBITMQ_URL"))
	defer publisher.Close()

	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr})
	}
	holdStore := holds.NewStore(rdb, holdTTL())

	hub := floor.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(exhibitionRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	layoutService := layout.NewService(exhibitionRepo, hallRepo, stallRepo)
	layoutHandler := layout.NewHandler(layoutService)

	bookingService := booking.NewService(
		bookingRepo, stallRepo, hallRepo, exhibitionRepo,
		invoiceRepo, publisher, hub, holdStore,
	)
	bookingHandler := booking.NewHandler(bookingService)

	floorHandler := floor.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public: browse exhibitions, view floors, book, quote
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		layoutHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
		floorHandler.RegisterRoutes(v1)

		// authenticated exhibitors: advisory stall holds
		authed := v1.Group("/")
		authed.Use(middleware.Auth(j))
		{
			authHandler.RegisterAuthRoutes(authed)
			bookingHandler.RegisterAuthRoutes(authed)
		}

		// floor administrators: layout edits, rate cards, transitions
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			catalogHandler.RegisterAdminRoutes(admin)
			layoutHandler.RegisterAdminRoutes(admin)
			bookingHandler.RegisterAdminRoutes(admin)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func holdTTL() time.Duration {
	minutes, err := strconv.Atoi(os.Getenv("HOLD_TTL_MINUTES"))
	if err != nil || minutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(minutes) * time.Minute
}
