package main // Entry point package

import (
    "log" // startup logging

    "github.com/joho/godotenv" // .env loading for local development
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/coworking-reservation/internal/booking"
    "github.com/iliyamo/coworking-reservation/internal/config"
    "github.com/iliyamo/coworking-reservation/internal/database"
    "github.com/iliyamo/coworking-reservation/internal/handler"
    "github.com/iliyamo/coworking-reservation/internal/middleware"
    "github.com/iliyamo/coworking-reservation/internal/queue"
    "github.com/iliyamo/coworking-reservation/internal/repository"
    "github.com/iliyamo/coworking-reservation/internal/router"
    queuepublisher "github.com/iliyamo/coworking-reservation/internal/service"
)

func main() {
    // .env is optional; real deployments set the environment directly.
    _ = godotenv.Load()

    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    // Redis is optional: without it the rate limiter and response cache
    // turn themselves off and the portal still serves.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable: rate limiting and response caching disabled")
    }

    users := repository.NewUserRepo(db)
    tokens := repository.NewTokenRepo(db)
    companies := repository.NewCompanyRepo(db)
    rooms := repository.NewRoomRepo(db)
    reservations := repository.NewReservationRepo(db)

    // The booking service publishes reservation.created events; the
    // consumer below appends them to logs/reservation.log.
    bookingSvc := booking.NewService(db, rooms, reservations, queuepublisher.PublishReservationCreated)
    go func() {
        if err := queue.StartReservationConsumer(); err != nil {
            log.Printf("reservation consumer stopped: %v", err)
        }
    }()

    authH := handler.NewAuthHandler(cfg, users, tokens)
    publicH := handler.NewPublicHandler(companies, rooms, reservations)
    bookingH := handler.NewBookingHandler(bookingSvc)
    customerH := handler.NewCustomerHandler(reservations)
    adminH := handler.NewAdminHandler(users, companies, rooms, reservations)

    e := echo.New()
    router.RegisterRoutes(e)
    router.RegisterAuth(e, authH, cfg.JWTSecret)
    router.RegisterPublic(e, publicH,
        middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
        middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
    )
    router.RegisterCustomer(e, bookingH, customerH, cfg.JWTSecret)
    router.RegisterAdmin(e, adminH, cfg.JWTSecret)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
