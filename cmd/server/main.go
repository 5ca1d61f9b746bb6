package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"trip-cost-estimator/internal/config"
	"trip-cost-estimator/internal/modules/estimate"
	"trip-cost-estimator/internal/modules/flights"
	"trip-cost-estimator/internal/modules/ground"
	"trip-cost-estimator/internal/modules/lodging"
	"trip-cost-estimator/internal/modules/meals"
	"trip-cost-estimator/internal/rates"
	"trip-cost-estimator/pkg/amadeus"
	"trip-cost-estimator/pkg/cache"
	"trip-cost-estimator/pkg/perdiem"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	timeout := time.Duration(cfg.UpstreamTimeoutSeconds) * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Rate tables: compiled-in defaults, optionally overlaid from Postgres.
	tables := rates.Defaults()
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("connect database: %v", err)
		}
		defer pool.Close()
		if err := rates.NewRepository(pool).LoadInto(ctx, tables); err != nil {
			log.Fatalf("load rate tables: %v", err)
		}
		log.Println("Rate tables loaded from database.")
	}

	// Quote cache: Redis when reachable, in-memory otherwise.
	var quoteCache cache.Cache = cache.NewMemoryCache()
	if cfg.RedisAddr != "" {
		rc := cache.NewRedisCache(cfg.RedisAddr)
		if err := rc.Ping(ctx); err != nil {
			log.Printf("Redis unreachable (%v); using in-memory quote cache.", err)
		} else {
			quoteCache = rc
		}
	}

	// Pricing sources; either may be absent, the resolvers degrade per their
	// fallback chains.
	var flightSource flights.OffersSourceInterface
	var hotelSource lodging.HotelSourceInterface
	if cfg.AmadeusClientID != "" && cfg.AmadeusClientSecret != "" {
		client := amadeus.NewClient(amadeus.Config{
			ClientID:     cfg.AmadeusClientID,
			ClientSecret: cfg.AmadeusClientSecret,
			Hostname:     cfg.AmadeusHostname,
			Timeout:      timeout,
		})
		flightSource = client
		hotelSource = client
	} else {
		log.Println("Amadeus credentials not set; flight fares resolve as unavailable, lodging uses static tables.")
	}

	var perDiemSource meals.PerDiemSourceInterface
	if cfg.GSAAPIKey != "" {
		perDiemSource = perdiem.NewClient(cfg.GSAAPIKey, timeout)
	} else {
		log.Println("GSA API key not set; meals use the static tiered formula.")
	}

	groundPolicy := ground.DefaultPolicy()
	groundPolicy.RentalClassUplift = cfg.RentalClassUplift
	groundPolicy.MembershipDiscount = cfg.MembershipDiscount
	groundPolicy.HolidaySurcharge = cfg.HolidaySurcharge

	mealPolicy := meals.DefaultPolicy()
	mealPolicy.BaseDailyRate = cfg.MealBaseDailyRate

	flightSvc := flights.NewService(flightSource, tables, quoteCache)
	lodgingSvc := lodging.NewService(hotelSource, tables)
	groundSvc := ground.NewService(tables, groundPolicy)
	mealSvc := meals.NewService(perDiemSource, tables, mealPolicy)
	estimateSvc := estimate.NewService(flightSvc, lodgingSvc, groundSvc, mealSvc, estimate.Policy{
		ContingencyRate:  cfg.ContingencyRate,
		FixedIncidentals: cfg.FixedIncidentals,
	})

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	api := e.Group("/api/v1")
	api.POST("/estimates", estimate.NewHandler(estimateSvc).CreateEstimate)
	api.POST("/quotes/flights", flights.NewHandler(flightSvc).GetQuote)
	api.POST("/quotes/lodging", lodging.NewHandler(lodgingSvc).GetQuote)
	api.POST("/quotes/ground", ground.NewHandler(groundSvc).GetQuote)
	api.POST("/quotes/meals", meals.NewHandler(mealSvc).GetQuote)

	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
