package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"emi-engine/config"
	httpLayer "emi-engine/http"
	"emi-engine/repository"
	"emi-engine/service"
)

func main() {
	// Environment first, so .env values reach config.Load.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	var cache repository.ResultCache = repository.NewMemoryCache()
	if cfg.Redis.Addr != "" {
		redisCache := repository.NewRedisCache(cfg.Redis.Addr, time.Hour)
		if err := redisCache.Ping(); err != nil {
			log.Printf("Warning: redis unreachable at %s, using in-memory cache: %v",
				cfg.Redis.Addr, err)
		} else {
			cache = redisCache
		}
	}

	calculationRepo := repository.NewCalculationRepositoryMemory()

	amortizationService := service.NewAmortizationService(calculationRepo, cache)
	amortizationHandler := httpLayer.NewAmortizationHandler(amortizationService, cfg.CurrencySymbol)

	scheduleService := service.NewScheduleService(amortizationService)
	scheduleHandler := httpLayer.NewScheduleHandler(scheduleService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window())
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/loan/calculate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(amortizationHandler.CalculateLoan),
		),
	)

	mux.Handle(
		"/loan/schedule",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scheduleHandler.GenerateSchedule),
		),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
		IdleTimeout:  cfg.Server.IdleTimeout(),
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API listening on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
