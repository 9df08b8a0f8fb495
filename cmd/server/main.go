package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sixsevendeals/affiliate-api/internal/cache"
	"github.com/sixsevendeals/affiliate-api/internal/config"
	"github.com/sixsevendeals/affiliate-api/internal/handler"
	"github.com/sixsevendeals/affiliate-api/internal/router"
	"github.com/sixsevendeals/affiliate-api/internal/scraper"
	"github.com/sixsevendeals/affiliate-api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config %v", err)
	}

	ctx := context.Background()

	// ------------ Redis catalog cache (optional) ---------------
	var catalogCache *cache.Cache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to parse redis url %v", err)
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Printf("redis unavailable, serving without cache: %v", err)
		} else {
			catalogCache = cache.New(client, cfg.ScrapeURL, cfg.CacheTTL)
			log.Println("connected to Redis")
		}
	}

	// ------------ Live source ---------------
	var fetcher service.Fetcher
	if cfg.ScrapeEnabled {
		fetcher = scraper.New(cfg.ScrapeURL, cfg.ScrapeTimeout)
		log.Printf("live scraping enabled for %s", cfg.ScrapeURL)
	} else {
		log.Println("live scraping disabled, serving fallback catalog")
	}

	// ---------------- Server --------------------
	svc := service.New(fetcher, catalogCache)
	h := handler.NewHandler(svc)
	r := router.Setup(h)

	log.Printf("Server running on %s", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), r))
}
