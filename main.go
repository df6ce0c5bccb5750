package main

import (
	"context"
	"log"
	"os"
	"time"

	httpapi "xoi-ngoc-web/internal/api/http"
	"xoi-ngoc-web/internal/service"
	"xoi-ngoc-web/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const defaultSiteURL = "https://banhmyxoingoc.nguyenvanhan.io.vn/menu"

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// initRedis connects to redis when REDIS_HOST is set. The cache is optional:
// without it QR codes are regenerated per request and view counting is off.
func initRedis() *storage.RedisCache {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Println("[menu-web] REDIS_HOST not set, running without cache")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + envOr("REDIS_PORT", "6379"),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("[menu-web] redis unavailable, running without cache: %v", err)
		return nil
	}

	return storage.NewRedisCache(client, 24*time.Hour)
}

// initKafka builds the page-events writer when KAFKA_BROKER is set.
func initKafka() *storage.KafkaPublisher {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		log.Println("[menu-web] KAFKA_BROKER not set, running without analytics events")
		return nil
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    "page-events",
		Balancer: &kafka.LeastBytes{},
	}
	return storage.NewKafkaPublisher(writer)
}

func main() {
	apiURL := os.Getenv("MENU_API_URL")
	if apiURL == "" {
		log.Println("[menu-web] MENU_API_URL not set, menu will render as unavailable")
	}
	source := storage.NewMenuAPI(apiURL, nil)

	var cache service.PageCache
	if rc := initRedis(); rc != nil {
		cache = rc
	}

	var publisher service.EventPublisher
	if kp := initKafka(); kp != nil {
		publisher = kp
	}

	menu := service.NewMenuService(source, cache, publisher,
		service.DefaultQRGenerator{}, envOr("SITE_URL", defaultSiteURL))

	handler := httpapi.NewHandler(menu, os.Getenv("MAPS_URL"))
	httpapi.StartServer(":"+envOr("PORT", "8080"), httpapi.NewRouter(handler))
}
