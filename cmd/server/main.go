package main

import (
	"log"

	httpapi "github.com/salah559/Box-eat/internal/api/http"
	"github.com/salah559/Box-eat/internal/config"
	"github.com/salah559/Box-eat/internal/seed"
	"github.com/salah559/Box-eat/internal/service"
	"github.com/salah559/Box-eat/internal/storage"
)

func main() {
	cfg := config.Load()

	var store storage.Store
	if cfg.DBHost != "" {
		db := config.MustInitPostgres()
		defer db.Close()
		pg := storage.NewPostgres(db)
		if err := pg.EnsureSchema(); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		store = pg
		log.Println("[boxeat] using postgres storage")
	} else {
		store = storage.NewMemory()
		log.Println("[boxeat] using in-memory storage")
	}

	var sessions storage.SessionStore
	if cfg.RedisHost != "" {
		rdb := config.MustInitRedis()
		defer rdb.Close()
		sessions = storage.NewRedisSessions(rdb)
		log.Println("[boxeat] using redis sessions")
	} else {
		sessions = storage.NewMemorySessions()
	}

	var publisher service.EventPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter("boxeat-events")
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		log.Println("[boxeat] publishing lifecycle events to kafka")
	}

	if err := seed.Run(store); err != nil {
		log.Fatal("Failed to seed data:", err)
	}

	handler := &httpapi.Handler{
		Menu:         service.NewMenuService(store),
		Offers:       service.NewOfferService(store),
		Orders:       service.NewOrderService(store, publisher, cfg.PublicBaseURL),
		Reservations: service.NewReservationService(store, publisher),
		Auth:         service.NewAuthService(sessions, cfg.AdminCode, cfg.SessionSecret, cfg.SessionTTL),
		SessionTTL:   cfg.SessionTTL,
	}

	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler))
}
