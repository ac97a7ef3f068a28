package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Config is read once from the environment at startup. Postgres, Redis and
// Kafka are all optional: when their variables are unset the server runs
// fully in-process.
type Config struct {
	Addr          string
	PublicBaseURL string
	AdminCode     string
	SessionSecret string
	SessionTTL    time.Duration

	DBHost      string
	RedisHost   string
	KafkaBroker string
}

func Load() Config {
	return Config{
		Addr:          ":" + getenv("PORT", "5000"),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:5000"),
		AdminCode:     getenv("ADMIN_CODE", "Hichamdb"),
		SessionSecret: getenv("SESSION_SECRET", "boxeat-secret-key-change-in-production"),
		SessionTTL:    24 * time.Hour,
		DBHost:        os.Getenv("DB_HOST"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func MustInitPostgres() *sql.DB {
	connStr := "host=" + os.Getenv("DB_HOST") + " port=" + getenv("DB_PORT", "5432") +
		" user=" + os.Getenv("DB_USER") + " password=" + os.Getenv("DB_PASSWORD") +
		" dbname=" + os.Getenv("DB_NAME") + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + getenv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
