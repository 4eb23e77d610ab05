package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Storage drivers
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config stores service settings.
type Config struct {
	Port      int
	LogLevel  string
	Storage   Storage
	DB        DB
	Redis     Redis
	Kafka     Kafka
	Dispatch  Dispatch
	Pricing   Pricing
	RateLimit RateLimit
}

// Storage selects the persistence backend.
type Storage struct {
	Driver string
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Redis stores geo index settings. An empty Addr disables the index.
type Redis struct {
	Addr string
	DB   int
}

// Kafka stores broker and topic settings. Empty Brokers disables Kafka.
type Kafka struct {
	Brokers            []string
	GroupID            string
	OrdersTopic        string
	EventsTopic        string
	NotificationsTopic string
}

// Dispatch stores matching and re-matching policy.
type Dispatch struct {
	MaxRematchAttempts int
	PendingTimeout     time.Duration
	SweepInterval      time.Duration
	SearchRadiusKm     float64
	DefaultParcelKg    float64
	OperationTimeout   time.Duration
}

// Pricing stores the rider earnings formula coefficients.
type Pricing struct {
	BaseFee float64
	PerKm   float64
}

// RateLimit stores the per-rider location ping limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs is Load with explicit command line arguments. Unknown flags are ignored.
func LoadArgs(args []string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	fs := pflag.CommandLine
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.Storage.Driver, "storage", cfg.Storage.Driver, "storage driver: postgres or memory")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.IntVar(&cfg.Dispatch.MaxRematchAttempts, "max-rematch", cfg.Dispatch.MaxRematchAttempts, "re-match attempts after a rejection")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		Port:      DefaultPort(),
		LogLevel:  envString("LOG_LEVEL", "info"),
		Storage:   Storage{Driver: envString("STORAGE_DRIVER", StoragePostgres)},
		DB:        DefaultDB(),
		Redis:     Redis{Addr: envString("REDIS_ADDR", "")},
		Kafka:     DefaultKafka(),
		Dispatch:  DefaultDispatch(),
		Pricing:   DefaultPricing(),
		RateLimit: DefaultRateLimit(),
	}

	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return nil, err
	}

	cfg.DB.Host = envString("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envString("POSTGRES_PORT", cfg.DB.Port)
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_PORT %q: %w", cfg.DB.Port, err)
	}
	cfg.DB.User = envString("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envString("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envString("POSTGRES_DB", cfg.DB.Name)

	if cfg.Redis.DB, err = envInt("REDIS_DB", 0); err != nil {
		return nil, err
	}

	if v := envString("KAFKA_BROKERS", ""); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	cfg.Kafka.GroupID = envString("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.OrdersTopic = envString("KAFKA_ORDERS_TOPIC", cfg.Kafka.OrdersTopic)
	cfg.Kafka.EventsTopic = envString("KAFKA_EVENTS_TOPIC", cfg.Kafka.EventsTopic)
	cfg.Kafka.NotificationsTopic = envString("KAFKA_NOTIFICATIONS_TOPIC", cfg.Kafka.NotificationsTopic)

	d := &cfg.Dispatch
	if d.MaxRematchAttempts, err = envInt("DISPATCH_MAX_REMATCH_ATTEMPTS", d.MaxRematchAttempts); err != nil {
		return nil, err
	}
	if d.PendingTimeout, err = envDuration("DISPATCH_PENDING_TIMEOUT", d.PendingTimeout); err != nil {
		return nil, err
	}
	if d.SweepInterval, err = envDuration("DISPATCH_SWEEP_INTERVAL", d.SweepInterval); err != nil {
		return nil, err
	}
	if d.OperationTimeout, err = envDuration("DISPATCH_OPERATION_TIMEOUT", d.OperationTimeout); err != nil {
		return nil, err
	}
	if d.SearchRadiusKm, err = envFloat("DISPATCH_SEARCH_RADIUS_KM", d.SearchRadiusKm); err != nil {
		return nil, err
	}
	if d.DefaultParcelKg, err = envFloat("DISPATCH_DEFAULT_PARCEL_KG", d.DefaultParcelKg); err != nil {
		return nil, err
	}

	if cfg.Pricing.BaseFee, err = envFloat("PRICING_BASE_FEE", cfg.Pricing.BaseFee); err != nil {
		return nil, err
	}
	if cfg.Pricing.PerKm, err = envFloat("PRICING_PER_KM", cfg.Pricing.PerKm); err != nil {
		return nil, err
	}

	rl := &cfg.RateLimit
	if v := envString("RATE_LIMIT_ENABLED", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_ENABLED %q: %w", v, err)
		}
		rl.Enabled = b
	}
	if rl.Rate, err = envFloat("RATE_LIMIT_RATE", rl.Rate); err != nil {
		return nil, err
	}
	if rl.Burst, err = envInt("RATE_LIMIT_BURST", rl.Burst); err != nil {
		return nil, err
	}
	if rl.TTL, err = envDuration("RATE_LIMIT_TTL", rl.TTL); err != nil {
		return nil, err
	}
	if rl.MaxBuckets, err = envInt("RATE_LIMIT_MAX_BUCKETS", rl.MaxBuckets); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	switch c.Storage.Driver {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("invalid storage driver: %q", c.Storage.Driver)
	}
	if c.Dispatch.MaxRematchAttempts < 0 {
		return fmt.Errorf("invalid max rematch attempts: %d", c.Dispatch.MaxRematchAttempts)
	}
	if c.Dispatch.PendingTimeout <= 0 || c.Dispatch.SweepInterval <= 0 {
		return fmt.Errorf("dispatch timeouts must be positive")
	}
	if c.Pricing.BaseFee < 0 || c.Pricing.PerKm < 0 {
		return fmt.Errorf("pricing coefficients must not be negative")
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
