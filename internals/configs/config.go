package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Env  string `validate:"required,oneof=development production test"`
	Port string `validate:"required,numeric"`

	StoreDriver string `validate:"required,oneof=postgres memory"`
	DBUser      string `validate:"required_if=StoreDriver postgres"`
	DBPass      string `validate:"required_if=StoreDriver postgres"`
	DBHost      string `validate:"required_if=StoreDriver postgres"`
	DBPort      string `validate:"omitempty,numeric"`
	DBName      string `validate:"required_if=StoreDriver postgres"`
	DBSSLMode   string `validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	AutoMigrate bool

	AccessTokenSecret string        `validate:"required"`
	AccessTokenTTL    time.Duration `validate:"gt=0"`

	MidtransServerKey string
	MidtransUseProd   bool

	CORSOrigins     []string
	RequestTimeout  time.Duration `validate:"gt=0"`
	SeedReviewsFile string
}

// =======================
// ENV LOADER
// =======================

// Load membaca .env (kalau ada) lalu environment variable.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	}

	cfg := &Config{
		Env:  GetEnv("APP_ENV", "development"),
		Port: GetEnv("PORT", GetEnv("port", "5000")),

		StoreDriver: GetEnv("STORE_DRIVER", StoreDriverPostgres),
		DBUser:      GetEnv("DB_USER"),
		DBPass:      GetEnv("DB_PASS"),
		DBHost:      GetEnv("DB_HOST"),
		DBPort:      GetEnv("DB_PORT", "5432"),
		DBName:      GetEnv("DB_NAME", "craftedShotsDb"),
		DBSSLMode:   GetEnv("DB_SSLMODE", "require"),
		AutoMigrate: getBool("DB_AUTO_MIGRATE", false),

		AccessTokenSecret: GetEnv("ACCESS_TOKEN_SECRET"),
		AccessTokenTTL:    getDuration("ACCESS_TOKEN_TTL", 2*time.Hour),

		MidtransServerKey: GetEnv("MIDTRANS_SERVER_KEY"),
		MidtransUseProd:   getBool("MIDTRANS_USE_PROD", false),

		CORSOrigins:     splitList(GetEnv("CORS_ORIGINS", "*")),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT", 5*time.Second),
		SeedReviewsFile: GetEnv("SEED_REVIEWS_FILE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DSN untuk GORM dan goose.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=craftedshots",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
