package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	Payslip  PayslipConfig
	S3       S3Config
	EOS      EOSConfig
}

type AppConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker       string
	GroupID      string
	PollInterval time.Duration
}

type JWTConfig struct {
	Secret string
}

// PayslipConfig selects where rendered payslip PDFs are written.
type PayslipConfig struct {
	Storage       string // local | s3
	StorageDir    string
	PublicBaseURL string
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	PublicURL string
}

type EOSConfig struct {
	AccrualPolicy string // tiered | legacy
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	maxRetries, err := strconv.Atoi(getEnv("DB_MAX_RETRIES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_RETRIES: %w", err)
	}

	pollInterval, err := time.ParseDuration(getEnv("OUTBOX_POLL_INTERVAL", "3s"))
	if err != nil {
		return nil, fmt.Errorf("invalid OUTBOX_POLL_INTERVAL: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Port:         getEnv("PORT", "3000"),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			Name:       getEnv("DB_NAME", "ksa_hris"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			MaxRetries: maxRetries,
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
		},
		Kafka: KafkaConfig{
			Broker:       getEnv("KAFKA_BROKER", ""),
			GroupID:      getEnv("KAFKA_GROUP_ID", "ksa-hris-payslip"),
			PollInterval: pollInterval,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		Payslip: PayslipConfig{
			Storage:       strings.ToLower(getEnv("PAYSLIP_STORAGE", "local")),
			StorageDir:    getEnv("PAYSLIP_STORAGE_DIR", "storage/payslips"),
			PublicBaseURL: getEnv("PAYSLIP_PUBLIC_BASE_URL", "/files/payslips"),
		},
		S3: S3Config{
			Bucket:    getEnv("S3_BUCKET", ""),
			Region:    getEnv("S3_REGION", "auto"),
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			PublicURL: getEnv("S3_PUBLIC_URL", ""),
		},
		EOS: EOSConfig{
			AccrualPolicy: strings.ToLower(getEnv("EOS_ACCRUAL_POLICY", "tiered")),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Payslip.Storage {
	case "local":
	case "s3":
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when PAYSLIP_STORAGE=s3")
		}
	default:
		return fmt.Errorf("invalid PAYSLIP_STORAGE: %s", c.Payslip.Storage)
	}

	switch c.EOS.AccrualPolicy {
	case "tiered", "legacy":
	default:
		return fmt.Errorf("invalid EOS_ACCRUAL_POLICY: %s", c.EOS.AccrualPolicy)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
