package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisPass string
	RedisDB   int

	IdempTTLSecs int

	// JWT secret used to decode the actor bearer token.
	JWTSecret string

	// Payment gateway credentials. The secret doubles as the HMAC key
	// for payment signature verification.
	GatewayBaseURL string
	GatewayKeyID   string
	GatewaySecret  string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string

	// Cron spec for the pending-payment reminder sweep.
	ReminderCron string
	// Window (days) for lease expiry reminders.
	LeaseReminderDays int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "rentease"),
		MySQLUser: getenv("MYSQL_USER", "rentease"),
		MySQLPass: getenv("MYSQL_PASS", "rentease"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		RedisPass:    getenv("REDIS_PASSWORD", ""),
		IdempTTLSecs: 300,

		JWTSecret: getenv("JWT_SECRET", ""),

		GatewayBaseURL: getenv("GATEWAY_BASE_URL", "https://api.razorpay.com/v1"),
		GatewayKeyID:   getenv("GATEWAY_KEY_ID", ""),
		GatewaySecret:  getenv("GATEWAY_KEY_SECRET", ""),

		SMTPHost: getenv("SMTP_HOST", ""),
		SMTPPort: getenv("SMTP_PORT", "587"),
		SMTPUser: getenv("SMTP_USER", ""),
		SMTPPass: getenv("SMTP_PASS", ""),
		MailFrom: getenv("MAIL_FROM", "no-reply@rentease.local"),

		ReminderCron:      getenv("REMINDER_CRON", "0 9 * * *"),
		LeaseReminderDays: 30,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	if v := os.Getenv("LEASE_REMINDER_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.LeaseReminderDays = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.GatewaySecret == "" {
		return errors.New("missing GATEWAY_KEY_SECRET (payment signature verification)")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

func (c *Config) SMTPAddr() string { return net.JoinHostPort(c.SMTPHost, c.SMTPPort) }
