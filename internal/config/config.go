// README: Config loader with env defaults for HTTP, DB, Redis, fare, and outbound settings.
package config

import (
	"os"
	"strconv"
)

// FareConfig carries the tunable pricing knobs. The defaults mirror the
// published rate policy.
type FareConfig struct {
	ExchangeRate   float64
	PeakMultiplier float64
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		// DSN is optional; when empty the embedded tariff tables are used.
		DSN string
	}
	Redis struct {
		Addr string
	}
	Fare     FareConfig
	Outbound struct {
		WhatsAppNumber string
		// SheetURL is the booking log endpoint; empty disables logging.
		SheetURL string
		// ConversionURL receives conversion pings; empty disables tracking.
		ConversionURL   string
		ConversionLabel string
	}
	Maps struct {
		// APIKey is optional; when empty travel estimates are skipped.
		APIKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("CHARTER_HTTP_ADDR", ":8080")
	cfg.DB.DSN = envOrDefault("CHARTER_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("CHARTER_REDIS_ADDR", "localhost:6379")
	cfg.Fare.ExchangeRate = envOrDefaultFloat("CHARTER_EXCHANGE_RATE", 3.2)
	cfg.Fare.PeakMultiplier = envOrDefaultFloat("CHARTER_PEAK_MULTIPLIER", 1.30)
	cfg.Outbound.WhatsAppNumber = envOrDefault("CHARTER_WHATSAPP_NUMBER", "60188706966")
	cfg.Outbound.SheetURL = envOrDefault("CHARTER_SHEET_URL", "")
	cfg.Outbound.ConversionURL = envOrDefault("CHARTER_CONVERSION_URL", "")
	cfg.Outbound.ConversionLabel = envOrDefault("CHARTER_CONVERSION_LABEL", "")
	cfg.Maps.APIKey = envOrDefault("GOOGLE_MAPS_API_KEY", "")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
