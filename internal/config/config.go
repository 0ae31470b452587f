package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultDatabaseDSN = "host=localhost user=postgres password=postgres dbname=goldencitizen port=5432 sslmode=disable"
	defaultCORSOrigins = "*"

	// Sitede iki farklı WhatsApp numarası kullanılıyordu, tek kaynak burası.
	DefaultWhatsAppNumber  = "905332853031"
	DefaultWhatsAppBaseURL = "https://wa.me"
)

// Config - API sunucusu ayarları
type Config struct {
	HTTPPort      string
	DatabaseDSN   string
	CORSOrigins   string
	RedisAddr     string // boşsa lead bildirimleri sadece loglanır
	RedisPassword string
	RedisDB       int
	LeadQueueKey  string
	LogLevel      string
	LogFormat     string

	// Load sırasında oluşan uyarılar, logger hazır olunca basılır
	Warnings []string
}

// ClientConfig - Content API'yi tüketen istemci tarafı ayarları
type ClientConfig struct {
	BaseURL         string
	HTTPTimeout     time.Duration
	WhatsAppNumber  string
	WhatsAppBaseURL string
	Locale          string
	Currency        string
}

// Load sunucu ayarlarını environment (ve varsa .env) üzerinden okur.
func Load() (*Config, error) {
	v := newViper()
	v.SetDefault("http_port", "8080")
	v.SetDefault("database_dsn", defaultDatabaseDSN)
	v.SetDefault("cors_allowed_origins", defaultCORSOrigins)
	v.SetDefault("redis_db", 0)
	v.SetDefault("lead_queue_key", "goldencitizen:leads")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	cfg := &Config{
		HTTPPort:      v.GetString("http_port"),
		DatabaseDSN:   v.GetString("database_dsn"),
		CORSOrigins:   v.GetString("cors_allowed_origins"),
		RedisAddr:     v.GetString("redis_addr"),
		RedisPassword: v.GetString("redis_password"),
		RedisDB:       v.GetInt("redis_db"),
		LeadQueueKey:  v.GetString("lead_queue_key"),
		LogLevel:      strings.ToLower(v.GetString("log_level")),
		LogFormat:     strings.ToLower(v.GetString("log_format")),
	}

	if strings.TrimSpace(cfg.HTTPPort) == "" {
		return nil, fmt.Errorf("HTTP_PORT boş olamaz")
	}
	if strings.TrimSpace(cfg.LeadQueueKey) == "" {
		return nil, fmt.Errorf("LEAD_QUEUE_KEY boş olamaz")
	}

	// Production uyarıları
	if cfg.DatabaseDSN == defaultDatabaseDSN {
		cfg.Warnings = append(cfg.Warnings, "DATABASE_DSN varsayılan değer kullanılıyor, production için kendi Postgres bağlantı bilgisini tanımla.")
	}
	if cfg.CORSOrigins == defaultCORSOrigins {
		cfg.Warnings = append(cfg.Warnings, "CORS_ALLOWED_ORIGINS tüm originlere açık, production için kendi domain'ini tanımla.")
	}
	if cfg.RedisAddr == "" {
		cfg.Warnings = append(cfg.Warnings, "REDIS_ADDR tanımlanmamış, lead bildirimleri sadece loglanacak.")
	}

	return cfg, nil
}

// CORSOriginList virgülle ayrılmış origin listesini temizler
func (c *Config) CORSOriginList() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadClient istemci ayarlarını okur. BACKEND_URL zorunludur.
func LoadClient() (*ClientConfig, error) {
	v := newViper()
	v.SetDefault("http_timeout", "10s")
	v.SetDefault("whatsapp_number", DefaultWhatsAppNumber)
	v.SetDefault("whatsapp_base_url", DefaultWhatsAppBaseURL)
	v.SetDefault("locale", "tr-TR")
	v.SetDefault("currency", "EUR")

	cfg := &ClientConfig{
		BaseURL:         strings.TrimRight(strings.TrimSpace(v.GetString("backend_url")), "/"),
		HTTPTimeout:     v.GetDuration("http_timeout"),
		WhatsAppNumber:  v.GetString("whatsapp_number"),
		WhatsAppBaseURL: strings.TrimRight(v.GetString("whatsapp_base_url"), "/"),
		Locale:          v.GetString("locale"),
		Currency:        strings.ToUpper(v.GetString("currency")),
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BACKEND_URL tanımlanmamış")
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT pozitif olmalı: %s", cfg.HTTPTimeout)
	}
	if strings.TrimSpace(cfg.WhatsAppNumber) == "" {
		return nil, fmt.Errorf("WHATSAPP_NUMBER boş olamaz")
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	loadEnvFile()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// .env varsa yükle, yoksa sistem environment'ı kullanılır
func loadEnvFile() {
	for _, path := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}
