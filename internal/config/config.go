package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Host             string
	Port             string
	Debug            bool
	GeminiAPIKey     string
	GeminiModel      string
	InstructionsPath string
}

func Load() *Config {

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})

	if err := godotenv.Load(); err != nil {
		log.Warn(".env not found, using variable environments")
	}

	cfg := &Config{
		Host:             getEnv("HOST", "0.0.0.0"),
		Port:             getEnv("PORT", "5000"),
		Debug:            parseBool(getEnv("DEBUG", getEnv("FLASK_DEBUG", "false"))),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "models/gemini-flash-latest"),
		InstructionsPath: getEnv("INSTRUCTIONS_PATH", "inavora.json"),
	}

	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	// chat requests answer 500 until the key is set
	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY is not set")
	}

	log.Info("Config loaded")
	return cfg

}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func parseBool(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}
