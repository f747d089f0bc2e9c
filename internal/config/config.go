package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	OpenAIAPIKey  string
	AllowedOrigin string
	Model         string
	ImageModel    string
	ImageSize     string
	// Filesystem layout
	PublicDir   string
	UploadDir   string
	DownloadDir string
	PersonaFile string
	// Submission stores (append-only JSON array files)
	ContactFile string
	BookingFile string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:          getEnvDefault("PORT", "3000"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		AllowedOrigin: getEnvDefault("ALLOWED_ORIGIN", "*"),
		Model:         getEnvDefault("OPENAI_MODEL", "gpt-4o"),
		ImageModel:    getEnvDefault("OPENAI_IMAGE_MODEL", "dall-e-3"),
		ImageSize:     getEnvDefault("OPENAI_IMAGE_SIZE", "1024x1024"),
		PublicDir:     getEnvDefault("PUBLIC_DIR", "public"),
		UploadDir:     getEnvDefault("UPLOAD_DIR", "uploads"),
		DownloadDir:   getEnvDefault("DOWNLOAD_DIR", "public/downloads"),
		PersonaFile:   getEnvDefault("PERSONA_FILE", "prompts/persona.yaml"),
		ContactFile:   getEnvDefault("CONTACT_FILE", "customer.json"),
		BookingFile:   getEnvDefault("BOOKING_FILE", "confirmation.json"),
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("warning: OPENAI_API_KEY is not set; API calls will fail until provided")
	}
	return cfg
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
