package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	OpenAIKey     string
	ElevenLabsKey string
	OutputDir     string
	Port          string
	BotToken      string
	AdminChatID   int64
}

// Load читает .env (если есть) и собирает конфиг из окружения.
func Load() Config {
	_ = godotenv.Load()

	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "temp_audio"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	adminChatID, _ := strconv.ParseInt(os.Getenv("ADMIN_CHAT_ID"), 10, 64)

	return Config{
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		ElevenLabsKey: os.Getenv("ELEVENLABS_API_KEY"),
		OutputDir:     outputDir,
		Port:          port,
		BotToken:      os.Getenv("DUB_BOT_TOKEN"),
		AdminChatID:   adminChatID,
	}
}

type CredentialStatus struct {
	Name    string
	Present bool
}

// CheckCredentials проверяет обязательные API-ключи.
func CheckCredentials() []CredentialStatus {
	required := []string{"OPENAI_API_KEY", "ELEVENLABS_API_KEY"}

	statuses := make([]CredentialStatus, 0, len(required))
	for _, name := range required {
		statuses = append(statuses, CredentialStatus{
			Name:    name,
			Present: os.Getenv(name) != "",
		})
	}
	return statuses
}

// MissingCredentials возвращает имена отсутствующих ключей.
func MissingCredentials() []string {
	var missing []string
	for _, s := range CheckCredentials() {
		if !s.Present {
			missing = append(missing, s.Name)
		}
	}
	return missing
}
