package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Auth  AuthConfig
	JWT   JWTConfig
	GenAI GenAIConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// AuthConfig is the single fixed credential pair the receptionist logs
// in with. Any other pair is rejected; there is no lockout and no rate
// limiting.
type AuthConfig struct {
	Username string
	Password string
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type GenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("AUTH_USERNAME", "admin")
	viper.SetDefault("AUTH_PASSWORD", "password")
	viper.SetDefault("GENAI_MODEL", "gemini-2.5-flash-preview-04-17")
	viper.SetDefault("GENAI_BASE_URL", "https://generativelanguage.googleapis.com")

	// The .env file is optional: defaults plus environment variables are
	// enough to run the server.
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	genAITimeout, err := time.ParseDuration(viper.GetString("GENAI_TIMEOUT"))
	if err != nil {
		genAITimeout = 10 * time.Second
	}

	// Without a configured secret, generate one for this process only.
	// Tokens then never survive a restart.
	secret := viper.GetString("JWT_SECRET")
	if secret == "" {
		secret = randomSecret()
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Auth: AuthConfig{
			Username: viper.GetString("AUTH_USERNAME"),
			Password: viper.GetString("AUTH_PASSWORD"),
		},
		JWT: JWTConfig{
			Secret:        secret,
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		GenAI: GenAIConfig{
			APIKey:  viper.GetString("GENAI_API_KEY"),
			Model:   viper.GetString("GENAI_MODEL"),
			BaseURL: viper.GetString("GENAI_BASE_URL"),
			Timeout: genAITimeout,
		},
	}

	return config, nil
}

func randomSecret() string {
	buf := make([]byte, 32)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
