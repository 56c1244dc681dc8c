package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config aggregates runtime configuration for the client and the stub
// backend. Everything comes from the environment, with a .env file loaded
// first when present.
type Config struct {
	// APIBaseURL is the backend base path, including the /api prefix.
	APIBaseURL string `env:"API_BASE_URL,   default=http://localhost:5000/api"`
	LogLevel   string `env:"LOG_LEVEL,      default=info"`
	LogPretty  bool   `env:"LOG_PRETTY,     default=true"`
	// CredentialsDir overrides where the token/user pair is stored. Empty
	// means the platform default config directory.
	CredentialsDir string `env:"CREDENTIALS_DIR"`

	Stub StubConfig
}

// StubConfig configures the local stub backend.
type StubConfig struct {
	Port            string `env:"STUB_PORT,              default=5000"`
	JWTSecret       string `env:"STUB_JWT_SECRET,        default=dev-secret"`
	TokenTTLMinutes int    `env:"STUB_TOKEN_TTL_MINUTES, default=1440"`
	// AdminEmail/AdminPassword seed the initial back-office account.
	AdminEmail    string `env:"STUB_ADMIN_EMAIL,    default=admin@hardwarehub.test"`
	AdminPassword string `env:"STUB_ADMIN_PASSWORD, default=admin123"`
}

// Load reads configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
