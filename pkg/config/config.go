package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID" env-required:"true"`
	FirebaseCredentialsJSON string `env:"FIREBASE_CREDENTIALS_JSON" env-required:"true"`
	Port                    string `env:"PORT" env-default:"8080"`
	CorsHosts               string `env:"CORS_HOSTS" env-default:"*"`

	APIFootballHost string `env:"API_FOOTBALL_HOST" env-default:"v3.football.api-sports.io"`
	APIFootballKey  string `env:"API_FOOTBALL_KEY" env-required:"true"`

	ResendKey       string `env:"RESEND_KEY"`
	ReportRecipient string `env:"REPORT_RECIPIENT"`
	HostURL         string `env:"HOST_URL" env-default:"http://localhost:8080"`

	MatchCacheTTLSeconds    int `env:"MATCH_CACHE_TTL_SECONDS" env-default:"300"`
	LiveRefreshSeconds      int `env:"LIVE_REFRESH_SECONDS" env-default:"60"`
	LiveActivityWindowSecs  int `env:"LIVE_ACTIVITY_WINDOW_SECONDS" env-default:"300"`
	LeaderboardDisplayLimit int `env:"LEADERBOARD_DISPLAY_LIMIT" env-default:"100"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
