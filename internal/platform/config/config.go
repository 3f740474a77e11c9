package config

import (
	"log/slog"
	"os"
)

// Server captures process-level configuration: listen address, artifact
// locations, and presentation settings.
type Server struct {
	Addr           string
	ModelPath      string
	ScalerPath     string
	ImportancePath string
	DashboardURL   string
	LogLevel       slog.Level
}

// FromEnv builds a Server config from environment variables so main stays
// lean. Defaults point at the artifacts directory used in development.
func FromEnv() Server {
	cfg := Server{
		Addr:           envOr("CHURNSIGHT_ADDR", ":8080"),
		ModelPath:      envOr("CHURNSIGHT_MODEL_PATH", "artifacts/churn_model.bin"),
		ScalerPath:     envOr("CHURNSIGHT_SCALER_PATH", "artifacts/scaler.bin"),
		ImportancePath: envOr("CHURNSIGHT_IMPORTANCE_PATH", "artifacts/feature_importance.xlsx"),
		DashboardURL:   envOr("CHURNSIGHT_DASHBOARD_URL", ""),
		LogLevel:       slog.LevelInfo,
	}
	if os.Getenv("CHURNSIGHT_DEBUG") == "true" {
		cfg.LogLevel = slog.LevelDebug
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
