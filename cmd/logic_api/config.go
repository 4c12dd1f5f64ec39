package main

import (
	"fmt"
	"os"
	"time"
)

type AppConfig struct {
	WorkspaceMaxIdle         time.Duration
	WorkspaceCleanupInterval time.Duration
}

func LoadAppConfig() (*AppConfig, error) {
	maxIdle, err := durationEnv("WORKSPACE_MAX_IDLE", 30*time.Minute)
	if err != nil {
		return nil, err
	}

	interval, err := durationEnv("WORKSPACE_CLEANUP_INTERVAL", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		WorkspaceMaxIdle:         maxIdle,
		WorkspaceCleanupInterval: interval,
	}, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
