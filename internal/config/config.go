package config

import (
	"time"

	"github.com/joho/godotenv"

	"scroggy_backend/internal/engine"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// SlotConfig - игровая математика слота из config.yaml
type SlotConfig interface {
	Tables() engine.Tables
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
