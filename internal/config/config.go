package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Draft  DraftConfig
}

type ServerConfig struct {
	Host string
	Port string
}

type DraftConfig struct {
	// MemberSlots is the number of member slots per team, captain excluded.
	MemberSlots int
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: getEnv("PORT", "8080"),
		},
		Draft: DraftConfig{
			MemberSlots: getEnvInt("TEAM_MEMBER_SLOTS", 4),
		},
	}
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
