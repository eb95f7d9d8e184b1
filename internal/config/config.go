package config

import "github.com/spf13/viper"

// Config holds the process-wide settings, read from the environment with
// sane defaults for local development.
type Config struct {
	HTTPAddr    string
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string
}

func Load() Config {
	v := viper.New()
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("JWT_SECRET", "")
	v.AutomaticEnv()

	return Config{
		HTTPAddr:    v.GetString("HTTP_ADDR"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
		JWTSecret:   v.GetString("JWT_SECRET"),
	}
}
