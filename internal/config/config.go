package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the service. Values come from
// an optional config.yaml in the working directory, overridable by
// environment variables (SERVER_ADDR, DATABASE_URL, REDIS_ADDR, ...).
type Config struct {
	ServerAddr  string
	DatabaseURL string
	RedisAddr   string

	RateLimitPerSecond float64
	RateLimitBurst     int

	AlertFrom        string
	AlertTo          string
	SMTPServer       string
	SMTPPort         string
	SMTPUser         string
	SMTPPassword     string
	SMTPAuthDisabled bool
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("ratelimit.per_second", 1.0)
	v.SetDefault("ratelimit.burst", 3)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		ServerAddr:         v.GetString("server.addr"),
		DatabaseURL:        v.GetString("database.url"),
		RedisAddr:          v.GetString("redis.addr"),
		RateLimitPerSecond: v.GetFloat64("ratelimit.per_second"),
		RateLimitBurst:     v.GetInt("ratelimit.burst"),
		AlertFrom:          v.GetString("alert.from"),
		AlertTo:            v.GetString("alert.to"),
		SMTPServer:         v.GetString("smtp.server"),
		SMTPPort:           v.GetString("smtp.port"),
		SMTPUser:           v.GetString("smtp.user"),
		SMTPPassword:       v.GetString("smtp.pass"),
		SMTPAuthDisabled:   v.GetBool("smtp.auth_disabled"),
	}, nil
}
