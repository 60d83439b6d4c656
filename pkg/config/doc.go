// Package config provides a type-safe, generic and cached way to load
// configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (missing files are fine),
// after which the environment is parsed into any annotated struct. Each
// configuration type is parsed at most once and cached, so the encoder's
// codec list and policy flags are read once at construction and stay
// immutable for the process lifetime.
//
//	type Config struct {
//	    AllowMixedEncoding bool `env:"ENCODER_ALLOW_MIXED_ENCODING" envDefault:"false"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
package config
