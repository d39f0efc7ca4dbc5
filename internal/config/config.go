package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE"`
	Port       int  `env:"PORT" envDefault:"8080"`

	Secret string `env:"SECRET,required"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`

	RabbitmqURL             string `env:"RABBITMQ_URL,required"`
	PasswordResetEmailQueue string `env:"PASSWORD_RESET_EMAIL_QUEUE" envDefault:"password-reset-email"`

	BcryptHasherCost                int `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	PasswordResetValidDurationHours int `env:"PASSWORD_RESET_VALID_DURATION_HOURS" envDefault:"2"`

	AwsRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AwsSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	AwsEmailSender     string `env:"AWS_EMAIL_SENDER" envDefault:"no-reply@roleplay.com"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	SentryDSN      string   `env:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) PasswordResetValidDuration() time.Duration {
	return time.Duration(c.PasswordResetValidDurationHours) * time.Hour
}
