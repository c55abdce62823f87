package config

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/viper"
)

var internalDefaults = map[string]interface{}{
	"app.env":                            "development",
	"app.port":                           "8080",
	"app.version":                        "v1",
	"app.address":                        "0.0.0.0",
	"app.timezone":                       "UTC",
	"app.frontend_domain":                "http://localhost:3000",
	"app.endpoint_prefix":                "api",
	"app.max_requests":                   100,
	"app.max_time_requests_per_seconds":  60,
	"app.shutdown_timeout_in_seconds":    10,
	"app.request_body_limit_in_megabyte": 6,
	"app.request_timeout_in_seconds":     10,
	"app.message_rate_per_second":        1,
	"app.message_rate_burst":             5,
	"app.trust_proxy_headers":            false,

	"jwt.secret": "",

	"mongodb.db_name": "caremarket",

	"minio.bucket_name":                             "caremarket",
	"minio.pre_signed_url_object_expiry_in_minutes": 60,
	"minio.profile_photo_max_upload_size_in_mb":     5,

	"rabbitmq.events_exchange": "caremarket.events",

	"stripe.secret_key":     "",
	"stripe.webhook_secret": "",
	"stripe.success_url":    "http://localhost:3000/bookings/success",
	"stripe.cancel_url":     "http://localhost:3000/bookings/cancel",

	"availability.strict_sync":               false,
	"availability.sweep_cron_spec":           "@hourly",
	"availability.sweep_lock_ttl_in_seconds": 300,

	"moderation.strict_profanity": false,
	"moderation.profanity_words":  "",

	"translation.cache_ttl_in_seconds": 300,
}

// NewInternalConfig reads application settings from an optional
// config.yaml and the environment. Nested keys map to upper snake case
// variables, so app.port is read from APP_PORT.
func NewInternalConfig() *InternalConfig {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range internalDefaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg InternalConfig
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to load internal config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid internal config: %v", err)
	}
	return &cfg
}

// Validate rejects settings the service cannot run safely with. Stripe
// may be left unconfigured entirely, but a secret key without a webhook
// secret is refused.
func (c *InternalConfig) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.Stripe.SecretKey != "" && c.Stripe.WebhookSecret == "" {
		return errors.New("STRIPE_WEBHOOK_SECRET must be set when STRIPE_SECRET_KEY is set")
	}
	return nil
}
