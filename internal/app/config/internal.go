package config

type InternalConfig struct {
	App          App             `mapstructure:"app"`
	JWT          AppJWT          `mapstructure:"jwt"`
	MongoDB      AppMongoDB      `mapstructure:"mongodb"`
	Minio        AppMinio        `mapstructure:"minio"`
	RabbitMQ     AppRabbitMQ     `mapstructure:"rabbitmq"`
	Stripe       AppStripe       `mapstructure:"stripe"`
	Availability AppAvailability `mapstructure:"availability"`
	Moderation   AppModeration   `mapstructure:"moderation"`
	Translation  AppTranslation  `mapstructure:"translation"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	FrontendDomain             string `mapstructure:"frontend_domain"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	MessageRatePerSecond       int    `mapstructure:"message_rate_per_second"`
	MessageRateBurst           int    `mapstructure:"message_rate_burst"`
	TrustProxyHeaders          bool   `mapstructure:"trust_proxy_headers"`
}

type AppJWT struct {
	Secret string `mapstructure:"secret"`
}

type AppMongoDB struct {
	DBName string `mapstructure:"db_name"`
}

type AppMinio struct {
	BucketName                        string `mapstructure:"bucket_name"`
	PreSignedURLObjectExpiryInMinutes int    `mapstructure:"pre_signed_url_object_expiry_in_minutes"`
	ProfilePhotoMaxUploadSizeInMB     int    `mapstructure:"profile_photo_max_upload_size_in_mb"`
}

type AppRabbitMQ struct {
	EventsExchange string `mapstructure:"events_exchange"`
}

type AppStripe struct {
	SecretKey     string `mapstructure:"secret_key"`
	WebhookSecret string `mapstructure:"webhook_secret"`
	SuccessURL    string `mapstructure:"success_url"`
	CancelURL     string `mapstructure:"cancel_url"`
}

type AppAvailability struct {
	// StrictSync turns a missing profile or missing records into an error
	// instead of a logged no-op.
	StrictSync            bool   `mapstructure:"strict_sync"`
	SweepCronSpec         string `mapstructure:"sweep_cron_spec"`
	SweepLockTTLInSeconds int    `mapstructure:"sweep_lock_ttl_in_seconds"`
}

type AppModeration struct {
	StrictProfanity bool   `mapstructure:"strict_profanity"`
	ProfanityWords  string `mapstructure:"profanity_words"`
}

type AppTranslation struct {
	CacheTTLInSeconds int `mapstructure:"cache_ttl_in_seconds"`
}
