package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingProviderIDKey     = "provider_id"
	LoggingBookingIDKey      = "booking_id"
	LoggingSenderIDKey       = "sender_id"
	LoggingRecipientIDKey    = "recipient_id"
	LoggingIdentitySubKey    = "identity_sub"
	LoggingLocaleKey         = "locale"
	LoggingCountKey          = "count"
	LoggingDateKey           = "date"
	LoggingErrorTypeKey      = "error_type"
	LoggingEventTypeKey      = "event_type"
	LoggingRoutingKey        = "routing_key"
	LoggingObjectNameKey     = "object_name"
	LoggingLockKey           = "lock_key"
	LoggingCheckoutSessionID = "checkout_session_id"
)

const (
	ErrorTypeMongoOperation    = "mongo_operation"
	ErrorTypePublishEvent      = "publish_event"
	ErrorTypePaymentGateway    = "payment_gateway"
	ErrorTypeStorageOperation  = "storage_operation"
	ErrorTypeModerationRejects = "moderation_rejected"
)

const (
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingPanicKey      = "panic"
	LoggingStackKey      = "stack"
)
