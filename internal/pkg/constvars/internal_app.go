package constvars

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

const (
	DefaultWeekStartHour   = 9
	DefaultWeekEndHour     = 17
	DefaultSlotDuration    = 1.0
	DaysInWeek             = 7
	MaxMessageContentRunes = 2000
	DefaultConversationCap = 50
	MaxConversationCap     = 200
	MaxProfilePhotoBytes   = 5 << 20
	DefaultSearchPageSize  = 20
	MaxSearchPageSize      = 100
)

const (
	DateLayoutYMD     = "2006-01-02"
	TimeLayout24Hour  = "15:04"
	TimeLayout12Hour  = "3:04 PM"
	AvailabilitySep   = ":"
	DefaultCurrency   = "usd"
	ResponseUnknown   = "unknown"
	AppPaginationURL  = "%s?page=%d&page_size=%d"
	ProfilePhotoDir   = "providers/photos"
	LeaderLockKeyBase = "caremarket:lock:"
)

const (
	BookingStatusPendingPayment   = "Pending Payment"
	BookingStatusPaymentCompleted = "Payment Completed"
	BookingStatusCancelled        = "Cancelled"
)

const (
	MongoCollectionAvailabilities = "availabilities"
	MongoCollectionProfiles       = "profiles"
	MongoCollectionBookings       = "bookings"
	MongoCollectionMessages       = "messages"
	MongoCollectionTranslations   = "translations"
)

const (
	EventRoutingKeyMessageCreated   = "message.created"
	EventRoutingKeyBookingPaid      = "booking.paid"
	EventRoutingKeyBookingCancelled = "booking.cancelled"
	EventRoutingKeyAvailabilitySync = "availability.synced"
)

const (
	StripeEventCheckoutCompleted = "checkout.session.completed"
	StripeEventCheckoutExpired   = "checkout.session.expired"
	StripeMetadataBookingID      = "booking_id"
)
