package constvars

// Client-facing messages.
const (
	ErrClientCannotProcessRequest          = "Cannot process your request, please check the request body or parameters"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized to access this resource"
	ErrClientNotLoggedIn                   = "You are not logged in, please login first"
	ErrClientTooManyRequests               = "Too many requests, please slow down"
	ErrClientResourceNotFound              = "The requested resource was not found"
	ErrClientInvalidImageFormat            = "Invalid image format, only jpeg, png and webp are allowed"
	ErrClientImageTooLarge                 = "Image is too large"
	ErrClientIdentityMismatch              = "You can only send messages as yourself"
	ErrClientContentTooLong                = "Message must be 2000 characters or fewer"
	ErrClientLinksNotAllowed               = "Links and file attachments are not allowed in messages"
	ErrClientInappropriateContent          = "Message contains inappropriate language"
	ErrClientEmptyAfterFiltering           = "Message is empty after filtering"
	ErrClientInvalidTimeFormat             = "Invalid date or time format"
	ErrClientBookingConflict               = "The selected time overlaps an existing booking"
	ErrClientPaymentUnavailable            = "Payment service is unavailable, please try again later"
	ErrClientInvalidWebhookSignature       = "Invalid webhook signature"
)

// Developer-facing messages.
const (
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON body"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form"
	ErrDevURLParamValidationFailed   = "url param %s validation failed"
	ErrDevQueryParamValidationFailed = "query param %s validation failed"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevAuthTokenMissing           = "authorization token missing"
	ErrDevAuthTokenInvalidOrExpired  = "authorization token invalid or expired"
	ErrDevAuthTokenMissingSubject    = "authorization token has no subject"
	ErrDevTooManyRequests            = "rate limit exceeded"
	ErrDevIdentityMismatch           = "sender id does not match authenticated identity"
	ErrDevContentTooLong             = "message content exceeds rune limit"
	ErrDevLinksNotAllowed            = "message content contains a link or file reference"
	ErrDevInappropriateContent       = "message content failed profanity check"
	ErrDevEmptyAfterFiltering        = "message content empty after sanitization"
	ErrDevInvalidTimeFormat          = "invalid date or time format"
	ErrDevNotFound                   = "%s not found"
	ErrDevForbiddenResource          = "identity %s cannot act on %s"
	ErrDevBookingConflict            = "proposed slot overlaps existing booking"
	ErrDevMongoDBFindDocument        = "mongodb failed to find document"
	ErrDevMongoDBFindManyDocuments   = "mongodb failed to find documents"
	ErrDevMongoDBInsertDocument      = "mongodb failed to insert document"
	ErrDevMongoDBUpdateDocument      = "mongodb failed to update document"
	ErrDevMongoDBDeleteDocument      = "mongodb failed to delete document"
	ErrDevMongoDBCountDocuments      = "mongodb failed to count documents"
	ErrDevMongoDBDistinct            = "mongodb failed to run distinct"
	ErrDevMongoDBTransaction         = "mongodb transaction failed"
	ErrDevRedisSet                   = "redis failed to set value"
	ErrDevRedisGet                   = "redis failed to get value"
	ErrDevRedisDelete                = "redis failed to delete value"
	ErrDevPublishEvent               = "failed to publish event"
	ErrDevStorageUpload              = "failed to upload object"
	ErrDevStoragePresign             = "failed to presign object url"
	ErrDevPaymentCreateSession       = "failed to create checkout session"
	ErrDevWebhookSignature           = "webhook signature verification failed"
	ErrDevWebhookPayload             = "webhook payload cannot be parsed"
)

var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email address",
	"min":       "must be at least %s",
	"max":       "must be at most %s",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"lte":       "must be less than or equal to %s",
	"oneof":     "must be one of [%s]",
	"dive":      "contains an invalid item",
	"date_ymd":  "must be a date in yyyy-MM-dd format",
	"clock_24h": "must be a time in HH:MM format",
	"clock_12h": "must be a time in h:mm AM/PM format",
	"iso4217":   "must be a valid currency code",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}
