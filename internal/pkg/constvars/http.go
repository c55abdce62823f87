package constvars

import "net/http"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey           = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_IDENTITY_SUB_KEY ContextKey         = "identity_sub"
	CONTEXT_IDENTITY_ROLES_KEY ContextKey       = "identity_roles"
)

const (
	REQUEST_ID_PREFIX = "req_"
)

const (
	HeaderAuthorization   = "Authorization"
	HeaderContentType     = "Content-Type"
	HeaderXRequestID      = "X-Request-ID"
	HeaderXForwardedFor   = "X-Forwarded-For"
	HeaderXRealIP         = "X-Real-IP"
	HeaderStripeSignature = "Stripe-Signature"
	HeaderRetryAfter      = "Retry-After"
	HeaderAccept          = "Accept"
	HeaderXCSRFToken      = "X-CSRF-Token"

	MIMEApplicationJSON = "application/json"
	MIMEImageJPEG       = "image/jpeg"
	MIMEImagePNG        = "image/png"
	MIMEImageWEBP       = "image/webp"

	AuthorizationBearerPrefix = "Bearer "
)

const (
	StatusOK                  = http.StatusOK
	StatusCreated             = http.StatusCreated
	StatusNoContent           = http.StatusNoContent
	StatusBadRequest          = http.StatusBadRequest
	StatusUnauthorized        = http.StatusUnauthorized
	StatusForbidden           = http.StatusForbidden
	StatusNotFound            = http.StatusNotFound
	StatusConflict            = http.StatusConflict
	StatusRequestEntityTooBig = http.StatusRequestEntityTooLarge
	StatusTooManyRequests     = http.StatusTooManyRequests
	StatusInternalServerError = http.StatusInternalServerError
	StatusBadGateway          = http.StatusBadGateway
	StatusGatewayTimeout      = http.StatusGatewayTimeout
)
