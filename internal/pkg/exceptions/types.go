package exceptions

import (
	"caremarket-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamValidationFailed, paramName))
	}
	ErrQueryParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevQueryParamValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrImageValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidImageFormat, constvars.ErrDevImageValidationFailed)
	}
	ErrImageTooLarge = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooBig, constvars.ErrClientImageTooLarge, constvars.ErrDevImageValidationFailed)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTokenMissingSubject = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissingSubject)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
	}

	// Moderation
	ErrModerationIdentityMismatch = func() *CustomError {
		return BuildNewCustomError(ErrIdentityMismatch, constvars.StatusForbidden, constvars.ErrClientIdentityMismatch, constvars.ErrDevIdentityMismatch)
	}
	ErrModerationContentTooLong = func() *CustomError {
		return BuildNewCustomError(ErrContentTooLong, constvars.StatusBadRequest, constvars.ErrClientContentTooLong, constvars.ErrDevContentTooLong)
	}
	ErrModerationLinksNotAllowed = func() *CustomError {
		return BuildNewCustomError(ErrLinksNotAllowed, constvars.StatusBadRequest, constvars.ErrClientLinksNotAllowed, constvars.ErrDevLinksNotAllowed)
	}
	ErrModerationInappropriateContent = func() *CustomError {
		return BuildNewCustomError(ErrInappropriateContent, constvars.StatusBadRequest, constvars.ErrClientInappropriateContent, constvars.ErrDevInappropriateContent)
	}
	ErrModerationEmptyAfterFiltering = func() *CustomError {
		return BuildNewCustomError(ErrEmptyAfterFiltering, constvars.StatusBadRequest, constvars.ErrClientEmptyAfterFiltering, constvars.ErrDevEmptyAfterFiltering)
	}

	// Scheduling
	ErrTimeFormat = func(err error) *CustomError {
		return BuildNewCustomError(fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err), constvars.StatusBadRequest, constvars.ErrClientInvalidTimeFormat, constvars.ErrDevInvalidTimeFormat)
	}
	ErrSlotConflict = func() *CustomError {
		return BuildNewCustomError(ErrBookingConflict, constvars.StatusConflict, constvars.ErrClientBookingConflict, constvars.ErrDevBookingConflict)
	}
	ErrForbiddenResource = func(identity, resource string) *CustomError {
		return WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, fmt.Sprintf(constvars.ErrDevForbiddenResource, identity, resource))
	}
	ErrResourceNotFound = func(resource string) *CustomError {
		return BuildNewCustomError(ErrNotFound, constvars.StatusNotFound, constvars.ErrClientResourceNotFound, fmt.Sprintf(constvars.ErrDevNotFound, resource))
	}

	// MongoDB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBFindDocument)
	}
	ErrMongoDBFindManyDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBFindManyDocuments)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBDeleteDocument)
	}
	ErrMongoDBCountDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBCountDocuments)
	}
	ErrMongoDBDistinct = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBDistinct)
	}
	ErrMongoDBTransaction = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBTransaction)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}

	// External services
	ErrPublishEvent = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPublishEvent)
	}
	ErrStorageUpload = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStorageUpload)
	}
	ErrStoragePresign = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStoragePresign)
	}
	ErrPaymentCreateSession = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPaymentUnavailable, constvars.ErrDevPaymentCreateSession)
	}
	ErrWebhookSignature = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidWebhookSignature, constvars.ErrDevWebhookSignature)
	}
	ErrWebhookPayload = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevWebhookPayload)
	}
)
