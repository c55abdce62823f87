package constvars

const (
	ResponseSuccessGetProviders         = "Successfully fetched providers"
	ResponseSuccessGetProvider          = "Successfully fetched provider"
	ResponseSuccessUpsertProfile        = "Successfully saved profile"
	ResponseSuccessUploadPhoto          = "Successfully uploaded profile photo"
	ResponseSuccessGetAvailability      = "Successfully fetched availability"
	ResponseSuccessSetAvailability      = "Successfully saved availability"
	ResponseSuccessDeleteAvailability   = "Successfully deleted availability"
	ResponseSuccessSyncAvailability     = "Successfully synced availability"
	ResponseSuccessGetWeekTimeSlots     = "Successfully fetched week time slots"
	ResponseSuccessGetAvailableDuration = "Successfully fetched available durations"
	ResponseSuccessCheckout             = "Successfully created checkout session"
	ResponseSuccessWebhookHandled       = "Webhook processed"
	ResponseSuccessSendMessage          = "Message sent"
	ResponseSuccessGetConversation      = "Successfully fetched conversation"
	ResponseSuccessGetTranslations      = "Successfully fetched translations"
)
