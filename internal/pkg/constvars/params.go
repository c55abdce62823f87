package constvars

const (
	URLParamProviderID = "provider_id"
	URLParamPeerID     = "peer_id"
	URLParamLocale     = "locale"
)

const (
	QueryParamName      = "name"
	QueryParamSpecialty = "specialty"
	QueryParamDate      = "date"
	QueryParamMinRate   = "min_rate"
	QueryParamMaxRate   = "max_rate"
	QueryParamPage      = "page"
	QueryParamPageSize  = "page_size"
	QueryParamStartTime = "start_time"
	QueryParamDurations = "durations"
	QueryParamWeekStart = "week_start"
	QueryParamLimit     = "limit"
	QueryParamKeys      = "keys"
)

const (
	FormFieldPhoto = "photo"
)
