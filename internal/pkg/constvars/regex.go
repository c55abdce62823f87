package constvars

const (
	RegexDateYMD        = `^\d{4}-\d{2}-\d{2}$`
	RegexClock24Hour    = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexClock12Hour    = `(?i)^(1[0-2]|0?[1-9]):([0-5]\d)\s?(AM|PM)$`
	RegexHTTPURL        = `(?i)https?://\S+`
	RegexBareWWW        = `(?i)\bwww\.\S+`
	RegexFileAttachment = `(?i)\b[\w\-]+\.(jpg|jpeg|png|gif|pdf|doc|docx|mp4|zip|rar)\b`
	RegexHTMLTag        = `<[^>]*>`
	RegexAngleBracket   = `[<>]`
)
