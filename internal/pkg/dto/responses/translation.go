package responses

type Translations struct {
	Locale string            `json:"locale"`
	Values map[string]string `json:"values"`
}
