package responses

type GroupedAvailability struct {
	ProviderID string              `json:"provider_id"`
	Dates      map[string][]string `json:"dates"`
}

type SetAvailability struct {
	ProviderID   string   `json:"provider_id"`
	Saved        int      `json:"saved"`
	Availability []string `json:"availability"`
}

type DeleteAvailability struct {
	ProviderID   string   `json:"provider_id"`
	Availability []string `json:"availability"`
}
