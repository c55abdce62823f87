package queries

import "caremarket-service/internal/pkg/dto/requests"

func ProfileByUserID(userID string) Filter {
	return Eq("userId", userID)
}

// SearchProviders translates marketplace search parameters. Name is a
// substring match, specialty is exact, date matches any cached
// availability entry on that day and rate bounds are inclusive.
func SearchProviders(request *requests.SearchProviders) Filter {
	var filters []Filter
	if request.Name != "" {
		filters = append(filters, Contains("name", request.Name))
	}
	if request.Specialty != "" {
		filters = append(filters, Eq("specialty", request.Specialty))
	}
	if request.Date != "" {
		filters = append(filters, Prefix("availability", request.Date+":"))
	}
	if request.MinRate != nil || request.MaxRate != nil {
		var lower, upper interface{}
		if request.MinRate != nil {
			lower = *request.MinRate
		}
		if request.MaxRate != nil {
			upper = *request.MaxRate
		}
		filters = append(filters, Between("hourlyRate", lower, upper))
	}
	return And(filters...)
}
