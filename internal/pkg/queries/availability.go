package queries

func AvailabilityByProvider(providerID string) Filter {
	return Eq("providerId", providerID)
}

func AvailabilityByProviderAndDate(providerID, date string) Filter {
	return And(Eq("providerId", providerID), Eq("date", date))
}

func AvailabilityByProviderDateRange(providerID, fromDate, toDate string) Filter {
	return And(Eq("providerId", providerID), Between("date", fromDate, toDate))
}

func AvailabilitySlotKey(providerID, date, clock string) Filter {
	return And(Eq("providerId", providerID), Eq("date", date), Eq("time", clock))
}

func AvailabilityDeleteOnDate(providerID, date string, times []string) Filter {
	filter := AvailabilityByProviderAndDate(providerID, date)
	if len(times) == 0 {
		return filter
	}
	values := make([]interface{}, len(times))
	for i, t := range times {
		values[i] = t
	}
	return And(filter, In("time", values...))
}
