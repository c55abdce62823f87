package queries

func TranslationsByLocale(locale string, keys []string) Filter {
	filter := Eq("locale", locale)
	if len(keys) == 0 {
		return filter
	}
	values := make([]interface{}, len(keys))
	for i, key := range keys {
		values[i] = key
	}
	return And(filter, In("key", values...))
}
