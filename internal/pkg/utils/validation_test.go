package utils

import (
	"caremarket-service/internal/pkg/dto/requests"
	"caremarket-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCheckout(t *testing.T) {
	valid := requests.Checkout{ProviderID: "p1", Date: "2024-05-01", Time: "9:00 AM", Duration: 1.5}

	testCases := []struct {
		name    string
		mutate  func(r *requests.Checkout)
		message string
	}{
		{name: "valid", mutate: func(r *requests.Checkout) {}},
		{name: "lowercase meridiem", mutate: func(r *requests.Checkout) { r.Time = "12:30pm" }},
		{name: "missing provider", mutate: func(r *requests.Checkout) { r.ProviderID = "" }, message: "providerid is required"},
		{name: "impossible date", mutate: func(r *requests.Checkout) { r.Date = "2024-02-30" }, message: "date must be a date in yyyy-MM-dd format"},
		{name: "24 hour clock", mutate: func(r *requests.Checkout) { r.Time = "13:00" }, message: "time must be a time in h:mm AM/PM format"},
		{name: "duration too long", mutate: func(r *requests.Checkout) { r.Duration = 9 }, message: "duration must be less than or equal to 8"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request := valid
			tc.mutate(&request)

			err := ValidateStruct(request)
			if tc.message == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tc.message, exceptions.FormatFirstValidationError(err))
		})
	}
}

func TestValidateAvailability(t *testing.T) {
	err := ValidateStruct(requests.SetAvailability{Slots: []requests.AvailabilitySlot{
		{Date: "2024-05-01", Time: "09:00", IsAvailable: true},
		{Date: "2024-05-01", Time: "24:00", IsAvailable: true},
	}})
	assert.Equal(t, "time must be a time in HH:MM format", exceptions.FormatFirstValidationError(err))

	err = ValidateStruct(requests.SetAvailability{})
	assert.Equal(t, "slots is required", exceptions.FormatFirstValidationError(err))

	assert.NoError(t, ValidateStruct(requests.DeleteAvailability{Date: "2024-05-01"}))
}
