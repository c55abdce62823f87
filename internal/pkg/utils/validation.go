package utils

import (
	"caremarket-service/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	clock24HourRegex = regexp.MustCompile(constvars.RegexClock24Hour)
	clock12HourRegex = regexp.MustCompile(constvars.RegexClock12Hour)
	dateYMDRegex     = regexp.MustCompile(constvars.RegexDateYMD)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("date_ymd", validateDateYMD)
	validate.RegisterValidation("clock_24h", validateClock24Hour)
	validate.RegisterValidation("clock_12h", validateClock12Hour)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDateYMD(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !dateYMDRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse(constvars.DateLayoutYMD, value)
	return err == nil
}

func validateClock24Hour(fl validator.FieldLevel) bool {
	return clock24HourRegex.MatchString(fl.Field().String())
}

func validateClock12Hour(fl validator.FieldLevel) bool {
	return clock12HourRegex.MatchString(fl.Field().String())
}
