package exceptions

import (
	"caremarket-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	Err           error      `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError wraps err with HTTP semantics. When err is already a
// CustomError the original status and messages are kept and only the caller
// location is appended, so the error carries its full trail.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)

	var existing *CustomError
	if errors.As(err, &existing) {
		existing.Locations = append(existing.Locations, location)
		return existing
	}

	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
		Err:           err,
	}
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(2)},
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}
