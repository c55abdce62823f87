package utils

import (
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/dto/responses"
	"caremarket-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildPaginationResponse(total, page, pageSize int, baseURL string) *responses.Pagination {
	pagination := &responses.Pagination{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	if page*pageSize < total {
		pagination.NextURL = fmt.Sprintf(constvars.AppPaginationURL, baseURL, page+1, pageSize)
	}
	if page > 1 {
		pagination.PrevURL = fmt.Sprintf(constvars.AppPaginationURL, baseURL, page-1, pageSize)
	}

	return pagination
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, message string, pagination *responses.Pagination, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

// BuildErrorResponse renders err as JSON. Developer details and error
// locations are only exposed outside production.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			log.Error(customErr.DevMessage,
				zap.String("file", location.File),
				zap.Int("line", location.Line),
				zap.String("function_name", location.FunctionName),
			)
		}
	} else {
		log.Error(err.Error())
	}

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", constvars.EnvironmentDevelopment)
	if customErr != nil && appEnvironment != constvars.EnvironmentProduction {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	writeJSON(w, code, response)
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
