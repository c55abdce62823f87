package controllers

import (
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, method, requestID string, err error) {
	log.Error(method+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

// identitySub returns the authenticated subject or writes a 401.
func identitySub(log *zap.Logger, w http.ResponseWriter, r *http.Request) (string, bool) {
	sub := utils.GetIdentitySub(r.Context())
	if sub == "" {
		utils.BuildErrorResponse(log, w, exceptions.ErrTokenMissing(errors.New("identity not found in context")))
		return "", false
	}
	return sub, true
}
