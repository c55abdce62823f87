package utils

import (
	"caremarket-service/internal/pkg/constvars"
	"context"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetIdentitySub(ctx context.Context) string {
	if sub, ok := ctx.Value(constvars.CONTEXT_IDENTITY_SUB_KEY).(string); ok {
		return sub
	}
	return ""
}
