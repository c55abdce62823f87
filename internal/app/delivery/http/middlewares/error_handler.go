package middlewares

import (
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/utils"
	"errors"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = errors.New("unknown error")
				}

				m.Log.Error("Recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.Any(constvars.LoggingPanicKey, rec),
					zap.ByteString(constvars.LoggingStackKey, debug.Stack()),
				)
				utils.BuildErrorResponse(m.Log, w, err)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
