package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/ghbox/pkg/utils/logging"
)

// preProcess binds a request ID and a logger carrying it to the request
// context, returns the ID as X-Request-Id and writes an access log. Health
// checks are logged at debug level.
func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())
		logger := logging.Default().With(slog.String("request_id", string(reqID)))
		ctx = logging.With(ctx, logger)
		w.Header().Set("X-Request-Id", string(reqID))

		rw := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		startedAt := time.Now()
		next.ServeHTTP(rw, r.WithContext(ctx))

		level := slog.LevelInfo
		if r.URL.Path == "/health" {
			level = slog.LevelDebug
		}
		logger.Log(ctx, level, "http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", rw.statusCode),
			slog.Int("bytes", rw.written),
			slog.String("user_agent", r.UserAgent()),
			slog.Duration("elapsed", time.Since(startedAt)),
		)
	})
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func (x *responseRecorder) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}

func (x *responseRecorder) Write(b []byte) (int, error) {
	n, err := x.ResponseWriter.Write(b)
	x.written += n
	return n, err
}
