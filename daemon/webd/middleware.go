package webd

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/dustin/go-humanize"
	ghandlers "github.com/gorilla/handlers"
)

func permissiveCorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Add("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept")
		next.ServeHTTP(w, r)
	})
}

func contentTypeMiddlewareFunc(contentType string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", contentType)
			next.ServeHTTP(w, r)
		})
	}
}

// writeLog logs one request through the default slog logger.
// The writer handed in by gorilla/handlers is unused.
func writeLog(_ io.Writer, params ghandlers.LogFormatterParams) {
	req := params.Request
	slog.Info("HTTP request",
		"remote", req.RemoteAddr,
		"method", req.Method,
		"uri", params.URL.RequestURI(),
		"proto", req.Proto,
		"status", params.StatusCode,
		"size", humanize.Bytes(uint64(params.Size)),
		"user-agent", req.UserAgent())
}

func loggingMiddleware(next http.Handler) http.Handler {
	return ghandlers.CustomLoggingHandler(os.Stderr, next, writeLog)
}
