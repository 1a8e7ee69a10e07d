package obs

import (
	"net/http"
	"strconv"
	"time"
)

// ExecutionTime stamps each response with an X-Execution-Time-Ms header. The
// header has to be written before the status line, so the elapsed time is
// measured up to the handler's first WriteHeader call.
func ExecutionTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&execTimeWriter{ResponseWriter: w, start: time.Now()}, r)
	})
}

type execTimeWriter struct {
	http.ResponseWriter
	start       time.Time
	wroteHeader bool
}

func (w *execTimeWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		elapsed := time.Since(w.start).Milliseconds()
		w.Header().Set("X-Execution-Time-Ms", strconv.FormatInt(elapsed, 10))
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *execTimeWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(p)
}
