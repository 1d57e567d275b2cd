package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type recordingLogger struct {
	debugCalls int
	infoCalls  int
	warnCalls  int
	errorCalls int
	lastFields map[string]interface{}
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.debugCalls++
	l.lastFields = fields
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.infoCalls++
	l.lastFields = fields
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.warnCalls++
	l.lastFields = fields
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.errorCalls++
	l.lastFields = fields
}

func TestRequestLogging_SetsRequestID(t *testing.T) {
	logger := &recordingLogger{}
	var ctxID string
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/restaurants", nil))

	headerID := rec.Header().Get("X-Request-ID")
	if headerID == "" {
		t.Fatal("X-Request-ID header should be set")
	}
	if ctxID != headerID {
		t.Errorf("context request ID = %q, header = %q; should match", ctxID, headerID)
	}
}

func TestRequestLogging_LogsSuccessAtInfo(t *testing.T) {
	logger := &recordingLogger{}
	handler := RequestLoggingMiddleware(logger)(okHandler())

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/restaurants", nil))

	if logger.infoCalls != 1 {
		t.Errorf("info calls = %d, want 1", logger.infoCalls)
	}
	if logger.lastFields["status"] != http.StatusOK {
		t.Errorf("logged status = %v, want 200", logger.lastFields["status"])
	}
	if logger.lastFields["path"] != "/restaurants" {
		t.Errorf("logged path = %v, want /restaurants", logger.lastFields["path"])
	}
}

func TestRequestLogging_LogsServerErrorsAtError(t *testing.T) {
	logger := &recordingLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/restaurants", nil))

	if logger.errorCalls != 1 {
		t.Errorf("error calls = %d, want 1", logger.errorCalls)
	}
	if logger.infoCalls != 0 {
		t.Error("server errors should not also log at info")
	}
}

func TestRequestIDFromContext_MissingID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id := RequestIDFromContext(req.Context()); id != "" {
		t.Errorf("request ID without middleware = %q, want empty", id)
	}
}
