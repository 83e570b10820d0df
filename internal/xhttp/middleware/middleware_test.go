package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/garrettladley/dino/internal/xcontext"
	"github.com/garrettladley/dino/internal/xhttp"
	"github.com/garrettladley/dino/internal/xslog"
)

func TestRequestIDPropagatesCallerID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		idFunc   func(*http.Request) string
		want     string
	}{
		{name: "caller id reused", incoming: "abc-123", want: "abc-123"},
		{
			name:   "custom generator",
			idFunc: func(*http.Request) string { return "generated" },
			want:   "generated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = xcontext.GetRequestID(r.Context())
			})

			var opts []RequestIDOption
			if tt.idFunc != nil {
				opts = append(opts, WithIDFunc(tt.idFunc))
			}

			req := httptest.NewRequestWithContext(t.Context(), http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(xhttp.XRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			RequestID(opts...)(h).ServeHTTP(rec, req)

			if seen != tt.want {
				t.Errorf("context request id = %q, want %q", seen, tt.want)
			}
			if got := rec.Header().Get(xhttp.XRequestID); got != tt.want {
				t.Errorf("response %s = %q, want %q", xhttp.XRequestID, got, tt.want)
			}
		})
	}
}

func TestRecoveryAndLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := xslog.NewLogger(&buf, xslog.LevelInfo)

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	h := Chain(panicking,
		RequestID(),
		Logger(logger),
		Logging,
		Recovery,
		SecurityHeaders,
	)

	req := httptest.NewRequestWithContext(t.Context(), http.MethodGet, "/character-status/x", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if rec.Header().Get(xhttp.XContentTypeOpts) != "nosniff" {
		t.Error("expected security headers on the response")
	}
	out := buf.String()
	if !strings.Contains(out, "panic recovered") {
		t.Errorf("expected panic log, got %s", out)
	}
	if !strings.Contains(out, `"http request"`) {
		t.Errorf("expected access log, got %s", out)
	}
}
