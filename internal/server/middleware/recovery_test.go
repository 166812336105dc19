package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iudanet/clubsync/pkg/api"
)

func TestRecovery(t *testing.T) {
	tests := []struct {
		handler    http.HandlerFunc
		name       string
		wantStatus int
		wantPanic  bool
	}{
		{
			name: "no panic",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("success"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "string panic",
			handler:    func(w http.ResponseWriter, r *http.Request) { panic("something went wrong") },
			wantStatus: http.StatusInternalServerError,
			wantPanic:  true,
		},
		{
			name:       "custom type panic",
			handler:    func(w http.ResponseWriter, r *http.Request) { panic(struct{ msg string }{"critical"}) },
			wantStatus: http.StatusInternalServerError,
			wantPanic:  true,
		},
		{
			name: "nil map write",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var m map[string]int
				m["x"] = 1
			},
			wantStatus: http.StatusInternalServerError,
			wantPanic:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			handler := Recovery(zap.New(core))(tt.handler)

			w := httptest.NewRecorder()
			require.NotPanics(t, func() {
				handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/clubs", nil))
			})

			assert.Equal(t, tt.wantStatus, w.Code)
			if !tt.wantPanic {
				assert.Equal(t, 0, logs.Len())
				assert.Equal(t, "success", w.Body.String())
				return
			}

			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			var resp api.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "internal server error", resp.Message)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, zapcore.ErrorLevel, entry.Level)
			assert.Equal(t, "/api/v1/clubs", entry.ContextMap()["path"])
			assert.NotEmpty(t, entry.ContextMap()["stack"])
		})
	}
}

func TestRecovery_AbortHandlerPropagates(t *testing.T) {
	handler := Recovery(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
