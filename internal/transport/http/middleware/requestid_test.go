package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newRequestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RequestID(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rid": c.GetString(KeyRequestID)})
	})
	return r
}

func TestRequestIDPassthrough(t *testing.T) {
	t.Parallel()

	r := newRequestIDRouter()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(KeyRequestID, "rid-from-caller")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(KeyRequestID); got != "rid-from-caller" {
		t.Fatalf("got %q, caller rid should be echoed", got)
	}
}

func TestRequestIDGenerated(t *testing.T) {
	t.Parallel()

	r := newRequestIDRouter()
	for _, header := range []string{"", "   "} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if header != "" {
			req.Header.Set(KeyRequestID, header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		rid := w.Header().Get(KeyRequestID)
		if _, err := uuid.Parse(rid); err != nil {
			t.Fatalf("header %q: expected generated uuid, got %q", header, rid)
		}
	}
}
