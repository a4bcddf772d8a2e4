package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		send   func(*gin.Context)
		status int
		code   string
	}{
		{"conflict", func(c *gin.Context) { Conflict(c, "busy") }, http.StatusConflict, "CONFLICT"},
		{"validation", func(c *gin.Context) { ValidationError(c, "bad") }, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"bad gateway", func(c *gin.Context) { BadGateway(c, "upstream") }, http.StatusBadGateway, "BAD_GATEWAY"},
		{"unauthorized default", func(c *gin.Context) { Unauthorized(c, "") }, http.StatusUnauthorized, "UNAUTHORIZED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tt.send(c)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			var env Envelope
			if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
				t.Fatal(err)
			}
			if env.Success || env.Error == nil || env.Error.Code != tt.code || env.Error.Message == "" {
				t.Errorf("envelope = %+v", env)
			}
		})
	}
}
