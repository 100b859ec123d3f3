package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/admin/ping", AdminGuard("admin", "secret"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func TestAdminGuard(t *testing.T) {
	router := adminTestRouter()

	tests := []struct {
		name       string
		username   string
		password   string
		noAuth     bool
		wantStatus int
	}{
		{"correct credentials", "admin", "secret", false, http.StatusOK},
		{"wrong password", "admin", "wrong", false, http.StatusUnauthorized},
		{"wrong username", "someone", "secret", false, http.StatusUnauthorized},
		{"both wrong", "someone", "wrong", false, http.StatusUnauthorized},
		{"missing header", "", "", true, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/ping", nil)
			if !tt.noAuth {
				req.SetBasicAuth(tt.username, tt.password)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

// The rejection must not reveal which credential component was wrong.
func TestAdminGuardUniformRejection(t *testing.T) {
	router := adminTestRouter()

	responses := make([]*httptest.ResponseRecorder, 0, 2)
	for _, creds := range [][2]string{{"admin", "wrong"}, {"someone", "secret"}} {
		req := httptest.NewRequest(http.MethodPost, "/admin/ping", nil)
		req.SetBasicAuth(creds[0], creds[1])
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		responses = append(responses, w)
	}

	assert.Equal(t, responses[0].Code, responses[1].Code)
	assert.Equal(t, responses[0].Body.String(), responses[1].Body.String())
	assert.Equal(t, responses[0].Header().Get("WWW-Authenticate"), responses[1].Header().Get("WWW-Authenticate"))
	assert.Contains(t, responses[0].Body.String(), "UNAUTHORIZED")
}
