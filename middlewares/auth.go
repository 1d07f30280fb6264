package middlewares

import (
	"crypto/subtle"
	"net/http"
	"nutritrack-go-worker/controllers/response"
	"nutritrack-go-worker/services/auth"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	PatientIDKey = "patientID"
	SessionIDKey = "sessionID"

	ClinicianHeader = "X-Clinician-Key"
)

// Auth resolves the bearer token to a live session.
func Auth(service *auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			return
		}

		session, err := service.Authenticate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "Invalid or expired session")
			return
		}

		c.Set(PatientIDKey, session.PatientID)
		c.Set(SessionIDKey, session.ID)
		c.Next()
	}
}

// Clinician requires the clinician key header.
func Clinician(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		given := c.GetHeader(ClinicianHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(given), []byte(key)) != 1 {
			response.Fail(c, http.StatusUnauthorized, "Invalid clinician key")
			return
		}
		c.Next()
	}
}
