package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"natalify-backend/internal/config"
	"natalify-backend/internal/models"
)

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLogin authenticates the single configured back-office principal and
// issues a 24-hour bearer token.
func AdminLogin(admin config.AdminConfig, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req adminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		username := strings.TrimSpace(req.Username)
		if username == "" || strings.TrimSpace(req.Password) == "" {
			respondWithError(c, http.StatusBadRequest, "Username and password are required")
			return
		}

		if username != admin.Username {
			respondWithError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		if err := bcrypt.CompareHashAndPassword(
			[]byte(admin.PasswordHash),
			[]byte(req.Password),
		); err != nil {
			respondWithError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		principal := models.Admin{
			ID:       "admin1",
			Username: admin.Username,
			Email:    admin.Email,
			Name:     admin.Name,
			Role:     "admin",
		}

		claims := jwt.MapClaims{
			"id":       principal.ID,
			"username": principal.Username,
			"role":     principal.Role,
			"exp":      time.Now().Add(accessTTL).Unix(),
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(jwtSecret))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, "token generation failed")
			return
		}

		log.Info().Str("username", principal.Username).Msg("admin login succeeded")

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   signed,
			"admin":   principal,
		})
	}
}
