package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Contact accepts a contact-form submission. Fire and forget: the message
// is logged and acknowledged, nothing is persisted.
func Contact() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if strings.TrimSpace(req.Name) == "" ||
			strings.TrimSpace(req.Email) == "" ||
			strings.TrimSpace(req.Message) == "" {
			respondWithError(c, http.StatusBadRequest, "Name, email, and message are required")
			return
		}

		log.Info().
			Str("name", req.Name).
			Str("email", req.Email).
			Str("subject", req.Subject).
			Msg("contact form submission")

		c.JSON(http.StatusOK, gin.H{
			"message": "Your message has been sent successfully! We will get back to you soon.",
		})
	}
}
