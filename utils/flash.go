package utils

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash stores a one-shot notice in the cookie session. It is rendered and
// cleared by the next page view, like Django's messages framework.
func Flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		ErrorLogger.Printf("Failed to save flash message: %v", err)
	}
}

// TakeFlashes drains all pending flash messages for rendering.
func TakeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(); err != nil {
			ErrorLogger.Printf("Failed to clear flash messages: %v", err)
		}
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
