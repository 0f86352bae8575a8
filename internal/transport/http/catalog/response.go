package catalog

import (
	"github.com/gin-gonic/gin"
)

type errorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// envelope is the body of every JSON response.
type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorInfo `json:"error,omitempty"`
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, envelope{Error: &errorInfo{Code: code, Message: message}})
}

// fail maps err and records it on the context for the request logger.
// Server-side failures do not leak the cause to the client.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	status, code := mapError(err)
	msg := err.Error()
	if status >= 500 && status != 504 {
		msg = code
	}
	respondError(c, status, code, msg)
}
