package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/campus-records-api/pkg/errors"
)

// Body is the shape of message and error responses. Record reads are rendered bare.
type Body struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// JSON sends data as-is.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Message sends a {"message": ...} acknowledgement.
func Message(c *gin.Context, status int, message string) {
	JSON(c, status, Body{Message: message})
}

// Created responds with HTTP 201 and a message.
func Created(c *gin.Context, message string) {
	Message(c, http.StatusCreated, message)
}

// Error converts err to its HTTP form. Server-side failures go out under
// "error", everything the caller can act on under "message". The cause is
// attached to the gin context for the request logger.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	body := Body{Code: appErr.Code}
	if appErr.Status >= http.StatusInternalServerError {
		body.Error = appErr.Message
	} else {
		body.Message = appErr.Message
	}
	JSON(c, appErr.Status, body)
}
