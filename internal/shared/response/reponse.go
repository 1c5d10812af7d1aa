package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the only failure shape clients ever see
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody acknowledges an operation that has nothing to return
type MessageBody struct {
	Message string `json:"message"`
}

// Success writes data as the bare JSON body. A nil pointer is written as null.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Null writes a 200 with a literal null body
func Null(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte("null"))
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{Message: message})
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, message)
}

// AbortInternal is for middleware that has to stop the chain
func AbortInternal(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorBody{Error: message})
}
