package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiError API-level error with an HTTP status and machine code
type ApiError struct {
	StatusCode int
	Message    string
	ErrorCode  string
}

// Error implements the error interface
func (e *ApiError) Error() string {
	return e.Message
}

// NewApiError creates an API error
func NewApiError(message string, statusCode int, errorCode string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
		ErrorCode:  errorCode,
	}
}

// CreateNotFoundError resource does not exist
func CreateNotFoundError(resource string) *ApiError {
	return NewApiError(resource+" não encontrado", http.StatusNotFound, "RESOURCE_NOT_FOUND")
}

// CreateUnauthorizedError caller is not authenticated
func CreateUnauthorizedError() *ApiError {
	return NewApiError("não autenticado", http.StatusUnauthorized, "UNAUTHORIZED")
}

// CreateForbiddenError caller lacks the required role
func CreateForbiddenError() *ApiError {
	return NewApiError("permissão insuficiente", http.StatusForbidden, "FORBIDDEN")
}

// CreateNoCompanyError caller has no company linkage
func CreateNoCompanyError() *ApiError {
	return NewApiError("usuário não vinculado a uma empresa", http.StatusForbidden, "NO_COMPANY")
}

// CreateBadRequestError malformed request
func CreateBadRequestError(message string) *ApiError {
	return NewApiError(message, http.StatusBadRequest, "BAD_REQUEST")
}

// HandleError logs the error and writes the matching response
func HandleError(c *gin.Context, err error) {
	if c == nil {
		return
	}
	errorMessage := err.Error()
	LogError(err, map[string]interface{}{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	}, errorMessage)

	if apiErr, ok := err.(*ApiError); ok {
		response := gin.H{"success": false, "error": apiErr.Message}
		if apiErr.ErrorCode != "" {
			response["code"] = apiErr.ErrorCode
		}
		c.JSON(apiErr.StatusCode, response)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   errorMessage,
	})
}

// SuccessResponse writes a success envelope
func SuccessResponse(c *gin.Context, data interface{}, message string, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := gin.H{"success": true}
	if data != nil {
		response["data"] = data
	}
	if message != "" {
		response["message"] = message
	}

	c.JSON(code, response)
}

// ErrorResponse writes an error envelope
func ErrorResponse(c *gin.Context, message string, statusCode int) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
