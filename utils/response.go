// utils/response.go
package utils

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope returned by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Field names that must never appear in a response payload.
var sensitiveFields = []string{"password", "secret", "token", "apiKey", "apiSecret"}

// SanitizeData strips sensitive keys from arbitrary payloads before they are
// serialized. Typed structs are round-tripped through JSON so nested maps and
// slices are covered too.
func SanitizeData(data interface{}) interface{} {
	if data == nil {
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return data
	}

	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return data
	}

	return stripSensitive(decoded)
}

func stripSensitive(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for _, field := range sensitiveFields {
			delete(val, field)
		}
		for k, nested := range val {
			val[k] = stripSensitive(nested)
		}
		return val
	case []interface{}:
		for i, item := range val {
			val[i] = stripSensitive(item)
		}
		return val
	default:
		return v
	}
}

// RespondWithSuccess writes the standard success envelope.
func RespondWithSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    SanitizeData(data),
	})
}

// RespondWithError writes the standard error envelope.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// RespondWithValidationErrors writes a 400 envelope carrying field-level
// path/message pairs.
func RespondWithValidationErrors(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation Error",
		Data:    gin.H{"errors": errs},
	})
}
