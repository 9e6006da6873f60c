// utils/validation.go
package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

var phoneRegex = regexp.MustCompile(`^\+?\d{10,15}$`)

// ValidatePhone checks if a phone number is in a valid format:
// 10 to 15 digits with an optional + prefix
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	return phoneRegex.MatchString(cleaned)
}

// ValidatePhoneField validates a required phone number field.
func ValidatePhoneField(path, phone string) []FieldError {
	if !ValidatePhone(phone) {
		return []FieldError{{Path: path, Message: "Phone number must be 10 to 15 digits"}}
	}
	return nil
}

// ValidateOptionalPhoneField validates a phone number only when supplied.
func ValidateOptionalPhoneField(path string, phone *string) []FieldError {
	if phone == nil {
		return nil
	}
	return ValidatePhoneField(path, *phone)
}

// ValidateUUIDParam validates a uuid path parameter and returns the parsed
// value alongside any field errors.
func ValidateUUIDParam(path, raw string) (uuid.UUID, []FieldError) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, []FieldError{{Path: path, Message: fmt.Sprintf("%s must be a valid UUID", path)}}
	}
	return id, nil
}

// ValidateNonNegative rejects negative numeric fields when supplied.
func ValidateNonNegative(path string, value *int) []FieldError {
	if value != nil && *value < 0 {
		return []FieldError{{Path: path, Message: fmt.Sprintf("%s cannot be negative", path)}}
	}
	return nil
}

// ValidateNonNegativeFloat rejects negative decimal fields when supplied.
func ValidateNonNegativeFloat(path string, value *float64) []FieldError {
	if value != nil && *value < 0 {
		return []FieldError{{Path: path, Message: fmt.Sprintf("%s cannot be negative", path)}}
	}
	return nil
}

// ValidateRequired rejects empty required string fields.
func ValidateRequired(path, value string) []FieldError {
	if strings.TrimSpace(value) == "" {
		return []FieldError{{Path: path, Message: fmt.Sprintf("%s is required", path)}}
	}
	return nil
}
