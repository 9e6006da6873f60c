package config

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger: human-readable output in development,
// JSON in anything else.
func NewLogger(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
