package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger. Set APP_ENV=development for the
// human-readable console encoder.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
