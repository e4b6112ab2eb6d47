package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds the process-wide zap logger and installs it via zap.ReplaceGlobals,
// so callers can log with zap.L() anywhere.
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	if environment == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}
