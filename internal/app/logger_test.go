package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerByEnvironment(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		t.Run(env, func(t *testing.T) {
			logger := NewLogger(env)
			require.NotNil(t, logger)
			logger.Info("logger smoke check")
		})
	}
}
