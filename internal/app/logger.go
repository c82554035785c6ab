package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "mapmyojt"

// NewLogger создаёт логгер под окружение: в production — JSON,
// в development — цветной консольный вывод. Все записи несут имя сервиса.
func NewLogger(env string) *zap.Logger {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.OutputPaths = []string{"stdout"}

	logger, err := config.Build(zap.Fields(zap.String("service", serviceName)))
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}

	return logger
}
