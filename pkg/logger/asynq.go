package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// AsynqLogger adapts the package logger to the asynq.Logger interface.
type AsynqLogger struct{}

func (AsynqLogger) Debug(args ...interface{}) {
	Logger().Debug(fmt.Sprint(args...), zap.String("component", "asynq"))
}

func (AsynqLogger) Info(args ...interface{}) {
	Logger().Info(fmt.Sprint(args...), zap.String("component", "asynq"))
}

func (AsynqLogger) Warn(args ...interface{}) {
	Logger().Warn(fmt.Sprint(args...), zap.String("component", "asynq"))
}

func (AsynqLogger) Error(args ...interface{}) {
	Logger().Error(fmt.Sprint(args...), zap.String("component", "asynq"))
}

func (AsynqLogger) Fatal(args ...interface{}) {
	Logger().Fatal(fmt.Sprint(args...), zap.String("component", "asynq"))
}
