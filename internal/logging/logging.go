package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

func SetupLogging(level logrus.Level, out io.Writer) *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   out,
		Hooks: make(logrus.LevelHooks),
		Level: level,
	}

	return &logger
}
