// Package logging holds the logger shared by the theory packages.
package logging

import (
	"io"

	"github.com/jsphweid/theory/constants"
	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(constants.GetLogLevel())
	return l
}

func Logger() *logrus.Logger {
	return logger
}

// SetLogger replaces the shared logger. A nil logger silences output.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.New()
		l.SetOutput(io.Discard)
	}
	logger = l
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}
