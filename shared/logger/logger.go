// Package logger configures the process-wide structured logger.
package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is the shared instance, set by Init and used by the request-logging
// middleware.
var Logger *logrus.Logger

// Init builds a JSON-formatted logrus logger. The level comes from LOG_LEVEL
// and defaults to info.
func Init(serviceName string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "ts",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	log.SetLevel(logrus.InfoLevel)
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			log.SetLevel(lvl)
		}
	}

	Logger = log
	log.WithField("service", serviceName).Debug("logger initialized")
	return log
}

// WithRequestID returns an entry carrying the request id, or a plain entry
// when the id is empty.
func WithRequestID(log *logrus.Logger, requestID string) *logrus.Entry {
	if requestID == "" {
		return logrus.NewEntry(log)
	}
	return log.WithField("request_id", requestID)
}
