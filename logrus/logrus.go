package logrus

import (
	"github.com/lukasz-zimnoch/dexly/custody"
	"github.com/sirupsen/logrus"
	"os"
)

type wrapper struct {
	*logrus.Entry
}

func (w *wrapper) WithField(key string, value interface{}) custody.Logger {
	return &wrapper{w.Entry.WithField(key, value)}
}

func (w *wrapper) WithFields(fields map[string]interface{}) custody.Logger {
	return &wrapper{w.Entry.WithFields(fields)}
}

// Wrap adapts the given logrus logger to custody.Logger.
func Wrap(logger *logrus.Logger) custody.Logger {
	return &wrapper{logrus.NewEntry(logger)}
}

func ConfigureStandardLogger(format, level string) (custody.Logger, error) {
	fieldMap := logrus.FieldMap{
		logrus.FieldKeyLevel: "severity",
		logrus.FieldKeyMsg:   "message",
	}

	if format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{
			FieldMap: fieldMap,
		})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			FieldMap:      fieldMap,
		})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logrus.SetLevel(logLevel)

	logrus.SetOutput(os.Stdout)

	return Wrap(logrus.StandardLogger()), nil
}
