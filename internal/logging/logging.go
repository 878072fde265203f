package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const DefaultLevel = "warning"

// New returns a text logger writing to out. Unknown level names fall back
// to DefaultLevel.
func New(level string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	log.Out = out
	log.Level = Level(level)
	return log
}

func Level(name string) logrus.Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return logrus.DebugLevel
	case "INFO":
		return logrus.InfoLevel
	case "WARNING", "WARN":
		return logrus.WarnLevel
	case "ERROR":
		return logrus.ErrorLevel
	}
	return logrus.WarnLevel
}
