package hive

import (
	"io"

	"github.com/sirupsen/logrus"
)

func newLogger(w io.Writer, quiet, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	switch {
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	case quiet:
		log.SetLevel(logrus.WarnLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
