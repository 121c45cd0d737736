package main

import (
	"github.com/sirupsen/logrus"
)

// logrusAdapter backs the engine's minimal Logger interface with logrus.
type logrusAdapter struct {
	log *logrus.Logger
}

func newEngineLogger(verbose bool) *logrusAdapter {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return &logrusAdapter{log: log}
}

func (l *logrusAdapter) Debugf(format string, args ...any) { l.log.Debugf(format, args...) }
func (l *logrusAdapter) Infof(format string, args ...any)  { l.log.Infof(format, args...) }
func (l *logrusAdapter) Warnf(format string, args ...any)  { l.log.Warnf(format, args...) }
func (l *logrusAdapter) Errorf(format string, args ...any) { l.log.Errorf(format, args...) }
