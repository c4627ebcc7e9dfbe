package config

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogging configures the standard logrus logger from Log. An unknown
// level falls back to info with a warning.
func SetupLogging() {
	if Log.JSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if Log.File != "" {
		log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   Log.File,
			MaxSize:    Log.MaxSizeMB,
			MaxBackups: Log.MaxBackups,
		}))
	}

	if err != nil {
		log.Warnf("unknown log level %q, using info", Log.Level)
	}
}
