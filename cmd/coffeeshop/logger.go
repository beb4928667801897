package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// setupLogger configures the standard logrus logger. Logs go to stderr or to
// the configured file, never to stdout where the session is rendered.
func setupLogger(cnf *config) (io.Closer, error) {
	level, err := log.ParseLevel(cnf.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cnf.LogLevel)
	}
	log.SetLevel(level)

	switch cnf.LogFormat {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		return nil, errors.Errorf("unknown log format %q", cnf.LogFormat)
	}

	if cnf.LogFile == "" {
		log.SetOutput(os.Stderr)
		return io.NopCloser(nil), nil
	}

	file, err := os.OpenFile(cnf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %q", cnf.LogFile)
	}
	log.SetOutput(file)
	return file, nil
}
