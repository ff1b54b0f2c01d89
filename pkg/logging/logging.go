package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// Setup configures the standard logrus logger for the process.
func Setup(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return xerrors.Errorf("invalid LOG_LEVEL: %w", err)
	}

	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetLevel(lvl)
	return nil
}
