package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
)

// log is sam's process-wide structured logger. Verbosity is controlled by
// --verbose on the root command (see root.go); output always goes to
// stderr so stdout stays reserved for resolved commands and list output
// that callers may pipe.
var log = logrus.New()

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
}
