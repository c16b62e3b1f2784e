package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide structured logger. It is usable with sane
// defaults before Init runs, so packages can log during early startup and
// in tests without extra setup.
var Log = logrus.New()

// Init configures the global logger for production use.
func Init() {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetLevel(logrus.InfoLevel)
}
