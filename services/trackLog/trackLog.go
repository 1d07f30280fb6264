package trackLog

import (
	"fmt"
	"nutritrack-go-worker/services/log"

	"github.com/sirupsen/logrus"
)

// stdout until LogTrackInit swaps in the file and ELK backed logger
var logTracker = logrus.NewEntry(logrus.StandardLogger())

func LogTrackInit() {
	var trackerService log.LogService
	temp := trackerService.LoggerInit("tracker")
	logTracker = temp.WithFields(logrus.Fields{"task": "track", "name": "tracker"})
}

// WithFields gives services a structured entry on the tracker.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logTracker.WithFields(fields)
}

func Info(message string, needWriteLog bool) {
	if needWriteLog {
		logTracker.Info(message)
	}
	fmt.Println(message)
}

func Error(message string, needWriteLog bool) {
	if needWriteLog {
		logTracker.Error(message)
	}
	fmt.Println(message)
}
