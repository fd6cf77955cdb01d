package logger

import (
	"time"
)

// LogAndMeasureExecutionTime logs that the given function started, and
// returns a function that logs its end along with the elapsed time.
func LogAndMeasureExecutionTime(log *Logger, functionName string) (onEnd func()) {
	start := time.Now()
	log.Debugf("%s start", functionName)
	return func() {
		log.Debugf("%s end. Took: %s", functionName, time.Since(start))
	}
}
