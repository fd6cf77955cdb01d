package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

const normalLogSize = 512

// Flags that add the callsite of a log call to its header.
const (
	// LogFlagLongFile adds the full path and line number, e.g. /a/b/c/main.go:123.
	LogFlagLongFile uint32 = 1 << iota

	// LogFlagShortFile adds the file name and line number, e.g. main.go:123.
	// It takes precedence over LogFlagLongFile.
	LogFlagShortFile
)

// flagsFromEnv reads the comma separated DANWALLET_LOGFLAGS environment
// variable. It is evaluated when BackendLog is initialized.
func flagsFromEnv() uint32 {
	var flags uint32
	for _, flag := range strings.Split(os.Getenv("DANWALLET_LOGFLAGS"), ",") {
		switch strings.TrimSpace(flag) {
		case "longfile":
			flags |= LogFlagLongFile
		case "shortfile":
			flags |= LogFlagShortFile
		}
	}
	return flags
}

// Default rotation of log files added through AddLogFile.
const (
	defaultThresholdKB = 10 * 1000
	defaultMaxRolls    = 4
)

var errAlreadyRunning = errors.New("the logger is already running")

// sink is a destination of log lines with its own minimal level.
type sink struct {
	io.WriteCloser
	level Level
}

// Backend serializes the log lines of all its subsystem loggers into its
// sinks. Sinks are added before Run, and released by Close.
type Backend struct {
	flag      uint32
	isRunning uint32
	sinks     []sink
	writeChan chan logEntry
	done      sync.WaitGroup
}

// NewBackendWithFlags returns a Backend using the given LogFlag* flags.
func NewBackendWithFlags(flags uint32) *Backend {
	return &Backend{flag: flags, writeChan: make(chan logEntry)}
}

// NewBackend returns a Backend using the flags of DANWALLET_LOGFLAGS.
func NewBackend() *Backend {
	return NewBackendWithFlags(flagsFromEnv())
}

// AddLogWriter adds w as a sink receiving every line at logLevel or above.
func (b *Backend) AddLogWriter(w io.WriteCloser, logLevel Level) error {
	if b.IsRunning() {
		return errAlreadyRunning
	}
	b.sinks = append(b.sinks, sink{WriteCloser: w, level: logLevel})
	return nil
}

// AddLogFile adds a rotated log file sink with the default rotation settings.
func (b *Backend) AddLogFile(logFile string, logLevel Level) error {
	return b.AddLogFileWithCustomRotator(logFile, logLevel, defaultThresholdKB, defaultMaxRolls)
}

// AddLogFileWithCustomRotator adds a log file sink, rolled every
// thresholdKB and keeping maxRolls old files. Missing directories are
// created.
func (b *Backend) AddLogFileWithCustomRotator(logFile string, logLevel Level, thresholdKB int64, maxRolls int) error {
	if b.IsRunning() {
		return errAlreadyRunning
	}
	if logDir := filepath.Dir(logFile); logDir != "." {
		err := os.MkdirAll(logDir, 0700)
		if err != nil {
			return errors.Wrapf(err, "failed to create log directory %s", logDir)
		}
	}
	r, err := rotator.New(logFile, thresholdKB, false, maxRolls)
	if err != nil {
		return errors.Wrapf(err, "failed to create file rotator for %s", logFile)
	}
	return b.AddLogWriter(r, logLevel)
}

// Run starts dispatching log lines to the sinks. It may only be called once.
func (b *Backend) Run() error {
	if !atomic.CompareAndSwapUint32(&b.isRunning, 0, 1) {
		return errAlreadyRunning
	}
	b.done.Add(1)
	go func() {
		defer b.done.Done()
		defer func() {
			if err := recover(); err != nil {
				fmt.Fprintf(os.Stderr, "Fatal error in the logger goroutine: %+v\n%s\n", err, debug.Stack())
			}
		}()
		b.dispatch()
	}()
	return nil
}

func (b *Backend) dispatch() {
	defer atomic.StoreUint32(&b.isRunning, 0)
	for entry := range b.writeChan {
		for _, s := range b.sinks {
			if entry.level >= s.level {
				_, _ = s.Write(entry.log)
			}
		}
	}
}

// IsRunning returns whether Run was called and Close was not.
func (b *Backend) IsRunning() bool {
	return atomic.LoadUint32(&b.isRunning) != 0
}

// Close flushes the pending lines and closes every sink.
func (b *Backend) Close() {
	close(b.writeChan)
	b.done.Wait()
	for _, s := range b.sinks {
		_ = s.Close()
	}
}

// Logger returns a logger for subsystemTag writing into b. It is off until
// its level is set.
func (b *Backend) Logger(subsystemTag string) *Logger {
	return &Logger{lvl: LevelOff, tag: subsystemTag, b: b, writeChan: b.writeChan}
}
