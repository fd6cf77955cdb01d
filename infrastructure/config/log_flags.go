package config

import (
	"os"
	"path/filepath"

	"github.com/danlabs/danwallet/infrastructure/logger"
	"github.com/pkg/errors"
)

const (
	defaultLogLevel       = "info"
	defaultLogFilename    = "danwallet.log"
	defaultErrLogFilename = "danwallet_err.log"
	defaultAppDirname     = ".danwallet"
)

// DefaultAppDir returns the directory danwallet keeps its logs and store in
// when none is given.
func DefaultAppDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultAppDirname
	}
	return filepath.Join(homeDir, defaultAppDirname)
}

// LogFlags holds the logging configuration shared by every sub-command.
type LogFlags struct {
	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off}"`
	NoLogFiles bool   `long:"nologfiles" description:"Log to stderr only"`
}

// ResolveLogging applies the logging configuration: it attaches the log
// files, starts the logger backend and sets the level of every subsystem.
func (logFlags *LogFlags) ResolveLogging() error {
	if logFlags.DebugLevel == "" {
		logFlags.DebugLevel = defaultLogLevel
	}
	if _, ok := logger.LevelFromString(logFlags.DebugLevel); !ok {
		return errors.Errorf("the specified debug level [%s] is invalid", logFlags.DebugLevel)
	}
	if logFlags.LogDir == "" {
		logFlags.LogDir = filepath.Join(DefaultAppDir(), "logs")
	}

	if logFlags.NoLogFiles {
		err := logger.BackendLog.AddLogWriter(os.Stderr, logger.LevelInfo)
		if err != nil {
			return err
		}
		err = logger.BackendLog.Run()
		if err != nil {
			return err
		}
	} else {
		logger.InitLog(filepath.Join(logFlags.LogDir, defaultLogFilename),
			filepath.Join(logFlags.LogDir, defaultErrLogFilename))
	}

	return logger.SetLogLevels(logFlags.DebugLevel)
}

// CombineLogFlags fills the unset fields of dst from src, so that global
// flags given before the sub-command apply to it.
func CombineLogFlags(dst, src *LogFlags) {
	if dst.LogDir == "" {
		dst.LogDir = src.LogDir
	}
	if dst.DebugLevel == "" {
		dst.DebugLevel = src.DebugLevel
	}
	dst.NoLogFiles = dst.NoLogFiles || src.NoLogFiles
}
