// Package bytepacket loads captured packets into fixed capacity buffers for
// decoding binary wire formats.
//
// The buffer itself lives in the bytebuffer subpackage, this package resolves
// packet files, keeps statistics about what was loaded and owns the logging
// and configuration shared by the tools in cmd.
//
// A driver exercising the whole API is implemented in `cmd/packetdump`.
package bytepacket

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is the last tagged version of the package
const Version = "1.0.0"

var logging bool
var logWriters = []zapcore.WriteSyncer{os.Stdout}
var logger *zap.Logger
var zapEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
}

func initLogging() {
	logging = false
	initializeLogger()
}

// EnableLogging enables logging if true is passed
// and disables it if false is passed.
func EnableLogging(enable bool) {
	logging = enable
}

// AddLogWriter adds a new io.Writer as a target for writing
// logs.
func AddLogWriter(writer io.Writer) {
	logWriters = append(logWriters, zapcore.AddSync(writer))
	initializeLogger()
}

// SetLogWriters will set the passed io.Writer instances as targets for
// writing logs.
func SetLogWriters(writers ...io.Writer) {
	writesyncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		writesyncers = append(writesyncers, zapcore.AddSync(w))
	}

	logWriters = writesyncers
	initializeLogger()
}

func initializeLogger() {
	ws := zap.CombineWriteSyncers(logWriters...)
	logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapEncoderConfig),
		ws, zapcore.InfoLevel,
	))
}

// init maintains a central location of all things that happen when the package is initialized
// instead of everything being scattered in multiple source files
func init() {
	initLogging()

	err := initConfig()
	if err != nil && logging {
		logger.Info("no config file found, using defaults",
			zap.String("module", "config"),
			zap.Error(err),
		)
	}
}
