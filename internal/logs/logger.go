package logs

import (
	"crypto/rand"
	"os"
	"path/filepath"
	"sync"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is a no-op until Initialize succeeds.
	Logger  = zap.NewNop().Sugar()
	RunID   = ulid.MustNew(ulid.Now(), rand.Reader).String()
	logFile *os.File
	mu      sync.Mutex
)

// Initialize points the logger at <logDir>/debug.log. Entries are JSON lines
// tagged with the process run id. With debug unset only info and above are
// written.
func Initialize(logDir string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" {
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Logger.Warnf("Failed to open log file at %s: %v", logPath, err)
		return err
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), level)

	if logFile != nil {
		_ = Logger.Sync()
		logFile.Close()
	}

	logFile = f
	Logger = zap.New(core, zap.AddCaller()).Sugar().With("run", RunID)
	Logger.Debugf("Logger initialized at %s", logPath)

	return nil
}

// Close flushes and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	_ = Logger.Sync()
	err := logFile.Close()
	logFile = nil
	Logger = zap.NewNop().Sugar()
	return err
}
