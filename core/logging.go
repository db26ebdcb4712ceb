package core

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a no-op until one of the InitLogging functions runs.
var Logger = zap.NewNop().Sugar()

const DefaultLogPath = "gamepick.log"

func GetDefaultLogPath() (string, error) {
	path, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(path, DefaultLogPath), nil
}

func InitLoggingWithDefaultPath(verbose bool) error {
	path, err := GetDefaultLogPath()
	if err != nil {
		return err
	}

	return InitLoggingWithPath(path, verbose)
}

func InitLoggingWithPath(path string, verbose bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(file), logLevel(verbose))
	Logger = zap.New(fileCore, zap.AddCaller()).Sugar()
	return nil
}

// InitConsoleLogging is the fallback used when the log file cannot be opened.
func InitConsoleLogging(verbose bool) error {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(logLevel(verbose))
	config.OutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	Logger = logger.Sugar()
	return nil
}

func SyncLogging() {
	_ = Logger.Sync()
}

func logLevel(verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}
