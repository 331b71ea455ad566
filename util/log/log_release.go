//go:build release

package log

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mzilenas/hundview/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logDir returns the per-user directory the release log is written to.
func logDir() (string, error) {
	if runtime.GOOS == "windows" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("getting user cache directory: %w", err)
		}
		return filepath.Join(dir, config.LogWinSubDir), nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting user home directory: %w", err)
	}
	return filepath.Join(dir, config.LogSubDir), nil
}

func init() {
	dir, err := logDir()
	if err != nil {
		log.Fatalf("Failed to resolve log directory: %v", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   filepath.Join(dir, config.LogWinSubDir+config.LogExt),
		MaxSize:    10, // MB
		MaxBackups: 2,
		MaxAge:     28, // days
		Compress:   true,
	})
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

// output writes s attributed to the caller of the exported function.
func output(s string) {
	log.Output(3, s)
}

// fatal writes s and exits.
func fatal(s string) {
	log.Output(3, s)
	os.Exit(1)
}

// Print calls the standard log.Print()
func Print(v ...interface{}) { output(fmt.Sprint(v...)) }

// Printf calls the standard log.Printf()
func Printf(format string, v ...interface{}) { output(fmt.Sprintf(format, v...)) }

// Println calls the standard log.Println()
func Println(v ...interface{}) { output(fmt.Sprintln(v...)) }

// Fatal logs and exits with status 1.
func Fatal(v ...interface{}) { fatal(fmt.Sprint(v...)) }

// Fatalf logs and exits with status 1.
func Fatalf(format string, v ...interface{}) { fatal(fmt.Sprintf(format, v...)) }

// Fatalln logs and exits with status 1.
func Fatalln(v ...interface{}) { fatal(fmt.Sprintln(v...)) }

// Debug is a no-op in release builds.
func Debug(v ...interface{}) {}

// Debugf is a no-op in release builds.
func Debugf(format string, v ...interface{}) {}
