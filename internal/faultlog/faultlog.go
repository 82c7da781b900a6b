// Package faultlog appends request failures to a size-bounded text log.
// It is the diagnostic sink for every failed call; a logging failure must
// never fail the request being handled.
package faultlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config holds fault log settings.
type Config struct {
	Dir       string `yaml:"dir"`
	MaxSizeMB int64  `yaml:"max_size_mb"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Dir:       "logs",
		MaxSizeMB: 100,
	}
}

// Logger writes delimiter-framed error blocks to <dir>/error/error_log.log.
// Timestamps are always rendered in Asia/Tehran regardless of host timezone.
type Logger struct {
	dir      string
	maxBytes int64
	fallback io.Writer
	mu       sync.Mutex
	now      func() time.Time
	zone     *time.Location
}

// New creates a fault logger. The containing directory is created lazily on
// first write.
func New(cfg Config) *Logger {
	if cfg.Dir == "" {
		cfg.Dir = "logs"
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 100
	}
	return &Logger{
		dir:      cfg.Dir,
		maxBytes: cfg.MaxSizeMB * 1024 * 1024,
		fallback: os.Stderr,
		now:      time.Now,
		zone:     tehranZone(),
	}
}

// Record appends one error block and reports whether the write succeeded.
// subject identifies the business-level item involved when available and may
// be empty. If the file exceeds the size bound it is truncated in place first;
// history is destroyed, not archived. Any I/O failure goes to the fallback
// stream and Record returns false; it never panics and never returns an error.
func (l *Logger) Record(component, operation, subject, errText string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	block := fmt.Sprintf(
		"\n==================== Log Error ===================================\n"+
			"Timestamp     : %s\n"+
			"Component     : %s\n"+
			"Operation     : %s\n"+
			"Subject       : %s\n"+
			"Error         : %s\n"+
			"====================================================================\n",
		l.now().In(l.zone).Format("2006-01-02 15:04:05.000000 -07:00"),
		component, operation, subject, errText,
	)

	path := filepath.Join(l.dir, "error", "error_log.log")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(l.fallback, "faultlog: creating log directory failed: %v\n", err)
		return false
	}

	if info, err := os.Stat(path); err == nil && info.Size() > l.maxBytes {
		if err := os.Truncate(path, 0); err != nil {
			fmt.Fprintf(l.fallback, "faultlog: truncating oversized log failed: %v\n", err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(l.fallback, "faultlog: opening log file failed: %v\n", err)
		return false
	}
	defer f.Close()

	if _, err := f.WriteString(block); err != nil {
		fmt.Fprintf(l.fallback, "faultlog: writing log entry failed: %v\n", err)
		return false
	}

	return true
}

func tehranZone() *time.Location {
	loc, err := time.LoadLocation("Asia/Tehran")
	if err != nil {
		return time.FixedZone("Asia/Tehran", 3*3600+30*60)
	}
	return loc
}
