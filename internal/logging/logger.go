// Package logging provides config-driven categorized file-based logging for compete.
// Logs are written to the configured directory with one file per category.
// Logging is controlled by debug_mode - when false, no logs are written and
// every category hands out a no-op logger. The TUI owns the terminal, so
// nothing here ever writes to stdout.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config resolution
	CategoryConfig  Category = "config"  // Config load/save, env overrides
	CategoryFilter  Category = "filter"  // Filter state changes and result counts
	CategoryWizard  Category = "wizard"  // Create-competition wizard lifecycle
	CategoryActions Category = "actions" // Join/view/deploy collaborators
	CategoryTheme   Category = "theme"   // Theme detection and toggles
	CategoryUI      Category = "ui"      // Key routing, layout, rendering
)

// AllCategories lists every category in declaration order.
func AllCategories() []Category {
	return []Category{
		CategoryBoot, CategoryConfig, CategoryFilter, CategoryWizard,
		CategoryActions, CategoryTheme, CategoryUI,
	}
}

// Options mirrors the relevant parts of config.LoggingConfig
// to avoid circular imports.
type Options struct {
	DebugMode  bool
	Level      string
	Format     string // "json" or "console"
	Categories map[string]bool
}

// Logger wraps a zap sugared logger bound to one category.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	logsDir   string
	opts      Options
	optsMu    sync.RWMutex
	files     []*os.File
)

// Initialize sets up the logging directory and options.
// Should be called once at startup. A blank dir or DebugMode=false leaves
// logging disabled.
func Initialize(dir string, o Options) error {
	CloseAll()

	optsMu.Lock()
	opts = o
	logsDir = dir
	optsMu.Unlock()

	if !o.DebugMode || dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("=== compete logging initialized ===")
	boot.Info("Logs directory: %s", dir)
	boot.Info("Log level: %s", levelName(o.Level))
	if len(o.Categories) == 0 {
		boot.Info("All categories enabled (no category filter)")
	} else {
		for cat, enabled := range o.Categories {
			boot.Debug("Category '%s': %v", cat, enabled)
		}
	}
	return nil
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	optsMu.RLock()
	defer optsMu.RUnlock()
	return opts.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	optsMu.RLock()
	defer optsMu.RUnlock()

	if !opts.DebugMode {
		return false
	}
	enabled, exists := opts.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) {
		return nop(category)
	}

	optsMu.RLock()
	dir, o := logsDir, opts
	optsMu.RUnlock()
	if dir == "" {
		return nop(category)
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	path := filepath.Join(dir, string(category)+".log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", path, err)
		return nop(category)
	}
	files = append(files, file)

	core := zapcore.NewCore(newEncoder(o.Format), zapcore.AddSync(file), parseLevel(o.Level))
	l := &Logger{
		category: category,
		sugar:    zap.New(core).Named(string(category)).Sugar(),
	}
	loggers[category] = l
	return l
}

func nop(category Category) *Logger {
	return &Logger{category: category, sugar: zap.NewNop().Sugar()}
}

func newEncoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if strings.EqualFold(format, "console") {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewJSONEncoder(cfg)
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func levelName(s string) string { return parseLevel(s).String() }

// Category returns the category the logger writes to.
func (l *Logger) Category() Category { return l.category }

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) { l.sugar.Infof(format, args...) }

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) { l.sugar.Warnf(format, args...) }

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// With returns a child logger carrying structured key/value pairs.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{category: l.category, sugar: l.sugar.With(keysAndValues...)}
}

// CloseAll flushes and closes all open log files (call at shutdown)
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for _, l := range loggers {
		_ = l.sugar.Sync()
	}
	for _, f := range files {
		f.Close()
	}
	loggers = make(map[Category]*Logger)
	files = nil
	closeAudit()
}

// =============================================================================
// CONVENIENCE FUNCTIONS - Quick logging without getting a logger first
// These are no-ops if the category is disabled
// =============================================================================

// Boot logs to the boot category
func Boot(format string, args ...interface{}) { Get(CategoryBoot).Info(format, args...) }

// BootDebug logs debug to the boot category
func BootDebug(format string, args ...interface{}) { Get(CategoryBoot).Debug(format, args...) }

// BootError logs an error to the boot category
func BootError(format string, args ...interface{}) { Get(CategoryBoot).Error(format, args...) }

// Config logs to the config category
func Config(format string, args ...interface{}) { Get(CategoryConfig).Info(format, args...) }

// ConfigWarn logs a warning to the config category
func ConfigWarn(format string, args ...interface{}) { Get(CategoryConfig).Warn(format, args...) }

// Filter logs to the filter category
func Filter(format string, args ...interface{}) { Get(CategoryFilter).Info(format, args...) }

// FilterDebug logs debug to the filter category
func FilterDebug(format string, args ...interface{}) { Get(CategoryFilter).Debug(format, args...) }

// Wizard logs to the wizard category
func Wizard(format string, args ...interface{}) { Get(CategoryWizard).Info(format, args...) }

// WizardDebug logs debug to the wizard category
func WizardDebug(format string, args ...interface{}) { Get(CategoryWizard).Debug(format, args...) }

// Actions logs to the actions category
func Actions(format string, args ...interface{}) { Get(CategoryActions).Info(format, args...) }

// ActionsError logs an error to the actions category
func ActionsError(format string, args ...interface{}) { Get(CategoryActions).Error(format, args...) }

// Theme logs to the theme category
func Theme(format string, args ...interface{}) { Get(CategoryTheme).Info(format, args...) }

// UI logs to the ui category
func UI(format string, args ...interface{}) { Get(CategoryUI).Info(format, args...) }

// UIDebug logs debug to the ui category
func UIDebug(format string, args ...interface{}) { Get(CategoryUI).Debug(format, args...) }
