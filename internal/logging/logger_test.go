package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func initForTest(t *testing.T, o Options) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "logs")
	if err := Initialize(dir, o); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}
	t.Cleanup(func() {
		_ = Initialize("", Options{})
	})
	return dir
}

// TestAllCategoriesLog tests that all categories create log files when debug_mode is true
func TestAllCategoriesLog(t *testing.T) {
	dir := initForTest(t, Options{DebugMode: true, Level: "debug"})

	if !IsDebugMode() {
		t.Error("Expected debug mode to be enabled")
	}

	for _, cat := range AllCategories() {
		if !IsCategoryEnabled(cat) {
			t.Errorf("Category %s should be enabled", cat)
		}
		logger := Get(cat)
		logger.Info("Test info message for %s", cat)
		logger.Debug("Test debug message for %s", cat)
		logger.Warn("Test warn message for %s", cat)
		logger.Error("Test error message for %s", cat)
	}

	Boot("Convenience boot log")
	Config("Convenience config log")
	Filter("Convenience filter log")
	Wizard("Convenience wizard log")
	Actions("Convenience actions log")
	Theme("Convenience theme log")
	UI("Convenience ui log")

	CloseAll()

	for _, cat := range AllCategories() {
		path := filepath.Join(dir, string(cat)+".log")
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("Log file for %s not created: %v", cat, err)
			continue
		}
		content := string(data)
		if !strings.Contains(content, "Test info message for "+string(cat)) {
			t.Errorf("Log file for %s missing info message", cat)
		}
		if !strings.Contains(content, "Test debug message for "+string(cat)) {
			t.Errorf("Log file for %s missing debug message", cat)
		}
	}
}

func TestDebugModeOffWritesNothing(t *testing.T) {
	dir := initForTest(t, Options{DebugMode: false, Level: "debug"})

	if IsDebugMode() {
		t.Fatal("Expected debug mode to be disabled")
	}
	Get(CategoryFilter).Info("should be dropped")
	Audit().Join("1", nil)
	CloseAll()

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("expected no logs directory in production mode, stat err = %v", err)
	}
}

func TestCategoryFilter(t *testing.T) {
	dir := initForTest(t, Options{
		DebugMode:  true,
		Categories: map[string]bool{"ui": false},
	})

	if IsCategoryEnabled(CategoryUI) {
		t.Error("ui category should be disabled")
	}
	if !IsCategoryEnabled(CategoryWizard) {
		t.Error("categories missing from the map default to enabled")
	}

	UI("dropped")
	Wizard("kept")
	CloseAll()

	if _, err := os.Stat(filepath.Join(dir, "ui.log")); !os.IsNotExist(err) {
		t.Error("disabled category should not create a file")
	}
	if _, err := os.Stat(filepath.Join(dir, "wizard.log")); err != nil {
		t.Errorf("wizard.log missing: %v", err)
	}
}

func TestLevelFiltersDebug(t *testing.T) {
	dir := initForTest(t, Options{DebugMode: true, Level: "warn", Format: "console"})

	l := Get(CategoryActions)
	l.Info("quiet info")
	l.Warn("loud warning")
	CloseAll()

	data, err := os.ReadFile(filepath.Join(dir, "actions.log"))
	if err != nil {
		t.Fatalf("read actions.log: %v", err)
	}
	if strings.Contains(string(data), "quiet info") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(string(data), "loud warning") {
		t.Error("warning should be written at warn level")
	}
}

func TestWithAddsFields(t *testing.T) {
	dir := initForTest(t, Options{DebugMode: true, Level: "info", Format: "json"})

	Get(CategoryFilter).With("results", 3).Info("applied")
	CloseAll()

	f, err := os.Open(filepath.Join(dir, "filter.log"))
	if err != nil {
		t.Fatalf("open filter.log: %v", err)
	}
	defer f.Close()

	found := false
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var entry map[string]interface{}
		if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
			t.Fatalf("line is not JSON: %q", sc.Text())
		}
		if entry["msg"] == "applied" {
			found = true
			if entry["results"] != float64(3) {
				t.Errorf("results field = %v", entry["results"])
			}
			if entry["logger"] != "filter" {
				t.Errorf("logger name = %v", entry["logger"])
			}
		}
	}
	if !found {
		t.Error("structured entry not written")
	}
}

func TestAuditWritesJSONLines(t *testing.T) {
	dir := initForTest(t, Options{DebugMode: true})

	Audit().Join("4", nil)
	Audit().View("7", errors.New("gone"))
	CloseAll()

	data, err := os.ReadFile(filepath.Join(dir, "audit.jsonl"))
	if err != nil {
		t.Fatalf("read audit.jsonl: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 audit lines, got %d: %q", len(lines), data)
	}

	var second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if second["event"] != string(AuditViewRequested) {
		t.Errorf("event = %v", second["event"])
	}
	if second["ok"] != false || second["error"] != "gone" {
		t.Errorf("unexpected outcome fields: %v", second)
	}
}

func TestNilAuditLoggerIsSafe(t *testing.T) {
	var a *AuditLogger
	a.Join("1", nil)
}
