package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AuditEventType names a user-visible action worth keeping a trail of.
type AuditEventType string

const (
	AuditJoinRequested  AuditEventType = "join_requested"
	AuditViewRequested  AuditEventType = "view_requested"
	AuditDraftSubmitted AuditEventType = "draft_submitted"
	AuditDraftAbandoned AuditEventType = "draft_abandoned"
	AuditThemeToggled   AuditEventType = "theme_toggled"
	AuditActionError    AuditEventType = "action_error"
)

// AuditEvent is one line of audit.jsonl.
type AuditEvent struct {
	Type    AuditEventType
	Target  string // competition or draft id
	Success bool
	Error   string
	Fields  map[string]interface{}
}

// AuditLogger writes audit events as JSON lines. The zero value (and the
// logger returned while debug mode is off) discards everything.
type AuditLogger struct {
	z *zap.Logger
}

var (
	audit     *AuditLogger
	auditFile *os.File
	auditMu   sync.Mutex
)

// Audit returns the process-wide audit logger, opening audit.jsonl in the
// logs directory on first use.
func Audit() *AuditLogger {
	auditMu.Lock()
	defer auditMu.Unlock()

	if audit != nil {
		return audit
	}
	if !IsDebugMode() {
		return &AuditLogger{z: zap.NewNop()}
	}

	optsMu.RLock()
	dir := logsDir
	optsMu.RUnlock()
	if dir == "" {
		return &AuditLogger{z: zap.NewNop()}
	}

	path := filepath.Join(dir, "audit.jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open audit log %s: %v\n", path, err)
		return &AuditLogger{z: zap.NewNop()}
	}

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.EncodeTime = zapcore.EpochMillisTimeEncoder
	enc.MessageKey = "event"
	enc.LevelKey = ""
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(f), zapcore.InfoLevel)

	auditFile = f
	audit = &AuditLogger{z: zap.New(core)}
	return audit
}

func closeAudit() {
	auditMu.Lock()
	defer auditMu.Unlock()
	if audit != nil {
		_ = audit.z.Sync()
	}
	if auditFile != nil {
		auditFile.Close()
	}
	audit, auditFile = nil, nil
}

// Log records an event.
func (a *AuditLogger) Log(e AuditEvent) {
	if a == nil || a.z == nil {
		return
	}
	fields := []zap.Field{
		zap.String("target", e.Target),
		zap.Bool("ok", e.Success),
	}
	if e.Error != "" {
		fields = append(fields, zap.String("error", e.Error))
	}
	if len(e.Fields) > 0 {
		fields = append(fields, zap.Any("fields", e.Fields))
	}
	a.z.Info(string(e.Type), fields...)
}

// Join records a join request for a competition.
func (a *AuditLogger) Join(id string, err error) {
	a.Log(outcome(AuditJoinRequested, id, err))
}

// View records a details request for a competition.
func (a *AuditLogger) View(id string, err error) {
	a.Log(outcome(AuditViewRequested, id, err))
}

// DraftSubmitted records a wizard submission.
func (a *AuditLogger) DraftSubmitted(draftID, name string, err error) {
	e := outcome(AuditDraftSubmitted, draftID, err)
	e.Fields = map[string]interface{}{"name": name}
	a.Log(e)
}

// ThemeToggled records a theme switch.
func (a *AuditLogger) ThemeToggled(mode string, at time.Time) {
	a.Log(AuditEvent{
		Type:    AuditThemeToggled,
		Target:  mode,
		Success: true,
		Fields:  map[string]interface{}{"at": at.Format(time.RFC3339)},
	})
}

func outcome(t AuditEventType, target string, err error) AuditEvent {
	e := AuditEvent{Type: t, Target: target, Success: err == nil}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}
