package util

import (
	"crypto/rand"
	"fmt"
	"log"
	"net/http"
)

// Severity is the importance class of an audit log message
type Severity int

// Audit log severities, most important first
const (
	FATAL Severity = iota
	ERROR
	WARN
	INFO
	DEBUG
)

func (s Severity) String() string {
	switch s {
	case FATAL:
		return "FATAL"
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	}
	return "UNKNOWN"
}

// LogContext provides session information for log messages
type LogContext interface {
	AppName() string
	SessionID() string
	LogRootDir() string
}

// BasicLogContext is a bare LogContext for callers with no session of their own
type BasicLogContext struct {
	sessionID string
}

// AppName returns an empty string
func (c *BasicLogContext) AppName() string {
	return ""
}

// SessionID returns a Session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *BasicLogContext) LogRootDir() string {
	return ""
}

func logPrefix(ctx LogContext) string {
	name := ctx.AppName()
	if name == "" {
		name = "skymap"
	}
	return fmt.Sprintf("%s [%s]", name, ctx.SessionID())
}

// LogInfo logs an informational message
func LogInfo(ctx LogContext, message string) {
	log.Printf("%s INFO: %s", logPrefix(ctx), message)
}

// LogAlert logs a message that somebody ought to look at
func LogAlert(ctx LogContext, message string) {
	log.Printf("%s ALERT: %s", logPrefix(ctx), message)
}

// LogSimpleErr logs a message with its underlying error and returns an
// error wrapping both, suitable for handing back up the call stack
func LogSimpleErr(ctx LogContext, message string, err error) error {
	wrapped := fmt.Errorf("%s: %v", message, err)
	log.Printf("%s ERROR: %v", logPrefix(ctx), wrapped)
	return wrapped
}

// LogAuditInput is the set of fields for an audit log entry
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity Severity
}

// LogAudit writes an actor/action/actee audit record
func LogAudit(ctx LogContext, input LogAuditInput) {
	log.Printf("%s AUDIT %s: actor=%q action=%q actee=%q %s",
		logPrefix(ctx), input.Severity, input.Actor, input.Action, input.Actee, input.Message)
}

// Error is an operational error with both an operator-facing log message
// and a user-facing simple message
type Error struct {
	LogMsg     string
	SimpleMsg  string
	Response   string
	URL        string
	HTTPStatus int
}

// Log writes the detailed form of the error and returns an error carrying
// the simple form; prefix, if non-empty, is prepended to the log message
func (e *Error) Log(ctx LogContext, prefix string) error {
	message := e.LogMsg
	if message == "" {
		message = e.SimpleMsg
	}
	if prefix != "" {
		message = prefix + ": " + message
	}
	if e.URL != "" {
		message += " URL=" + e.URL
	}
	if e.HTTPStatus != 0 {
		message += fmt.Sprintf(" status=%d", e.HTTPStatus)
	}
	if e.Response != "" {
		message += "\nResponse: " + e.Response
	}
	log.Printf("%s ERROR: %s", logPrefix(ctx), message)
	if e.SimpleMsg != "" {
		return fmt.Errorf(e.SimpleMsg)
	}
	return fmt.Errorf(e.LogMsg)
}

// HTTPErr is an error that carries an HTTP status code
type HTTPErr struct {
	Status  int
	Message string
}

func (e HTTPErr) Error() string {
	return e.Message
}

// HTTPError logs and writes an error response for the given request
func HTTPError(r *http.Request, w http.ResponseWriter, ctx LogContext, message string, status int) {
	LogAlert(ctx, fmt.Sprintf("%s %s -> %d: %s", r.Method, r.URL.Path, status, message))
	http.Error(w, message, status)
}

// PsuUUID generates a pseudorandom V4-shaped UUID; it is not suitable for
// anything needing real uniqueness guarantees beyond log session tagging
func PsuUUID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:]), nil
}
