package notify

import "log"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier surfaces recoverable problems to the shopper. Fire-and-forget:
// callers never depend on the outcome.
type Notifier interface {
	Notify(message string, severity Severity)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) Notify(message string, severity Severity) {
	log.Printf("🔔 [%s] %s", severity, message)
}

// Func adapts a plain function to the Notifier interface.
type Func func(message string, severity Severity)

func (f Func) Notify(message string, severity Severity) { f(message, severity) }
