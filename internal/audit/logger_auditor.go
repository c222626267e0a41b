// filepath: internal/audit/logger_auditor.go
package audit

import (
	"context"
	"miocouple/internal/logging"
	"miocouple/internal/services"

	"github.com/sirupsen/logrus"
)

// Ensure LoggerAuditor implements services.Auditor
var _ services.Auditor = (*LoggerAuditor)(nil)

// LoggerAuditor mirrors audit events to the standard application log. The
// durable audit trail lives in the activity_logs table; this is the
// greppable operational view of the same events.
type LoggerAuditor struct {
	enabled bool
}

// NewLoggerAuditor creates a new instance of LoggerAuditor.
func NewLoggerAuditor(enabled bool) *LoggerAuditor {
	return &LoggerAuditor{enabled: enabled}
}

// Log records an event using logrus if auditing is enabled.
func (a *LoggerAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	if !a.enabled {
		return
	}

	fields := logrus.Fields{
		"audit_action":   action,
		"audit_actor":    actor,
		"audit_resource": resource,
	}

	for k, v := range details {
		fields["detail."+k] = v
	}

	logging.Log.WithFields(fields).Info("AUDIT EVENT")
}
