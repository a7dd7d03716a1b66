package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/packlist-service/internal/domain/model"
)

const auditLoggerKey = "audit_logger"

// WithAuditLogger makes al available to handlers through AuditLog.
func WithAuditLogger(al *AsyncLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if al != nil {
			c.Set(auditLoggerKey, al)
		}
		c.Next()
	}
}

func auditLogger(c *gin.Context) *AsyncLogger {
	v, ok := c.Get(auditLoggerKey)
	if !ok {
		return nil
	}
	al, _ := v.(*AsyncLogger)
	return al
}

// AuditLog records a business action such as a calculation or a catalog change.
// It does nothing when no audit logger is installed.
func AuditLog(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	al := auditLogger(c)
	if al == nil {
		return
	}
	al.Log(auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed business action.
func AuditLogError(c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	al := auditLogger(c)
	if al == nil {
		return
	}
	entry := auditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	al.Log(entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	return entry
}
