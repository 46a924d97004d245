package shared

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/crm-mobile-api/internal/service/auth"
)

// ContextKey namespaces values this package stores in a request context.
type ContextKey string

const (
	// SessionContextKey holds the authenticated *auth.Session.
	SessionContextKey ContextKey = "session"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes in a trace ID (32 hex characters).
	TraceIDLength = 16
)

// SetTraceID adds a new trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "".
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithSession stores the authenticated session.
func WithSession(ctx context.Context, s *auth.Session) context.Context {
	return context.WithValue(ctx, SessionContextKey, s)
}

// SessionFrom returns the authenticated session, if any.
func SessionFrom(ctx context.Context) (*auth.Session, bool) {
	s, ok := ctx.Value(SessionContextKey).(*auth.Session)
	return s, ok && s != nil && s.Staff != nil
}

// StaffID returns the authenticated staff member's id.
func StaffID(ctx context.Context) (int64, bool) {
	s, ok := SessionFrom(ctx)
	if !ok {
		return 0, false
	}
	return s.Staff.ID, true
}

// generateTraceID returns a random 32 character hex id. If the random
// source fails it falls back to a time based id rather than a constant.
func generateTraceID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		slog.Error("failed to generate random trace ID",
			"error", err,
			"fallback", "time-based generation")
		return generateFallbackTraceID()
	}
	return hex.EncodeToString(id[:])
}

func generateFallbackTraceID() string {
	b := make([]byte, TraceIDLength)
	now := time.Now()
	binary.BigEndian.PutUint64(b[:8], uint64(now.UnixNano()))
	binary.BigEndian.PutUint32(b[8:12], uint32(now.Nanosecond()))
	binary.BigEndian.PutUint32(b[12:16], uint32(now.Unix()))
	return hex.EncodeToString(b)
}
