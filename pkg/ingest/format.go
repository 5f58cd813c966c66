// Package ingest manages live-streaming sessions for external-CI test
// reporters: setup allocates the backing execution and cycle, event batches
// stream logs and results through the cache, and teardown drains everything
// into the durable store.
package ingest

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxChunkSize bounds a single log chunk.
const MaxChunkSize = 8192

// MaxBatchSize bounds the events array of one batch.
const MaxBatchSize = 100

// Cache key builders. Session and results are keyed by sessionId; the live
// log buffer is keyed by taskId so dashboards and the worker path share it.
func sessionKey(sessionID string) string { return "ingest:session:" + sessionID }
func resultsKey(sessionID string) string { return "ingest:results:" + sessionID }

// LogKey returns the live-log cache key for a task.
func LogKey(taskID string) string { return "live:logs:" + taskID }

// NewTaskID allocates the sentinel taskId for an ingest-backed execution.
func NewTaskID(now time.Time) string {
	return fmt.Sprintf("ingest-%d-%s", now.UnixMilli(), uuid.New().String()[:8])
}

// Status icons used in formatted log lines.
const (
	iconPassed  = "✔"
	iconSkipped = "–"
	iconFailed  = "✘"
)

// FormatTestBegin renders the log line for a test-begin event.
func FormatTestBegin(title string) string {
	return "▶ RUNNING  " + title
}

// FormatTestEnd renders the log line for a test-end event.
func FormatTestEnd(title, status string, duration int64, errMsg string) string {
	icon := iconFailed
	switch status {
	case "passed":
		icon = iconPassed
	case "skipped":
		icon = iconSkipped
	}

	line := fmt.Sprintf("%s %s  %s (%dms)", icon, statusLabel(status), title, duration)
	if errMsg != "" {
		line += "\n    " + errMsg
	}
	return line
}

func statusLabel(status string) string {
	switch status {
	case "passed":
		return "PASSED "
	case "failed":
		return "FAILED "
	case "skipped":
		return "SKIPPED"
	case "timedOut":
		return "TIMEOUT"
	default:
		return status
	}
}
