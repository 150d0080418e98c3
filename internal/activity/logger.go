// Package activity implements the append-only audit logger shared by every
// mutating handler.  A record call is fire-and-forget from the caller's
// perspective: the triggering mutation has already committed, and nothing
// the logger does may fail or delay the parent request.
package activity

import (
	"context"
	"log"
	"time"

	"github.com/HektorTM/wos-dashboard-sub001/internal/queue"
	"github.com/HektorTM/wos-dashboard-sub001/internal/repository"
	activity_publisher "github.com/HektorTM/wos-dashboard-sub001/internal/service"
)

// Entry is the four-field contract exposed to handlers.  User is the actor
// uuid; empty means a system action.
type Entry struct {
	Type     string
	TargetID string
	User     string
	Action   string
}

// Recorder is what handlers depend on, so tests can capture entries
// without a database.
type Recorder interface {
	Record(ctx context.Context, e Entry)
}

// Logger appends entries to the activity table and mirrors them onto the
// message broker.  The row append is synchronous so the log-listing
// endpoints read consistent data, but its error is swallowed; the broker
// publish happens in a goroutine with an at-most-once, no-retry guarantee.
type Logger struct {
	repo   *repository.ActivityRepo
	mirror bool
}

// NewLogger builds a Logger.  mirror=false disables the broker side-channel
// (used when no broker is deployed).
func NewLogger(repo *repository.ActivityRepo, mirror bool) *Logger {
	return &Logger{repo: repo, mirror: mirror}
}

// Record appends one audit row.  The entry is written under its own
// timeout, detached from the request context: a client disconnecting after
// the mutation committed must not lose the audit record.
func (l *Logger) Record(_ context.Context, e Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := l.repo.Append(ctx, e.Type, e.TargetID, e.User, e.Action); err != nil {
		// Reported to the operator, never to the end user.
		log.Printf("activity: append failed (type=%s target=%s action=%s): %v", e.Type, e.TargetID, e.Action, err)
	}

	if !l.mirror {
		return
	}
	ev := queue.ActivityRecordedEvent{
		Type:       e.Type,
		TargetID:   e.TargetID,
		User:       e.User,
		Action:     e.Action,
		RecordedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pctx, pcancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pcancel()
		_ = activity_publisher.PublishActivityRecorded(pctx, ev)
	}()
}
