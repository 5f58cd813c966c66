package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agnox-io/agnox/ent"
	"github.com/agnox-io/agnox/pkg/models"
)

type fakeDispatcher struct {
	mu       sync.Mutex
	messages []models.TaskMessage
}

func (f *fakeDispatcher) DispatchStamped(_ context.Context, msg models.TaskMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeDispatcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func testSchedule(id, expr string) *ent.Schedule {
	return &ent.Schedule{
		ID:             id,
		OrgID:          "org-1",
		Name:           "nightly regression",
		CronExpression: expr,
		Environment:    "staging",
		Image:          "agnox/runner:1",
		IsActive:       true,
	}
}

func TestAddScheduledJobIdempotent(t *testing.T) {
	s := New(&fakeDispatcher{}, slog.Default())

	sched := testSchedule("s1", "0 2 * * *")
	require.NoError(t, s.AddScheduledJob(sched))
	require.NoError(t, s.AddScheduledJob(sched))
	assert.Equal(t, 1, s.JobCount())
}

func TestAddScheduledJobRejectsBadExpression(t *testing.T) {
	s := New(&fakeDispatcher{}, slog.Default())

	err := s.AddScheduledJob(testSchedule("s1", "not a cron"))
	assert.Error(t, err)
	assert.Equal(t, 0, s.JobCount())
}

func TestLoadSkipsInvalidSchedules(t *testing.T) {
	s := New(&fakeDispatcher{}, slog.Default())

	s.Load([]*ent.Schedule{
		testSchedule("good", "*/5 * * * *"),
		testSchedule("bad", "99 99 * * *"),
		testSchedule("also-good", "0 9 * * 1-5"),
	})
	assert.Equal(t, 2, s.JobCount())
}

func TestRemoveScheduledJob(t *testing.T) {
	s := New(&fakeDispatcher{}, slog.Default())

	require.NoError(t, s.AddScheduledJob(testSchedule("s1", "0 2 * * *")))
	s.RemoveScheduledJob("s1")
	assert.Equal(t, 0, s.JobCount())

	// Removing an unknown id is a no-op.
	s.RemoveScheduledJob("missing")
}

func TestStopAllClearsRegistry(t *testing.T) {
	s := New(&fakeDispatcher{}, slog.Default())
	s.Start()

	require.NoError(t, s.AddScheduledJob(testSchedule("s1", "0 2 * * *")))
	require.NoError(t, s.AddScheduledJob(testSchedule("s2", "0 3 * * *")))

	s.StopAll()
	assert.Equal(t, 0, s.JobCount())
}

func TestFireStampsCronTask(t *testing.T) {
	d := &fakeDispatcher{}
	s := New(d, slog.Default())

	s.fire(firing{
		scheduleID:  "s1",
		orgID:       "org-1",
		name:        "nightly regression",
		environment: "staging",
		image:       "agnox/runner:1",
		baseURL:     "https://staging.example.com",
	})

	require.Equal(t, 1, d.count())
	msg := d.messages[0]
	assert.Equal(t, models.TriggerCron, msg.Trigger)
	assert.Equal(t, "org-1", msg.OrganizationID)
	assert.Equal(t, "nightly regression", msg.GroupName)
	assert.Equal(t, "staging", msg.Config.Environment)
	assert.Contains(t, msg.TaskID, "cron-")
}
