package events

import (
	"time"

	"github.com/maxaizer/jobboard/internal/domain/models"
)

var JobsSyncedTopic = "JobsSyncedEvent"

// JobsSynced is published after a fresh listing was stored as the snapshot.
type JobsSynced struct {
	RunID    string
	Jobs     []models.Job
	SyncedAt time.Time
}
