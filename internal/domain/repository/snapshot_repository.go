package repository

import "clinic-agenda-server/internal/domain/entity"

// SnapshotRepository wraps the scheduling domain at its storage
// boundary: load the current snapshot, save the next one. The domain
// operations stay pure; implementations decide where snapshots live.
// The in-memory implementation is the only one shipped — state is
// seeded at process start and lost on restart.
type SnapshotRepository interface {
	Load() (entity.Snapshot, error)
	Save(entity.Snapshot) error
}
