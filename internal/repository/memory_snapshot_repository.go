package repository

import (
	"sync"

	"clinic-agenda-server/internal/domain/entity"
	domainRepo "clinic-agenda-server/internal/domain/repository"
)

type memorySnapshotRepository struct {
	mu   sync.RWMutex
	snap entity.Snapshot
}

// NewMemorySnapshotRepository returns a SnapshotRepository holding its
// state in process memory, starting from the given seed. Load and Save
// deep-copy, so handed-out snapshots never alias the stored one and a
// caller cannot mutate the repository behind its back.
func NewMemorySnapshotRepository(seed entity.Snapshot) domainRepo.SnapshotRepository {
	return &memorySnapshotRepository{snap: seed.Clone()}
}

func (r *memorySnapshotRepository) Load() (entity.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap.Clone(), nil
}

func (r *memorySnapshotRepository) Save(snap entity.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = snap.Clone()
	return nil
}
