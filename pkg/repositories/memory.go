package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	lock    sync.RWMutex
	records map[uuid.UUID]Record
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records: make(map[uuid.UUID]Record),
	}
}

func (r *InMemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *InMemoryRepository) Load(ctx context.Context, key uuid.UUID) (*Record, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	record, ok := r.records[key]
	if !ok {
		return nil, &ErrNotFound{Key: key}
	}

	return &Record{
		Version: record.Version,
		Data:    append([]byte{}, record.Data...),
	}, nil
}

func (r *InMemoryRepository) Store(ctx context.Context, key uuid.UUID, record *Record) (uint64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if record == nil {
		return 0, fmt.Errorf("record is nil")
	}

	current := r.records[key]
	if current.Version != record.Version {
		return 0, &ErrConflict{Key: key, Expected: record.Version, Actual: current.Version}
	}

	version := record.Version + 1
	r.records[key] = Record{
		Version: version,
		Data:    append([]byte{}, record.Data...),
	}
	return version, nil
}
