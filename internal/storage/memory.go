package storage

import (
	"context"
	"sync"
	"time"

	"github.com/MiroBartanus/business-days-sk/internal/domain/models"
)

// MemoryRepository keeps custom holidays in process memory.
// Used with STORAGE_DRIVER=memory and in tests. Safe for concurrent use.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   []models.CustomHoliday
	now    func() time.Time
}

// NewMemoryRepository returns an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

func (m *MemoryRepository) ListCustomHolidays(_ context.Context) ([]models.CustomHoliday, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.CustomHoliday(nil), m.rows...), nil
}

func (m *MemoryRepository) InsertCustomHoliday(ctx context.Context, h models.CustomHoliday) (models.CustomHoliday, error) {
	if err := ctx.Err(); err != nil {
		return models.CustomHoliday{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertLocked(h), nil
}

func (m *MemoryRepository) InsertCustomHolidaysBatch(ctx context.Context, hs []models.CustomHoliday) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range hs {
		m.insertLocked(h)
	}
	return nil
}

func (m *MemoryRepository) Ping(context.Context) error { return nil }

func (m *MemoryRepository) insertLocked(h models.CustomHoliday) models.CustomHoliday {
	m.nextID++
	h.ID = m.nextID
	h.CreatedAt = m.now().UTC()
	m.rows = append(m.rows, h)
	return h
}
