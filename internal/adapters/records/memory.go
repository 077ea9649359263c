package records

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

// Memory is an in-memory record catalog.
type Memory struct {
	mu      sync.RWMutex
	byID    map[domain.Identifier]domain.Record
	order   []domain.Identifier
	digests map[string]string
}

var _ ports.RecordCatalog = (*Memory)(nil)

// NewMemory creates a catalog holding recs.
func NewMemory(recs ...domain.Record) *Memory {
	m := &Memory{
		byID:    make(map[domain.Identifier]domain.Record),
		digests: make(map[string]string),
	}
	m.put(recs)
	return m
}

// FindByID returns the record with the given identifier, or nil.
func (m *Memory) FindByID(ctx context.Context, id domain.Identifier) (*domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// FindByName returns the first record named name, with or without its type
// qualifier. Entities are preferred over tint palettes.
func (m *Memory) FindByName(ctx context.Context, name string) (*domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var found *domain.Record
	for _, id := range m.order {
		rec := m.byID[id]
		if rec.Name != name && rec.ShortName() != name {
			continue
		}
		if rec.IsEntity() {
			return &rec, nil
		}
		if found == nil {
			found = &rec
		}
	}
	return found, nil
}

// FindByNamePattern returns records whose filename matches pattern,
// ignoring case, ordered by filename.
func (m *Memory) FindByNamePattern(ctx context.Context, pattern string) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	re, err := globPattern(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "pattern", pattern)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.Record
	for _, id := range m.order {
		if rec := m.byID[id]; re.MatchString(rec.Filename) {
			out = append(out, rec)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Record) int {
		return strings.Compare(strings.ToLower(a.Filename), strings.ToLower(b.Filename))
	})
	return out, nil
}

// Ingest decodes dump files and stores their records. Dumps whose content
// is unchanged since their last ingest are skipped.
func (m *Memory) Ingest(ctx context.Context, paths []string) (int, error) {
	dumps, err := readDumps(ctx, paths)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, d := range dumps {
		if m.digests[d.path] == d.digest {
			continue
		}
		m.putLocked(d.records)
		m.digests[d.path] = d.digest
		n += len(d.records)
	}
	return n, nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}

func (m *Memory) put(recs []domain.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putLocked(recs)
}

func (m *Memory) putLocked(recs []domain.Record) {
	for _, rec := range recs {
		if _, exists := m.byID[rec.ID]; !exists {
			m.order = append(m.order, rec.ID)
		}
		m.byID[rec.ID] = rec
	}
}
