// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryRepository is an in-process [Repository] for development and tests.
//
// Records are kept in insertion order, and sorting is stable, so records with
// equal sort keys keep that order.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []Feedback
	lastID  int64
	now     func() time.Time
}

// NewMemoryRepository returns an empty in-memory store using the wall clock.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

// Append implements [Repository].
func (repository *MemoryRepository) Append(_ context.Context, record *Feedback) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.lastID++
	now := repository.now().UTC()

	record.ID = repository.lastID
	record.CreatedAt = now
	record.UpdatedAt = now

	repository.records = append(repository.records, *record)
	return nil
}

// Query implements [Repository].
func (repository *MemoryRepository) Query(_ context.Context, c Criteria) ([]*Feedback, int, error) {
	repository.mu.RLock()
	matched := make([]*Feedback, 0, len(repository.records))
	for i := range repository.records {
		if c.Matches(&repository.records[i]) {
			record := repository.records[i]
			matched = append(matched, &record)
		}
	}
	repository.mu.RUnlock()

	slices.SortStableFunc(matched, func(a, b *Feedback) int {
		var order int
		switch c.SortBy {
		case SortByRating:
			order = cmp.Compare(a.Rating, b.Rating)
		default:
			order = cmp.Compare(a.ID, b.ID)
		}
		if c.Descending {
			return -order
		}
		return order
	})

	total := len(matched)
	start := min(max(c.Offset, 0), total)
	end := total
	if c.Limit > 0 {
		end = min(start+c.Limit, total)
	}

	return matched[start:end], total, nil
}
