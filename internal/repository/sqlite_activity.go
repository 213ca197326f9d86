package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/weekly/internal/db"
	"github.com/alexanderramin/weekly/internal/domain"
)

// SQLiteActivityRepo stores the whole activity collection as one JSON array
// under CollectionKey.
type SQLiteActivityRepo struct {
	kv *SQLiteKVRepo
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{kv: NewSQLiteKVRepo(conn)}
}

// LoadAll returns the stored collection, or an empty one if nothing was saved.
func (r *SQLiteActivityRepo) LoadAll(ctx context.Context) ([]*domain.Activity, error) {
	raw, err := r.kv.Get(ctx, CollectionKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []*domain.Activity{}, nil
		}
		return nil, err
	}

	var activities []*domain.Activity
	if err := json.Unmarshal([]byte(raw), &activities); err != nil {
		return nil, fmt.Errorf("decoding activity collection: %w", err)
	}
	out := activities[:0]
	for _, a := range activities {
		if a == nil {
			continue
		}
		a.Normalize()
		out = append(out, a)
	}
	return out, nil
}

// SaveAll replaces the stored collection.
func (r *SQLiteActivityRepo) SaveAll(ctx context.Context, activities []*domain.Activity) error {
	if activities == nil {
		activities = []*domain.Activity{}
	}
	data, err := json.Marshal(activities)
	if err != nil {
		return fmt.Errorf("encoding activity collection: %w", err)
	}
	return r.kv.Put(ctx, CollectionKey, string(data))
}
