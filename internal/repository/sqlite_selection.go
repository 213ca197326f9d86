package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/weekly/internal/db"
	"github.com/alexanderramin/weekly/internal/domain"
)

// SQLiteSelectionRepo persists the week selection shared by every command.
type SQLiteSelectionRepo struct {
	kv *SQLiteKVRepo
}

// NewSQLiteSelectionRepo creates a new SQLiteSelectionRepo.
func NewSQLiteSelectionRepo(conn db.DBTX) *SQLiteSelectionRepo {
	return &SQLiteSelectionRepo{kv: NewSQLiteKVRepo(conn)}
}

func (r *SQLiteSelectionRepo) Get(ctx context.Context) (*domain.WeekSelection, error) {
	raw, err := r.kv.Get(ctx, SelectionKey)
	if err != nil {
		return nil, err
	}
	var s domain.WeekSelection
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decoding week selection: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSelectionRepo) Put(ctx context.Context, s domain.WeekSelection) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding week selection: %w", err)
	}
	return r.kv.Put(ctx, SelectionKey, string(data))
}
