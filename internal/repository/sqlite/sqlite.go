// Package sqlite implements repository.Repository on an embedded SQLite
// database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"netsynth/internal/domain"
	"netsynth/internal/repository"
)

// Repository implements repository.Repository using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS batches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		seed INTEGER,
		count INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS records (
		batch_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		data JSON NOT NULL,
		PRIMARY KEY (batch_id, position),
		FOREIGN KEY (batch_id) REFERENCES batches(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_records_batch ON records(batch_id);
	`

	_, err := r.db.Exec(schema)
	return err
}

// SaveBatch stores batch metadata and one row per record, returning the
// new batch ID.
func (r *Repository) SaveBatch(ctx context.Context, batch *domain.Batch) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO batches (kind, seed, count) VALUES (?, ?, ?)`,
		string(batch.Kind), batch.Seed, batch.Len(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert batch: %w", err)
	}
	batchID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read batch id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (batch_id, position, data) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare record insert: %w", err)
	}
	defer stmt.Close()

	insert := func(position int, record any) error {
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal record %d: %w", position, err)
		}
		if _, err := stmt.ExecContext(ctx, batchID, position, data); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", position, err)
		}
		return nil
	}

	switch batch.Kind {
	case domain.KindVLAN:
		for i, rec := range batch.VLANs {
			if err := insert(i, rec); err != nil {
				return 0, err
			}
		}
	case domain.KindFirewall:
		for i, rec := range batch.Rules {
			if err := insert(i, rec); err != nil {
				return 0, err
			}
		}
	case domain.KindNAT:
		for i, rec := range batch.NATs {
			if err := insert(i, rec); err != nil {
				return 0, err
			}
		}
	case domain.KindVPN:
		for i, rec := range batch.VPNs {
			if err := insert(i, rec); err != nil {
				return 0, err
			}
		}
	default:
		return 0, fmt.Errorf("unsupported batch kind %q", batch.Kind)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit batch: %w", err)
	}
	return batchID, nil
}

// GetBatch loads a stored batch with its records in original order.
func (r *Repository) GetBatch(ctx context.Context, id int64) (*domain.Batch, error) {
	batch := &domain.Batch{}

	var kind string
	err := r.db.QueryRowContext(ctx,
		`SELECT kind, seed FROM batches WHERE id = ?`, id,
	).Scan(&kind, &batch.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to query batch %d: %w", id, err)
	}
	batch.Kind = domain.RecordKind(kind)

	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM records WHERE batch_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		if err := appendRecord(batch, data); err != nil {
			return nil, err
		}
	}
	return batch, rows.Err()
}

func appendRecord(batch *domain.Batch, data []byte) error {
	switch batch.Kind {
	case domain.KindVLAN:
		rec := &domain.VLAN{}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("failed to unmarshal vlan: %w", err)
		}
		batch.VLANs = append(batch.VLANs, rec)
	case domain.KindFirewall:
		rec := &domain.FirewallRule{}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("failed to unmarshal firewall rule: %w", err)
		}
		batch.Rules = append(batch.Rules, rec)
	case domain.KindNAT:
		rec := &domain.NATMapping{}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("failed to unmarshal nat mapping: %w", err)
		}
		batch.NATs = append(batch.NATs, rec)
	case domain.KindVPN:
		rec := &domain.VPNTunnel{}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("failed to unmarshal vpn tunnel: %w", err)
		}
		batch.VPNs = append(batch.VPNs, rec)
	default:
		return fmt.Errorf("unsupported batch kind %q", batch.Kind)
	}
	return nil
}

// ListBatches returns stored batch metadata, newest first.
func (r *Repository) ListBatches(ctx context.Context) ([]repository.SavedBatch, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, seed, count, created_at
		FROM batches
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query batches: %w", err)
	}
	defer rows.Close()

	var batches []repository.SavedBatch
	for rows.Next() {
		var (
			b    repository.SavedBatch
			kind string
			seed sql.NullInt64
		)
		if err := rows.Scan(&b.ID, &kind, &seed, &b.Count, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan batch: %w", err)
		}
		b.Kind = domain.RecordKind(kind)
		if seed.Valid {
			v := seed.Int64
			b.Seed = &v
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// Close closes the underlying database.
func (r *Repository) Close() error {
	return r.db.Close()
}
