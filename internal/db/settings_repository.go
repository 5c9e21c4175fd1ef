package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/udisondev/skillkit/pkg/settings"
)

// SettingsRepository stores the flattened settings of game entities,
// one row per entry. Values travel as text with a kind tag, so a
// round-trip restores them exactly as they were saved.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository returns a repository over an open connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Save stores all settings of an entity, replacing whatever was there.
// Deletes the old rows and inserts the new ones in one transaction.
func (r *SettingsRepository) Save(ctx context.Context, entityID string, set *settings.Set) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // rollback after commit is a no-op
	}()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM entity_settings WHERE entity_id = $1`, entityID,
	); err != nil {
		return fmt.Errorf("deleting settings of %q: %w", entityID, err)
	}

	query := `
		INSERT INTO entity_settings (entity_id, key, kind, value, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	now := time.Now().Unix()
	for _, e := range set.Entries() {
		if _, err := tx.ExecContext(ctx, query,
			entityID, e.Key, e.Value.Kind().String(), e.Value.String(), now,
		); err != nil {
			return fmt.Errorf("inserting setting %q of %q: %w", e.Key, entityID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing settings save: %w", err)
	}

	return nil
}

// Load rebuilds an entity's settings from its stored rows. An unknown
// entity yields an empty set, matching the store's view that missing
// data is not an error.
func (r *SettingsRepository) Load(ctx context.Context, entityID string) (*settings.Set, error) {
	query := `
		SELECT key, kind, value
		FROM entity_settings
		WHERE entity_id = $1
		ORDER BY key
	`

	rows, err := r.db.QueryContext(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("querying settings of %q: %w", entityID, err)
	}
	defer rows.Close()

	set := settings.New()
	for rows.Next() {
		var key, kindName, text string
		if err := rows.Scan(&key, &kindName, &text); err != nil {
			return nil, fmt.Errorf("scanning settings row: %w", err)
		}

		kind, err := settings.ParseKind(kindName)
		if err != nil {
			return nil, fmt.Errorf("settings row %q of %q: %w", key, entityID, err)
		}
		value, err := settings.Parse(kind, text)
		if err != nil {
			return nil, fmt.Errorf("settings row %q of %q: %w", key, entityID, err)
		}
		set.Restore(key, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settings rows: %w", err)
	}

	return set, nil
}

// Delete removes every setting of an entity. Deleting an unknown
// entity is a no-op.
func (r *SettingsRepository) Delete(ctx context.Context, entityID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM entity_settings WHERE entity_id = $1`, entityID,
	); err != nil {
		return fmt.Errorf("deleting settings of %q: %w", entityID, err)
	}
	return nil
}

// Entities returns the ids of all entities with stored settings in
// sorted order.
func (r *SettingsRepository) Entities(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT entity_id
		FROM entity_settings
		ORDER BY entity_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying entities: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0, 16)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning entity id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entity ids: %w", err)
	}

	return ids, nil
}
