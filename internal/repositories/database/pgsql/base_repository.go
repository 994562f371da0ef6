package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Collection keys. Kept stable so existing backups and storage rows keep working.
const (
	collectionEggs      = "eggfarm_eggs"
	collectionCustomers = "eggfarm_customers"
	collectionLedger    = "eggfarm_ledger"
	collectionExpenses  = "eggfarm_expenses"
	collectionPayees    = "eggfarm_payees"
	collectionSettings  = "eggfarm_settings"
)

// BaseRepository provides snapshot storage shared by all collection
// repositories: one jsonb row per collection, rewritten whole on every
// mutation. There are no partial updates.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// readCollection loads the snapshot for name into dest. Reads fail soft: a
// missing row, an unreachable store or a corrupt payload leave dest untouched
// (the empty collection) after a warning, so one bad row never takes down
// every derived view.
func (r *BaseRepository) readCollection(ctx context.Context, name string, dest any) {
	var payload []byte
	err := r.Pool.QueryRow(ctx, `SELECT payload FROM collections WHERE name = $1`, name).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return
	}
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to read collection, treating as empty",
			slog.String("collection", name), slog.String("error", err.Error()))
		return
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Corrupt collection payload, treating as empty",
			slog.String("collection", name), slog.String("error", err.Error()))
	}
}

// writeCollection persists the full snapshot for name. Unlike reads, writes
// fail hard so the caller can leave prior state unchanged.
func (r *BaseRepository) writeCollection(ctx context.Context, name string, snapshot any) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}
	_, err = r.Pool.Exec(ctx, `
		INSERT INTO collections (name, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now();
	`, name, data)
	if err != nil {
		return fmt.Errorf("failed to persist collection %s: %w", name, err)
	}
	return nil
}
