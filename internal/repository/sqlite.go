package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/telbill/invoice-pipeline/gen/ent"
)

// OpenSQLite opens an in-memory SQLite database and migrates the schema.
// Used by the batch CLI when no Postgres is around.
func OpenSQLite(ctx context.Context, logger *slog.Logger) (*ent.Client, error) {
	db, err := sql.Open("sqlite", "file:invoices?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		logger.Error("failed to open sqlite", "error", err)
		return nil, err
	}
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("failed to migrate sqlite schema", "error", err)
		_ = client.Close()
		return nil, err
	}
	logger.Info("in-memory sqlite ready")
	return client, nil
}
