package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/telbill/invoice-pipeline/gen/ent"
)

// EntTxRunner wraps mutations in an ent transaction. Repositories created
// with the same base client pick the transactional client out of the
// context, so everything inside fn shares one transaction.
type EntTxRunner struct {
	entc   *ent.Client
	logger *slog.Logger
}

func NewEntTxRunner(entc *ent.Client, logger *slog.Logger) *EntTxRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntTxRunner{entc: entc, logger: logger}
}

func (t *EntTxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := t.entc.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	ctx = ent.NewTxContext(ctx, tx)

	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(ctx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			t.logger.Error("rollback failed", "error", rerr)
			return fmt.Errorf("%w: rollback failed: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// clientFor returns the transactional client when one is in flight.
func clientFor(ctx context.Context, base *ent.Client) *ent.Client {
	if tx := ent.TxFromContext(ctx); tx != nil {
		return tx.Client()
	}
	return base
}
