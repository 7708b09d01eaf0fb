package repository

import (
	"context"
	"log/slog"

	"github.com/telbill/invoice-pipeline/gen/ent"
	"github.com/telbill/invoice-pipeline/gen/ent/category"
	"github.com/telbill/invoice-pipeline/internal/entity"
	"github.com/telbill/invoice-pipeline/internal/utils"
)

type CategoryRepository struct {
	entc   *ent.Client
	logger *slog.Logger
}

func NewCategoryRepository(entc *ent.Client, logger *slog.Logger) *CategoryRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryRepository{entc: entc, logger: logger}
}

// GetOrCreate resolves a category by exact name, creating it on first
// use. A create lost to a concurrent writer falls back to re-reading.
func (r *CategoryRepository) GetOrCreate(ctx context.Context, name string) (*entity.Category, error) {
	client := clientFor(ctx, r.entc)

	row, err := client.Category.Query().Where(category.Name(name)).Only(ctx)
	if err == nil {
		return utils.ToCategory(row), nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to query category", "name", name, "error", err)
		return nil, err
	}

	created, err := client.Category.Create().SetName(name).Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			row, qerr := client.Category.Query().Where(category.Name(name)).Only(ctx)
			if qerr != nil {
				return nil, qerr
			}
			return utils.ToCategory(row), nil
		}
		r.logger.Error("failed to create category", "name", name, "error", err)
		return nil, err
	}
	return utils.ToCategory(created), nil
}

// List returns every category ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := clientFor(ctx, r.entc).Category.Query().
		Order(ent.Asc(category.FieldName)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list categories", "error", err)
		return nil, err
	}
	out := make([]*entity.Category, len(rows))
	for i, row := range rows {
		out[i] = utils.ToCategory(row)
	}
	return out, nil
}
